package factory

import (
	"github.com/automoto/tilebound/archetypes"
	"github.com/automoto/tilebound/components"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
}
