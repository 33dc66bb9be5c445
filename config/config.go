package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/automoto/tilebound/kinematics"
	"github.com/automoto/tilebound/shared/leveldata"
	"gopkg.in/yaml.v3"
)

// PhysicsConfig contains the movement constants handed to every body.
// Gravity and Friction are applied once per step; speeds are units/second.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	JumpSpeed        float64 `yaml:"jump_speed"` // negative: up is -Y
	MovementSpeed    float64 `yaml:"movement_speed"`
	Friction         float64 `yaml:"friction"`
	MaxFallSpeed     float64 `yaml:"max_fall_speed"`    // 0 = unbounded
	ContactTolerance float64 `yaml:"contact_tolerance"` // ground probe depth below the feet
}

// Params converts the physics section into per-body movement constants.
func (p PhysicsConfig) Params() kinematics.Params {
	return kinematics.Params{
		Gravity:          p.Gravity,
		JumpSpeed:        p.JumpSpeed,
		MovementSpeed:    p.MovementSpeed,
		Friction:         p.Friction,
		MaxFallSpeed:     p.MaxFallSpeed,
		ContactTolerance: p.ContactTolerance,
	}
}

// PlayerConfig contains player dimensions
type PlayerConfig struct {
	CollisionWidth  float64 `yaml:"collision_width"`
	CollisionHeight float64 `yaml:"collision_height"`
}

// LevelConfig controls level discovery and grid parsing
type LevelConfig struct {
	Dir       string            `yaml:"dir"`
	Default   string            `yaml:"default"`
	TileSize  float64           `yaml:"tile_size"`
	Solid     map[string]string `yaml:"solid"` // cell tag -> tile kind
	Spawn     string            `yaml:"spawn"`
	WallProbe float64           `yaml:"wall_probe"` // touching tolerance for wall-contact state
}

// GridOptions converts the level section into grid parsing options.
func (l LevelConfig) GridOptions() leveldata.GridOptions {
	opts := leveldata.GridOptions{
		TileSize: l.TileSize,
		Solid:    make(map[rune]string, len(l.Solid)),
	}
	for tag, kind := range l.Solid {
		if r := []rune(tag); len(r) == 1 {
			opts.Solid[r[0]] = kind
		}
	}
	if r := []rune(l.Spawn); len(r) == 1 {
		opts.Spawn = r[0]
	}
	return opts
}

// SquashStretchConfig contains squash/stretch effect configuration
type SquashStretchConfig struct {
	LandScaleX float64 `yaml:"land_scale_x"` // horizontal scale on land (> 1 = wider)
	LandScaleY float64 `yaml:"land_scale_y"` // vertical scale on land (< 1 = shorter)
	Duration   float64 `yaml:"duration"`     // seconds to return to normal scale
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 `yaml:"follow_smoothing"` // How fast camera follows player (0.0-1.0)
}

// Config holds general game configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	TPS    int `yaml:"tps"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowOverlay bool `yaml:"show_overlay"` // Draw boxes and body state
	WatchLevels bool `yaml:"watch_levels"` // Reload level files when they change on disk
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Level LevelConfig
var SquashStretch SquashStretchConfig
var Camera CameraConfig
var Debug DebugConfig

var ErrInvalidConfig = errors.New("config: invalid value")

// fileConfig is the shape of an override file. Sections left out keep
// their defaults.
type fileConfig struct {
	Game          *Config              `yaml:"game"`
	Physics       *PhysicsConfig       `yaml:"physics"`
	Player        *PlayerConfig        `yaml:"player"`
	Level         *LevelConfig         `yaml:"level"`
	SquashStretch *SquashStretchConfig `yaml:"squash_stretch"`
	Camera        *CameraConfig        `yaml:"camera"`
	Debug         *DebugConfig         `yaml:"debug"`
}

// LoadFile overlays a YAML file on the current configuration. Fields not
// present in the file keep their current values.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	return Load(data)
}

// Load overlays YAML data on the current configuration and validates the
// result. On error the configuration is left unchanged.
func Load(data []byte) error {
	game := *C
	physics, player, level := Physics, Player, Level
	squash, camera, debug := SquashStretch, Camera, Debug

	// Solid tags from the file are merged into a copy of the current map.
	level.Solid = make(map[string]string, len(Level.Solid))
	for tag, kind := range Level.Solid {
		level.Solid[tag] = kind
	}

	fc := fileConfig{
		Game:          &game,
		Physics:       &physics,
		Player:        &player,
		Level:         &level,
		SquashStretch: &squash,
		Camera:        &camera,
		Debug:         &debug,
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := validate(&game, &physics, &player, &level); err != nil {
		return err
	}

	*C = game
	Physics, Player, Level = physics, player, level
	SquashStretch, Camera, Debug = squash, camera, debug
	return nil
}

func validate(game *Config, physics *PhysicsConfig, player *PlayerConfig, level *LevelConfig) error {
	switch {
	case game.Width <= 0 || game.Height <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, game.Width, game.Height)
	case game.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, game.TPS)
	case level.TileSize <= 0:
		return fmt.Errorf("%w: tile size %v", ErrInvalidConfig, level.TileSize)
	case player.CollisionWidth <= 0 || player.CollisionHeight <= 0:
		return fmt.Errorf("%w: player size %vx%v", ErrInvalidConfig, player.CollisionWidth, player.CollisionHeight)
	}
	if err := physics.Params().Validate(); err != nil {
		return fmt.Errorf("%w: physics: %w", ErrInvalidConfig, err)
	}
	for tag := range level.Solid {
		if len([]rune(tag)) != 1 {
			return fmt.Errorf("%w: solid tag %q must be a single character", ErrInvalidConfig, tag)
		}
	}
	if len([]rune(level.Spawn)) > 1 {
		return fmt.Errorf("%w: spawn tag %q must be a single character", ErrInvalidConfig, level.Spawn)
	}
	return nil
}

func init() {
	Reset()
}

// Reset restores every section to its built-in defaults.
func Reset() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	// Physics Config
	Physics = PhysicsConfig{
		Gravity:          40.0,   // per step, ~2400 units/s² at 60 TPS
		JumpSpeed:        -600.0, // ~75 units apex
		MovementSpeed:    240.0,
		Friction:         30.0, // per step
		MaxFallSpeed:     900.0,
		ContactTolerance: 1.0,
	}

	Player = PlayerConfig{
		CollisionWidth:  20,
		CollisionHeight: 30,
	}

	Level = LevelConfig{
		Dir:      "assets/levels",
		Default:  "meadow",
		TileSize: 36,
		Solid: map[string]string{
			"D": "dirt",
			"S": "stone",
		},
		Spawn:     "P",
		WallProbe: 1.0,
	}

	SquashStretch = SquashStretchConfig{
		LandScaleX: 1.25,
		LandScaleY: 0.75,
		Duration:   0.2,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.15,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		ShowOverlay: false,
		WatchLevels: true,
	}
}
