package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/automoto/tilebound/assets"
	"github.com/automoto/tilebound/config"
	"github.com/automoto/tilebound/headless"
	"github.com/automoto/tilebound/shared/leveldata"
)

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in configuration")
	levelPath := flag.String("level", "meadow", "level file (.txt grid or .tmx), or the name of a built-in level")
	script := flag.String("script", "none:60,right:60,jump:1,right:30,jump:1,right:60", "intent script, e.g. right:30,jump:1,none:60")
	tickRate := flag.Int("tickrate", 0, "steps per second (0 = config tps)")
	fast := flag.Bool("fast", false, "step as fast as possible instead of in real time")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *tickRate <= 0 {
		*tickRate = config.C.TPS
	}

	s, err := headless.ParseScript(*script)
	if err != nil {
		log.Fatalf("Bad script: %v", err)
	}

	data, err := loadLevel(*levelPath)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	runner, err := headless.NewRunner(data, s, headless.Options{
		Params:   config.Physics.Params(),
		Width:    config.Player.CollisionWidth,
		Height:   config.Player.CollisionHeight,
		TickRate: *tickRate,
	})
	if err != nil {
		log.Fatalf("Failed to start runner: %v", err)
	}

	log.Printf("Running %d steps on %s (%d tiles)", s.Len(), *levelPath, len(data.SolidRects))
	if *fast {
		if _, err := runner.RunSteps(s.Len()); err != nil {
			log.Fatalf("Step error: %v", err)
		}
	} else {
		loop := headless.NewGameLoop(runner, *tickRate)

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			log.Println("Shutting down runner...")
			loop.Stop()
		}()

		if err := loop.Run(); err != nil {
			log.Fatalf("Step error: %v", err)
		}
	}

	b := runner.Body()
	log.Printf("Finished after %d steps: position %.2f,%.2f velocity %.2f,%.2f %s double jump %t",
		len(runner.Frames()), b.Position.X, b.Position.Y, b.Velocity.X, b.Velocity.Y, b.State(), b.DoubleJumpAvailable)
}

// loadLevel reads a level file from disk, or a built-in level when p is not
// an existing file.
func loadLevel(p string) (*leveldata.CollisionData, error) {
	opts := config.Level.GridOptions()
	if _, err := os.Stat(p); err == nil {
		return leveldata.Load(os.DirFS(filepath.Dir(p)), filepath.Base(p), opts)
	}
	levels, _, err := leveldata.LoadAllLevels(assets.Levels(), assets.LevelDir, opts)
	if err != nil {
		return nil, err
	}
	data, ok := levels[p]
	if !ok {
		return nil, fmt.Errorf("no level file or built-in level named %q", p)
	}
	return data, nil
}
