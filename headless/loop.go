package headless

import (
	"log"
	"sync"
	"time"
)

// GameLoop ticks a runner in real time until the script ends or Stop is
// called.
type GameLoop struct {
	runner   *Runner
	tickRate int
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewGameLoop(runner *Runner, tickRate int) *GameLoop {
	return &GameLoop{
		runner:   runner,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// Run blocks until the script has played out, Stop is called, or a step
// fails.
func (g *GameLoop) Run() error {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return nil
		case <-ticker.C:
			_, ok, err := g.runner.Tick()
			if err != nil {
				return err
			}
			if !ok {
				log.Println("Game loop finished script")
				return nil
			}
		}
	}
}

// Stop ends Run. It is safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}
