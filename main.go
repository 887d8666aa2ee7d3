package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/nova-strike/audio"
	"github.com/lixenwraith/nova-strike/config"
	"github.com/lixenwraith/nova-strike/core"
	"github.com/lixenwraith/nova-strike/engine"
	"github.com/lixenwraith/nova-strike/entity"
	"github.com/lixenwraith/nova-strike/input"
	"github.com/lixenwraith/nova-strike/parameter"
	"github.com/lixenwraith/nova-strike/render"
	"github.com/lixenwraith/nova-strike/status"
)

func main() {
	cfgPath := flag.String("config", "nova-strike.yaml", "session config file")
	flag.Parse()

	if err := run(*cfgPath); err != nil {
		fmt.Fprintf(os.Stderr, "nova-strike: %v\n", err)
		os.Exit(1)
	}
}

func run(cfgPath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	logger, err := core.NewLogger(cfg.LogPath, cfg.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	core.SetCrashCleanup(screen.Fini)
	defer screen.Fini()

	width, height := screen.Size()
	bounds := fieldBounds(width, height)

	metrics := status.NewRegistry()
	game := engine.NewGame(cfg, logger, bounds, metrics)

	cues := audio.NewCues(cfg.AudioEnabled, logger)
	cues.Attach(game.Bus())
	defer cues.Close()

	inputCh := make(chan input.Event, parameter.InputChannelCapacity)
	sched := engine.NewScheduler(game, cfg.TickInterval(), inputCh, logger, metrics)
	renderer := render.New(screen, metrics, cfg.Debug)

	// Terminal poll loop; screen.Fini unblocks PollEvent on shutdown
	core.Go(func() {
		for {
			raw := screen.PollEvent()
			if raw == nil {
				return
			}
			if _, ok := raw.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			if ev, ok := input.Translate(raw); ok {
				select {
				case inputCh <- ev:
				default:
					// Simulation behind on input; drop rather than block
					// the poll loop
				}
			}
		}
	})

	grp, _ := errgroup.WithContext(context.Background())
	grp.Go(func() error {
		for {
			select {
			case snap := <-sched.Snapshots():
				renderer.Draw(snap)
			case <-sched.Done():
				return nil
			}
		}
	})

	sched.Start()
	defer sched.Stop()

	return grp.Wait()
}

// fieldBounds derives the playfield from the terminal, reserving the
// HUD row and clamping degenerate sizes
func fieldBounds(width, height int) entity.Bounds {
	fieldWidth := width
	fieldHeight := height - 1
	if fieldWidth < parameter.MinFieldWidth {
		fieldWidth = parameter.MinFieldWidth
	}
	if fieldHeight < parameter.MinFieldHeight {
		fieldHeight = parameter.MinFieldHeight
	}
	return entity.Bounds{Width: float64(fieldWidth), Height: float64(fieldHeight)}
}
