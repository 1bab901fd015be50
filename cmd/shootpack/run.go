package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/shootpack/audio"
	"github.com/lixenwraith/shootpack/config"
	"github.com/lixenwraith/shootpack/core"
	"github.com/lixenwraith/shootpack/engine"
	"github.com/lixenwraith/shootpack/event"
	"github.com/lixenwraith/shootpack/logger"
	"github.com/lixenwraith/shootpack/render"
	"github.com/lixenwraith/shootpack/shootpack"
)

type runOptions struct {
	profile string
	noAudio bool
	watch   bool
	seed    int64
}

func newRunCmd(v *viper.Viper) *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the interactive terminal scene",
		Long: `Run the interactive terminal scene.

Keys: s attach shield, b attach bomb, d detach bombs, x detach last,
h hit enemy, j hit hero, f fire, q or Esc quit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			return runScene(cmd.Context(), cfg, v.GetString("config"), opts)
		},
	}
	cmd.Flags().StringVar(&opts.profile, "profile", "", "write a cpu or mem profile to the working directory")
	cmd.Flags().BoolVar(&opts.noAudio, "no-audio", false, "disable the zero-crossing tone")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "reload the config file when it changes")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed for projectile chance, time based when 0")
	return cmd
}

func runScene(parent context.Context, cfg config.Config, cfgPath string, opts runOptions) error {
	log, closer, err := logger.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closer.Close()

	switch opts.profile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	default:
		return fmt.Errorf("unknown profile mode %q", opts.profile)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashReset(screen.Fini)
	defer screen.Fini()

	renderer := render.NewTerminalRenderer(screen, cfg.Viewport.UnitsPerCellX, cfg.Viewport.UnitsPerCellY)
	w, h := screen.Size()
	scenes := engine.NewSceneManager(renderer.ViewportFor(w, h), log)
	if opts.seed != 0 {
		scenes.SetSeed(func() int64 { return opts.seed })
	}
	pack := shootpack.New(scenes, cfg.LayoutParams(), log)

	player := audio.NewPlayer(cfg.Audio.SampleRate, cfg.Audio.ZeroToneHz, cfg.Audio.ZeroToneDuration())
	if cfg.Audio.Enabled && !opts.noAudio {
		if err := player.Initialize(); err != nil {
			log.Warn("audio disabled", logger.F("error", err))
		}
	}
	defer player.Cleanup()

	d := newDemo(pack, scenes, player, cfg, log)
	d.stats.Bools.Get("audio.enabled").Store(player.Initialized())
	scenes.OnPush(d.setup)

	queue := event.NewQueue()
	loop := engine.NewLoop(scenes, queue, nil, cfg.TickInterval(), log)
	loop.SetRenderer(renderer.RenderFrame)
	loop.RegisterEventHandler(event.HandlerFunc{Types: []event.EventType{event.EventKey}, Fn: d.onKey})
	loop.RegisterEventHandler(event.HandlerFunc{Types: []event.EventType{event.EventReload}, Fn: d.onReload})
	loop.RegisterEventHandler(event.HandlerFunc{
		Types: []event.EventType{event.EventResize},
		Fn: func(ev event.GameEvent) {
			if p, ok := ev.Payload.(*event.ResizePayload); ok {
				vp := renderer.ViewportFor(p.Width, p.Height)
				scenes.Resize(vp.Width, vp.Height)
				screen.Sync()
			}
		},
	})

	scenes.Push("demo")
	defer scenes.Clear()

	ctx, cancel := context.WithCancel(parent)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer core.Recover()
		defer screen.PostEvent(tcell.NewEventInterrupt(nil))
		defer cancel()
		if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		defer core.Recover()
		pumpInput(ctx, screen, queue)
		return nil
	})

	if opts.watch && cfgPath != "" {
		g.Go(func() error {
			defer core.Recover()
			err := config.Watch(ctx, cfgPath, func(c config.Config, err error) {
				if err != nil {
					log.Warn("config reload failed", logger.F("error", err))
					return
				}
				queue.Push(event.GameEvent{Type: event.EventReload, Payload: c})
			})
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}

	err = g.Wait()
	d.stats.Ints.Get("loop.ticks").Store(int64(loop.Ticks()))
	log.Info("session summary", d.stats.Fields()...)
	return err
}

// pumpInput turns terminal events into loop events until ctx is done
func pumpInput(ctx context.Context, screen tcell.Screen, queue *event.Queue) {
	for {
		ev := screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return
		}

		switch e := ev.(type) {
		case *tcell.EventKey:
			switch {
			case e.Key() == tcell.KeyEscape, e.Key() == tcell.KeyCtrlC,
				e.Key() == tcell.KeyRune && e.Rune() == 'q':
				queue.Push(event.GameEvent{Type: event.EventQuit})
			case e.Key() == tcell.KeyRune:
				queue.Push(event.GameEvent{Type: event.EventKey, Payload: &event.KeyPayload{Rune: e.Rune()}})
			default:
				queue.Push(event.GameEvent{Type: event.EventKey, Payload: &event.KeyPayload{Name: e.Name()}})
			}
		case *tcell.EventResize:
			w, h := e.Size()
			queue.Push(event.GameEvent{Type: event.EventResize, Payload: &event.ResizePayload{Width: w, Height: h}})
		}
	}
}
