package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/preset"
)

func init() {
	RegisterCommand(&Command{
		Name:  "play",
		Short: "Play a preset animation in the terminal",
		Long: `Play a named animation preset from a motion.yaml file, rendering its
value as a progress bar in the terminal.

Flags:
  --file FILE       Preset file (default: motion.yaml)
  --timeout DUR     Abort if the animation has not completed (default: 30s)`,
		Usage: "motion play <preset> [--file FILE] [--timeout DUR]",
		Run:   runPlay,
	})
}

func runPlay(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("preset name is required\n\nUsage: motion play <preset>")
	}
	name := args[0]
	file := "motion.yaml"
	timeout := 30 * time.Second

	rest := args[1:]
	for i := 0; i < len(rest); i++ {
		arg := rest[i]
		if i+1 >= len(rest) {
			return fmt.Errorf("%s requires a value", arg)
		}
		i++
		v := rest[i]

		var err error
		switch arg {
		case "--file":
			file = v
		case "--timeout":
			timeout, err = time.ParseDuration(v)
		default:
			err = fmt.Errorf("unknown flag %q", arg)
		}
		if err != nil {
			return err
		}
	}

	presets, err := preset.Load(file)
	if err != nil {
		return err
	}
	cfg, err := presets.Config(name)
	if err != nil {
		return err
	}
	if cfg.MaxFPS <= 0 {
		// Terminals do not need more frames than a display would show.
		cfg.MaxFPS = 60
	}

	loop := animation.NewLoop()
	go loop.Run()
	defer loop.Stop()

	cfg.Scheduler = loop
	cfg.OnUpdate = func(value, _, timeProgress float64) {
		fmt.Printf("\r%s %8.3f", bar(timeProgress, 40), value)
	}

	a := animation.New(cfg)
	loop.Enqueue(a.Start)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := a.Wait(ctx); err != nil {
		fmt.Println()
		return fmt.Errorf("playing %q: %w", name, err)
	}
	fmt.Printf("\nCompleted %q in %s\n", name, cfg.Duration)
	return nil
}

func bar(progress float64, width int) string {
	filled := int(progress * float64(width))
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", width-filled) + "]"
}
