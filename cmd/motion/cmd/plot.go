package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-drift/motion/pkg/plot"
	"github.com/go-drift/motion/pkg/preset"
)

func init() {
	RegisterCommand(&Command{
		Name:  "plot",
		Short: "Render a timing curve to a PNG image",
		Long: `Render a timing curve to a PNG image for previewing easing shapes.

Curves:
  linear, ease-in, ease-out, ease-in-out, all-or-nothing, steps,
  fixed, random

Flags:
  --out FILE        Output path (default: <curve>.png)
  --size WxH        Image size in pixels (default: 480x480)
  --strength N      Ease strength (default: 0.5)
  --threshold N     all-or-nothing threshold (default: 0.5)
  --count N         steps bucket count (default: 4)
  --value N         fixed output value
  --flip-x          Mirror the curve along the input axis
  --flip-y          Mirror the curve along the output axis`,
		Usage: "motion plot <curve> [--out FILE] [--size WxH] [flags]",
		Run:   runPlot,
	})
}

func runPlot(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("curve name is required\n\nUsage: motion plot <curve>")
	}

	p := preset.Preset{Curve: args[0]}
	out := ""
	width, height := 480, 480

	rest := args[1:]
	for i := 0; i < len(rest); i++ {
		arg := rest[i]
		switch arg {
		case "--flip-x":
			p.FlipX = true
			continue
		case "--flip-y":
			p.FlipY = true
			continue
		}

		if i+1 >= len(rest) {
			return fmt.Errorf("%s requires a value", arg)
		}
		i++
		v := rest[i]

		var err error
		switch arg {
		case "--out":
			out = v
		case "--size":
			width, height, err = parseSize(v)
		case "--strength":
			p.Strength, err = strconv.ParseFloat(v, 64)
		case "--threshold":
			p.Threshold, err = strconv.ParseFloat(v, 64)
		case "--count":
			p.Count, err = strconv.Atoi(v)
		case "--value":
			p.Value, err = strconv.ParseFloat(v, 64)
		default:
			err = fmt.Errorf("unknown flag %q", arg)
		}
		if err != nil {
			return err
		}
	}

	if p.Curve == "steps" && p.Count == 0 {
		p.Count = 4
	}
	fn, err := p.TimingFunc()
	if err != nil {
		return err
	}

	if out == "" {
		out = p.Curve + ".png"
	}
	if err := plot.WritePNG(out, fn, width, height); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%dx%d)\n", out, width, height)
	return nil
}

func parseSize(s string) (int, int, error) {
	parts := strings.SplitN(strings.ToLower(s), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q (want WxH, e.g. 480x480)", s)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	return w, h, nil
}
