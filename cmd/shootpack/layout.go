package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lixenwraith/shootpack/layout"
	"github.com/lixenwraith/shootpack/parameter"
)

// newLayoutCmd prints the slots the layout engine computes, without a terminal scene
func newLayoutCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print satellite row positions for a given item count and width",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			count, _ := flags.GetInt("count")
			width, _ := flags.GetFloat64("width")
			viewport, _ := flags.GetFloat64("viewport")
			counter, _ := flags.GetInt("counter")
			if viewport <= 0 {
				viewport = cfg.Viewport.Width
			}

			ctx := layout.Context{
				ViewportWidth:  viewport,
				CounterVisible: counter > 0,
				CounterValue:   counter,
			}
			widths := make([]float64, max(0, count))
			for i := range widths {
				widths[i] = width
			}
			p := cfg.LayoutParams()
			printSlots(cmd.OutOrStdout(), ctx, p, layout.Compute(ctx, p, widths))
			return nil
		},
	}
	cmd.Flags().Int("count", 8, "number of satellites")
	cmd.Flags().Float64("width", 14/parameter.SatelliteScale, "unscaled satellite width in world units")
	cmd.Flags().Float64("viewport", 0, "viewport width in world units, config value when 0")
	cmd.Flags().Int("counter", 0, "visible life counter value, hidden when 0")
	return cmd
}

func printSlots(w io.Writer, ctx layout.Context, p layout.Params, slots []layout.Slot) {
	header := color.New(color.FgCyan, color.Bold)
	header.Fprintf(w, "viewport=%.0f margin=%.0f wrap>%.1f\n",
		ctx.ViewportWidth, layout.LeftMargin(ctx, p), ctx.ViewportWidth*p.WrapRatio)
	header.Fprintf(w, "%4s %8s %8s %4s\n", "#", "x", "y", "row")

	row, lastY := 0, p.OriginY
	for i, s := range slots {
		if s.Y != lastY {
			row++
			lastY = s.Y
		}
		line := fmt.Sprintf("%4d %8.2f %8.2f %4d\n", i, s.X, s.Y, row)
		if row%2 == 1 {
			color.New(color.FgYellow).Fprint(w, line)
		} else {
			fmt.Fprint(w, line)
		}
	}
}
