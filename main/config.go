package main

import (
	"fmt"

	"github.com/0x49b/quadruped/config"
	"github.com/0x49b/quadruped/utils"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Validate the config, and show what it works out to",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "tick:      %.1fms (%.0fHz)\n", cfg.DT*1000, 1/cfg.DT)
		fmt.Fprintf(out, "gait:      %v ticks per phase, %d per cycle\n", cfg.PhaseTicks(), cfg.PhaseLength())
		fmt.Fprintf(out, "stance:    %d ticks\n", cfg.StanceTicks())
		fmt.Fprintf(out, "swing:     %d ticks\n", cfg.SwingTicks())
		fmt.Fprintf(out, "height:    %+.3fm (%+.3f to %+.3f)\n", cfg.DefaultZRef, cfg.MinHeight, cfg.MaxHeight)
		fmt.Fprintf(out, "rest yaw:  ±%.1f° at %.1f°/s\n", utils.Deg(cfg.MaxStanceYaw), utils.Deg(cfg.MaxStanceYawRate))

		stance := cfg.DefaultStance()
		for leg, name := range []string{"FR", "FL", "BR", "BL"} {
			c := stance.Col(leg)
			fmt.Fprintf(out, "foot %s:   x=%+.3f y=%+.3f\n", name, c[0], c[1])
		}

		return nil
	},
}
