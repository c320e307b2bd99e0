package main

import (
	"github.com/0x49b/quadruped/config"
	"github.com/0x49b/quadruped/servos"
	"github.com/spf13/cobra"
)

var relaxCmd = &cobra.Command{
	Use:   "relax",
	Short: "Power down every servo",
	Long: `Power down every leg servo, e.g. after the control loop crashed and left
them holding position.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		n, port, err := openNetwork(cfg.Hardware)
		if err != nil {
			return err
		}
		defer port.Close()

		l := servos.NewLegs(n, cfg.Hardware.ServoBaseIDs)

		// Boot relaxes whatever it managed to reach if it fails part way.
		err = l.Boot()
		if err != nil {
			return err
		}

		l.Relax()
		log.Info("relaxed")
		return nil
	},
}
