package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "main",
})

var (
	configPath string
	debug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pupper",
	Short: "Quadruped locomotion controller",
	Long: `pupper drives a twelve servo quadruped: it reads commands from a gamepad
(or over NATS), runs the locomotion controller at a fixed rate, and writes the
joint angles to the servos.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (defaults are used if empty)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log every tick")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(relaxCmd)
	rootCmd.AddCommand(configCmd)
}
