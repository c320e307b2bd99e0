package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/0x49b/quadruped"
	"github.com/0x49b/quadruped/components/gamepad"
	"github.com/0x49b/quadruped/components/legs"
	"github.com/0x49b/quadruped/components/legs/gait"
	"github.com/0x49b/quadruped/components/legs/planner"
	"github.com/0x49b/quadruped/components/remote"
	"github.com/0x49b/quadruped/components/voltage"
	"github.com/0x49b/quadruped/config"
	"github.com/0x49b/quadruped/fake/imu"
	fakevoltage "github.com/0x49b/quadruped/fake/voltage"
	"github.com/0x49b/quadruped/kinematics"
	"github.com/0x49b/quadruped/metrics"
	"github.com/0x49b/quadruped/servos"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var (
	useRemote bool
	noServos  bool
)

func init() {
	runCmd.Flags().BoolVar(&useRemote, "remote", false, "read commands from NATS instead of the gamepad")
	runCmd.Flags().BoolVar(&noServos, "no-servos", false, "run the controller without opening the serial port")
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the control loop",
	Long: `Run the control loop until START is pressed on the gamepad, or the process
is interrupted. The servos are relaxed on the way out.

Examples:
  # Drive with the gamepad
  pupper run

  # Drive over NATS, without any hardware attached
  PUPPER_HARDWARE_NATS_URL=nats://base:4222 pupper run --remote --no-servos`,
	Args: cobra.NoArgs,
	RunE: runRobot,
}

func newController(cfg *config.Config) *legs.Controller {
	return legs.New(cfg,
		gait.New(cfg),
		planner.NewStance(cfg),
		planner.NewSwing(cfg),
		legs.InverseKinematicsFunc(kinematics.Solve))
}

func runRobot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	state := quadruped.NewState(cfg.DefaultStance(), cfg.DefaultZRef)

	var src quadruped.CommandSource
	var pad *gamepad.Gamepad

	if useRemote {
		rem := remote.New(cfg)
		defer rem.Close()
		src = rem
	} else {
		log.Infof("opening controller %s", cfg.Hardware.Joystick)
		f, err := os.Open(cfg.Hardware.Joystick)
		if err != nil {
			return errors.Wrap(err, "while opening controller")
		}
		defer f.Close()

		pad = gamepad.New(f, cfg)
		src = pad
	}

	r := quadruped.NewRobot(state, src, imu.Level(), newController(cfg))

	if pad != nil {
		pad.OnStart = func() {
			r.Shutdown = true
		}
	}

	if noServos {
		r.Add(voltage.New(fakevoltage.New(cfg.Hardware.MinVoltage), cfg.Hardware.MinVoltage))
	} else {
		n, port, err := openNetwork(cfg.Hardware)
		if err != nil {
			return err
		}
		defer port.Close()

		l := servos.NewLegs(n, cfg.Hardware.ServoBaseIDs)
		defer l.Relax()

		r.AddOutput(l)
		r.Add(voltage.New(l, cfg.Hardware.MinVoltage))
	}

	m := metrics.New(prometheus.DefaultRegisterer)
	r.Add(m)

	if cfg.Hardware.MetricsAddr != "" {
		go serveMetrics(cfg.Hardware.MetricsAddr)
	}

	log.Info("booting components")
	err = r.Boot()
	if err != nil {
		return err
	}

	// Catch both SIGINT (ctrl+c) and SIGTERM (kill/systemd), to allow the robot
	// to power down its servos before exiting.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	t := time.NewTicker(time.Duration(cfg.DT * float64(time.Second)))
	defer t.Stop()

	log.Infof("starting loop at %.0fHz", 1/cfg.DT)
	for {
		select {
		case s := <-sig:
			log.Infof("caught %v, shutting down", s)
			return nil

		case now := <-t.C:
			if r.Shutdown {
				log.Info("shutdown requested")
				return nil
			}

			start := time.Now()
			err := r.Tick(now)
			m.ObserveTick(time.Since(start))

			if errors.Cause(err) == legs.ErrNoTransition {
				m.Rejected()
			} else if err != nil {
				log.Errorf("stopping: %v", err)
				return err
			}
		}
	}
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	log.Infof("serving metrics on %s", addr)
	err := http.ListenAndServe(addr, mux)
	if err != nil {
		log.Errorf("metrics server: %v", err)
	}
}
