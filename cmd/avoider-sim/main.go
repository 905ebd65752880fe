// Command avoider-sim runs the controller against a simulated base in a
// rectangular room and reports where it ended up.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/edwinhayes/avoider/avoid"
	"github.com/edwinhayes/avoider/sim"
	modular "github.com/edwinhayes/logrus-modular"
	"github.com/sirupsen/logrus"
)

var (
	config   = flag.String("config", "controller.yaml", "rosparam YAML file")
	duration = flag.Duration("duration", 5*time.Minute, "Simulated run time")
	width    = flag.Float64("width", 2*sim.DefaultConfig.HalfWidth, "Room width in m")
	height   = flag.Float64("height", 2*sim.DefaultConfig.HalfHeight, "Room height in m")
	verbose  = flag.Bool("v", false, "Enable debug logging")
)

func main() {
	flag.Parse()
	root := modular.NewRootLogger(logrus.StandardLogger())
	logger := root.GetOrCreateChild("sim", logrus.InfoLevel)
	if *verbose {
		root.SetLevel(logrus.DebugLevel)
	}

	cfg, err := avoid.LoadConfigFile(*config)
	if err != nil {
		logger.WithError(err).Fatal("Invalid configuration")
	}

	room := sim.DefaultConfig
	room.HalfWidth = *width / 2
	room.HalfHeight = *height / 2
	base := sim.NewBase(room)

	ctrl := avoid.NewMotionController(cfg, base, base,
		avoid.WithLogger(root.GetOrCreateChild("controller", logger.GetLevel())),
		avoid.WithSleeper(base.Sleep))
	base.OnScan(ctrl.HandleScan)

	ctx, cancel := base.WithDeadline(context.Background(), *duration)
	defer cancel()
	if err := ctrl.Run(ctx); err != nil {
		logger.WithError(err).Fatal("Controller stopped")
	}

	s := base.State()
	entry := logger.WithFields(logrus.Fields{
		"elapsed":  s.Elapsed,
		"turns":    ctrl.Episodes(),
		"x":        s.X,
		"y":        s.Y,
		"yaw":      s.Yaw,
		"commands": s.Commands,
	})
	if s.Collided {
		entry.Fatal("Hit a wall")
	}
	entry.Info("Simulation finished")
}
