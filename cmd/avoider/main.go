// Command avoider is a ROS node that drives a base forward and turns away
// from obstacles seen on /scan.
//
// Parameters are read from the parameter server under -params:
//
//	linear_speed   m/s
//	angular_speed  rad/s
//	goal_angle     degrees
//	stop_distance  m
//	epsilon        rad
//	settle_time    s    (optional, default 1)
//	rate           Hz   (optional, default 10)
//	scan_index          (optional, default 0)
//	pose_timeout   s    (optional, default 0 = wait forever)
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/edwinhayes/avoider/avoid"
	"github.com/edwinhayes/avoider/rosnode"
	modular "github.com/edwinhayes/logrus-modular"
	"github.com/edwinhayes/rosgo/ros"
	"github.com/sirupsen/logrus"
)

var (
	params  = flag.String("params", "/controller", "Parameter namespace")
	scan    = flag.String("scan", "/scan", "LaserScan topic")
	odom    = flag.String("odom", "/odom", "Odometry topic")
	cmdVel  = flag.String("cmd_vel", "/cmd_vel", "Twist command topic")
	verbose = flag.Bool("v", false, "Enable debug logging")
)

func main() {
	base := logrus.New()
	base.SetLevel(logrus.WarnLevel)
	var root modular.ModuleLogger = modular.NewRootLogger(base)

	node, err := ros.NewNodeWithLogs("/controller", &root, os.Args)
	if err != nil {
		root.WithError(err).Fatal("Failed to create node")
	}
	logger := rosnode.ModuleLogger(node, "avoider")
	var sink *rosnode.CmdVelSink
	fatal := func(err error, msg string) {
		rosnode.Shutdown(node, sink, 0)
		logger.WithError(err).Fatal(msg)
	}

	args := node.NonRosArgs()
	if len(args) > 0 {
		args = args[1:]
	}
	if err := flag.CommandLine.Parse(args); err != nil {
		fatal(err, "Bad arguments")
	}
	if *verbose {
		for _, name := range []string{"avoider", rosnode.AdapterModule, rosnode.ControllerModule} {
			rosnode.ModuleLogger(node, name).SetLevel(logrus.DebugLevel)
		}
	}

	cfg, err := rosnode.LoadParams(node, *params)
	if err != nil {
		fatal(err, "Invalid configuration")
	}

	poses, err := rosnode.NewOdomSource(node, *odom)
	if err != nil {
		fatal(err, "Failed to subscribe to odometry")
	}
	sink, err = rosnode.NewCmdVelSink(node, *cmdVel)
	if err != nil {
		fatal(err, "Failed to advertise velocity commands")
	}
	ctrl := avoid.NewMotionController(cfg, poses, sink,
		avoid.WithLogger(rosnode.ModuleLogger(node, rosnode.ControllerModule)))
	if _, err := rosnode.SubscribeScan(node, *scan, ctrl); err != nil {
		fatal(err, "Failed to subscribe to scans")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// rosgo only watches SIGINT.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGTERM)
	go func() {
		select {
		case <-sigs:
			logger.Info("Received SIGTERM")
			cancel()
		case <-ctx.Done():
		}
	}()
	go func() {
		node.Spin()
		cancel()
	}()

	runErr := ctrl.Run(ctx)
	rosnode.Shutdown(node, sink, rosnode.StopFlush)
	if runErr != nil {
		logger.WithError(runErr).Fatal("Controller stopped")
	}
	logger.WithField("turns", ctrl.Episodes()).Info("Shutting down")
}
