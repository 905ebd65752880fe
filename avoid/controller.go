// Package avoid implements a reactive obstacle-avoidance controller for a
// differential-drive base. The base drives straight until the forward range
// drops to the stop distance, then turns in place through a fixed angle
// measured by integrating odometry yaw, and drives on.
package avoid

import (
	"context"
	"sync/atomic"
	"time"

	modular "github.com/edwinhayes/logrus-modular"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// State is the controller mode.
type State int

const (
	StateDrive State = iota
	StateRotate
)

func (s State) String() string {
	switch s {
	case StateDrive:
		return "DRIVE"
	case StateRotate:
		return "ROTATE"
	default:
		return "UNKNOWN"
	}
}

// VelocitySink accepts velocity commands. Send must not block.
type VelocitySink interface {
	Send(linear, angular float64)
}

// Option configures a MotionController.
type Option func(*MotionController)

// WithLogger sets the module logger. A ROS node passes a child of its own
// logger so the controller's level can be set apart from rosgo's.
func WithLogger(logger modular.Logger) Option {
	return func(c *MotionController) {
		c.logger = logger
	}
}

// WithSleeper replaces the wall-clock wait used for settling and for the
// DRIVE tick.
func WithSleeper(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(c *MotionController) {
		c.sleep = sleep
	}
}

// MotionController owns the DRIVE/ROTATE state machine. HandleScan may be
// called from any goroutine; everything else runs on the control loop.
type MotionController struct {
	cfg      Config
	tracker  *RotationTracker
	sink     VelocitySink
	logger   modular.Logger
	sleep    func(ctx context.Context, d time.Duration) error
	obstacle atomic.Bool

	state    State
	episodes int
}

func NewMotionController(cfg Config, poses PoseSource, sink VelocitySink, opts ...Option) *MotionController {
	c := &MotionController{
		cfg:    cfg,
		sink:   sink,
		logger: modular.NewRootLogger(logrus.New()),
		sleep:  sleepContext,
		state:  StateDrive,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.tracker = NewRotationTracker(NewHeadingEstimator(poses, cfg.PoseTimeout, c.logger), cfg.Epsilon)
	return c
}

// HandleScan raises the obstacle flag when the forward range is at or inside
// the stop distance. It never clears the flag.
func (c *MotionController) HandleScan(ranges []float32) {
	if !ObstacleAhead(ranges, c.cfg.ScanIndex, c.cfg.StopDistance) {
		return
	}
	if !c.obstacle.Swap(true) {
		c.logger.WithField("range", ranges[c.cfg.ScanIndex]).Debug("Obstacle ahead")
	}
}

// Episodes returns the number of completed turns.
func (c *MotionController) Episodes() int {
	return c.episodes
}

// Run executes control ticks at Config.Rate until ctx is done. It returns nil
// on cancellation and the cause when a turn cannot be completed. A stop
// command is sent on the way out.
func (c *MotionController) Run(ctx context.Context) error {
	defer c.stop()

	interval := time.Duration(float64(time.Second) / c.cfg.Rate)
	c.logger.WithFields(logrus.Fields{
		"linear_speed":  c.cfg.LinearSpeed,
		"angular_speed": c.cfg.AngularSpeed,
		"goal_angle":    c.cfg.GoalAngle,
		"stop_distance": c.cfg.StopDistance,
		"interval":      interval,
	}).Info("Controller started")

	for {
		if err := c.Step(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if err := c.sleep(ctx, interval); err != nil {
			return nil
		}
	}
}

// Step runs one control tick. In DRIVE it either commands forward motion or,
// if the obstacle flag is up, performs a complete turn and returns to DRIVE.
func (c *MotionController) Step(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !c.obstacle.Load() {
		c.sink.Send(c.cfg.LinearSpeed, 0)
		return nil
	}
	return c.rotate(ctx)
}

func (c *MotionController) rotate(ctx context.Context) error {
	c.transition(StateRotate)
	start := time.Now()

	c.stop()
	if err := c.sleep(ctx, c.cfg.SettleTime); err != nil {
		return err
	}

	progress, err := c.tracker.Begin(ctx, c.cfg.GoalAngle)
	if err != nil {
		return errors.Wrap(err, "sampling start heading")
	}
	c.sink.Send(0, c.cfg.AngularSpeed)

	samples, err := c.tracker.Track(ctx, progress)
	c.stop()
	if err != nil {
		return errors.Wrapf(err, "rotating after %.3f rad", progress.Rotated())
	}
	c.episodes++
	c.logger.WithFields(logrus.Fields{
		"target":    progress.Target,
		"rotated":   progress.Rotated(),
		"remaining": progress.Remaining,
		"samples":   samples,
		"elapsed":   time.Since(start),
	}).Info("Rotation complete")

	if err := c.sleep(ctx, c.cfg.SettleTime); err != nil {
		return err
	}
	c.obstacle.Store(false)
	c.transition(StateDrive)
	return nil
}

func (c *MotionController) stop() {
	c.sink.Send(0, 0)
}

func (c *MotionController) transition(to State) {
	c.logger.WithFields(logrus.Fields{
		"from": c.state,
		"to":   to,
	}).Info("State change")
	c.state = to
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
