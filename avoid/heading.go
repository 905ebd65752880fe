package avoid

import (
	"context"
	"math"
	"time"

	modular "github.com/edwinhayes/logrus-modular"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/num/quat"
)

// ErrPoseTimeout is returned when no usable pose arrives within
// Config.PoseTimeout.
var ErrPoseTimeout = errors.New("timed out waiting for pose")

// Orientation is a unit quaternion as carried by geometry_msgs/Quaternion.
type Orientation struct {
	X, Y, Z, W float64
}

// PoseSource supplies the robot's orientation on demand. NextOrientation
// blocks until a sample newer than the call is available.
type PoseSource interface {
	NextOrientation(ctx context.Context) (Orientation, error)
}

// Yaw returns the rotation about the vertical axis in (-π, π] using the ZYX
// roll-pitch-yaw decomposition. It reports false for a quaternion that cannot
// be normalised.
func Yaw(o Orientation) (float64, bool) {
	q := quat.Number{Real: o.W, Imag: o.X, Jmag: o.Y, Kmag: o.Z}
	n := quat.Abs(q)
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	q = quat.Scale(1/n, q)

	yaw := math.Atan2(2*(q.Real*q.Kmag+q.Imag*q.Jmag), 1-2*(q.Jmag*q.Jmag+q.Kmag*q.Kmag))
	if yaw <= -math.Pi {
		yaw = math.Pi
	}
	return yaw, true
}

// HeadingEstimator turns pose samples into a scalar heading.
type HeadingEstimator struct {
	source  PoseSource
	timeout time.Duration
	logger  modular.Logger
}

func NewHeadingEstimator(source PoseSource, timeout time.Duration, logger modular.Logger) *HeadingEstimator {
	if logger == nil {
		logger = modular.NewRootLogger(logrus.New())
	}
	return &HeadingEstimator{source: source, timeout: timeout, logger: logger}
}

// CurrentHeading waits for the next pose sample and returns its yaw.
// Malformed quaternions are skipped. Without a timeout the call only returns
// early when ctx is done.
func (h *HeadingEstimator) CurrentHeading(ctx context.Context) (float64, error) {
	waitCtx := ctx
	if h.timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	for {
		o, err := h.source.NextOrientation(waitCtx)
		if err != nil {
			if ctx.Err() == nil && waitCtx.Err() == context.DeadlineExceeded {
				return 0, errors.Wrapf(ErrPoseTimeout, "no pose within %v", h.timeout)
			}
			return 0, err
		}
		yaw, ok := Yaw(o)
		if !ok {
			h.logger.WithField("orientation", o).Debug("Skipping malformed orientation")
			continue
		}
		return yaw, nil
	}
}
