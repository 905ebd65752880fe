package rosnode

import (
	"context"

	"github.com/edwinhayes/avoider/avoid"
	"github.com/edwinhayes/avoider/msgs/nav_msgs"
	"github.com/edwinhayes/rosgo/ros"
	"github.com/pkg/errors"
)

// OdomSource provides orientations from nav_msgs/Odometry. Only the newest
// sample is kept.
type OdomSource struct {
	latest chan avoid.Orientation
}

// NewOdomSource subscribes to topic. Callbacks are only delivered while the
// node is spinning.
func NewOdomSource(node ros.Node, topic string) (*OdomSource, error) {
	s := newOdomSource()
	if _, err := node.NewSubscriber(topic, nav_msgs.MsgOdometry, s.handle); err != nil {
		return nil, errors.Wrapf(err, "subscribing to %s", topic)
	}
	ModuleLogger(node, AdapterModule).WithField("topic", topic).Debug("Subscribed to odometry")
	return s, nil
}

func newOdomSource() *OdomSource {
	return &OdomSource{latest: make(chan avoid.Orientation, 1)}
}

func (s *OdomSource) handle(msg *nav_msgs.Odometry) {
	q := msg.Pose.Pose.Orientation
	o := avoid.Orientation{X: q.X, Y: q.Y, Z: q.Z, W: q.W}
	for {
		select {
		case s.latest <- o:
			return
		default:
		}
		select {
		case <-s.latest:
		default:
		}
	}
}

// NextOrientation discards anything already buffered and waits for the next
// odometry message.
func (s *OdomSource) NextOrientation(ctx context.Context) (avoid.Orientation, error) {
	select {
	case <-s.latest:
	default:
	}
	select {
	case o := <-s.latest:
		return o, nil
	case <-ctx.Done():
		return avoid.Orientation{}, ctx.Err()
	}
}
