package rosnode

import (
	"time"

	"github.com/edwinhayes/avoider/msgs/geometry_msgs"
	"github.com/edwinhayes/rosgo/ros"
	"github.com/pkg/errors"
)

// CmdVelSink publishes geometry_msgs/Twist velocity commands.
type CmdVelSink struct {
	pub ros.Publisher
}

func NewCmdVelSink(node ros.Node, topic string) (*CmdVelSink, error) {
	pub, err := node.NewPublisher(topic, geometry_msgs.MsgTwist)
	if err != nil {
		return nil, errors.Wrapf(err, "advertising %s", topic)
	}
	ModuleLogger(node, AdapterModule).WithField("topic", topic).Debug("Advertised velocity commands")
	return &CmdVelSink{pub: pub}, nil
}

// Send sets linear.x and angular.z; every other component is zero.
func (s *CmdVelSink) Send(linear, angular float64) {
	var msg geometry_msgs.Twist
	msg.Linear.X = linear
	msg.Angular.Z = angular
	s.pub.Publish(&msg)
}

// StopFlush is how long Shutdown gives queued commands to leave the
// publisher. rosgo's Node.Shutdown does not drain the queue.
const StopFlush = 200 * time.Millisecond

// Shutdown publishes a stop on sink, waits flush and then shuts the node
// down. The node must not have been shut down already.
func Shutdown(node ros.Node, sink *CmdVelSink, flush time.Duration) {
	if sink != nil {
		sink.Send(0, 0)
	}
	time.Sleep(flush)
	node.Shutdown()
}
