// Package rosnode connects the avoid controller to a ROS graph through rosgo.
package rosnode

import (
	"github.com/edwinhayes/avoider/msgs/sensor_msgs"
	"github.com/edwinhayes/rosgo/ros"
	"github.com/pkg/errors"
)

// ScanHandler consumes the ranges of each LaserScan.
type ScanHandler interface {
	HandleScan(ranges []float32)
}

// SubscribeScan forwards LaserScan ranges on topic to h. The callback runs on
// the node's spin goroutine.
func SubscribeScan(node ros.Node, topic string, h ScanHandler) (ros.Subscriber, error) {
	sub, err := node.NewSubscriber(topic, sensor_msgs.MsgLaserScan, scanCallback(h))
	if err != nil {
		return nil, errors.Wrapf(err, "subscribing to %s", topic)
	}
	ModuleLogger(node, AdapterModule).WithField("topic", topic).Debug("Subscribed to scans")
	return sub, nil
}

func scanCallback(h ScanHandler) func(*sensor_msgs.LaserScan) {
	return func(msg *sensor_msgs.LaserScan) {
		h.HandleScan(msg.Ranges)
	}
}
