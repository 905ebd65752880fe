package nav_msgs

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOdometryRoundTrip(t *testing.T) {
	var src Odometry
	src.Header.Seq = 3
	src.Header.FrameId = "odom"
	src.ChildFrameId = "base_footprint"
	src.Pose.Pose.Position.X = 1.5
	src.Pose.Pose.Orientation.Z = 0.7071067811865476
	src.Pose.Pose.Orientation.W = 0.7071067811865476
	src.Pose.Covariance[0] = 0.01
	src.Twist.Twist.Linear.X = 0.2
	src.Twist.Twist.Angular.Z = 0.5

	var buf bytes.Buffer
	require.NoError(t, src.Serialize(&buf))

	var msg Odometry
	require.NoError(t, msg.Deserialize(bytes.NewReader(buf.Bytes())))
	assert.Equal(t, src, msg)
}

func TestOdometryTruncated(t *testing.T) {
	var src Odometry
	src.ChildFrameId = "base_link"
	var buf bytes.Buffer
	require.NoError(t, src.Serialize(&buf))

	data := buf.Bytes()
	var msg Odometry
	assert.Error(t, msg.Deserialize(bytes.NewReader(data[:len(data)-8])))
}
