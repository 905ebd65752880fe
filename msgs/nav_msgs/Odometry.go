// Package nav_msgs is automatically generated from the message definition "nav_msgs/Odometry.msg"
package nav_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/avoider/msgs/geometry_msgs"
	"github.com/edwinhayes/avoider/msgs/std_msgs"
	"github.com/edwinhayes/rosgo/ros"
)

type _MsgOdometry struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgOdometry) Text() string {
	return t.text
}

func (t *_MsgOdometry) Name() string {
	return t.name
}

func (t *_MsgOdometry) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgOdometry) NewMessage() ros.Message {
	m := new(Odometry)
	m.Header = std_msgs.Header{}
	m.ChildFrameId = ""
	m.Pose = geometry_msgs.PoseWithCovariance{}
	m.Twist = geometry_msgs.TwistWithCovariance{}
	return m
}

var (
	MsgOdometry = &_MsgOdometry{
		`# This represents an estimate of a position and velocity in free space.  
# The pose in this message should be specified in the coordinate frame given by header.frame_id.
# The twist in this message should be specified in the coordinate frame given by the child_frame_id
Header header
string child_frame_id
geometry_msgs/PoseWithCovariance pose
geometry_msgs/TwistWithCovariance twist

================================================================================
MSG: std_msgs/Header
# Standard metadata for higher-level stamped data types.
# This is generally used to communicate timestamped data 
# in a particular coordinate frame.
# 
# sequence ID: consecutively increasing ID 
uint32 seq
#Two-integer timestamp that is expressed as:
# * stamp.sec: seconds (stamp_secs) since epoch (in Python the variable is called 'secs')
# * stamp.nsec: nanoseconds since stamp_secs (in Python the variable is called 'nsecs')
# time-handling sugar is provided by the client library
time stamp
#Frame this data is associated with
string frame_id

================================================================================
MSG: geometry_msgs/PoseWithCovariance
# This represents a pose in free space with uncertainty.

Pose pose

# Row-major representation of the 6x6 covariance matrix
# The orientation parameters use a fixed-axis representation.
# In order, the parameters are:
# (x, y, z, rotation about X axis, rotation about Y axis, rotation about Z axis)
float64[36] covariance

================================================================================
MSG: geometry_msgs/Pose
# A representation of pose in free space, composed of position and orientation. 
Point position
Quaternion orientation

================================================================================
MSG: geometry_msgs/Point
# This contains the position of a point in free space
float64 x
float64 y
float64 z

================================================================================
MSG: geometry_msgs/Quaternion
# This represents an orientation in free space in quaternion form.

float64 x
float64 y
float64 z
float64 w

================================================================================
MSG: geometry_msgs/TwistWithCovariance
# This expresses velocity in free space with uncertainty.

Twist twist

# Row-major representation of the 6x6 covariance matrix
# The orientation parameters use a fixed-axis representation.
# In order, the parameters are:
# (x, y, z, rotation about X axis, rotation about Y axis, rotation about Z axis)
float64[36] covariance

================================================================================
MSG: geometry_msgs/Twist
# This expresses velocity in free space broken into its linear and angular parts.
Vector3  linear
Vector3  angular

================================================================================
MSG: geometry_msgs/Vector3
# This represents a vector in free space. 
# It is only meant to represent a direction. Therefore, it does not
# make sense to apply a translation to it (e.g., when applying a 
# generic rigid transformation to a Vector3, tf2 will only apply the
# rotation). If you want your data to be translatable too, use the
# geometry_msgs/Point message instead.

float64 x
float64 y
float64 z
`,
		"nav_msgs/Odometry",
		"cd5e73d190d741a2f92e81eda573aca7",
	}
)

type Odometry struct {
	Header       std_msgs.Header                   `rosmsg:"header:Header"`
	ChildFrameId string                            `rosmsg:"child_frame_id:string"`
	Pose         geometry_msgs.PoseWithCovariance  `rosmsg:"pose:PoseWithCovariance"`
	Twist        geometry_msgs.TwistWithCovariance `rosmsg:"twist:TwistWithCovariance"`
}

func (m *Odometry) Type() ros.MessageType {
	return MsgOdometry
}

func (m *Odometry) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	if err = m.Header.Serialize(buf); err != nil {
		return err
	}
	binary.Write(buf, binary.LittleEndian, uint32(len([]byte(m.ChildFrameId))))
	buf.Write([]byte(m.ChildFrameId))
	if err = m.Pose.Serialize(buf); err != nil {
		return err
	}
	if err = m.Twist.Serialize(buf); err != nil {
		return err
	}
	return err
}

func (m *Odometry) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = m.Header.Deserialize(buf); err != nil {
		return err
	}
	{
		var size uint32
		if err = binary.Read(buf, binary.LittleEndian, &size); err != nil {
			return err
		}
		data := make([]byte, int(size))
		if err = binary.Read(buf, binary.LittleEndian, data); err != nil {
			return err
		}
		m.ChildFrameId = string(data)
	}
	if err = m.Pose.Deserialize(buf); err != nil {
		return err
	}
	if err = m.Twist.Deserialize(buf); err != nil {
		return err
	}
	return err
}
