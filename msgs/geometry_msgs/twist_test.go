package geometry_msgs

import (
	"bytes"
	"testing"
)

func checkBytes(t *testing.T, a, b []byte) {
	if !bytes.Equal(a, b) {
		if len(a) != len(b) {
			t.Errorf("expected length is %d but %d", len(a), len(b))
		} else {
			for i := 0; i < len(a); i++ {
				if a[i] != b[i] {
					t.Errorf("result[%3d] is expected to be %02X but %02X", i, a[i], b[i])
				}
			}
		}
	}
}

func TestSerializeTwist(t *testing.T) {
	var msg Twist
	msg.Linear.X = 1.0
	msg.Angular.Z = -2.0
	var buf bytes.Buffer
	if err := msg.Serialize(&buf); err != nil {
		t.Error(err)
	}
	expected := []byte{
		// Linear
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xF0, 0x3F,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		// Angular
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xC0,
	}
	checkBytes(t, expected, buf.Bytes())
}

func TestDeserializeTwist(t *testing.T) {
	src := Twist{Linear: Vector3{X: 0.25}, Angular: Vector3{Z: 0.5}}
	var buf bytes.Buffer
	if err := src.Serialize(&buf); err != nil {
		t.Fatal(err)
	}
	var msg Twist
	if err := msg.Deserialize(bytes.NewReader(buf.Bytes())); err != nil {
		t.Fatal(err)
	}
	if msg != src {
		t.Errorf("expected %v but %v", src, msg)
	}
}

func TestDeserializeTwistShortBuffer(t *testing.T) {
	var msg Twist
	if err := msg.Deserialize(bytes.NewReader(make([]byte, 20))); err == nil {
		t.Error("expected an error for a truncated buffer")
	}
}

func TestPoseWithCovarianceSize(t *testing.T) {
	var msg PoseWithCovariance
	msg.Pose.Orientation.W = 1.0
	msg.Covariance[35] = 0.1
	var buf bytes.Buffer
	if err := msg.Serialize(&buf); err != nil {
		t.Error(err)
	}
	// 7 float64 of pose, 36 of covariance, no length prefix.
	if buf.Len() != (7+36)*8 {
		t.Errorf("expected %d bytes but %d", (7+36)*8, buf.Len())
	}
	var out PoseWithCovariance
	if err := out.Deserialize(bytes.NewReader(buf.Bytes())); err != nil {
		t.Fatal(err)
	}
	if out != msg {
		t.Errorf("expected %v but %v", msg, out)
	}
}

func TestMessageTypes(t *testing.T) {
	if MsgTwist.Name() != "geometry_msgs/Twist" {
		t.Error(MsgTwist.Name())
	}
	if MsgTwist.MD5Sum() != "9f195f881246fdfa2798d1d3eebca84a" {
		t.Error(MsgTwist.MD5Sum())
	}
	if _, ok := MsgTwist.NewMessage().(*Twist); !ok {
		t.Error("NewMessage() did not return *Twist")
	}
}
