package avoid

import (
	"context"
	"math"
	"sync"

	"github.com/pkg/errors"
)

func fromYaw(yaw float64) Orientation {
	return Orientation{Z: math.Sin(yaw / 2), W: math.Cos(yaw / 2)}
}

// scriptedPoses replays a fixed list of orientations and then blocks until
// the context is done.
type scriptedPoses struct {
	mu     sync.Mutex
	script []Orientation
	calls  int
}

func headings(yaws ...float64) *scriptedPoses {
	s := &scriptedPoses{}
	for _, y := range yaws {
		s.script = append(s.script, fromYaw(y))
	}
	return s
}

func (s *scriptedPoses) NextOrientation(ctx context.Context) (Orientation, error) {
	s.mu.Lock()
	if s.calls < len(s.script) {
		o := s.script[s.calls]
		s.calls++
		s.mu.Unlock()
		return o, nil
	}
	s.mu.Unlock()
	<-ctx.Done()
	return Orientation{}, ctx.Err()
}

// spinningPoses reports a heading that advances by step on every call.
type spinningPoses struct {
	mu    sync.Mutex
	yaw   float64
	step  float64
	fail  error
	calls int
}

func (s *spinningPoses) NextOrientation(ctx context.Context) (Orientation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return Orientation{}, err
	}
	if s.fail != nil {
		return Orientation{}, s.fail
	}
	s.calls++
	s.yaw = Wrap(s.yaw + s.step)
	return fromYaw(s.yaw), nil
}

type command struct {
	linear, angular float64
}

type recordingSink struct {
	mu       sync.Mutex
	commands []command
	onSend   func(n int, cmd command)
}

func (r *recordingSink) Send(linear, angular float64) {
	r.mu.Lock()
	cmd := command{linear, angular}
	r.commands = append(r.commands, cmd)
	n := len(r.commands)
	hook := r.onSend
	r.mu.Unlock()
	if hook != nil {
		hook(n, cmd)
	}
}

func (r *recordingSink) all() []command {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]command(nil), r.commands...)
}

var errOdomLost = errors.New("odometry lost")

func testConfig() Config {
	return Config{
		LinearSpeed:  0.2,
		AngularSpeed: 0.5,
		GoalAngle:    math.Pi / 2,
		StopDistance: 0.5,
		Epsilon:      0.05,
		SettleTime:   DefaultSettleTime,
		Rate:         DefaultRate,
	}
}
