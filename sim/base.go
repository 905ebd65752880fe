// Package sim is a kinematic differential-drive base in a rectangular room
// with a single forward range sensor. Time only advances when the controller
// sleeps or asks for a pose, so runs are deterministic and faster than real
// time.
package sim

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/edwinhayes/avoider/avoid"
	"gonum.org/v1/gonum/num/quat"
)

// Config describes the room and the sensor.
type Config struct {
	// HalfWidth and HalfHeight of the room, centred on the origin.
	HalfWidth, HalfHeight float64
	// OdomPeriod is the interval between pose samples.
	OdomPeriod time.Duration
	// MaxRange is reported as +Inf beyond this distance.
	MaxRange float64
	// X, Y and Yaw of the starting pose.
	X, Y, Yaw float64
}

// DefaultConfig is a 4 m x 3 m room sampled at 50 Hz.
var DefaultConfig = Config{
	HalfWidth:  2,
	HalfHeight: 1.5,
	OdomPeriod: 20 * time.Millisecond,
	MaxRange:   3.5,
}

// Base implements avoid.PoseSource and avoid.VelocitySink.
type Base struct {
	cfg Config

	mu              sync.Mutex
	x, y            float64
	orientation     quat.Number
	linear, angular float64
	elapsed         time.Duration
	limit           time.Duration
	cancel          context.CancelFunc
	scan            func([]float32)
	collided        bool
	commands        int
}

func NewBase(cfg Config) *Base {
	return &Base{
		cfg:         cfg,
		x:           cfg.X,
		y:           cfg.Y,
		orientation: quat.Number{Real: math.Cos(cfg.Yaw / 2), Kmag: math.Sin(cfg.Yaw / 2)},
	}
}

// OnScan registers the scan callback. A scan is delivered after every
// odometry period.
func (b *Base) OnScan(fn func(ranges []float32)) {
	b.mu.Lock()
	b.scan = fn
	b.mu.Unlock()
}

// WithDeadline returns a context that is cancelled once d of simulated time
// has passed.
func (b *Base) WithDeadline(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	b.mu.Lock()
	b.limit = b.elapsed + d
	b.cancel = cancel
	b.mu.Unlock()
	return ctx, cancel
}

// Send sets the commanded body velocity.
func (b *Base) Send(linear, angular float64) {
	b.mu.Lock()
	b.linear, b.angular = linear, angular
	b.commands++
	b.mu.Unlock()
}

// NextOrientation advances one odometry period and returns the orientation.
func (b *Base) NextOrientation(ctx context.Context) (avoid.Orientation, error) {
	if err := ctx.Err(); err != nil {
		return avoid.Orientation{}, err
	}
	b.step()
	b.mu.Lock()
	q := b.orientation
	b.mu.Unlock()
	return avoid.Orientation{X: q.Imag, Y: q.Jmag, Z: q.Kmag, W: q.Real}, ctx.Err()
}

// Sleep advances simulated time by d.
func (b *Base) Sleep(ctx context.Context, d time.Duration) error {
	for ; d > 0; d -= b.cfg.OdomPeriod {
		if err := ctx.Err(); err != nil {
			return err
		}
		b.step()
	}
	return ctx.Err()
}

func (b *Base) step() {
	dt := b.cfg.OdomPeriod

	b.mu.Lock()
	yaw := b.yaw()
	b.x += b.linear * math.Cos(yaw) * dt.Seconds()
	b.y += b.linear * math.Sin(yaw) * dt.Seconds()
	if math.Abs(b.x) >= b.cfg.HalfWidth || math.Abs(b.y) >= b.cfg.HalfHeight {
		b.collided = true
	}

	half := b.angular * dt.Seconds() / 2
	b.orientation = quat.Mul(b.orientation, quat.Number{Real: math.Cos(half), Kmag: math.Sin(half)})
	b.orientation = quat.Scale(1/quat.Abs(b.orientation), b.orientation)

	b.elapsed += dt
	if b.cancel != nil && b.elapsed >= b.limit {
		b.cancel()
	}
	scan := b.scan
	r := b.rangeAhead()
	b.mu.Unlock()

	if scan != nil {
		scan([]float32{float32(r)})
	}
}

// yaw must be called with mu held.
func (b *Base) yaw() float64 {
	q := b.orientation
	return math.Atan2(2*(q.Real*q.Kmag+q.Imag*q.Jmag), 1-2*(q.Jmag*q.Jmag+q.Kmag*q.Kmag))
}

// rangeAhead casts a ray to the nearest wall. It must be called with mu held.
func (b *Base) rangeAhead() float64 {
	yaw := b.yaw()
	dx, dy := math.Cos(yaw), math.Sin(yaw)
	r := math.Inf(1)
	if dx > 1e-12 {
		r = math.Min(r, (b.cfg.HalfWidth-b.x)/dx)
	} else if dx < -1e-12 {
		r = math.Min(r, (-b.cfg.HalfWidth-b.x)/dx)
	}
	if dy > 1e-12 {
		r = math.Min(r, (b.cfg.HalfHeight-b.y)/dy)
	} else if dy < -1e-12 {
		r = math.Min(r, (-b.cfg.HalfHeight-b.y)/dy)
	}
	if r < 0 {
		r = 0
	}
	if b.cfg.MaxRange > 0 && r > b.cfg.MaxRange {
		return math.Inf(1)
	}
	return r
}

// State is a snapshot of the base.
type State struct {
	X, Y, Yaw       float64
	Linear, Angular float64
	Elapsed         time.Duration
	Collided        bool
	Commands        int
}

func (b *Base) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return State{
		X:        b.x,
		Y:        b.y,
		Yaw:      b.yaw(),
		Linear:   b.linear,
		Angular:  b.angular,
		Elapsed:  b.elapsed,
		Collided: b.collided,
		Commands: b.commands,
	}
}
