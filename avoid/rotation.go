package avoid

import (
	"context"
	"math"
)

// Wrap maps an angle into (-π, π].
func Wrap(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// RotationProgress tracks one in-place turn by dead reckoning.
type RotationProgress struct {
	Target      float64
	Remaining   float64
	LastHeading float64
}

func NewRotationProgress(target, heading float64) *RotationProgress {
	return &RotationProgress{
		Target:      target,
		Remaining:   target,
		LastHeading: heading,
	}
}

// Advance consumes the shortest-arc change from the previous heading and
// returns it.
func (p *RotationProgress) Advance(heading float64) float64 {
	delta := math.Abs(Wrap(heading - p.LastHeading))
	p.Remaining -= delta
	p.LastHeading = heading
	return delta
}

func (p *RotationProgress) Done(epsilon float64) bool {
	return p.Remaining < epsilon
}

// Rotated is the angle consumed so far.
func (p *RotationProgress) Rotated() float64 {
	return p.Target - p.Remaining
}

// RotationTracker integrates successive headings until a target angle is used
// up. There is no overshoot correction.
type RotationTracker struct {
	heading *HeadingEstimator
	epsilon float64
}

func NewRotationTracker(heading *HeadingEstimator, epsilon float64) *RotationTracker {
	return &RotationTracker{heading: heading, epsilon: epsilon}
}

// Begin samples the starting heading of a turn through target radians.
func (t *RotationTracker) Begin(ctx context.Context, target float64) (*RotationProgress, error) {
	h, err := t.heading.CurrentHeading(ctx)
	if err != nil {
		return nil, err
	}
	return NewRotationProgress(target, h), nil
}

// Track samples headings until p is done and returns the number of samples
// taken.
func (t *RotationTracker) Track(ctx context.Context, p *RotationProgress) (int, error) {
	samples := 0
	for !p.Done(t.epsilon) {
		h, err := t.heading.CurrentHeading(ctx)
		if err != nil {
			return samples, err
		}
		p.Advance(h)
		samples++
	}
	return samples, nil
}
