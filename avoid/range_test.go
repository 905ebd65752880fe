package avoid

import (
	"math"
	"testing"
)

func TestObstacleAhead(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	tests := []struct {
		name   string
		ranges []float32
		index  int
		stop   float64
		want   bool
	}{
		{"inside", []float32{0.4}, 0, 0.5, true},
		{"at stop distance", []float32{0.5}, 0, 0.5, true},
		{"beyond", []float32{0.6}, 0, 0.5, false},
		{"zero stop distance touching", []float32{0}, 0, 0, true},
		{"empty scan", nil, 0, 0.5, false},
		{"index past end", []float32{0.1}, 1, 0.5, false},
		{"negative index", []float32{0.1}, -1, 0.5, false},
		{"NaN", []float32{nan}, 0, 0.5, false},
		{"negative range", []float32{-0.2}, 0, 0.5, false},
		{"no return", []float32{inf}, 0, 0.5, false},
		{"only first bearing counts", []float32{2.0, 0.1, 0.1}, 0, 0.5, false},
		{"other bearing", []float32{2.0, 0.1}, 1, 0.5, true},
	}
	for _, tt := range tests {
		if got := ObstacleAhead(tt.ranges, tt.index, tt.stop); got != tt.want {
			t.Errorf("%s: ObstacleAhead(%v, %d, %v) = %v, want %v",
				tt.name, tt.ranges, tt.index, tt.stop, got, tt.want)
		}
	}
}

func TestHandleScanNeverClears(t *testing.T) {
	c := NewMotionController(testConfig(), headings(), &recordingSink{})

	c.HandleScan([]float32{1.0})
	if c.obstacle.Load() {
		t.Fatal("flag raised for a clear reading")
	}
	c.HandleScan([]float32{0.4})
	if !c.obstacle.Load() {
		t.Fatal("flag not raised for a reading inside stop distance")
	}
	for _, r := range [][]float32{{1.0}, nil, {float32(math.NaN())}} {
		c.HandleScan(r)
		if !c.obstacle.Load() {
			t.Fatalf("flag cleared by scan %v", r)
		}
	}
}
