package avoid

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nestedParams = `
controller:
  linear_speed: 0.2
  angular_speed: 0.4
  goal_angle: 90
  stop_distance: 0.5
  epsilon: 0.01
`

func TestParseConfigNested(t *testing.T) {
	cfg, err := ParseConfig([]byte(nestedParams))
	require.NoError(t, err)
	assert.Equal(t, 0.2, cfg.LinearSpeed)
	assert.Equal(t, 0.4, cfg.AngularSpeed)
	assert.InDelta(t, math.Pi/2, cfg.GoalAngle, 1e-12)
	assert.Equal(t, 0.5, cfg.StopDistance)
	assert.Equal(t, 0.01, cfg.Epsilon)
	assert.Equal(t, DefaultSettleTime, cfg.SettleTime)
	assert.Equal(t, DefaultRate, cfg.Rate)
	assert.Equal(t, 0, cfg.ScanIndex)
	assert.Equal(t, time.Duration(0), cfg.PoseTimeout)
}

func TestParseConfigFlatWithOptionals(t *testing.T) {
	doc := `
linear_speed: 1
angular_speed: 1
goal_angle: 180
stop_distance: 0
epsilon: 0.1
settle_time: 0.25
rate: 20
scan_index: 3
pose_timeout: 2
`
	cfg, err := ParseConfig([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, 1.0, cfg.LinearSpeed)
	assert.InDelta(t, math.Pi, cfg.GoalAngle, 1e-12)
	assert.Equal(t, 0.0, cfg.StopDistance)
	assert.Equal(t, 250*time.Millisecond, cfg.SettleTime)
	assert.Equal(t, 20.0, cfg.Rate)
	assert.Equal(t, 3, cfg.ScanIndex)
	assert.Equal(t, 2*time.Second, cfg.PoseTimeout)
}

func TestParseConfigMissingParameter(t *testing.T) {
	doc := `
controller:
  linear_speed: 0.2
  angular_speed: 0.4
  stop_distance: 0.5
  epsilon: 0.01
`
	_, err := ParseConfig([]byte(doc))
	require.Error(t, err)
	assert.Equal(t, ErrInvalidConfig, errors.Cause(err))
	assert.Contains(t, err.Error(), "goal_angle")
}

func TestParseConfigMalformed(t *testing.T) {
	_, err := ParseConfig([]byte("controller: [1, 2"))
	assert.Error(t, err)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"zero angular speed", func(c *Config) { c.AngularSpeed = 0 }, "angular_speed"},
		{"negative angular speed", func(c *Config) { c.AngularSpeed = -1 }, "angular_speed"},
		{"infinite angular speed", func(c *Config) { c.AngularSpeed = math.Inf(1) }, "angular_speed"},
		{"zero linear speed", func(c *Config) { c.LinearSpeed = 0 }, "linear_speed"},
		{"infinite linear speed", func(c *Config) { c.LinearSpeed = math.Inf(1) }, "linear_speed"},
		{"zero goal angle", func(c *Config) { c.GoalAngle = 0 }, "goal_angle"},
		{"negative stop distance", func(c *Config) { c.StopDistance = -0.1 }, "stop_distance"},
		{"infinite stop distance", func(c *Config) { c.StopDistance = math.Inf(1) }, "stop_distance"},
		{"zero epsilon", func(c *Config) { c.Epsilon = 0 }, "epsilon"},
		{"NaN epsilon", func(c *Config) { c.Epsilon = math.NaN() }, "epsilon"},
		{"infinite epsilon", func(c *Config) { c.Epsilon = math.Inf(1) }, "epsilon"},
		{"negative settle time", func(c *Config) { c.SettleTime = -time.Second }, "settle_time"},
		{"zero rate", func(c *Config) { c.Rate = 0 }, "rate"},
		{"negative scan index", func(c *Config) { c.ScanIndex = -1 }, "scan_index"},
		{"negative pose timeout", func(c *Config) { c.PoseTimeout = -time.Second }, "pose_timeout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Equal(t, ErrInvalidConfig, errors.Cause(err))
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestParseConfigRejectsInfinity(t *testing.T) {
	for _, key := range []string{"linear_speed", "angular_speed", "stop_distance", "epsilon", "settle_time", "pose_timeout"} {
		t.Run(key, func(t *testing.T) {
			values := map[string]string{
				"linear_speed":  "0.2",
				"angular_speed": "0.5",
				"goal_angle":    "90",
				"stop_distance": "0.5",
				"epsilon":       "0.01",
			}
			values[key] = ".inf"
			var doc strings.Builder
			for k, v := range values {
				fmt.Fprintf(&doc, "%s: %s\n", k, v)
			}
			_, err := ParseConfig([]byte(doc.String()))
			require.Error(t, err)
			assert.Equal(t, ErrInvalidConfig, errors.Cause(err))
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestValidateAccepts(t *testing.T) {
	assert.NoError(t, testConfig().Validate())
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "controller.yaml")
	require.NoError(t, os.WriteFile(path, []byte(nestedParams), 0644))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, 0.4, cfg.AngularSpeed)

	_, err = LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
