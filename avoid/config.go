package avoid

import (
	"math"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is the cause of every configuration error.
var ErrInvalidConfig = errors.New("invalid configuration")

const (
	DefaultSettleTime = time.Second
	DefaultRate       = 10.0
)

// Config holds the motion parameters. It is resolved once at startup and
// not modified afterwards.
type Config struct {
	LinearSpeed  float64 // m/s
	AngularSpeed float64 // rad/s
	GoalAngle    float64 // rad
	StopDistance float64 // m
	Epsilon      float64 // rad

	// SettleTime is the pause after every stop command.
	SettleTime time.Duration
	// Rate is the DRIVE tick frequency in Hz.
	Rate float64
	// ScanIndex selects the forward bearing in LaserScan.ranges.
	ScanIndex int
	// PoseTimeout bounds the wait for an odometry sample. Zero waits forever.
	PoseTimeout time.Duration
}

// Validate checks every field and reports the first offending one.
func (c Config) Validate() error {
	switch {
	case !(c.LinearSpeed > 0) || math.IsInf(c.LinearSpeed, 0):
		return errors.Wrapf(ErrInvalidConfig, "linear_speed must be finite and > 0, got %v", c.LinearSpeed)
	case !(c.AngularSpeed > 0) || math.IsInf(c.AngularSpeed, 0):
		return errors.Wrapf(ErrInvalidConfig, "angular_speed must be finite and > 0, got %v", c.AngularSpeed)
	case !(c.GoalAngle > 0) || math.IsInf(c.GoalAngle, 0):
		return errors.Wrapf(ErrInvalidConfig, "goal_angle must be finite and > 0, got %v", c.GoalAngle)
	case !(c.StopDistance >= 0) || math.IsInf(c.StopDistance, 0):
		return errors.Wrapf(ErrInvalidConfig, "stop_distance must be finite and >= 0, got %v", c.StopDistance)
	case !(c.Epsilon > 0) || math.IsInf(c.Epsilon, 0):
		return errors.Wrapf(ErrInvalidConfig, "epsilon must be finite and > 0, got %v", c.Epsilon)
	case c.SettleTime < 0:
		return errors.Wrapf(ErrInvalidConfig, "settle_time must be >= 0, got %v", c.SettleTime)
	case !(c.Rate > 0) || math.IsInf(c.Rate, 0):
		return errors.Wrapf(ErrInvalidConfig, "rate must be finite and > 0, got %v", c.Rate)
	case c.ScanIndex < 0:
		return errors.Wrapf(ErrInvalidConfig, "scan_index must be >= 0, got %d", c.ScanIndex)
	case c.PoseTimeout < 0:
		return errors.Wrapf(ErrInvalidConfig, "pose_timeout must be >= 0, got %v", c.PoseTimeout)
	}
	return nil
}

// Params holds parameter values as they appear on the parameter server or
// in a rosparam file. Angles are in degrees and durations in seconds. A nil
// field is unset.
type Params struct {
	LinearSpeed  *float64 `yaml:"linear_speed"`
	AngularSpeed *float64 `yaml:"angular_speed"`
	GoalAngle    *float64 `yaml:"goal_angle"`
	StopDistance *float64 `yaml:"stop_distance"`
	Epsilon      *float64 `yaml:"epsilon"`
	SettleTime   *float64 `yaml:"settle_time"`
	Rate         *float64 `yaml:"rate"`
	ScanIndex    *int     `yaml:"scan_index"`
	PoseTimeout  *float64 `yaml:"pose_timeout"`
}

// Config converts p into a validated Config. The five motion parameters are
// required, the rest fall back to defaults.
func (p Params) Config() (Config, error) {
	required := []struct {
		name  string
		value *float64
	}{
		{"linear_speed", p.LinearSpeed},
		{"angular_speed", p.AngularSpeed},
		{"goal_angle", p.GoalAngle},
		{"stop_distance", p.StopDistance},
		{"epsilon", p.Epsilon},
	}
	for _, r := range required {
		if r.value == nil {
			return Config{}, errors.Wrapf(ErrInvalidConfig, "missing parameter %q", r.name)
		}
	}

	cfg := Config{
		LinearSpeed:  *p.LinearSpeed,
		AngularSpeed: *p.AngularSpeed,
		GoalAngle:    *p.GoalAngle * math.Pi / 180,
		StopDistance: *p.StopDistance,
		Epsilon:      *p.Epsilon,
		SettleTime:   DefaultSettleTime,
		Rate:         DefaultRate,
	}
	if p.SettleTime != nil {
		cfg.SettleTime = seconds(*p.SettleTime)
	}
	if p.Rate != nil {
		cfg.Rate = *p.Rate
	}
	if p.ScanIndex != nil {
		cfg.ScanIndex = *p.ScanIndex
	}
	if p.PoseTimeout != nil {
		cfg.PoseTimeout = seconds(*p.PoseTimeout)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// seconds maps NaN, infinities and out-of-range values to -1 so that
// Validate rejects them.
func seconds(s float64) time.Duration {
	if !(math.Abs(s) < float64(math.MaxInt64)/float64(time.Second)) {
		return -1
	}
	return time.Duration(s * float64(time.Second))
}

// LoadConfigFile reads a rosparam-style YAML file. The parameters may sit at
// the top level or under a "controller" key.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "reading config file")
	}
	return ParseConfig(data)
}

// ParseConfig is LoadConfigFile for an in-memory document.
func ParseConfig(data []byte) (Config, error) {
	var nested struct {
		Controller *Params `yaml:"controller"`
	}
	if err := yaml.Unmarshal(data, &nested); err != nil {
		return Config{}, errors.Wrap(err, "parsing config")
	}
	if nested.Controller != nil {
		return nested.Controller.Config()
	}

	var flat Params
	if err := yaml.Unmarshal(data, &flat); err != nil {
		return Config{}, errors.Wrap(err, "parsing config")
	}
	return flat.Config()
}
