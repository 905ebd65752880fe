package rosnode

import (
	"math"
	"strings"

	"github.com/edwinhayes/avoider/avoid"
	"github.com/pkg/errors"
)

// ParamServer is the part of ros.Node used to read parameters.
type ParamServer interface {
	GetParam(name string) (interface{}, error)
	HasParam(name string) (bool, error)
}

// LoadParams reads the controller parameters under ns, e.g. "/controller".
func LoadParams(server ParamServer, ns string) (avoid.Config, error) {
	ns = strings.TrimSuffix(ns, "/")
	var p avoid.Params
	floats := []struct {
		key string
		dst **float64
	}{
		{"linear_speed", &p.LinearSpeed},
		{"angular_speed", &p.AngularSpeed},
		{"goal_angle", &p.GoalAngle},
		{"stop_distance", &p.StopDistance},
		{"epsilon", &p.Epsilon},
		{"settle_time", &p.SettleTime},
		{"rate", &p.Rate},
		{"pose_timeout", &p.PoseTimeout},
	}
	for _, f := range floats {
		v, ok, err := lookup(server, ns+"/"+f.key)
		if err != nil {
			return avoid.Config{}, err
		}
		if !ok {
			continue
		}
		x, err := toFloat(v)
		if err != nil {
			return avoid.Config{}, errors.Wrapf(err, "parameter %s/%s", ns, f.key)
		}
		*f.dst = &x
	}

	v, ok, err := lookup(server, ns+"/scan_index")
	if err != nil {
		return avoid.Config{}, err
	}
	if ok {
		x, err := toFloat(v)
		if err != nil || x != math.Trunc(x) {
			return avoid.Config{}, errors.Errorf("parameter %s/scan_index must be an integer, got %v", ns, v)
		}
		i := int(x)
		p.ScanIndex = &i
	}

	return p.Config()
}

func lookup(server ParamServer, name string) (interface{}, bool, error) {
	has, err := server.HasParam(name)
	if err != nil {
		return nil, false, errors.Wrapf(err, "hasParam %s", name)
	}
	if !has {
		return nil, false, nil
	}
	v, err := server.GetParam(name)
	if err != nil {
		return nil, false, errors.Wrapf(err, "getParam %s", name)
	}
	return v, true, nil
}

// toFloat accepts the numeric types the XMLRPC decoder produces.
func toFloat(v interface{}) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case int:
		return float64(x), nil
	default:
		return 0, errors.Errorf("expected a number, got %T", v)
	}
}
