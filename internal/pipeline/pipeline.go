// Package pipeline applies declarative transform scripts to camera paths.
//
// A pipeline is a YAML document listing transform steps that run in order:
//
//	version: "1.0"
//	steps:
//	  - op: fov_add
//	    value: 5
//	  - op: mirror
//	    axis: x
//	    bounded: true
//	  - op: smooth
//	    window: 5
package pipeline

import (
	"fmt"

	"github.com/ivlev/campath/internal/camera"
	"github.com/ivlev/campath/internal/transform"
)

// Pipeline is a complete transform script.
type Pipeline struct {
	Version string `yaml:"version"`
	Steps   []Step `yaml:"steps"`
}

// Step is one transform invocation. Op selects the transform; the remaining
// fields carry that transform's parameters and are ignored by the others.
type Step struct {
	Op string `yaml:"op"`

	// fov_add, fov_multiply, fov_set, speed, time_offset
	Value float64 `yaml:"value,omitempty"`

	// position_offset, position_scale
	X float64 `yaml:"x,omitempty"`
	Y float64 `yaml:"y,omitempty"`
	Z float64 `yaml:"z,omitempty"`

	// rotation_offset
	Pitch      int  `yaml:"pitch,omitempty"`
	Yaw        int  `yaml:"yaw,omitempty"`
	Roll       int  `yaml:"roll,omitempty"`
	UseDegrees bool `yaml:"use_degrees,omitempty"`

	// mirror
	Axis      string `yaml:"axis,omitempty"`
	FlipPitch bool   `yaml:"flip_pitch,omitempty"`
	FlipYaw   bool   `yaml:"flip_yaw,omitempty"`
	FlipRoll  bool   `yaml:"flip_roll,omitempty"`
	Bounded   bool   `yaml:"bounded,omitempty"`

	// smooth
	Window int `yaml:"window,omitempty"`
}

// Apply dispatches one step to its transform. Unknown op names fail with
// camera.ErrInvalidParameter; parameter errors come from the transforms
// themselves.
func Apply(p camera.Path, step Step) (camera.Path, error) {
	switch step.Op {
	case "fov_add":
		return transform.FOVAdd(p, step.Value), nil
	case "fov_multiply":
		return transform.FOVMultiply(p, step.Value), nil
	case "fov_set":
		return transform.FOVSet(p, step.Value), nil
	case "position_offset":
		return transform.PositionOffset(p, step.X, step.Y, step.Z), nil
	case "position_scale":
		return transform.PositionScale(p, step.X, step.Y, step.Z), nil
	case "rotation_offset":
		return transform.RotationOffset(p, step.Pitch, step.Yaw, step.Roll, step.UseDegrees), nil
	case "mirror":
		return transform.Mirror(p, step.Axis, step.FlipPitch, step.FlipYaw, step.FlipRoll, step.Bounded)
	case "smooth":
		return transform.Smooth(p, step.Window)
	case "speed":
		return transform.Speed(p, step.Value)
	case "time_offset":
		return transform.TimeOffset(p, step.Value), nil
	case "reverse":
		return transform.Reverse(p), nil
	default:
		return nil, fmt.Errorf("%w: unknown op: %s", camera.ErrInvalidParameter, step.Op)
	}
}

// Run applies every step in order, failing fast on the first error.
func (pl *Pipeline) Run(p camera.Path) (camera.Path, error) {
	out := p
	for i, step := range pl.Steps {
		var err error
		out, err = Apply(out, step)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i+1, step.Op, err)
		}
	}
	return out, nil
}
