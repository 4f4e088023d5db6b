package transform

import (
	"fmt"

	"github.com/ivlev/campath/internal/camera"
)

// Mirror reflects the path on one world axis and optionally flips rotation
// components.
//
// With bounded set, each coordinate is reflected about the midpoint of that
// coordinate's observed range across the whole path (an empty path uses the
// (0, 0) range). Without it, the coordinate is negated. The flip flags negate
// pitch/yaw/roll independently of the axis choice.
//
// An axis outside {x, y, z} fails with camera.ErrInvalidParameter, also for
// an empty path.
func Mirror(p camera.Path, axis string, flipPitch, flipYaw, flipRoll, bounded bool) (camera.Path, error) {
	switch axis {
	case "x", "y", "z":
	default:
		return nil, fmt.Errorf("%w: invalid axis: %s", camera.ErrInvalidParameter, axis)
	}

	var center float64
	if bounded {
		minC, maxC := axisBounds(p, axis)
		center = (minC + maxC) / 2
	}

	out := p.Clone()
	for id, kf := range out {
		c := axisCoord(kf.Position, axis)
		if bounded {
			c = 2*center - c
		} else {
			c = -c
		}
		setAxisCoord(&kf.Position, axis, c)

		if flipPitch {
			kf.Rotation.Pitch = -kf.Rotation.Pitch
		}
		if flipYaw {
			kf.Rotation.Yaw = -kf.Rotation.Yaw
		}
		if flipRoll {
			kf.Rotation.Roll = -kf.Rotation.Roll
		}

		out[id] = kf
	}

	return out, nil
}

// axisBounds scans the path once for the min and max of one position
// coordinate. Empty paths report (0, 0).
func axisBounds(p camera.Path, axis string) (minC, maxC float64) {
	first := true
	for _, kf := range p {
		c := axisCoord(kf.Position, axis)
		if first {
			minC, maxC = c, c
			first = false
			continue
		}
		if c < minC {
			minC = c
		}
		if c > maxC {
			maxC = c
		}
	}
	return minC, maxC
}

func axisCoord(pos camera.Position, axis string) float64 {
	switch axis {
	case "x":
		return pos.X
	case "y":
		return pos.Y
	default:
		return pos.Z
	}
}

func setAxisCoord(pos *camera.Position, axis string, v float64) {
	switch axis {
	case "x":
		pos.X = v
	case "y":
		pos.Y = v
	default:
		pos.Z = v
	}
}
