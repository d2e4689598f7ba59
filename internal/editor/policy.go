package editor

import (
	"errors"
	"fmt"

	"github.com/Faultbox/roadsmith/pkg/road"
)

var ErrUnknownPolicy = errors.New("unknown smoothing policy")

// ParsePolicy maps a configured policy name to a smoothing policy. An empty
// name selects road.AlwaysSmooth.
func ParsePolicy(name string) (road.SmoothPolicy, error) {
	switch name {
	case "", "always":
		return road.AlwaysSmooth, nil
	case "frame_mismatch":
		return road.FrameMismatch, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}
