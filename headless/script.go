package headless

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/automoto/tilebound/kinematics"
)

var ErrInvalidScript = errors.New("headless: invalid script")

// Segment holds one intent for a number of steps. A jump fires only on the
// segment's first step; "jump:1,none:5,jump:1" presses it twice.
type Segment struct {
	Intent kinematics.Intent
	Steps  int
}

// Script is a sequence of intent segments played back one step at a time.
type Script []Segment

// ParseScript reads the comma separated form "right:30,right+jump:1,none:60".
// Actions are left, right, jump and none; a missing count means one step.
func ParseScript(s string) (Script, error) {
	var script Script
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		actions, count, hasCount := strings.Cut(part, ":")
		steps := 1
		if hasCount {
			n, err := strconv.Atoi(strings.TrimSpace(count))
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("%w: step count %q in %q", ErrInvalidScript, count, part)
			}
			steps = n
		}

		var in kinematics.Intent
		for _, a := range strings.Split(actions, "+") {
			switch strings.ToLower(strings.TrimSpace(a)) {
			case "left":
				in.MoveLeft = true
			case "right":
				in.MoveRight = true
			case "jump":
				in.Jump = true
			case "none":
			default:
				return nil, fmt.Errorf("%w: unknown action %q in %q", ErrInvalidScript, a, part)
			}
		}
		script = append(script, Segment{Intent: in, Steps: steps})
	}
	if len(script) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidScript)
	}
	return script, nil
}

// Len is the total number of steps in the script.
func (s Script) Len() int {
	n := 0
	for _, seg := range s {
		n += seg.Steps
	}
	return n
}

// At returns the intent for step i, counting from zero. ok is false past
// the end of the script.
func (s Script) At(i int) (in kinematics.Intent, ok bool) {
	if i < 0 {
		return kinematics.Intent{}, false
	}
	for _, seg := range s {
		if i < seg.Steps {
			in = seg.Intent
			in.Jump = in.Jump && i == 0
			return in, true
		}
		i -= seg.Steps
	}
	return kinematics.Intent{}, false
}
