package core

import (
	"fmt"
	"strconv"
	"strings"
)

// IllegalMoveError reports a logged action that could not be re-applied.
type IllegalMoveError struct {
	Step   int
	Action Action
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("step %d: cannot push ball %d %s", e.Step, e.Action.Ball, e.Action.Dir)
}

// Replay applies actions to a clone of initial with StepBall and returns the result.
func Replay(initial *State, actions []Action) (*State, error) {
	state := initial.Clone()
	for i, a := range actions {
		if !state.StepBall(a.Ball, a.Dir) {
			return nil, &IllegalMoveError{Step: i, Action: a}
		}
	}
	return state, nil
}

// Frames returns initial followed by the state after each action.
// Every frame is an independent clone.
func Frames(initial *State, actions []Action) ([]*State, error) {
	frames := make([]*State, 0, len(actions)+1)
	state := initial.Clone()
	frames = append(frames, state.Clone())
	for i, a := range actions {
		if !state.StepBall(a.Ball, a.Dir) {
			return nil, &IllegalMoveError{Step: i, Action: a}
		}
		frames = append(frames, state.Clone())
	}
	return frames, nil
}

// FormatActions renders actions one per line as "<ball>\t<dir>".
func FormatActions(actions []Action) string {
	var sb strings.Builder
	for _, a := range actions {
		sb.WriteString(a.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseActions reads the output of FormatActions back.
func ParseActions(s string) ([]Action, error) {
	actions := make([]Action, 0)
	for lineNo, line := range strings.Split(s, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: want \"<ball> <dir>\", got %q", lineNo+1, line)
		}
		ball, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo+1, err)
		}
		dir, err := ParseDir(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo+1, err)
		}
		actions = append(actions, Action{Ball: ball, Dir: dir})
	}
	return actions, nil
}
