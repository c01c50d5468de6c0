package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	TaskKindBoolean = "boolean"
	TaskKindCounted = "counted"
)

var ErrUnknownTaskShape = errors.New("unknown task state shape")

// TaskState is either a boolean task (Done) or a counted task
// (Current progress toward Target). Kind selects the variant.
type TaskState struct {
	Kind    string
	Done    bool
	Current int
	Target  int
}

func BooleanTask(done bool) TaskState {
	return TaskState{Kind: TaskKindBoolean, Done: done}
}

func CountedTask(current int, target int) TaskState {
	state := TaskState{Kind: TaskKindCounted, Target: target}
	return state.WithCurrent(current)
}

func (state TaskState) Complete() bool {
	if state.Kind == TaskKindCounted {
		return state.Current >= state.Target
	}
	return state.Done
}

// WithCurrent returns a copy with Current clamped to [0, Target].
func (state TaskState) WithCurrent(current int) TaskState {
	if current < 0 {
		current = 0
	}
	if current > state.Target {
		current = state.Target
	}
	state.Current = current
	return state
}

// Stored shape matches the legacy documents: booleans are stored as a
// bare JSON bool, counted tasks as a [current, target] pair.
func (state TaskState) MarshalJSON() ([]byte, error) {
	if state.Kind == TaskKindCounted {
		return json.Marshal([2]int{state.Current, state.Target})
	}
	return json.Marshal(state.Done)
}

func (state *TaskState) UnmarshalJSON(data []byte) error {
	var done bool
	if err := json.Unmarshal(data, &done); err == nil {
		*state = BooleanTask(done)
		return nil
	}

	var pair []int
	if err := json.Unmarshal(data, &pair); err == nil {
		if len(pair) != 2 {
			return fmt.Errorf("%w: expected [current, target], got %d values", ErrUnknownTaskShape, len(pair))
		}
		*state = TaskState{Kind: TaskKindCounted, Current: pair[0], Target: pair[1]}
		return nil
	}

	return ErrUnknownTaskShape
}
