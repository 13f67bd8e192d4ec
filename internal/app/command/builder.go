// Package command converts operator intent into canonical command envelopes
// and offers an advisory keyword classifier over free-text instructions.
package command

import (
	"errors"
	"strings"
	"time"

	"swarmdeck/internal/domain/ops"
)

var (
	ErrEmptyInstruction = errors.New("instruction text is required")
	ErrMissingTaskID    = errors.New("task id is required")
	ErrMissingOption    = errors.New("command option is required")
)

// Builder stamps envelopes with timestamps. The zero value uses the wall
// clock; tests inject Now.
type Builder struct {
	Now func() time.Time
}

func (b Builder) timestamp() string {
	now := time.Now
	if b.Now != nil {
		now = b.Now
	}
	return now().Format(time.RFC3339)
}

func (b Builder) envelope(t ops.CommandType) ops.Envelope {
	return ops.Envelope{Type: t, Timestamp: b.timestamp(), Source: ops.CommandSource}
}

// CreateTask builds a create_task envelope. The instruction is trimmed and
// must be non-empty; template stays nil when no template was chosen.
func (b Builder) CreateTask(instruction string, template *string) (ops.CreateTask, error) {
	instruction = strings.TrimSpace(instruction)
	if instruction == "" {
		return ops.CreateTask{}, ErrEmptyInstruction
	}
	return ops.CreateTask{
		Envelope:    b.envelope(ops.CommandCreateTask),
		Instruction: instruction,
		Template:    template,
	}, nil
}

// UpdateTask builds an update_task envelope carrying one of the
// backend-advertised command options.
func (b Builder) UpdateTask(taskID, option string) (ops.UpdateTask, error) {
	taskID = strings.TrimSpace(taskID)
	option = strings.TrimSpace(option)
	if taskID == "" {
		return ops.UpdateTask{}, ErrMissingTaskID
	}
	if option == "" {
		return ops.UpdateTask{}, ErrMissingOption
	}
	return ops.UpdateTask{
		Envelope: b.envelope(ops.CommandUpdateTask),
		TaskID:   taskID,
		Option:   option,
	}, nil
}

// Replan builds a replan envelope; no payload beyond the envelope.
func (b Builder) Replan() ops.Replan {
	return ops.Replan{Envelope: b.envelope(ops.CommandReplan)}
}

// StartSimulation builds a start_simulation envelope; no payload beyond the
// envelope.
func (b Builder) StartSimulation() ops.StartSimulation {
	return ops.StartSimulation{Envelope: b.envelope(ops.CommandStartSimulation)}
}
