package ops

type CommandType string

const (
	CommandCreateTask      CommandType = "create_task"
	CommandUpdateTask      CommandType = "update_task"
	CommandReplan          CommandType = "replan"
	CommandStartSimulation CommandType = "start_simulation"
)

// CommandSource tags every envelope built on behalf of an operator.
const CommandSource = "gui"

// Command is the canonical envelope union relayed to the backend. Each
// variant serializes to the documented wire shape and is consumed exactly
// once by the mediator.
type Command interface {
	Kind() CommandType
}

// Envelope carries the fields shared by every command variant. Timestamp is
// an ISO-8601 string fixed at construction time.
type Envelope struct {
	Type      CommandType `json:"type"`
	Timestamp string      `json:"timestamp"`
	Source    string      `json:"source"`
}

func (e Envelope) Kind() CommandType { return e.Type }

// CreateTask submits free-text instruction for a new task. Template is null
// on the wire when no template was chosen.
type CreateTask struct {
	Envelope
	Instruction string  `json:"instruction"`
	Template    *string `json:"template"`
}

// UpdateTask applies one of the backend-advertised command options to an
// existing task.
type UpdateTask struct {
	Envelope
	TaskID string `json:"task_id"`
	Option string `json:"command"`
}

// Replan asks the backend to recompute coalition schedules. No payload
// beyond the envelope.
type Replan struct {
	Envelope
}

// StartSimulation asks the backend to begin advancing simulation time. No
// payload beyond the envelope.
type StartSimulation struct {
	Envelope
}
