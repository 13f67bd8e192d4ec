package ops

// AgentStatus is the backend-reported activity state of a single agent.
type AgentStatus string

const (
	AgentIdle     AgentStatus = "idle"
	AgentWorking  AgentStatus = "working"
	AgentCharging AgentStatus = "charging"
	AgentUnknown  AgentStatus = "unknown"
)

type Faction string

const (
	FactionFriendly Faction = "friendly"
	FactionHostile  Faction = "hostile"
)

type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskExecuting TaskStatus = "executing"
	TaskCompleted TaskStatus = "completed"
	TaskFailed    TaskStatus = "failed"
	TaskCancelled TaskStatus = "cancelled"
)

type TaskType string

const (
	TypePatrol       TaskType = "patrol"
	TypeSurveillance TaskType = "surveillance"
	TypeSearch       TaskType = "search"
	TypeRescue       TaskType = "rescue"
	TypeTransport    TaskType = "transport"
	TypeOther        TaskType = "other"
)

// UnassignedCoalition is the sentinel coalition id for tasks nobody owns.
const UnassignedCoalition = -1

// Interval is one scheduled span on a coalition's timeline. Intervals within
// a schedule are non-overlapping and sorted by start.
type Interval struct {
	Start     float64 `json:"start"`
	End       float64 `json:"end"`
	TaskLabel string  `json:"task"`
	Color     string  `json:"color,omitempty"`
}

// Coalition is a group of agents jointly executing a task with a shared
// schedule. Values are snapshots: every fetch produces a fresh one.
type Coalition struct {
	ID             int        `json:"id"`
	CurrentTask    string     `json:"current_task"`
	Members        []int      `json:"members"`
	Schedule       []Interval `json:"schedule"`
	ReplanSchedule []Interval `json:"replan_schedule,omitempty"`
}

// Agent is a single unit. CoalitionID is nil for unaffiliated units, which
// is the norm for hostile ones.
type Agent struct {
	ID          int         `json:"id"`
	TypeLabel   string      `json:"type"`
	CoalitionID *int        `json:"coalition_id,omitempty"`
	Status      AgentStatus `json:"status"`
	Faction     Faction     `json:"faction"`
	X           float64     `json:"x"`
	Y           float64     `json:"y"`
}

// Task is one mission entry. CoalitionID uses the -1 sentinel for
// unassigned tasks; the LTL formula is opaque text at this layer.
type Task struct {
	ID          int        `json:"id"`
	Type        TaskType   `json:"type"`
	Area        string     `json:"area"`
	CoalitionID int        `json:"coalition_id"`
	Status      TaskStatus `json:"status"`
	StartTime   float64    `json:"start_time"`
	Duration    float64    `json:"duration"`
	LTL         string     `json:"ltl"`
}
