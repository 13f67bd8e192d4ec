// Package ports defines the backend contract: the capability interfaces any
// concrete backend integration must satisfy, and the raw payload records
// those capabilities exchange. Validation of loose backend shapes happens
// here at the boundary, not inside the transform pipeline.
package ports

import (
	"context"
	"errors"

	"swarmdeck/internal/domain/ops"
	"swarmdeck/internal/domain/scene"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// AgentData is the raw agent-domain snapshot returned by a backend.
type AgentData struct {
	Coalitions  []ops.Coalition `json:"coalitions"`
	Agents      []ops.Agent     `json:"agents"`
	CurrentTime float64         `json:"current_time"`
}

// TaskData is the raw task-domain snapshot. LTLFormula is the combined
// formula when the backend provides one; otherwise empty and derived from
// the per-task formulas downstream.
type TaskData struct {
	Tasks       []ops.Task `json:"tasks"`
	LTLFormula  string     `json:"ltl_formula"`
	CurrentTime float64    `json:"current_time"`
}

// SceneData is the raw scene snapshot. Slices may be nil and coordinates
// arrive as loose pairs; sceneview normalizes all of it.
type SceneData struct {
	Agents       []SceneAgent      `json:"agents"`
	Targets      []SceneTarget     `json:"targets"`
	Regions      []SceneRegion     `json:"regions"`
	Trajectories []SceneTrajectory `json:"trajectories"`
	Time         float64           `json:"time"`
	Limits       *scene.Bounds     `json:"limits,omitempty"`
}

type SceneAgent struct {
	ID     int     `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Color  string  `json:"color,omitempty"`
	Symbol string  `json:"symbol,omitempty"`
}

// SceneTarget carries Active as a pointer so "field omitted" can default to
// true during normalization.
type SceneTarget struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Color  string  `json:"color,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

// SceneRegion is the undiscriminated wire form; Kind decides which of the
// remaining fields are meaningful.
type SceneRegion struct {
	Kind   string      `json:"type"`
	Color  string      `json:"color,omitempty"`
	Center []float64   `json:"center,omitempty"`
	Radius float64     `json:"radius,omitempty"`
	Points [][]float64 `json:"points,omitempty"`
}

type SceneTrajectory struct {
	Points [][]float64 `json:"points"`
	Color  string      `json:"color,omitempty"`
}

// DataSource is the pull half of the backend contract. Fetch methods must be
// safe to call repeatedly and concurrently with sends, must not mutate
// backend-visible state, and are expected to fail fast rather than block
// indefinitely.
//
// TemplateContent, IsSimulationRunning, StepSimulation and CurrentTime are
// optional capabilities; embed BaseDataSource to pick up their documented
// defaults.
type DataSource interface {
	FetchAgentData(ctx context.Context) (AgentData, error)
	FetchTaskData(ctx context.Context) (TaskData, error)
	// FetchScene returns the scene at the given timestamp, or the current
	// one when at is nil.
	FetchScene(ctx context.Context, at *float64) (SceneData, error)
	ListTaskTemplates(ctx context.Context) ([]string, error)
	ListTaskIDs(ctx context.Context) ([]string, error)
	ListCommandOptions(ctx context.Context) ([]string, error)
	TemplateContent(ctx context.Context, name string) (string, error)
	IsSimulationRunning(ctx context.Context) bool
	StepSimulation(ctx context.Context) bool
	CurrentTime(ctx context.Context) float64
}

// CommandSink is the push half of the backend contract. The boolean return
// is the sole failure signal at this boundary: true iff the backend accepted
// and will act on the command.
type CommandSink interface {
	SendCommand(ctx context.Context, cmd ops.Command) bool
}

// Backend is the common case of one object providing both halves.
type Backend interface {
	DataSource
	CommandSink
}

// BaseDataSource supplies the default behavior for the optional DataSource
// methods. Concrete backends embed it and override what they support.
type BaseDataSource struct{}

// TemplateContent defaults to echoing the template name.
func (BaseDataSource) TemplateContent(_ context.Context, name string) (string, error) {
	return name, nil
}

func (BaseDataSource) IsSimulationRunning(context.Context) bool { return false }

func (BaseDataSource) StepSimulation(context.Context) bool { return false }

func (BaseDataSource) CurrentTime(context.Context) float64 { return 0 }
