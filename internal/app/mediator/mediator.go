// Package mediator exposes the single facade the presentation side talks
// to. Every fetch composes the matching DataSource call with the matching
// transform; the facade itself holds no state beyond the injected backend
// halves, so a different backend can be swapped in without touching
// consumers.
package mediator

import (
	"context"

	"swarmdeck/internal/app/agentview"
	"swarmdeck/internal/app/ports"
	"swarmdeck/internal/app/sceneview"
	"swarmdeck/internal/app/taskview"
	"swarmdeck/internal/domain/ops"
	"swarmdeck/internal/domain/scene"
)

type Mediator struct {
	source ports.DataSource
	sink   ports.CommandSink
}

// New wires one DataSource and one CommandSink, which are often the same
// object.
func New(source ports.DataSource, sink ports.CommandSink) *Mediator {
	return &Mediator{source: source, sink: sink}
}

func (m *Mediator) FetchAgentView(ctx context.Context) (agentview.View, error) {
	raw, err := m.source.FetchAgentData(ctx)
	if err != nil {
		return agentview.View{}, err
	}
	return agentview.Build(raw), nil
}

func (m *Mediator) FetchTaskView(ctx context.Context) (taskview.View, error) {
	raw, err := m.source.FetchTaskData(ctx)
	if err != nil {
		return taskview.View{}, err
	}
	return taskview.Build(raw), nil
}

// FetchSceneView returns the scene at the given timestamp, or the current
// one when at is nil.
func (m *Mediator) FetchSceneView(ctx context.Context, at *float64) (scene.Snapshot, error) {
	raw, err := m.source.FetchScene(ctx, at)
	if err != nil {
		return scene.Snapshot{}, err
	}
	return sceneview.Build(raw), nil
}

func (m *Mediator) ListTemplates(ctx context.Context) ([]string, error) {
	return m.source.ListTaskTemplates(ctx)
}

func (m *Mediator) ListTaskIDs(ctx context.Context) ([]string, error) {
	return m.source.ListTaskIDs(ctx)
}

func (m *Mediator) ListCommandOptions(ctx context.Context) ([]string, error) {
	return m.source.ListCommandOptions(ctx)
}

func (m *Mediator) TemplateContent(ctx context.Context, name string) (string, error) {
	return m.source.TemplateContent(ctx, name)
}

func (m *Mediator) IsSimulationRunning(ctx context.Context) bool {
	return m.source.IsSimulationRunning(ctx)
}

func (m *Mediator) StepSimulation(ctx context.Context) bool {
	return m.source.StepSimulation(ctx)
}

func (m *Mediator) CurrentTime(ctx context.Context) float64 {
	return m.source.CurrentTime(ctx)
}

// Submit relays one canonical command to the backend. The boolean result is
// the sole failure signal.
func (m *Mediator) Submit(ctx context.Context, cmd ops.Command) bool {
	return m.sink.SendCommand(ctx, cmd)
}
