// Package mock is a fixture backend for tests: fixed fetch payloads, a
// recorded command log and switchable accept/running flags.
package mock

import (
	"context"
	"sync"

	"swarmdeck/internal/app/ports"
	"swarmdeck/internal/domain/ops"
)

type Backend struct {
	ports.BaseDataSource

	AgentData ports.AgentData
	TaskData  ports.TaskData
	SceneData ports.SceneData
	FetchErr  error

	Templates []string
	TaskIDs   []string
	Options   []string

	Running bool
	Accept  bool

	mu   sync.Mutex
	sent []ops.Command
}

func (b *Backend) FetchAgentData(context.Context) (ports.AgentData, error) {
	return b.AgentData, b.FetchErr
}

func (b *Backend) FetchTaskData(context.Context) (ports.TaskData, error) {
	return b.TaskData, b.FetchErr
}

func (b *Backend) FetchScene(_ context.Context, at *float64) (ports.SceneData, error) {
	s := b.SceneData
	if at != nil {
		s.Time = *at
	}
	return s, b.FetchErr
}

func (b *Backend) ListTaskTemplates(context.Context) ([]string, error) {
	return b.Templates, b.FetchErr
}

func (b *Backend) ListTaskIDs(context.Context) ([]string, error) {
	return b.TaskIDs, b.FetchErr
}

func (b *Backend) ListCommandOptions(context.Context) ([]string, error) {
	return b.Options, b.FetchErr
}

func (b *Backend) IsSimulationRunning(context.Context) bool { return b.Running }

func (b *Backend) SendCommand(_ context.Context, cmd ops.Command) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sent = append(b.sent, cmd)
	return b.Accept
}

// Sent returns the commands received so far.
func (b *Backend) Sent() []ops.Command {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]ops.Command, len(b.sent))
	copy(out, b.sent)
	return out
}
