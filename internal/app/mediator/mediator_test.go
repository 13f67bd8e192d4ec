package mediator

import (
	"context"
	"errors"
	"testing"

	"swarmdeck/internal/adapter/backend/mock"
	"swarmdeck/internal/app/command"
	"swarmdeck/internal/app/ports"
	"swarmdeck/internal/domain/ops"
)

func TestFetchAgentView_ComposesFetchAndTransform(t *testing.T) {
	b := &mock.Backend{
		AgentData: ports.AgentData{
			Coalitions: []ops.Coalition{
				{ID: 0, CurrentTask: "patrol", Members: []int{1, 2}},
			},
			CurrentTime: 4,
		},
	}
	m := New(b, b)

	v, err := m.FetchAgentView(context.Background())
	if err != nil {
		t.Fatalf("fetch agent view: %v", err)
	}
	if v.CurrentTime != 4 {
		t.Fatalf("expected current time 4, got %v", v.CurrentTime)
	}
	if len(v.CoalitionRows) != 1 || v.CoalitionRows[0][1] != "patrol" {
		t.Fatalf("unexpected coalition rows: %v", v.CoalitionRows)
	}
}

func TestFetchViews_PropagateBackendErrors(t *testing.T) {
	wantErr := errors.New("backend down")
	b := &mock.Backend{FetchErr: wantErr}
	m := New(b, b)
	ctx := context.Background()

	if _, err := m.FetchAgentView(ctx); !errors.Is(err, wantErr) {
		t.Fatalf("expected backend error, got %v", err)
	}
	if _, err := m.FetchTaskView(ctx); !errors.Is(err, wantErr) {
		t.Fatalf("expected backend error, got %v", err)
	}
	if _, err := m.FetchSceneView(ctx, nil); !errors.Is(err, wantErr) {
		t.Fatalf("expected backend error, got %v", err)
	}
}

func TestFetchSceneView_PassesTimestampThrough(t *testing.T) {
	b := &mock.Backend{
		SceneData: ports.SceneData{Time: 1},
	}
	m := New(b, b)

	at := 42.5
	snap, err := m.FetchSceneView(context.Background(), &at)
	if err != nil {
		t.Fatalf("fetch scene view: %v", err)
	}
	if snap.Time != 42.5 {
		t.Fatalf("expected snapshot at requested time, got %v", snap.Time)
	}
}

func TestSubmit_RelaysCommandToSink(t *testing.T) {
	b := &mock.Backend{Accept: true}
	m := New(b, b)

	cmd, err := command.Builder{}.CreateTask("patrol area A1", nil)
	if err != nil {
		t.Fatalf("build command: %v", err)
	}
	if !m.Submit(context.Background(), cmd) {
		t.Fatalf("expected submit to be accepted")
	}

	sent := b.Sent()
	if len(sent) != 1 {
		t.Fatalf("expected 1 sent command, got %d", len(sent))
	}
	if sent[0].Kind() != ops.CommandCreateTask {
		t.Fatalf("unexpected command kind %q", sent[0].Kind())
	}
}

func TestPassthroughs(t *testing.T) {
	b := &mock.Backend{
		Templates: []string{"standard patrol"},
		TaskIDs:   []string{"1", "2"},
		Options:   []string{"pause task"},
		Running:   true,
	}
	m := New(b, b)
	ctx := context.Background()

	if got, _ := m.ListTemplates(ctx); len(got) != 1 || got[0] != "standard patrol" {
		t.Fatalf("unexpected templates: %v", got)
	}
	if got, _ := m.ListTaskIDs(ctx); len(got) != 2 {
		t.Fatalf("unexpected task ids: %v", got)
	}
	if got, _ := m.ListCommandOptions(ctx); len(got) != 1 {
		t.Fatalf("unexpected options: %v", got)
	}
	if !m.IsSimulationRunning(ctx) {
		t.Fatalf("expected running simulation")
	}
	// BaseDataSource defaults: template content echoes the name.
	if got, err := m.TemplateContent(ctx, "standard patrol"); err != nil || got != "standard patrol" {
		t.Fatalf("unexpected template content %q, err %v", got, err)
	}
	if m.StepSimulation(ctx) {
		t.Fatalf("default step capability must report false")
	}
	if m.CurrentTime(ctx) != 0 {
		t.Fatalf("default current time must be 0")
	}
}
