package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"swarmdeck/internal/app/agentview"
	"swarmdeck/internal/app/command"
	"swarmdeck/internal/app/taskview"
	"swarmdeck/internal/domain/ops"
	"swarmdeck/internal/domain/scene"
)

// fakeFetcher counts fetches and can hold them open on a gate channel.
type fakeFetcher struct {
	mu         sync.Mutex
	agentCalls int
	taskCalls  int
	sceneCalls int
	stepCalls  int

	running  bool
	submitOK bool
	fetchErr error

	// gate, when non-nil, blocks every view fetch until closed. started is
	// signalled once per fetch entry.
	gate    chan struct{}
	started chan string
}

func (f *fakeFetcher) enter(kind string) {
	f.mu.Lock()
	switch kind {
	case KindAgent:
		f.agentCalls++
	case KindTask:
		f.taskCalls++
	case KindScene:
		f.sceneCalls++
	}
	gate := f.gate
	f.mu.Unlock()
	if f.started != nil {
		f.started <- kind
	}
	if gate != nil {
		<-gate
	}
}

func (f *fakeFetcher) calls() (int, int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.agentCalls, f.taskCalls, f.sceneCalls
}

func (f *fakeFetcher) FetchAgentView(context.Context) (agentview.View, error) {
	f.enter(KindAgent)
	return agentview.View{}, f.fetchErr
}

func (f *fakeFetcher) FetchTaskView(context.Context) (taskview.View, error) {
	f.enter(KindTask)
	return taskview.View{}, f.fetchErr
}

func (f *fakeFetcher) FetchSceneView(context.Context, *float64) (scene.Snapshot, error) {
	f.enter(KindScene)
	return scene.Snapshot{}, f.fetchErr
}

func (f *fakeFetcher) IsSimulationRunning(context.Context) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.running
}

func (f *fakeFetcher) StepSimulation(context.Context) bool {
	f.mu.Lock()
	f.stepCalls++
	running := f.running
	f.mu.Unlock()
	return running
}

func (f *fakeFetcher) Submit(context.Context, ops.Command) bool { return f.submitOK }

// chanSink reports every applied view kind on a channel.
type chanSink struct {
	applied chan string
}

func newChanSink() *chanSink {
	return &chanSink{applied: make(chan string, 32)}
}

func (s *chanSink) ApplyAgentView(agentview.View) { s.applied <- KindAgent }
func (s *chanSink) ApplyTaskView(taskview.View)   { s.applied <- KindTask }
func (s *chanSink) ApplySceneView(scene.Snapshot) { s.applied <- KindScene }

func waitForKinds(t *testing.T, applied <-chan string, want map[string]int) {
	t.Helper()
	got := map[string]int{}
	deadline := time.After(2 * time.Second)
	for {
		done := true
		for k, n := range want {
			if got[k] < n {
				done = false
			}
		}
		if done {
			return
		}
		select {
		case k := <-applied:
			got[k]++
		case <-deadline:
			t.Fatalf("timed out waiting for applies, got %v want %v", got, want)
		}
	}
}

func testCommand(t *testing.T) ops.Command {
	t.Helper()
	cmd, err := command.Builder{}.CreateTask("patrol area A1", nil)
	if err != nil {
		t.Fatalf("build command: %v", err)
	}
	return cmd
}

func TestSubmit_AcceptedTriggersOffCycleRefresh(t *testing.T) {
	f := &fakeFetcher{submitOK: true}
	sink := newChanSink()
	// Intervals far beyond the test horizon: any refresh must come from the
	// submit, not a timer.
	s := New(f, sink, Config{DataInterval: time.Hour, StepInterval: time.Hour}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	if !s.Submit(ctx, testCommand(t)) {
		t.Fatalf("expected submit to be accepted")
	}

	waitForKinds(t, sink.applied, map[string]int{KindAgent: 1, KindTask: 1, KindScene: 1})
}

func TestSubmit_RejectedDoesNotRefresh(t *testing.T) {
	f := &fakeFetcher{submitOK: false}
	sink := newChanSink()
	s := New(f, sink, Config{DataInterval: time.Hour, StepInterval: time.Hour}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	if s.Submit(ctx, testCommand(t)) {
		t.Fatalf("expected submit to be rejected")
	}

	select {
	case k := <-sink.applied:
		t.Fatalf("unexpected refresh of %q after rejected command", k)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestTickData_SuppressesOverlappingFetches(t *testing.T) {
	f := &fakeFetcher{
		gate:    make(chan struct{}),
		started: make(chan string, 16),
	}
	sink := newChanSink()
	s := New(f, sink, Config{DataInterval: time.Hour, StepInterval: time.Hour}, nil)
	ctx := context.Background()

	s.TickData(ctx)
	for i := 0; i < 3; i++ {
		<-f.started
	}

	// Every kind is still in flight: this tick must be a no-op.
	s.TickData(ctx)
	a, tk, sc := f.calls()
	if a != 1 || tk != 1 || sc != 1 {
		t.Fatalf("expected suppressed second tick, got calls %d/%d/%d", a, tk, sc)
	}

	close(f.gate)
	waitForKinds(t, sink.applied, map[string]int{KindAgent: 1, KindTask: 1, KindScene: 1})

	// After completion the next tick fetches again.
	f.mu.Lock()
	f.gate = nil
	f.mu.Unlock()
	s.TickData(ctx)
	for i := 0; i < 3; i++ {
		<-f.started
	}
	a, tk, sc = f.calls()
	if a != 2 || tk != 2 || sc != 2 {
		t.Fatalf("expected fresh fetches after release, got calls %d/%d/%d", a, tk, sc)
	}
}

func TestTickData_FailedFetchIsNotApplied(t *testing.T) {
	f := &fakeFetcher{fetchErr: errors.New("backend down"), started: make(chan string, 16)}
	sink := newChanSink()
	s := New(f, sink, Config{DataInterval: time.Hour, StepInterval: time.Hour}, nil)

	s.TickData(context.Background())
	for i := 0; i < 3; i++ {
		<-f.started
	}

	select {
	case k := <-sink.applied:
		t.Fatalf("failed fetch of %q must not reach the sink", k)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestTickStep_OnlyStepsWhileRunning(t *testing.T) {
	f := &fakeFetcher{}
	sink := newChanSink()
	s := New(f, sink, Config{DataInterval: time.Hour, StepInterval: time.Hour}, nil)
	ctx := context.Background()

	s.TickStep(ctx)
	f.mu.Lock()
	steps := f.stepCalls
	f.mu.Unlock()
	if steps != 0 {
		t.Fatalf("expected no step while stopped, got %d", steps)
	}

	f.mu.Lock()
	f.running = true
	f.mu.Unlock()

	s.TickStep(ctx)
	waitForKinds(t, sink.applied, map[string]int{KindScene: 1})

	f.mu.Lock()
	steps = f.stepCalls
	f.mu.Unlock()
	if steps != 1 {
		t.Fatalf("expected 1 step, got %d", steps)
	}
}

func TestNew_AppliesDefaultIntervals(t *testing.T) {
	s := New(&fakeFetcher{}, newChanSink(), Config{}, nil)
	if s.cfg.DataInterval != DefaultDataInterval {
		t.Fatalf("expected default data interval, got %v", s.cfg.DataInterval)
	}
	if s.cfg.StepInterval != DefaultStepInterval {
		t.Fatalf("expected default step interval, got %v", s.cfg.StepInterval)
	}
}
