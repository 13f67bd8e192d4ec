// Package scheduler drives the periodic refresh cycle against the mediator:
// a data tick re-fetching all three view kinds, a simulation tick stepping
// the backend while it reports running, and a one-shot off-cycle refresh
// after every accepted command. Fetches run off the caller's goroutine and
// results are pushed to a Sink; at most one fetch per view kind is in
// flight at a time, and ticks that would overlap a stale in-flight fetch
// are suppressed. A hanging backend call stalls only that kind's refresh.
package scheduler

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"swarmdeck/internal/app/agentview"
	"swarmdeck/internal/app/ports"
	"swarmdeck/internal/app/taskview"
	"swarmdeck/internal/domain/ops"
	"swarmdeck/internal/domain/scene"
)

const (
	DefaultDataInterval = time.Second
	DefaultStepInterval = 100 * time.Millisecond
)

// View kind names, also used as metric labels.
const (
	KindAgent = "agent"
	KindTask  = "task"
	KindScene = "scene"
)

// ViewFetcher is the slice of the mediator the scheduler drives.
// *mediator.Mediator satisfies it.
type ViewFetcher interface {
	FetchAgentView(ctx context.Context) (agentview.View, error)
	FetchTaskView(ctx context.Context) (taskview.View, error)
	FetchSceneView(ctx context.Context, at *float64) (scene.Snapshot, error)
	IsSimulationRunning(ctx context.Context) bool
	StepSimulation(ctx context.Context) bool
	Submit(ctx context.Context, cmd ops.Command) bool
}

// Sink receives refreshed views. Each view kind is applied independently;
// the presentation side is expected to treat delivery as last-write-wins.
type Sink interface {
	ApplyAgentView(agentview.View)
	ApplyTaskView(taskview.View)
	ApplySceneView(scene.Snapshot)
}

type Config struct {
	DataInterval time.Duration
	StepInterval time.Duration
}

type Scheduler struct {
	med     ViewFetcher
	sink    Sink
	cfg     Config
	metrics ports.RefreshMetrics

	agentBusy atomic.Bool
	taskBusy  atomic.Bool
	sceneBusy atomic.Bool
	stepBusy  atomic.Bool

	// refreshCh coalesces command-triggered refresh requests: an accepted
	// command enqueues at most one pending off-cycle refresh.
	refreshCh chan struct{}
}

// New builds a scheduler. metrics may be nil.
func New(med ViewFetcher, sink Sink, cfg Config, metrics ports.RefreshMetrics) *Scheduler {
	if cfg.DataInterval <= 0 {
		cfg.DataInterval = DefaultDataInterval
	}
	if cfg.StepInterval <= 0 {
		cfg.StepInterval = DefaultStepInterval
	}
	return &Scheduler{
		med:       med,
		sink:      sink,
		cfg:       cfg,
		metrics:   metrics,
		refreshCh: make(chan struct{}, 1),
	}
}

// Run drives the timers until ctx is cancelled. In-flight fetches are not
// cancelled; they complete and are superseded by the next tick's result.
func (s *Scheduler) Run(ctx context.Context) {
	dataTick := time.NewTicker(s.cfg.DataInterval)
	defer dataTick.Stop()
	stepTick := time.NewTicker(s.cfg.StepInterval)
	defer stepTick.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-dataTick.C:
			s.TickData(ctx)
		case <-s.refreshCh:
			s.TickData(ctx)
		case <-stepTick.C:
			s.TickStep(ctx)
		}
	}
}

// TickData starts one refresh of every view kind. Kinds with a fetch still
// in flight are skipped.
func (s *Scheduler) TickData(ctx context.Context) {
	s.refreshAgent(ctx)
	s.refreshTask(ctx)
	s.refreshScene(ctx)
}

// TickStep advances the simulation one step and refreshes the scene at the
// new time. It is a no-op while the backend reports the simulation stopped
// or a previous step is still in flight.
func (s *Scheduler) TickStep(ctx context.Context) {
	if !s.med.IsSimulationRunning(ctx) {
		return
	}
	if !s.stepBusy.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer s.stepBusy.Store(false)
		if !s.med.StepSimulation(ctx) {
			return
		}
		s.refreshScene(ctx)
	}()
}

// Submit relays the command through the mediator. On acceptance it enqueues
// exactly one off-cycle full refresh, delivered before the next scheduled
// tick; the refresh never precedes the backend acknowledging the command.
func (s *Scheduler) Submit(ctx context.Context, cmd ops.Command) bool {
	ok := s.med.Submit(ctx, cmd)
	if s.metrics != nil {
		s.metrics.RecordCommand(ok)
	}
	if ok {
		select {
		case s.refreshCh <- struct{}{}:
		default:
		}
	}
	return ok
}

func (s *Scheduler) refreshAgent(ctx context.Context) {
	if !s.agentBusy.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer s.agentBusy.Store(false)
		v, err := s.med.FetchAgentView(ctx)
		s.record(KindAgent, err)
		if err != nil {
			return
		}
		s.sink.ApplyAgentView(v)
	}()
}

func (s *Scheduler) refreshTask(ctx context.Context) {
	if !s.taskBusy.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer s.taskBusy.Store(false)
		v, err := s.med.FetchTaskView(ctx)
		s.record(KindTask, err)
		if err != nil {
			return
		}
		s.sink.ApplyTaskView(v)
	}()
}

func (s *Scheduler) refreshScene(ctx context.Context) {
	if !s.sceneBusy.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer s.sceneBusy.Store(false)
		v, err := s.med.FetchSceneView(ctx, nil)
		s.record(KindScene, err)
		if err != nil {
			return
		}
		s.sink.ApplySceneView(v)
	}()
}

// record notes the outcome; a failed fetch leaves the previous view in
// place, so failure is a diagnostic rather than an error path.
func (s *Scheduler) record(kind string, err error) {
	if s.metrics != nil {
		s.metrics.RecordRefresh(kind, err == nil)
	}
	if err != nil {
		log.Printf("scheduler: %s refresh skipped: %v", kind, err)
	}
}
