// Package sim is a self-contained simulated backend. It satisfies the full
// backend contract with seeded mission data and a stepwise movement model,
// which keeps the rest of the stack runnable without a live planning system.
package sim

import (
	"context"
	"log"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"sync"

	"swarmdeck/internal/app/ports"
	"swarmdeck/internal/domain/ops"
	"swarmdeck/internal/domain/scene"
)

// TemplateStore serves task template names and bodies.
type TemplateStore interface {
	List(ctx context.Context) ([]string, error)
	Content(ctx context.Context, name string) (string, error)
}

// CommandAudit records every command the backend decided on. Audit failures
// never fail the command itself.
type CommandAudit interface {
	Record(ctx context.Context, cmd ops.Command, accepted bool) error
}

type Config struct {
	// StepSize is the simulated-time advance per step. Zero means 0.1.
	StepSize float64
	// Seed fixes the wander randomness; zero picks an arbitrary seed.
	Seed int64
}

const defaultStepSize = 0.1

type target struct {
	X, Y   float64
	Active bool
}

type Backend struct {
	mu sync.Mutex

	now      float64
	running  bool
	stepSize float64
	rng      *rand.Rand

	coalitions []ops.Coalition
	agents     []ops.Agent
	tasks      []ops.Task
	targets    []target
	regions    []ports.SceneRegion
	nextTaskID int

	templates TemplateStore
	audit     CommandAudit
}

func New(cfg Config, templates TemplateStore, audit CommandAudit) *Backend {
	if cfg.StepSize <= 0 {
		cfg.StepSize = defaultStepSize
	}
	if cfg.Seed == 0 {
		cfg.Seed = 1
	}
	b := &Backend{
		stepSize:  cfg.StepSize,
		rng:       rand.New(rand.NewSource(cfg.Seed)),
		templates: templates,
		audit:     audit,
	}
	b.seed()
	return b
}

func (b *Backend) FetchAgentData(ctx context.Context) (ports.AgentData, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return ports.AgentData{
		Coalitions:  copyCoalitions(b.coalitions),
		Agents:      copyAgents(b.agents),
		CurrentTime: b.now,
	}, nil
}

func (b *Backend) FetchTaskData(ctx context.Context) (ports.TaskData, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	parts := make([]string, 0, len(b.tasks))
	for _, t := range b.tasks {
		parts = append(parts, "("+t.LTL+")")
	}
	return ports.TaskData{
		Tasks:       copyTasks(b.tasks),
		LTLFormula:  strings.Join(parts, " & "),
		CurrentTime: b.now,
	}, nil
}

var sceneColors = []string{
	"#FF5555", "#55FF55", "#5555FF", "#FFFF55", "#FF55FF",
	"#55FFFF", "#FF8855", "#5588FF", "#88FF55",
}

var sceneSymbols = []string{"o", "s", "t", "d", "t", "s", "o", "+", "d"}

// FetchScene renders the scene at the requested timestamp, or at the current
// simulated time. The timestamp only relabels the snapshot; backend state is
// untouched.
func (b *Backend) FetchScene(ctx context.Context, at *float64) (ports.SceneData, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	t := b.now
	if at != nil {
		t = *at
	}

	agents := make([]ports.SceneAgent, 0, len(b.agents))
	for i, a := range b.agents {
		agents = append(agents, ports.SceneAgent{
			ID:     a.ID,
			X:      a.X,
			Y:      a.Y,
			Color:  sceneColors[i%len(sceneColors)],
			Symbol: sceneSymbols[i%len(sceneSymbols)],
		})
	}

	targets := make([]ports.SceneTarget, 0, len(b.targets))
	for _, tg := range b.targets {
		active := tg.Active
		targets = append(targets, ports.SceneTarget{
			X: tg.X, Y: tg.Y, Color: "#223399", Active: &active,
		})
	}

	var trajectories []ports.SceneTrajectory
	for i, a := range b.agents {
		if i >= 3 {
			break
		}
		if a.Status != ops.AgentWorking || len(b.targets) == 0 {
			continue
		}
		tg := b.targets[i%len(b.targets)]
		trajectories = append(trajectories, ports.SceneTrajectory{
			Points: interpolate(a.X, a.Y, tg.X, tg.Y, 10),
			Color:  sceneColors[i%len(sceneColors)],
		})
	}

	regions := make([]ports.SceneRegion, len(b.regions))
	copy(regions, b.regions)

	limits := scene.DefaultBounds()
	return ports.SceneData{
		Agents:       agents,
		Targets:      targets,
		Regions:      regions,
		Trajectories: trajectories,
		Time:         t,
		Limits:       &limits,
	}, nil
}

func (b *Backend) ListTaskTemplates(ctx context.Context) ([]string, error) {
	return b.templates.List(ctx)
}

func (b *Backend) TemplateContent(ctx context.Context, name string) (string, error) {
	return b.templates.Content(ctx, name)
}

func (b *Backend) ListTaskIDs(ctx context.Context) ([]string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	ids := make([]string, 0, len(b.tasks))
	for _, t := range b.tasks {
		ids = append(ids, strconv.Itoa(t.ID))
	}
	return ids, nil
}

func (b *Backend) ListCommandOptions(ctx context.Context) ([]string, error) {
	return []string{"pause task", "resume task", "cancel task", "emergency stop"}, nil
}

func (b *Backend) IsSimulationRunning(ctx context.Context) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.running
}

func (b *Backend) CurrentTime(ctx context.Context) float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.now
}

// StepSimulation advances simulated time one step and moves agents: working
// units head toward their target and go idle on arrival, idle and hostile
// units wander. A step while the simulation is stopped is refused.
func (b *Backend) StepSimulation(ctx context.Context) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.running {
		return false
	}
	b.now += b.stepSize

	const speed = 0.5
	for i := range b.agents {
		a := &b.agents[i]
		switch {
		case a.Status == ops.AgentWorking && len(b.targets) > 0:
			tg := b.targets[a.ID%len(b.targets)]
			dx, dy := tg.X-a.X, tg.Y-a.Y
			dist := math.Hypot(dx, dy)
			if dist > 1.0 {
				a.X += dx / dist * speed
				a.Y += dy / dist * speed
			} else {
				a.Status = ops.AgentIdle
			}
		case a.Faction == ops.FactionHostile || (a.Status == ops.AgentIdle && b.rng.Float64() < 0.1):
			a.X = clamp(a.X+b.rng.Float64()*4-2, 0, 100)
			a.Y = clamp(a.Y+b.rng.Float64()*4-2, 0, 100)
		}
	}
	return true
}

func (b *Backend) recordAudit(ctx context.Context, cmd ops.Command, accepted bool) {
	if b.audit == nil {
		return
	}
	if err := b.audit.Record(ctx, cmd, accepted); err != nil {
		log.Printf("sim: command audit failed: %v", err)
	}
}

func interpolate(x0, y0, x1, y1 float64, n int) [][]float64 {
	pts := make([][]float64, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		pts = append(pts, []float64{x0 + (x1-x0)*t, y0 + (y1-y0)*t})
	}
	return pts
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func copyCoalitions(in []ops.Coalition) []ops.Coalition {
	out := make([]ops.Coalition, len(in))
	for i, c := range in {
		c.Members = append([]int(nil), c.Members...)
		c.Schedule = append([]ops.Interval(nil), c.Schedule...)
		c.ReplanSchedule = append([]ops.Interval(nil), c.ReplanSchedule...)
		out[i] = c
	}
	return out
}

func copyAgents(in []ops.Agent) []ops.Agent {
	out := make([]ops.Agent, len(in))
	for i, a := range in {
		if a.CoalitionID != nil {
			id := *a.CoalitionID
			a.CoalitionID = &id
		}
		out[i] = a
	}
	return out
}

func copyTasks(in []ops.Task) []ops.Task {
	out := make([]ops.Task, len(in))
	copy(out, in)
	return out
}
