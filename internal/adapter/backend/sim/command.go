package sim

import (
	"context"
	"log"
	"strconv"
	"strings"

	"swarmdeck/internal/domain/ops"
)

// SendCommand applies one canonical command to the simulated mission. The
// boolean result is the contract's only failure signal; every decision is
// also written to the audit log.
func (b *Backend) SendCommand(ctx context.Context, cmd ops.Command) bool {
	b.mu.Lock()
	var accepted bool
	switch c := cmd.(type) {
	case ops.CreateTask:
		accepted = b.applyCreate(c)
	case ops.UpdateTask:
		accepted = b.applyUpdate(c)
	case ops.Replan:
		accepted = b.applyReplan()
	case ops.StartSimulation:
		b.running = true
		accepted = true
	default:
		log.Printf("sim: refusing command of unknown type %q", cmd.Kind())
	}
	b.mu.Unlock()

	b.recordAudit(ctx, cmd, accepted)
	return accepted
}

// applyCreate appends a pending, unassigned task. The task type is a best
// effort guess from the instruction text; instructions asking to start or
// stop the simulation also toggle the running flag.
func (b *Backend) applyCreate(c ops.CreateTask) bool {
	if containsAny(c.Instruction, "start", "开始") {
		b.running = true
	} else if containsAny(c.Instruction, "stop", "停止") {
		b.running = false
	}
	b.tasks = append(b.tasks, ops.Task{
		ID:          b.nextTaskID,
		Type:        taskTypeFromInstruction(c.Instruction),
		CoalitionID: ops.UnassignedCoalition,
		Status:      ops.TaskPending,
		LTL:         "",
	})
	b.nextTaskID++
	return true
}

func (b *Backend) applyUpdate(c ops.UpdateTask) bool {
	id, err := strconv.Atoi(c.TaskID)
	if err != nil {
		return false
	}
	for i := range b.tasks {
		if b.tasks[i].ID != id {
			continue
		}
		switch {
		case containsAny(c.Option, "pause", "暂停"):
			b.tasks[i].Status = ops.TaskPending
		case containsAny(c.Option, "resume", "恢复"):
			b.tasks[i].Status = ops.TaskExecuting
		case containsAny(c.Option, "cancel", "stop", "取消", "停止"):
			b.tasks[i].Status = ops.TaskCancelled
		default:
			return false
		}
		return true
	}
	return false
}

// applyReplan promotes each coalition's replan schedule to its active one.
func (b *Backend) applyReplan() bool {
	for i := range b.coalitions {
		c := &b.coalitions[i]
		if len(c.ReplanSchedule) == 0 {
			continue
		}
		c.Schedule = c.ReplanSchedule
		c.ReplanSchedule = nil
	}
	return true
}

var taskTypeKeywords = []struct {
	t        ops.TaskType
	keywords []string
}{
	{ops.TypePatrol, []string{"patrol", "巡逻"}},
	{ops.TypeSurveillance, []string{"surveillance", "recon", "侦察"}},
	{ops.TypeSearch, []string{"search", "搜索"}},
	{ops.TypeRescue, []string{"rescue", "救援"}},
	{ops.TypeTransport, []string{"transport", "运输"}},
}

func taskTypeFromInstruction(text string) ops.TaskType {
	for _, set := range taskTypeKeywords {
		if containsAny(text, set.keywords...) {
			return set.t
		}
	}
	return ops.TypeOther
}

func containsAny(text string, keywords ...string) bool {
	lowered := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}
