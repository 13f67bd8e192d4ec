package sim

import (
	"swarmdeck/internal/app/ports"
	"swarmdeck/internal/domain/ops"
)

func intPtr(v int) *int { return &v }

// seed loads the initial mission: three coalitions with schedules and replan
// alternatives, nine friendly units, two hostiles, five tasks and a handful
// of scene annotations.
func (b *Backend) seed() {
	b.coalitions = []ops.Coalition{
		{
			ID:          0,
			CurrentTask: "Task 1 - patrol",
			Members:     []int{1, 2, 3},
			Schedule: []ops.Interval{
				{Start: 5, End: 10, TaskLabel: "Task 1 - patrol", Color: "lightblue"},
				{Start: 10, End: 15, TaskLabel: "Task 2 - surveillance", Color: "lightgreen"},
			},
			ReplanSchedule: []ops.Interval{
				{Start: 0, End: 8, TaskLabel: "Replan A", Color: "orange"},
				{Start: 8, End: 16, TaskLabel: "Replan B", Color: "purple"},
			},
		},
		{
			ID:          1,
			CurrentTask: "Task 3 - search",
			Members:     []int{4, 5},
			Schedule: []ops.Interval{
				{Start: 6, End: 12, TaskLabel: "Task 3 - search", Color: "lightyellow"},
				{Start: 12, End: 18, TaskLabel: "Task 4 - transport", Color: "lightpink"},
			},
			ReplanSchedule: []ops.Interval{
				{Start: 0, End: 7, TaskLabel: "Replan C", Color: "cyan"},
				{Start: 7, End: 14, TaskLabel: "Replan D", Color: "magenta"},
			},
		},
		{
			ID:          2,
			CurrentTask: "idle",
			Members:     []int{6, 7, 8, 9},
			Schedule:    nil,
			ReplanSchedule: []ops.Interval{
				{Start: 0, End: 10, TaskLabel: "standby", Color: "gray"},
			},
		},
	}

	b.agents = []ops.Agent{
		{ID: 1, TypeLabel: "recon drone", CoalitionID: intPtr(0), Status: ops.AgentWorking, Faction: ops.FactionFriendly, X: 20, Y: 30},
		{ID: 2, TypeLabel: "strike drone", CoalitionID: intPtr(0), Status: ops.AgentWorking, Faction: ops.FactionFriendly, X: 25, Y: 35},
		{ID: 3, TypeLabel: "cargo drone", CoalitionID: intPtr(0), Status: ops.AgentWorking, Faction: ops.FactionFriendly, X: 22, Y: 32},
		{ID: 4, TypeLabel: "recon drone", CoalitionID: intPtr(1), Status: ops.AgentWorking, Faction: ops.FactionFriendly, X: 60, Y: 70},
		{ID: 5, TypeLabel: "strike drone", CoalitionID: intPtr(1), Status: ops.AgentWorking, Faction: ops.FactionFriendly, X: 65, Y: 75},
		{ID: 6, TypeLabel: "recon drone", CoalitionID: intPtr(2), Status: ops.AgentIdle, Faction: ops.FactionFriendly, X: 40, Y: 50},
		{ID: 7, TypeLabel: "strike drone", CoalitionID: intPtr(2), Status: ops.AgentIdle, Faction: ops.FactionFriendly, X: 45, Y: 55},
		{ID: 8, TypeLabel: "cargo drone", CoalitionID: intPtr(2), Status: ops.AgentCharging, Faction: ops.FactionFriendly, X: 50, Y: 50},
		{ID: 9, TypeLabel: "recon drone", CoalitionID: intPtr(2), Status: ops.AgentIdle, Faction: ops.FactionFriendly, X: 42, Y: 52},
		{ID: 101, TypeLabel: "intruder", Status: ops.AgentUnknown, Faction: ops.FactionHostile, X: 80, Y: 20},
		{ID: 102, TypeLabel: "intruder", Status: ops.AgentUnknown, Faction: ops.FactionHostile, X: 15, Y: 85},
	}

	b.tasks = []ops.Task{
		{ID: 1, Type: ops.TypePatrol, Area: "A1", CoalitionID: 0, Status: ops.TaskExecuting, StartTime: 5, Duration: 5, LTL: "G (p1 -> F p2)"},
		{ID: 2, Type: ops.TypeSurveillance, Area: "B2", CoalitionID: 0, Status: ops.TaskPending, StartTime: 10, Duration: 5, LTL: "G (p2 -> X p3)"},
		{ID: 3, Type: ops.TypeSearch, Area: "C3", CoalitionID: 1, Status: ops.TaskExecuting, StartTime: 6, Duration: 6, LTL: "F (p4 & p5)"},
		{ID: 4, Type: ops.TypeTransport, Area: "D4", CoalitionID: 1, Status: ops.TaskPending, StartTime: 12, Duration: 6, LTL: "G (p6 -> F p7)"},
		{ID: 5, Type: ops.TypeRescue, Area: "E5", CoalitionID: ops.UnassignedCoalition, Status: ops.TaskPending, StartTime: 0, Duration: 0, LTL: "G (p8 -> X p9)"},
	}
	b.nextTaskID = 6

	b.targets = []target{
		{X: 30, Y: 40, Active: true},
		{X: 70, Y: 80, Active: true},
		{X: 50, Y: 60, Active: false},
	}

	b.regions = []ports.SceneRegion{
		{Kind: "circle", Center: []float64{35, 45}, Radius: 8, Color: "#AAAAAA"},
		{Kind: "polygon", Points: [][]float64{{60, 70}, {80, 70}, {80, 90}, {60, 90}}, Color: "#DDD700"},
		{Kind: "circle", Center: []float64{45, 55}, Radius: 5, Color: "#FFAAAA"},
	}
}
