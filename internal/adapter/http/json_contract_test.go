package httpadapter

import (
	"encoding/json"
	"testing"

	"swarmdeck/internal/app/agentview"
	"swarmdeck/internal/app/ports"
	"swarmdeck/internal/app/sceneview"
	"swarmdeck/internal/app/taskview"
	"swarmdeck/internal/domain/ops"
)

func TestResponseJSONUsesSnakeCase(t *testing.T) {
	agentData := ports.AgentData{
		Coalitions: []ops.Coalition{{
			ID:          0,
			CurrentTask: "patrol",
			Members:     []int{1},
			Schedule:    []ops.Interval{{Start: 0, End: 5, TaskLabel: "patrol"}},
		}},
		Agents:      []ops.Agent{{ID: 1, TypeLabel: "recon drone", Status: ops.AgentIdle, Faction: ops.FactionFriendly}},
		CurrentTime: 2,
	}
	taskData := ports.TaskData{
		Tasks:       []ops.Task{{ID: 1, Type: ops.TypePatrol, Area: "A1", Status: ops.TaskPending, LTL: "G p1"}},
		CurrentTime: 2,
	}
	sceneData := ports.SceneData{
		Agents:  []ports.SceneAgent{{ID: 1, X: 1, Y: 2}},
		Targets: []ports.SceneTarget{{X: 3, Y: 4}},
		Time:    2,
	}

	cases := []struct {
		name    string
		payload any
		want    []string
		notWant []string
	}{
		{
			name:    "agent view",
			payload: agentview.Build(agentData),
			want:    []string{"coalition_rows", "friendly_rows", "hostile_rows", "schedule_gantt", "replan_options", "replan_gantt", "current_time"},
			notWant: []string{"CoalitionRows", "ScheduleGantt", "CurrentTime"},
		},
		{
			name:    "task view",
			payload: taskview.Build(taskData),
			want:    []string{"rows", "gantt", "ltl_text", "current_time"},
			notWant: []string{"Rows", "Gantt", "LTLText"},
		},
		{
			name:    "scene view",
			payload: sceneview.Build(sceneData),
			want:    []string{"agents", "targets", "regions", "trajectories", "time", "limits"},
			notWant: []string{"Agents", "Bounds", "Limits"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := json.Marshal(tc.payload)
			if err != nil {
				t.Fatalf("marshal failed: %v", err)
			}
			var got map[string]any
			if err := json.Unmarshal(b, &got); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			for _, key := range tc.want {
				if _, ok := got[key]; !ok {
					t.Fatalf("expected key %q in %s", key, string(b))
				}
			}
			for _, key := range tc.notWant {
				if _, ok := got[key]; ok {
					t.Fatalf("unexpected key %q in %s", key, string(b))
				}
			}
		})
	}
}

func TestGanttJSONKeys(t *testing.T) {
	v := agentview.Build(ports.AgentData{
		Coalitions: []ops.Coalition{{ID: 0, Members: []int{1}}},
	})
	b, err := json.Marshal(v.ScheduleGantt)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	for _, key := range []string{"tracks", "current_time", "y_label_fontsize"} {
		if _, ok := got[key]; !ok {
			t.Fatalf("expected key %q in %s", key, string(b))
		}
	}
}
