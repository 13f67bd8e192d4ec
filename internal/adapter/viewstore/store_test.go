package viewstore

import (
	"testing"

	"swarmdeck/internal/app/agentview"
	"swarmdeck/internal/app/taskview"
	"swarmdeck/internal/domain/scene"
)

func TestStore_EmptyUntilFirstApply(t *testing.T) {
	s := New()
	if _, ok := s.AgentView(); ok {
		t.Fatalf("expected no agent view before first apply")
	}
	if _, ok := s.TaskView(); ok {
		t.Fatalf("expected no task view before first apply")
	}
	if _, ok := s.SceneView(); ok {
		t.Fatalf("expected no scene view before first apply")
	}
}

func TestStore_LastWriteWins(t *testing.T) {
	s := New()

	s.ApplyAgentView(agentview.View{CurrentTime: 1})
	s.ApplyAgentView(agentview.View{CurrentTime: 2})
	if v, ok := s.AgentView(); !ok || v.CurrentTime != 2 {
		t.Fatalf("expected latest agent view, got %+v ok=%v", v, ok)
	}

	s.ApplyTaskView(taskview.View{CurrentTime: 3})
	if v, ok := s.TaskView(); !ok || v.CurrentTime != 3 {
		t.Fatalf("expected task view, got %+v ok=%v", v, ok)
	}

	s.ApplySceneView(scene.Snapshot{Time: 4})
	s.ApplySceneView(scene.Snapshot{Time: 5})
	if v, ok := s.SceneView(); !ok || v.Time != 5 {
		t.Fatalf("expected latest scene, got %+v ok=%v", v, ok)
	}
}
