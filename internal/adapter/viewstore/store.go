// Package viewstore keeps the latest refreshed view of each kind for
// presentation consumers. Writes are last-write-wins; a failed refresh never
// reaches the store, so readers keep seeing the previous snapshot.
package viewstore

import (
	"sync"

	"swarmdeck/internal/app/agentview"
	"swarmdeck/internal/app/taskview"
	"swarmdeck/internal/domain/scene"
)

type Store struct {
	mu sync.RWMutex

	agent    agentview.View
	agentSet bool

	task    taskview.View
	taskSet bool

	scene    scene.Snapshot
	sceneSet bool
}

func New() *Store {
	return &Store{}
}

func (s *Store) ApplyAgentView(v agentview.View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.agent = v
	s.agentSet = true
}

func (s *Store) ApplyTaskView(v taskview.View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.task = v
	s.taskSet = true
}

func (s *Store) ApplySceneView(v scene.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scene = v
	s.sceneSet = true
}

func (s *Store) AgentView() (agentview.View, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.agent, s.agentSet
}

func (s *Store) TaskView() (taskview.View, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.task, s.taskSet
}

func (s *Store) SceneView() (scene.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scene, s.sceneSet
}
