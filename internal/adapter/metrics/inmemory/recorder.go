package inmemory

import "sync"

type Snapshot struct {
	RefreshTotal    uint64            `json:"refresh_total"`
	RefreshOK       uint64            `json:"refresh_ok"`
	RefreshFailed   uint64            `json:"refresh_failed"`
	RefreshByKind   map[string]uint64 `json:"refresh_by_kind"`
	FailuresByKind  map[string]uint64 `json:"failures_by_kind"`
	CommandTotal    uint64            `json:"command_total"`
	CommandAccepted uint64            `json:"command_accepted"`
	CommandRejected uint64            `json:"command_rejected"`
}

type Recorder struct {
	mu             sync.Mutex
	refreshOK      uint64
	refreshFailed  uint64
	refreshByKind  map[string]uint64
	failuresByKind map[string]uint64
	cmdAccepted    uint64
	cmdRejected    uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		refreshByKind:  map[string]uint64{},
		failuresByKind: map[string]uint64{},
	}
}

func (r *Recorder) RecordRefresh(kind string, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.refreshByKind[kind]++
	if ok {
		r.refreshOK++
		return
	}
	r.refreshFailed++
	r.failuresByKind[kind]++
}

func (r *Recorder) RecordCommand(accepted bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if accepted {
		r.cmdAccepted++
		return
	}
	r.cmdRejected++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		RefreshOK:       r.refreshOK,
		RefreshFailed:   r.refreshFailed,
		RefreshTotal:    r.refreshOK + r.refreshFailed,
		RefreshByKind:   make(map[string]uint64, len(r.refreshByKind)),
		FailuresByKind:  make(map[string]uint64, len(r.failuresByKind)),
		CommandAccepted: r.cmdAccepted,
		CommandRejected: r.cmdRejected,
		CommandTotal:    r.cmdAccepted + r.cmdRejected,
	}
	for k, v := range r.refreshByKind {
		out.RefreshByKind[k] = v
	}
	for k, v := range r.failuresByKind {
		out.FailuresByKind[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
