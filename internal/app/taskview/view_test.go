package taskview

import (
	"reflect"
	"testing"

	"swarmdeck/internal/app/ports"
	"swarmdeck/internal/domain/ops"
)

func sampleTaskData() ports.TaskData {
	return ports.TaskData{
		Tasks: []ops.Task{
			{ID: 2, Type: ops.TypeSurveillance, Area: "B2", CoalitionID: 0, Status: ops.TaskPending, StartTime: 10, Duration: 5, LTL: "G (p2 -> X p3)"},
			{ID: 1, Type: ops.TypePatrol, Area: "A1", CoalitionID: 0, Status: ops.TaskExecuting, StartTime: 5, Duration: 5, LTL: "G (p1 -> F p2)"},
			{ID: 5, Type: ops.TypeRescue, Area: "E5", CoalitionID: ops.UnassignedCoalition, Status: ops.TaskPending, LTL: "G (p8 -> X p9)"},
			{ID: 3, Type: ops.TypeSearch, Area: "C3", CoalitionID: 1, Status: ops.TaskExecuting, StartTime: 6, Duration: 6, LTL: "F (p4 & p5)"},
		},
		CurrentTime: 8,
	}
}

func TestBuild_Rows(t *testing.T) {
	v := Build(sampleTaskData())

	if len(v.Rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(v.Rows))
	}
	if got := v.Rows[0]; !reflect.DeepEqual(got, []string{"2", "surveillance", "B2", "0", "Pending"}) {
		t.Fatalf("unexpected first row: %v", got)
	}
	if got := v.Rows[2][3]; got != "unassigned" {
		t.Fatalf("expected unassigned coalition cell, got %q", got)
	}
}

func TestBuild_GanttGroupsPerCoalitionWithUnassignedLast(t *testing.T) {
	v := Build(sampleTaskData())

	labels := make([]string, 0, len(v.Gantt.Tracks))
	for _, tr := range v.Gantt.Tracks {
		labels = append(labels, tr.Label)
	}
	want := []string{"Coalition-0", "Coalition-1", "Unassigned"}
	if !reflect.DeepEqual(labels, want) {
		t.Fatalf("unexpected track order: %v", labels)
	}

	// Bars within a track are sorted by start even when input order is not.
	bars := v.Gantt.Tracks[0].Bars
	if len(bars) != 2 {
		t.Fatalf("expected 2 bars on coalition 0, got %d", len(bars))
	}
	if bars[0].Text != "T1" || bars[1].Text != "T2" {
		t.Fatalf("unexpected bar order: %q, %q", bars[0].Text, bars[1].Text)
	}
	if bars[0].Color != "lightblue" {
		t.Fatalf("expected patrol bar lightblue, got %q", bars[0].Color)
	}
	if v.Gantt.CurrentTime != 8 {
		t.Fatalf("expected gantt current time 8, got %v", v.Gantt.CurrentTime)
	}
}

func TestBuild_LTLTextJoinsPerTaskFormulas(t *testing.T) {
	v := Build(sampleTaskData())
	want := "G (p2 -> X p3)\nG (p1 -> F p2)\nG (p8 -> X p9)\nF (p4 & p5)"
	if v.LTLText != want {
		t.Fatalf("unexpected ltl text: %q", v.LTLText)
	}
}

func TestBuild_LTLTextPassesCombinedFormulaThrough(t *testing.T) {
	data := sampleTaskData()
	data.LTLFormula = "(G p1) & (F p2)"
	v := Build(data)
	if v.LTLText != "(G p1) & (F p2)" {
		t.Fatalf("expected combined formula pass-through, got %q", v.LTLText)
	}
}

func TestTypeColor_Defaults(t *testing.T) {
	if got := TypeColor(ops.TypeTransport); got != "lightpink" {
		t.Fatalf("expected lightpink, got %q", got)
	}
	if got := TypeColor("escort"); got != "silver" {
		t.Fatalf("expected silver default, got %q", got)
	}
}

func TestStatusLabel_PassThrough(t *testing.T) {
	if got := StatusLabel(ops.TaskCancelled); got != "Cancelled" {
		t.Fatalf("expected Cancelled, got %q", got)
	}
	if got := StatusLabel("queued"); got != "queued" {
		t.Fatalf("expected pass-through, got %q", got)
	}
}
