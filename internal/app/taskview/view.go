// Package taskview turns raw task-domain snapshots into task table rows, a
// per-coalition gantt and the combined LTL text.
package taskview

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"swarmdeck/internal/app/ports"
	"swarmdeck/internal/domain/ops"
)

// View is the display-ready task-domain bundle.
type View struct {
	Rows        [][]string    `json:"rows"`
	Gantt       ops.GanttView `json:"gantt"`
	LTLText     string        `json:"ltl_text"`
	CurrentTime float64       `json:"current_time"`
}

const taskBarAlpha = 0.8

// Build normalizes one task-domain snapshot. Gantt tracks are grouped per
// coalition, ordered by coalition id with unassigned tasks on the last
// track; bars within a track are sorted by start.
func Build(data ports.TaskData) View {
	v := View{
		Rows:        make([][]string, 0, len(data.Tasks)),
		LTLText:     ltlText(data),
		CurrentTime: data.CurrentTime,
	}

	for _, t := range data.Tasks {
		v.Rows = append(v.Rows, []string{
			strconv.Itoa(t.ID),
			string(t.Type),
			t.Area,
			coalitionCell(t.CoalitionID),
			StatusLabel(t.Status),
		})
	}

	v.Gantt = buildGantt(data)
	return v
}

func buildGantt(data ports.TaskData) ops.GanttView {
	grouped := make(map[int][]ops.Task)
	for _, t := range data.Tasks {
		grouped[t.CoalitionID] = append(grouped[t.CoalitionID], t)
	}

	ids := make([]int, 0, len(grouped))
	for id := range grouped {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		// Unassigned sinks to the bottom track.
		if (ids[i] == ops.UnassignedCoalition) != (ids[j] == ops.UnassignedCoalition) {
			return ids[j] == ops.UnassignedCoalition
		}
		return ids[i] < ids[j]
	})

	tracks := make([]ops.Track, 0, len(ids))
	for _, id := range ids {
		tasks := grouped[id]
		bars := make([]ops.Bar, 0, len(tasks))
		for _, t := range tasks {
			bars = append(bars, ops.Bar{
				Start:    t.StartTime,
				Duration: t.Duration,
				Color:    TypeColor(t.Type),
				Text:     fmt.Sprintf("T%d", t.ID),
				Alpha:    taskBarAlpha,
			})
		}
		sort.SliceStable(bars, func(i, j int) bool { return bars[i].Start < bars[j].Start })

		label := "Unassigned"
		if id != ops.UnassignedCoalition {
			label = fmt.Sprintf("Coalition-%d", id)
		}
		tracks = append(tracks, ops.Track{Label: label, Bars: bars})
	}

	return ops.GanttView{
		Tracks:        tracks,
		CurrentTime:   data.CurrentTime,
		LabelFontSize: ops.DefaultLabelFontSize,
	}
}

// ltlText passes a combined formula through untouched and otherwise joins
// the per-task formulas with newlines, preserving task order.
func ltlText(data ports.TaskData) string {
	if data.LTLFormula != "" {
		return data.LTLFormula
	}
	parts := make([]string, 0, len(data.Tasks))
	for _, t := range data.Tasks {
		if t.LTL != "" {
			parts = append(parts, t.LTL)
		}
	}
	return strings.Join(parts, "\n")
}

var statusLabels = map[ops.TaskStatus]string{
	ops.TaskPending:   "Pending",
	ops.TaskExecuting: "Executing",
	ops.TaskCompleted: "Completed",
	ops.TaskFailed:    "Failed",
	ops.TaskCancelled: "Cancelled",
	"unknown":         "Unknown",
}

// StatusLabel maps backend task statuses to display strings; anything
// outside the table passes through unchanged.
func StatusLabel(s ops.TaskStatus) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

var typeColors = map[ops.TaskType]string{
	ops.TypePatrol:       "lightblue",
	ops.TypeSurveillance: "lightgreen",
	ops.TypeSearch:       "lightyellow",
	ops.TypeRescue:       "lightcoral",
	ops.TypeTransport:    "lightpink",
	ops.TypeOther:        "gray",
}

const defaultTypeColor = "silver"

// TypeColor is total over TaskType: tags outside the table get a neutral
// default instead of failing.
func TypeColor(t ops.TaskType) string {
	if c, ok := typeColors[t]; ok {
		return c
	}
	return defaultTypeColor
}

func coalitionCell(id int) string {
	if id == ops.UnassignedCoalition {
		return "unassigned"
	}
	return strconv.Itoa(id)
}
