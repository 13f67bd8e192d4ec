// Package agentview turns raw agent-domain snapshots into the table rows and
// gantt structures the agent panel displays. Everything here is a pure
// transform over the latest snapshot; nothing is cached across ticks.
package agentview

import (
	"fmt"
	"strconv"
	"strings"

	"swarmdeck/internal/app/ports"
	"swarmdeck/internal/domain/ops"
)

const membersPreview = 3

// View is the display-ready agent-domain bundle.
type View struct {
	CoalitionRows [][]string               `json:"coalition_rows"`
	FriendlyRows  [][]string               `json:"friendly_rows"`
	HostileRows   [][]string               `json:"hostile_rows"`
	ScheduleGantt ops.GanttView            `json:"schedule_gantt"`
	ReplanOptions []string                 `json:"replan_options"`
	ReplanGantt   map[string]ops.GanttView `json:"replan_gantt"`
	CurrentTime   float64                  `json:"current_time"`
}

// Build normalizes one agent-domain snapshot.
func Build(data ports.AgentData) View {
	v := View{
		CoalitionRows: make([][]string, 0, len(data.Coalitions)),
		FriendlyRows:  [][]string{},
		HostileRows:   [][]string{},
		ReplanOptions: make([]string, 0, len(data.Coalitions)),
		ReplanGantt:   make(map[string]ops.GanttView, len(data.Coalitions)),
		CurrentTime:   data.CurrentTime,
	}

	tracks := make([]ops.Track, 0, len(data.Coalitions))
	for _, c := range data.Coalitions {
		task := c.CurrentTask
		if task == "" {
			task = idleLabel
		}
		v.CoalitionRows = append(v.CoalitionRows, []string{
			strconv.Itoa(c.ID),
			task,
			FormatMembers(c.Members),
		})

		unit := unitLabel(c.ID)
		tracks = append(tracks, ops.Track{
			Label: unit,
			Bars:  ScheduleBars(c.Schedule, c.CurrentTask),
		})

		v.ReplanOptions = append(v.ReplanOptions, unit)
		v.ReplanGantt[unit] = ops.GanttView{
			Tracks: []ops.Track{{
				Label: unit,
				Bars:  ScheduleBars(c.ReplanSchedule, ""),
			}},
			CurrentTime:   data.CurrentTime,
			LabelFontSize: ops.DefaultLabelFontSize,
		}
	}
	v.ScheduleGantt = ops.GanttView{
		Tracks:        tracks,
		CurrentTime:   data.CurrentTime,
		LabelFontSize: ops.DefaultLabelFontSize,
	}

	for _, a := range data.Agents {
		if a.Faction == ops.FactionHostile {
			v.HostileRows = append(v.HostileRows, []string{
				strconv.Itoa(a.ID),
				a.TypeLabel,
				StatusLabel(a.Status),
			})
			continue
		}
		v.FriendlyRows = append(v.FriendlyRows, []string{
			strconv.Itoa(a.ID),
			a.TypeLabel,
			coalitionLabel(a.CoalitionID),
			StatusLabel(a.Status),
		})
	}

	return v
}

var statusLabels = map[ops.AgentStatus]string{
	ops.AgentIdle:     "Idle",
	ops.AgentWorking:  "Working",
	"returning":       "Returning",
	ops.AgentCharging: "Charging",
	"maintenance":     "Maintenance",
	ops.AgentUnknown:  "Unknown",
}

// StatusLabel maps backend statuses to display strings. Statuses outside the
// table pass through unchanged; this function never fails.
func StatusLabel(s ops.AgentStatus) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// FormatMembers renders a member list as a count plus the leading ids, e.g.
// "3 members [1, 2, 3]" or "5 members [1, 2, 3...]".
func FormatMembers(members []int) string {
	if len(members) == 0 {
		return "0 members []"
	}
	shown := members
	suffix := ""
	if len(members) > membersPreview {
		shown = members[:membersPreview]
		suffix = "..."
	}
	ids := make([]string, len(shown))
	for i, m := range shown {
		ids[i] = strconv.Itoa(m)
	}
	return fmt.Sprintf("%d members [%s%s]", len(members), strings.Join(ids, ", "), suffix)
}

func coalitionLabel(id *int) string {
	if id == nil || *id == ops.UnassignedCoalition {
		return "unassigned"
	}
	return strconv.Itoa(*id)
}

func unitLabel(id int) string {
	return fmt.Sprintf("Unit-%d", id)
}
