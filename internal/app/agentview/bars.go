package agentview

import "swarmdeck/internal/domain/ops"

const (
	idleColor    = "silver"
	idleLabel    = "idle"
	barAlpha     = 0.8
	emptyIdleEnd = 10
)

// ScheduleBars converts a coalition schedule into gantt bars. Gaps between
// intervals (and before the first one, from 0) are filled with synthetic
// idle bars so the track has no holes; consumers assume gap-free tracks.
// An empty schedule yields a single idle bar spanning [0, emptyIdleEnd]
// labelled with the coalition's current task when it has one.
func ScheduleBars(schedule []ops.Interval, currentTask string) []ops.Bar {
	if len(schedule) == 0 {
		text := currentTask
		if text == "" {
			text = idleLabel
		}
		return []ops.Bar{idleBar(0, emptyIdleEnd, text)}
	}

	bars := make([]ops.Bar, 0, 2*len(schedule))
	cursor := 0.0
	for _, iv := range schedule {
		if iv.Start > cursor {
			bars = append(bars, idleBar(cursor, iv.Start-cursor, idleLabel))
		}
		color := iv.Color
		if color == "" {
			color = idleColor
		}
		bars = append(bars, ops.Bar{
			Start:    iv.Start,
			Duration: iv.End - iv.Start,
			Color:    color,
			Text:     iv.TaskLabel,
			Alpha:    barAlpha,
		})
		if iv.End > cursor {
			cursor = iv.End
		}
	}
	return bars
}

func idleBar(start, duration float64, text string) ops.Bar {
	return ops.Bar{
		Start:    start,
		Duration: duration,
		Color:    idleColor,
		Text:     text,
		Alpha:    barAlpha,
	}
}
