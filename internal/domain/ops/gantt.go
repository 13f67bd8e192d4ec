package ops

// Bar is one rendered span on a gantt track.
type Bar struct {
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
	Color    string  `json:"color"`
	Text     string  `json:"text"`
	Alpha    float64 `json:"alpha"`
}

// Track is one labelled row of bars. Consumers assume the bars are gap-free
// and ordered by start.
type Track struct {
	Label string `json:"label"`
	Bars  []Bar  `json:"bars"`
}

// GanttView is the display-ready shape consumed by gantt widgets.
type GanttView struct {
	Tracks        []Track `json:"tracks"`
	CurrentTime   float64 `json:"current_time"`
	LabelFontSize int     `json:"y_label_fontsize"`
}

// DefaultLabelFontSize matches what the gantt widgets expect when the
// backend does not say otherwise.
const DefaultLabelFontSize = 10
