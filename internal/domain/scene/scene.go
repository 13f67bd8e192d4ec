// Package scene holds the normalized 2D snapshot consumed by simulation
// canvases. A Snapshot is a single timestamped render of agents, targets,
// regions and trajectories; it is recomputed on every fetch and never
// mutated in place.
package scene

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// AgentMarker is one plotted unit. Symbol is a canvas marker shorthand
// ('o', 's', 't', 'd', '+').
type AgentMarker struct {
	ID     int     `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Color  string  `json:"color"`
	Symbol string  `json:"symbol"`
}

type TargetMarker struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Color  string  `json:"color"`
	Active bool    `json:"active"`
}

// RegionKind discriminates the region variants. Anything else coming from a
// backend is dropped during normalization.
type RegionKind string

const (
	RegionCircle  RegionKind = "circle"
	RegionPolygon RegionKind = "polygon"
)

// Region is a highlighted area. Center/Radius are set for circles, Points
// for polygons.
type Region struct {
	Kind   RegionKind `json:"type"`
	Color  string     `json:"color"`
	Center *Point     `json:"center,omitempty"`
	Radius float64    `json:"radius,omitempty"`
	Points []Point    `json:"points,omitempty"`
}

type Trajectory struct {
	Points []Point `json:"points"`
	Color  string  `json:"color"`
}

type Bounds struct {
	XMin float64 `json:"x_min"`
	XMax float64 `json:"x_max"`
	YMin float64 `json:"y_min"`
	YMax float64 `json:"y_max"`
}

type Snapshot struct {
	Time         float64        `json:"time"`
	Agents       []AgentMarker  `json:"agents"`
	Targets      []TargetMarker `json:"targets"`
	Regions      []Region       `json:"regions"`
	Trajectories []Trajectory   `json:"trajectories"`
	Bounds       Bounds         `json:"limits"`
}
