// Package sceneview normalizes raw scene payloads into scene.Snapshot.
// Partial data is the norm: absent collections become empty, marker colors
// and symbols fall back to fixed palettes, and unrecognized region kinds are
// dropped with a diagnostic rather than failing the whole snapshot. The
// transform is deterministic: the same raw payload always yields the same
// snapshot.
package sceneview

import (
	"log"

	"swarmdeck/internal/app/ports"
	"swarmdeck/internal/domain/scene"
)

const (
	boundsMargin       = 5.0
	defaultTargetColor = "#223399"
	defaultRegionColor = "#AAAAAA"
	defaultRadius      = 10.0
)

var agentPalette = []string{"#FF5555", "#55FF55", "#5555FF", "#FFFF55", "#FF55FF", "#55FFFF"}

var agentSymbols = []string{"o", "s", "t", "d", "+"}

var trajectoryPalette = []string{"#BB5555", "#55BB55", "#5555BB", "#BBBB55"}

// Build normalizes one raw scene payload.
func Build(raw ports.SceneData) scene.Snapshot {
	snap := scene.Snapshot{
		Time:         raw.Time,
		Agents:       make([]scene.AgentMarker, 0, len(raw.Agents)),
		Targets:      make([]scene.TargetMarker, 0, len(raw.Targets)),
		Regions:      make([]scene.Region, 0, len(raw.Regions)),
		Trajectories: make([]scene.Trajectory, 0, len(raw.Trajectories)),
	}

	for i, a := range raw.Agents {
		color := a.Color
		if color == "" {
			color = agentPalette[i%len(agentPalette)]
		}
		symbol := a.Symbol
		if symbol == "" {
			symbol = agentSymbols[i%len(agentSymbols)]
		}
		snap.Agents = append(snap.Agents, scene.AgentMarker{
			ID: a.ID, X: a.X, Y: a.Y, Color: color, Symbol: symbol,
		})
	}

	for _, t := range raw.Targets {
		color := t.Color
		if color == "" {
			color = defaultTargetColor
		}
		active := true
		if t.Active != nil {
			active = *t.Active
		}
		snap.Targets = append(snap.Targets, scene.TargetMarker{
			X: t.X, Y: t.Y, Color: color, Active: active,
		})
	}

	for _, r := range raw.Regions {
		region, ok := normalizeRegion(r)
		if !ok {
			log.Printf("sceneview: dropping region with unrecognized type %q", r.Kind)
			continue
		}
		snap.Regions = append(snap.Regions, region)
	}

	for i, tr := range raw.Trajectories {
		color := tr.Color
		if color == "" {
			color = trajectoryPalette[i%len(trajectoryPalette)]
		}
		snap.Trajectories = append(snap.Trajectories, scene.Trajectory{
			Points: toPoints(tr.Points),
			Color:  color,
		})
	}

	snap.Bounds = resolveBounds(raw, snap)
	return snap
}

func normalizeRegion(r ports.SceneRegion) (scene.Region, bool) {
	color := r.Color
	if color == "" {
		color = defaultRegionColor
	}
	switch scene.RegionKind(r.Kind) {
	case scene.RegionCircle:
		center := &scene.Point{}
		if len(r.Center) >= 2 {
			center = &scene.Point{X: r.Center[0], Y: r.Center[1]}
		}
		radius := r.Radius
		if radius <= 0 {
			radius = defaultRadius
		}
		return scene.Region{Kind: scene.RegionCircle, Color: color, Center: center, Radius: radius}, true
	case scene.RegionPolygon:
		return scene.Region{Kind: scene.RegionPolygon, Color: color, Points: toPoints(r.Points)}, true
	default:
		return scene.Region{}, false
	}
}

// toPoints keeps the pairs and silently skips malformed rows.
func toPoints(rows [][]float64) []scene.Point {
	pts := make([]scene.Point, 0, len(rows))
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		pts = append(pts, scene.Point{X: row[0], Y: row[1]})
	}
	return pts
}

// resolveBounds prefers explicit backend limits, then derives limits from
// every coordinate in the snapshot with a fixed margin so the scene is
// always renderable without manual axis configuration.
func resolveBounds(raw ports.SceneData, snap scene.Snapshot) scene.Bounds {
	if raw.Limits != nil {
		return *raw.Limits
	}
	var pts []scene.Point
	for _, a := range snap.Agents {
		pts = append(pts, scene.Point{X: a.X, Y: a.Y})
	}
	for _, t := range snap.Targets {
		pts = append(pts, scene.Point{X: t.X, Y: t.Y})
	}
	for _, r := range snap.Regions {
		if r.Kind == scene.RegionCircle && r.Center != nil {
			pts = append(pts,
				scene.Point{X: r.Center.X - r.Radius, Y: r.Center.Y - r.Radius},
				scene.Point{X: r.Center.X + r.Radius, Y: r.Center.Y + r.Radius},
			)
			continue
		}
		pts = append(pts, r.Points...)
	}
	for _, tr := range snap.Trajectories {
		pts = append(pts, tr.Points...)
	}
	if b, ok := scene.BoundsFromPoints(pts, boundsMargin); ok {
		return b
	}
	return scene.DefaultBounds()
}
