package scene

// DefaultBounds is used when a backend supplies neither explicit limits nor
// any coordinate to derive them from.
func DefaultBounds() Bounds {
	return Bounds{XMin: 0, XMax: 100, YMin: 0, YMax: 100}
}

// BoundsFromPoints computes axis limits covering every point, padded by
// margin on each side. ok is false when pts is empty.
func BoundsFromPoints(pts []Point, margin float64) (b Bounds, ok bool) {
	if len(pts) == 0 {
		return Bounds{}, false
	}
	b = Bounds{XMin: pts[0].X, XMax: pts[0].X, YMin: pts[0].Y, YMax: pts[0].Y}
	for _, p := range pts[1:] {
		if p.X < b.XMin {
			b.XMin = p.X
		}
		if p.X > b.XMax {
			b.XMax = p.X
		}
		if p.Y < b.YMin {
			b.YMin = p.Y
		}
		if p.Y > b.YMax {
			b.YMax = p.Y
		}
	}
	b.XMin -= margin
	b.XMax += margin
	b.YMin -= margin
	b.YMax += margin
	return b, true
}
