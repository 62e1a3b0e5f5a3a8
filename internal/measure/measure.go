// Package measure computes geodesic areas and lengths of canonical
// geometries. Inputs are lng/lat degrees; all outputs are metric base
// units (square meters, meters). Area uses the spherical-excess formula,
// lengths sum great-circle segment distances, so results match
// shoelace-on-a-sphere rather than flat-Euclidean math.
package measure

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"geoquote/internal/domain/entities"
)

// Result is the per-feature measurement of one canonical geometry.
type Result struct {
	AreaSqMeters    float64
	PerimeterMeters float64
}

// Ring measures a closed polygon ring. Returns false for degenerate rings
// (fewer than 3 unique vertices or an unclosed ring), which callers treat
// as a skip, not a failure.
func Ring(ring orb.Ring) (Result, bool) {
	if len(ring) < 4 || ring[0] != ring[len(ring)-1] {
		return Result{}, false
	}
	if uniquePoints(ring) < 3 {
		return Result{}, false
	}
	return Result{
		AreaSqMeters:    math.Abs(geo.Area(ring)),
		PerimeterMeters: geo.LengthHaversine(orb.LineString(ring)),
	}, true
}

// Line measures an open polyline. Returns false for fewer than 2 points.
func Line(path orb.LineString) (Result, bool) {
	if len(path) < 2 {
		return Result{}, false
	}
	return Result{PerimeterMeters: geo.LengthHaversine(path)}, true
}

// Geometry measures a canonical geometry by its tagged kind.
func Geometry(g entities.Geometry) (Result, bool) {
	switch g.Kind {
	case entities.GeometryKindPolygon:
		return Ring(g.Ring)
	case entities.GeometryKindPolyline:
		return Line(g.Path)
	}
	return Result{}, false
}

// Aggregate folds a geometry set into a Measurements snapshot. A feature
// that fails to measure contributes zero and is skipped; aggregation of
// the remaining features always completes.
func Aggregate(geometries []entities.Geometry) entities.Measurements {
	m := entities.Measurements{Shapes: geometries}
	if m.Shapes == nil {
		m.Shapes = []entities.Geometry{}
	}
	for _, g := range geometries {
		res, ok := Geometry(g)
		if !ok {
			continue
		}
		m.TotalAreaSqMeters += res.AreaSqMeters
		m.TotalPerimeterMeters += res.PerimeterMeters
	}
	return m
}

func uniquePoints(ring orb.Ring) int {
	seen := make(map[orb.Point]struct{}, len(ring))
	for _, p := range ring {
		seen[p] = struct{}{}
	}
	return len(seen)
}
