// Package geometry turns raw pointer streams and discrete click shapes
// into canonical rings and lines in geographic coordinates. Degenerate
// input is dropped, never reported as an error: every constructor returns
// (zero value, false) for shapes the pipeline should silently ignore.
package geometry

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"

	"geoquote/internal/domain/entities"
	"geoquote/internal/units"
)

const (
	// SamplePixelThreshold is the screen-space decimation distance for
	// freehand strokes. Pixel-based so sampling density is independent of
	// the drawing zoom level.
	SamplePixelThreshold = 4.0

	// CircleSteps is the number of boundary segments used to polygonize
	// the circle tool. 128 keeps area error well under contractor-grade
	// tolerance.
	CircleSteps = 128

	// smoothingToleranceStep maps one smoothing level to a Douglas-Peucker
	// tolerance in coordinate degrees. Level 10 is roughly 11 m at the
	// equator.
	smoothingToleranceStep = 1e-5

	// MaxSmoothing is the upper bound of the operator smoothing setting.
	MaxSmoothing = 10

	metersPerMile = 1609.344
)

// PointerSample is one pointer event as delivered by the map or photo
// surface: geographic position plus the screen position the decimation
// threshold is measured in.
type PointerSample struct {
	Lng float64
	Lat float64
	X   float64
	Y   float64
}

// SampleStroke appends the sample to the in-progress stroke when it is at
// least SamplePixelThreshold pixels away from the last sampled point.
// Returns true when a point was appended.
func SampleStroke(stroke *entities.RawStroke, s PointerSample) bool {
	if len(stroke.Points) == 0 {
		stroke.Points = append(stroke.Points, orb.Point{s.Lng, s.Lat})
		stroke.LastX, stroke.LastY = s.X, s.Y
		return true
	}
	if math.Hypot(s.X-stroke.LastX, s.Y-stroke.LastY) <= SamplePixelThreshold {
		return false
	}
	stroke.Points = append(stroke.Points, orb.Point{s.Lng, s.Lat})
	stroke.LastX, stroke.LastY = s.X, s.Y
	return true
}

// FinishStroke converts a finished freehand stroke into a closed ring.
// Strokes with 3 or fewer raw points are a no-op, as are strokes that
// simplify down to 3 or fewer vertices. Smoothing 0 disables
// simplification; levels 1-10 map linearly to a coordinate tolerance.
func FinishStroke(points orb.LineString, smoothing int) (orb.Ring, bool) {
	if len(points) <= 3 {
		return nil, false
	}

	line := points.Clone()
	if smoothing > 0 {
		if smoothing > MaxSmoothing {
			smoothing = MaxSmoothing
		}
		tolerance := float64(smoothing) * smoothingToleranceStep
		line = simplify.DouglasPeucker(tolerance).LineString(line)
	}
	if len(line) <= 3 {
		return nil, false
	}

	return closeRing(line), true
}

// Polygon builds a closed ring from discrete vertex clicks. Fewer than 3
// distinct vertices is a no-op.
func Polygon(clicks orb.LineString) (orb.Ring, bool) {
	if len(clicks) < 3 {
		return nil, false
	}
	return closeRing(clicks.Clone()), true
}

// Line builds an open polyline from discrete vertex clicks. Fewer than 2
// vertices is a no-op.
func Line(clicks orb.LineString) (orb.LineString, bool) {
	if len(clicks) < 2 {
		return nil, false
	}
	return clicks.Clone(), true
}

// Rectangle emits the axis-aligned 5-point ring fully determined by two
// diagonal corners. A zero-width or zero-height box is a no-op.
func Rectangle(a, b orb.Point) (orb.Ring, bool) {
	minX := math.Min(a[0], b[0])
	maxX := math.Max(a[0], b[0])
	minY := math.Min(a[1], b[1])
	maxY := math.Max(a[1], b[1])
	if minX == maxX || minY == maxY {
		return nil, false
	}
	return orb.Ring{
		{minX, minY},
		{maxX, minY},
		{maxX, maxY},
		{minX, maxY},
		{minX, minY},
	}, true
}

// Circle polygonizes a circle around center with the radius given in the
// active unit system (feet or meters). Non-positive radii are a no-op.
func Circle(center orb.Point, radius float64, system entities.UnitSystem) (orb.Ring, bool) {
	if radius <= 0 {
		return nil, false
	}
	radiusMeters := units.RadiusToMiles(radius, system) * metersPerMile

	ring := make(orb.Ring, 0, CircleSteps+1)
	for i := 0; i < CircleSteps; i++ {
		bearing := float64(i) * 360.0 / CircleSteps
		ring = append(ring, destination(center, radiusMeters, bearing))
	}
	ring = append(ring, ring[0])
	return ring, true
}

// destination computes the great-circle destination point from a start
// point, a distance in meters and a bearing in degrees.
func destination(from orb.Point, distance, bearing float64) orb.Point {
	lat1 := deg2rad(from[1])
	lng1 := deg2rad(from[0])
	brng := deg2rad(bearing)
	d := distance / orb.EarthRadius

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(d) + math.Cos(lat1)*math.Sin(d)*math.Cos(brng))
	lng2 := lng1 + math.Atan2(
		math.Sin(brng)*math.Sin(d)*math.Cos(lat1),
		math.Cos(d)-math.Sin(lat1)*math.Sin(lat2),
	)
	return orb.Point{rad2deg(lng2), rad2deg(lat2)}
}

func closeRing(line orb.LineString) orb.Ring {
	ring := orb.Ring(line)
	if ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}
	return ring
}

func deg2rad(d float64) float64 { return d * math.Pi / 180 }
func rad2deg(r float64) float64 { return r * 180 / math.Pi }
