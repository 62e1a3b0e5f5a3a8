package entities

import (
	"time"

	"github.com/paulmach/orb"
)

// UnitSystem selects the display units for measurements and quantities.
//
// Stored measurement values are always metric base units (square meters /
// meters); the unit system only affects conversion at display and report
// boundaries.

type UnitSystem string

const (
	UnitSystemMetric   UnitSystem = "metric"
	UnitSystemImperial UnitSystem = "imperial"
)

func (u UnitSystem) Valid() bool {
	return u == UnitSystemMetric || u == UnitSystemImperial
}

// GeometryKind is the tagged variant of a canonical geometry.

type GeometryKind string

const (
	GeometryKindPolygon  GeometryKind = "POLYGON"
	GeometryKindPolyline GeometryKind = "POLYLINE"
)

// Geometry is a canonical, finalized shape owned by a quote session.
//
// Invariants:
//   - A POLYGON ring has at least 4 coordinate pairs with first == last.
//   - A POLYLINE path has at least 2 points.
//
// AreaSqMeters and PerimeterMeters are derived once at finalize time so
// export collaborators never need to re-measure. MeasurementValue is the
// billing quantity in metric base units: square meters for polygons,
// meters for polylines.
type Geometry struct {
	ID        string       `json:"id"`
	ServiceID string       `json:"service_id"`
	Kind      GeometryKind `json:"kind"`

	// Ring holds the closed boundary when Kind is POLYGON.
	Ring orb.Ring `json:"ring,omitempty"`
	// Path holds the open line when Kind is POLYLINE.
	Path orb.LineString `json:"path,omitempty"`

	MeasurementValue float64 `json:"measurement_value"`
	AreaSqMeters     float64 `json:"area_sq_m"`
	PerimeterMeters  float64 `json:"perimeter_m"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Measurements is the aggregate snapshot consumed by the quote assembler
// and the UI. Totals are metric base units.
type Measurements struct {
	TotalAreaSqMeters    float64    `json:"total_area_sq_m"`
	TotalPerimeterMeters float64    `json:"total_perimeter_m"`
	Shapes               []Geometry `json:"shapes"`
}
