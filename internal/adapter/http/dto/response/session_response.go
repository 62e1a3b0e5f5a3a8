package response

import (
	"time"

	"geoquote/internal/domain/entities"
	"geoquote/internal/units"
)

// unitLabels returns the display labels for a unit system.
func unitLabels(system entities.UnitSystem) (area, length string) {
	if system == entities.UnitSystemMetric {
		return "sqm", "m"
	}
	return "sqft", "ft"
}

// GeometryResponse is one committed shape with its measurements already
// converted to the session's display units.
type GeometryResponse struct {
	ID        string  `json:"id"`
	ServiceID string  `json:"service_id"`
	Kind      string  `json:"kind"`
	Area      float64 `json:"area"`
	Perimeter float64 `json:"perimeter"`
}

func fromGeometry(g entities.Geometry, system entities.UnitSystem) GeometryResponse {
	return GeometryResponse{
		ID:        g.ID,
		ServiceID: g.ServiceID,
		Kind:      string(g.Kind),
		Area:      units.Round2(units.AreaToDisplay(g.AreaSqMeters, system)),
		Perimeter: units.Round2(units.LengthToDisplay(g.PerimeterMeters, system)),
	}
}

// MeasurementsResponse is the aggregate snapshot in display units.
type MeasurementsResponse struct {
	TotalArea      float64 `json:"total_area"`
	TotalPerimeter float64 `json:"total_perimeter"`
	AreaUnit       string  `json:"area_unit"`
	LengthUnit     string  `json:"length_unit"`
	ShapeCount     int     `json:"shape_count"`
}

func FromMeasurements(m entities.Measurements, system entities.UnitSystem) MeasurementsResponse {
	areaUnit, lengthUnit := unitLabels(system)
	return MeasurementsResponse{
		TotalArea:      units.Round2(units.AreaToDisplay(m.TotalAreaSqMeters, system)),
		TotalPerimeter: units.Round2(units.LengthToDisplay(m.TotalPerimeterMeters, system)),
		AreaUnit:       areaUnit,
		LengthUnit:     lengthUnit,
		ShapeCount:     len(m.Shapes),
	}
}

// SessionResponse is the full session view returned by every mutating
// endpoint so clients can render without a follow-up read. Measurements
// and bid come from the display channels, so a shape in progress is
// reflected immediately.
type SessionResponse struct {
	ID              string               `json:"id"`
	UnitSystem      string               `json:"unit_system"`
	Mode            string               `json:"mode"`
	State           string               `json:"state"`
	ActiveServiceID string               `json:"active_service_id,omitempty"`
	Smoothing       int                  `json:"smoothing"`
	Margin          float64              `json:"margin"`
	Templates       []TemplateResponse   `json:"templates"`
	Geometries      []GeometryResponse   `json:"geometries"`
	Measurements    MeasurementsResponse `json:"measurements"`
	Bid             BidResponse          `json:"bid"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

func FromSession(s entities.QuoteSession) SessionResponse {
	geometries := make([]GeometryResponse, 0, len(s.Geometries))
	for _, g := range s.Geometries {
		geometries = append(geometries, fromGeometry(g, s.UnitSystem))
	}
	templates := make([]TemplateResponse, 0, len(s.Templates))
	for _, t := range s.Templates {
		templates = append(templates, FromTemplate(t))
	}
	return SessionResponse{
		ID:              s.ID,
		UnitSystem:      string(s.UnitSystem),
		Mode:            string(s.Mode),
		State:           string(s.State),
		ActiveServiceID: s.ActiveServiceID,
		Smoothing:       s.Smoothing,
		Margin:          s.Margin,
		Templates:       templates,
		Geometries:      geometries,
		Measurements:    FromMeasurements(s.DisplayMeasurements(), s.UnitSystem),
		Bid:             FromBid(s.DisplayBid()),
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}
