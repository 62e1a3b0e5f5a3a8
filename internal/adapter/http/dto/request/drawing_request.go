package request

import (
	"github.com/paulmach/orb"

	"geoquote/internal/geometry"
)

// PointerEventRequest is one pointer sample from the freehand tool: the
// geographic position plus the projected screen coordinates used for the
// zoom-independent sampling threshold. No binding tags because 0 is a
// legitimate value for every field.
type PointerEventRequest struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
}

func (r PointerEventRequest) ToSample() geometry.PointerSample {
	return geometry.PointerSample{Lng: r.Lng, Lat: r.Lat, X: r.X, Y: r.Y}
}

// VertexRequest is one discrete click for the polygon, line and rectangle
// tools.
type VertexRequest struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

func (r VertexRequest) ToPoint() orb.Point {
	return orb.Point{r.Lng, r.Lat}
}

// CircleRequest places a circle by center and radius. The radius is in
// the session's display length unit (feet or meters).
type CircleRequest struct {
	Lng    float64 `json:"lng"`
	Lat    float64 `json:"lat"`
	Radius float64 `json:"radius" binding:"required"`
}

func (r CircleRequest) Center() orb.Point {
	return orb.Point{r.Lng, r.Lat}
}
