package entities

import (
	"time"

	"github.com/paulmach/orb"
)

// DrawMode is the drawing tool currently armed on a session.

type DrawMode string

const (
	DrawModePan       DrawMode = "pan"
	DrawModePolygon   DrawMode = "polygon"
	DrawModeLine      DrawMode = "line"
	DrawModeFreehand  DrawMode = "freehand"
	DrawModeRectangle DrawMode = "rectangle"
	DrawModeCircle    DrawMode = "circle"
)

func (m DrawMode) Valid() bool {
	switch m {
	case DrawModePan, DrawModePolygon, DrawModeLine, DrawModeFreehand, DrawModeRectangle, DrawModeCircle:
		return true
	}
	return false
}

// DrawState is the reconciliation state machine position.

type DrawState string

const (
	DrawStateIdle    DrawState = "IDLE"
	DrawStateDrawing DrawState = "DRAWING"
)

// RawStroke is the in-progress freehand point buffer. Mutable only while a
// drag is active; discarded wholesale on cancel and converted to a
// Geometry (or dropped as degenerate) on pointer-up. It is never part of
// the authoritative geometry list.
type RawStroke struct {
	Points orb.LineString `json:"points"`
	// lastX/lastY are the screen coordinates of the last sampled point,
	// used for the zoom-independent pixel decimation threshold.
	LastX float64 `json:"last_x"`
	LastY float64 `json:"last_y"`
}

// QuoteSession is the aggregate a drawing/quoting session mutates through
// the reconciliation state machine. All derived values (measurements,
// bids) are recomputed from the authoritative Geometries list plus the
// configuration fields; the Live*/Preview* fields belong to the live
// channel and are replaced, never merged, on finalize.
type QuoteSession struct {
	ID         string     `json:"id"`
	UnitSystem UnitSystem `json:"unit_system"`
	Mode       DrawMode   `json:"mode"`
	State      DrawState  `json:"state"`

	ActiveServiceID string `json:"active_service_id,omitempty"`
	// Smoothing is the freehand simplification level, 0 (off) to 10.
	Smoothing int `json:"smoothing"`
	// Margin is the configured margin fraction, 0 if unset.
	Margin float64 `json:"margin"`

	Templates        []ServiceTemplate  `json:"templates"`
	PricingConfig    *PricingConfig     `json:"pricing_config,omitempty"`
	RateOverrides    map[string]float64 `json:"rate_overrides,omitempty"`
	MinimumOverrides map[string]float64 `json:"minimum_overrides,omitempty"`

	// Geometries is the authoritative, committed geometry list.
	Geometries []Geometry `json:"geometries"`

	// Stroke is the active freehand buffer, non-nil only in DRAWING state.
	Stroke *RawStroke `json:"-"`
	// ClickBuffer accumulates discrete vertex clicks for the polygon and
	// line tools, and the first corner for the rectangle tool.
	ClickBuffer orb.LineString `json:"-"`

	// Committed channel: recomputed from Geometries on finalize.
	CommittedMeasurements Measurements `json:"committed_measurements"`
	CurrentBid            Bid          `json:"current_bid"`

	// Live channel: recomputed (throttled) while drawing; nil when idle.
	LiveMeasurements *Measurements `json:"live_measurements,omitempty"`
	PreviewBid       *Bid          `json:"preview_bid,omitempty"`

	// Undo/redo history of the geometry list.
	UndoStack [][]Geometry `json:"-"`
	RedoStack [][]Geometry `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayMeasurements returns the measurements the UI should show: the
// live snapshot while a shape is in progress, otherwise the committed one.
func (s *QuoteSession) DisplayMeasurements() Measurements {
	if s.LiveMeasurements != nil {
		return *s.LiveMeasurements
	}
	return s.CommittedMeasurements
}

// DisplayBid prefers the preview bid over the current bid so the shown
// total never jumps backward mid-draw.
func (s *QuoteSession) DisplayBid() Bid {
	if s.PreviewBid != nil {
		return *s.PreviewBid
	}
	return s.CurrentBid
}
