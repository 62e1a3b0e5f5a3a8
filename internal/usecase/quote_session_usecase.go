package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"geoquote/internal/catalog"
	"geoquote/internal/domain/entities"
	"geoquote/internal/geometry"
	"geoquote/internal/measure"
	"geoquote/internal/pricing"
	"geoquote/internal/usecase/interfaces"
	"geoquote/pkg/throttle"
)

var (
	ErrSessionNotFound      = errors.New("session not found")
	ErrInvalidSessionID     = errors.New("invalid session id")
	ErrInvalidUnitSystem    = errors.New("invalid unit system")
	ErrInvalidMode          = errors.New("invalid draw mode")
	ErrUnknownService       = errors.New("unknown service id")
	ErrInvalidSmoothing     = errors.New("smoothing must be between 0 and 10")
	ErrInvalidMargin        = errors.New("margin must be a non-negative fraction")
	ErrInvalidPricingConfig = errors.New("pricing config violates invariants")
	ErrInvalidRadius        = errors.New("radius must be a positive number")
	ErrInvalidOverride      = errors.New("override must be a positive number")
)

// liveInterval bounds live-channel recomputation to roughly the display
// refresh rate during continuous pointer movement.
const liveInterval = 16 * time.Millisecond

// IQuoteSessionUseCase exposes the geometry-to-quote pipeline: every
// input event of a drawing session comes through here, and every derived
// output (measurements, bid, export) is read through here. All operations
// are synchronous transforms over one consistent session snapshot.
type IQuoteSessionUseCase interface {
	CreateSession(ctx context.Context, industryID string, system entities.UnitSystem) (entities.QuoteSession, error)
	GetSession(ctx context.Context, id string) (entities.QuoteSession, error)
	DeleteSession(ctx context.Context, id string) error

	SetMode(ctx context.Context, id string, mode entities.DrawMode) (entities.QuoteSession, error)
	SetActiveService(ctx context.Context, id, serviceID string) (entities.QuoteSession, error)
	SetUnitSystem(ctx context.Context, id string, system entities.UnitSystem) (entities.QuoteSession, error)
	SetSmoothing(ctx context.Context, id string, level int) (entities.QuoteSession, error)
	SetMargin(ctx context.Context, id string, margin float64) (entities.QuoteSession, error)
	SetPricingConfig(ctx context.Context, id string, cfg entities.PricingConfig) (entities.QuoteSession, error)
	SetRateOverride(ctx context.Context, id, serviceID string, rate float64) (entities.QuoteSession, error)
	SetMinimumOverride(ctx context.Context, id, serviceID string, minimum float64) (entities.QuoteSession, error)

	PointerDown(ctx context.Context, id string, sample geometry.PointerSample) (entities.QuoteSession, error)
	PointerMove(ctx context.Context, id string, sample geometry.PointerSample) (entities.QuoteSession, bool, error)
	PointerUp(ctx context.Context, id string) (entities.QuoteSession, error)
	CancelStroke(ctx context.Context, id string) (entities.QuoteSession, error)

	AddVertex(ctx context.Context, id string, point orb.Point) (entities.QuoteSession, error)
	FinishShape(ctx context.Context, id string) (entities.QuoteSession, error)
	AddCircle(ctx context.Context, id string, center orb.Point, radius float64) (entities.QuoteSession, error)

	RemoveGeometry(ctx context.Context, id, geometryID string) (entities.QuoteSession, error)
	Clear(ctx context.Context, id string) (entities.QuoteSession, error)
	Undo(ctx context.Context, id string) (entities.QuoteSession, error)
	Redo(ctx context.Context, id string) (entities.QuoteSession, error)

	Measurements(ctx context.Context, id string) (entities.Measurements, error)
	Bid(ctx context.Context, id string) (entities.Bid, error)
	Export(ctx context.Context, id string) (*geojson.FeatureCollection, error)
}

type QuoteSessionUseCase struct {
	repo  interfaces.IQuoteSessionRepository
	risk  pricing.RiskPolicy
	clock throttle.Clock

	// gates holds one live-channel throttle per session. Requests for
	// different sessions run on different goroutines, so the map itself
	// needs its own lock.
	gatesMu sync.Mutex
	gates   map[string]*throttle.Gate
}

var _ IQuoteSessionUseCase = (*QuoteSessionUseCase)(nil)

// Option configures a QuoteSessionUseCase.
type Option func(*QuoteSessionUseCase)

// WithClock replaces the wall clock used for timestamps and the live
// throttle, for tests.
func WithClock(c throttle.Clock) Option {
	return func(u *QuoteSessionUseCase) { u.clock = c }
}

// WithRiskPolicy replaces the default risk-flag thresholds.
func WithRiskPolicy(p pricing.RiskPolicy) Option {
	return func(u *QuoteSessionUseCase) { u.risk = p }
}

func NewQuoteSessionUseCase(repo interfaces.IQuoteSessionRepository, opts ...Option) *QuoteSessionUseCase {
	u := &QuoteSessionUseCase{
		repo:  repo,
		risk:  pricing.DefaultRiskPolicy(),
		clock: time.Now,
		gates: make(map[string]*throttle.Gate),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *QuoteSessionUseCase) CreateSession(ctx context.Context, industryID string, system entities.UnitSystem) (entities.QuoteSession, error) {
	if system == "" {
		system = entities.UnitSystemMetric
	}
	if !system.Valid() {
		return entities.QuoteSession{}, ErrInvalidUnitSystem
	}

	now := u.clock().UTC()
	templates := catalog.IndustryTemplates(industryID)
	s := entities.QuoteSession{
		ID:                    uuid.NewString(),
		UnitSystem:            system,
		Mode:                  entities.DrawModePan,
		State:                 entities.DrawStateIdle,
		Templates:             templates,
		Geometries:            []entities.Geometry{},
		CommittedMeasurements: measure.Aggregate(nil),
		CurrentBid:            entities.EmptyBid(0),
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if len(templates) > 0 {
		s.ActiveServiceID = templates[0].ID
	}
	return u.repo.Create(ctx, s)
}

func (u *QuoteSessionUseCase) GetSession(ctx context.Context, id string) (entities.QuoteSession, error) {
	return u.load(ctx, id)
}

func (u *QuoteSessionUseCase) DeleteSession(ctx context.Context, id string) error {
	if _, err := u.load(ctx, id); err != nil {
		return err
	}
	u.dropGate(id)
	return u.repo.Delete(ctx, id)
}

func (u *QuoteSessionUseCase) SetMode(ctx context.Context, id string, mode entities.DrawMode) (entities.QuoteSession, error) {
	if !mode.Valid() {
		return entities.QuoteSession{}, ErrInvalidMode
	}
	s, err := u.load(ctx, id)
	if err != nil {
		return entities.QuoteSession{}, err
	}
	// Switching tools mid-draw abandons the in-progress input.
	u.discardInProgress(&s)
	s.Mode = mode
	return u.save(ctx, s)
}

func (u *QuoteSessionUseCase) SetActiveService(ctx context.Context, id, serviceID string) (entities.QuoteSession, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return entities.QuoteSession{}, err
	}
	cat := catalog.New(s.Templates)
	channel, ok := cat.MeasurementChannel(serviceID)
	if !ok {
		return entities.QuoteSession{}, ErrUnknownService
	}
	s.ActiveServiceID = serviceID
	// The service's measurement type auto-arms the matching drawing mode.
	switch channel {
	case entities.MeasurementTypeArea:
		s.Mode = entities.DrawModePolygon
	case entities.MeasurementTypeLength:
		s.Mode = entities.DrawModeLine
	case entities.MeasurementTypeCount:
		s.Mode = entities.DrawModePan
	}
	u.discardInProgress(&s)
	return u.save(ctx, s)
}

// SetUnitSystem switches display units. Stored measurement values stay in
// their canonical metric base units; only converted display output
// changes.
func (u *QuoteSessionUseCase) SetUnitSystem(ctx context.Context, id string, system entities.UnitSystem) (entities.QuoteSession, error) {
	if !system.Valid() {
		return entities.QuoteSession{}, ErrInvalidUnitSystem
	}
	s, err := u.load(ctx, id)
	if err != nil {
		return entities.QuoteSession{}, err
	}
	s.UnitSystem = system
	return u.save(ctx, s)
}

func (u *QuoteSessionUseCase) SetSmoothing(ctx context.Context, id string, level int) (entities.QuoteSession, error) {
	if level < 0 || level > geometry.MaxSmoothing {
		return entities.QuoteSession{}, ErrInvalidSmoothing
	}
	s, err := u.load(ctx, id)
	if err != nil {
		return entities.QuoteSession{}, err
	}
	s.Smoothing = level
	return u.save(ctx, s)
}

func (u *QuoteSessionUseCase) SetMargin(ctx context.Context, id string, margin float64) (entities.QuoteSession, error) {
	if margin < 0 {
		return entities.QuoteSession{}, ErrInvalidMargin
	}
	s, err := u.load(ctx, id)
	if err != nil {
		return entities.QuoteSession{}, err
	}
	s.Margin = margin
	u.recompute(&s)
	return u.save(ctx, s)
}

func (u *QuoteSessionUseCase) SetPricingConfig(ctx context.Context, id string, cfg entities.PricingConfig) (entities.QuoteSession, error) {
	if cfg.LaborBurdenRate <= 0 {
		return entities.QuoteSession{}, ErrInvalidPricingConfig
	}
	for _, st := range cfg.ServiceTypes {
		if st.ProductionRate <= 0 {
			return entities.QuoteSession{}, ErrInvalidPricingConfig
		}
	}
	s, err := u.load(ctx, id)
	if err != nil {
		return entities.QuoteSession{}, err
	}
	s.PricingConfig = &cfg
	u.recompute(&s)
	return u.save(ctx, s)
}

func (u *QuoteSessionUseCase) SetRateOverride(ctx context.Context, id, serviceID string, rate float64) (entities.QuoteSession, error) {
	if rate <= 0 {
		return entities.QuoteSession{}, ErrInvalidOverride
	}
	s, err := u.load(ctx, id)
	if err != nil {
		return entities.QuoteSession{}, err
	}
	if _, ok := catalog.New(s.Templates).Template(serviceID); !ok {
		return entities.QuoteSession{}, ErrUnknownService
	}
	if s.RateOverrides == nil {
		s.RateOverrides = make(map[string]float64)
	}
	s.RateOverrides[serviceID] = rate
	u.recompute(&s)
	return u.save(ctx, s)
}

func (u *QuoteSessionUseCase) SetMinimumOverride(ctx context.Context, id, serviceID string, minimum float64) (entities.QuoteSession, error) {
	if minimum < 0 {
		return entities.QuoteSession{}, ErrInvalidOverride
	}
	s, err := u.load(ctx, id)
	if err != nil {
		return entities.QuoteSession{}, err
	}
	if _, ok := catalog.New(s.Templates).Template(serviceID); !ok {
		return entities.QuoteSession{}, ErrUnknownService
	}
	if s.MinimumOverrides == nil {
		s.MinimumOverrides = make(map[string]float64)
	}
	s.MinimumOverrides[serviceID] = minimum
	u.recompute(&s)
	return u.save(ctx, s)
}

// PointerDown arms the freehand stroke. In any other mode a pointer-down
// is part of panning or discrete clicking and is ignored here.
func (u *QuoteSessionUseCase) PointerDown(ctx context.Context, id string, sample geometry.PointerSample) (entities.QuoteSession, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return entities.QuoteSession{}, err
	}
	if s.Mode != entities.DrawModeFreehand {
		return s, nil
	}
	s.Stroke = &entities.RawStroke{}
	geometry.SampleStroke(s.Stroke, sample)
	s.State = entities.DrawStateDrawing
	u.gate(id).Reset()
	return u.save(ctx, s)
}

// PointerMove samples the active stroke and, when the throttle admits it,
// recomputes the live channel. The returned bool reports whether a live
// recomputation happened, so callers can count throttled updates.
func (u *QuoteSessionUseCase) PointerMove(ctx context.Context, id string, sample geometry.PointerSample) (entities.QuoteSession, bool, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return entities.QuoteSession{}, false, err
	}
	if s.Stroke == nil {
		return s, false, nil
	}
	if !geometry.SampleStroke(s.Stroke, sample) {
		return s, false, nil
	}
	updated := false
	if u.gate(id).Allow() {
		u.recomputeLive(&s)
		updated = true
	} else {
		throttledUpdatesTotal.Inc()
	}
	saved, err := u.save(ctx, s)
	return saved, updated, err
}

// PointerUp finalizes the freehand stroke: a valid stroke becomes one
// committed Geometry, a degenerate one is silently dropped. Either way
// the session returns to Idle and the live channel is cleared.
func (u *QuoteSessionUseCase) PointerUp(ctx context.Context, id string) (entities.QuoteSession, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return entities.QuoteSession{}, err
	}
	if s.Stroke == nil {
		return s, nil
	}
	ring, ok := geometry.FinishStroke(s.Stroke.Points, s.Smoothing)
	u.discardInProgress(&s)
	if ok {
		u.commitRing(&s, ring)
	} else {
		rejectedShapesTotal.Inc()
	}
	return u.save(ctx, s)
}

// CancelStroke discards all in-progress input with no partial geometry
// committed. Always safe; committed state is untouched.
func (u *QuoteSessionUseCase) CancelStroke(ctx context.Context, id string) (entities.QuoteSession, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return entities.QuoteSession{}, err
	}
	u.discardInProgress(&s)
	return u.save(ctx, s)
}

// AddVertex records one discrete click for the polygon, line and
// rectangle tools. The rectangle tool finalizes on its second corner; the
// other tools accumulate until FinishShape.
func (u *QuoteSessionUseCase) AddVertex(ctx context.Context, id string, point orb.Point) (entities.QuoteSession, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return entities.QuoteSession{}, err
	}

	switch s.Mode {
	case entities.DrawModeRectangle:
		if len(s.ClickBuffer) == 0 {
			s.ClickBuffer = orb.LineString{point}
			s.State = entities.DrawStateDrawing
		} else {
			first := s.ClickBuffer[0]
			s.ClickBuffer = nil
			s.State = entities.DrawStateIdle
			if ring, ok := geometry.Rectangle(first, point); ok {
				u.commitRing(&s, ring)
			}
		}
	case entities.DrawModePolygon, entities.DrawModeLine:
		s.ClickBuffer = append(s.ClickBuffer, point)
		s.State = entities.DrawStateDrawing
		u.recomputeLive(&s)
	default:
		return s, nil
	}
	return u.save(ctx, s)
}

// FinishShape ends a polygon or line click sequence (the double-click /
// enter gesture). Degenerate sequences are dropped with no error.
func (u *QuoteSessionUseCase) FinishShape(ctx context.Context, id string) (entities.QuoteSession, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return entities.QuoteSession{}, err
	}
	clicks := s.ClickBuffer
	mode := s.Mode
	u.discardInProgress(&s)

	switch mode {
	case entities.DrawModePolygon:
		if ring, ok := geometry.Polygon(clicks); ok {
			u.commitRing(&s, ring)
		} else {
			rejectedShapesTotal.Inc()
		}
	case entities.DrawModeLine:
		if path, ok := geometry.Line(clicks); ok {
			u.commitPath(&s, path)
		} else {
			rejectedShapesTotal.Inc()
		}
	}
	return u.save(ctx, s)
}

// AddCircle commits the circle tool: a clicked center plus an operator
// supplied radius in the active unit system.
func (u *QuoteSessionUseCase) AddCircle(ctx context.Context, id string, center orb.Point, radius float64) (entities.QuoteSession, error) {
	if radius <= 0 {
		return entities.QuoteSession{}, ErrInvalidRadius
	}
	s, err := u.load(ctx, id)
	if err != nil {
		return entities.QuoteSession{}, err
	}
	// Committing a circle abandons any in-progress input, like a tool
	// switch, so the live channel never outlives the commit.
	u.discardInProgress(&s)
	if ring, ok := geometry.Circle(center, radius, s.UnitSystem); ok {
		u.commitRing(&s, ring)
	}
	return u.save(ctx, s)
}

func (u *QuoteSessionUseCase) RemoveGeometry(ctx context.Context, id, geometryID string) (entities.QuoteSession, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return entities.QuoteSession{}, err
	}
	kept := make([]entities.Geometry, 0, len(s.Geometries))
	for _, g := range s.Geometries {
		if g.ID != geometryID {
			kept = append(kept, g)
		}
	}
	if len(kept) == len(s.Geometries) {
		return s, nil
	}
	u.pushHistory(&s)
	s.Geometries = kept
	u.recompute(&s)
	return u.save(ctx, s)
}

// Clear removes every geometry and resets both measurement channels to
// empty atomically, including any in-progress stroke, so no stale preview
// survives a clear issued mid-draw.
func (u *QuoteSessionUseCase) Clear(ctx context.Context, id string) (entities.QuoteSession, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return entities.QuoteSession{}, err
	}
	u.pushHistory(&s)
	s.Geometries = []entities.Geometry{}
	u.discardInProgress(&s)
	u.recompute(&s)
	return u.save(ctx, s)
}

func (u *QuoteSessionUseCase) Undo(ctx context.Context, id string) (entities.QuoteSession, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return entities.QuoteSession{}, err
	}
	if len(s.UndoStack) == 0 {
		return s, nil
	}
	s.RedoStack = append(s.RedoStack, s.Geometries)
	s.Geometries = s.UndoStack[len(s.UndoStack)-1]
	s.UndoStack = s.UndoStack[:len(s.UndoStack)-1]
	u.recompute(&s)
	return u.save(ctx, s)
}

func (u *QuoteSessionUseCase) Redo(ctx context.Context, id string) (entities.QuoteSession, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return entities.QuoteSession{}, err
	}
	if len(s.RedoStack) == 0 {
		return s, nil
	}
	s.UndoStack = append(s.UndoStack, s.Geometries)
	s.Geometries = s.RedoStack[len(s.RedoStack)-1]
	s.RedoStack = s.RedoStack[:len(s.RedoStack)-1]
	u.recompute(&s)
	return u.save(ctx, s)
}

func (u *QuoteSessionUseCase) Measurements(ctx context.Context, id string) (entities.Measurements, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return entities.Measurements{}, err
	}
	return s.DisplayMeasurements(), nil
}

func (u *QuoteSessionUseCase) Bid(ctx context.Context, id string) (entities.Bid, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return entities.Bid{}, err
	}
	return s.DisplayBid(), nil
}

func (u *QuoteSessionUseCase) Export(ctx context.Context, id string) (*geojson.FeatureCollection, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return measure.FeatureCollection(s.Geometries), nil
}

// --- internals ---

func (u *QuoteSessionUseCase) load(ctx context.Context, id string) (entities.QuoteSession, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuoteSession{}, ErrInvalidSessionID
	}
	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.QuoteSession{}, err
	}
	if s.ID == "" {
		return entities.QuoteSession{}, ErrSessionNotFound
	}
	return s, nil
}

func (u *QuoteSessionUseCase) save(ctx context.Context, s entities.QuoteSession) (entities.QuoteSession, error) {
	s.UpdatedAt = u.clock().UTC()
	return u.repo.Save(ctx, s)
}

func (u *QuoteSessionUseCase) gate(sessionID string) *throttle.Gate {
	u.gatesMu.Lock()
	defer u.gatesMu.Unlock()
	g, ok := u.gates[sessionID]
	if !ok {
		g = throttle.New(liveInterval, throttle.WithClock(u.clock))
		u.gates[sessionID] = g
	}
	return g
}

func (u *QuoteSessionUseCase) dropGate(sessionID string) {
	u.gatesMu.Lock()
	defer u.gatesMu.Unlock()
	delete(u.gates, sessionID)
}

// discardInProgress drops the stroke and click buffer and empties the
// live channel, returning the state machine to Idle.
func (u *QuoteSessionUseCase) discardInProgress(s *entities.QuoteSession) {
	s.Stroke = nil
	s.ClickBuffer = nil
	s.State = entities.DrawStateIdle
	s.LiveMeasurements = nil
	s.PreviewBid = nil
}

// pushHistory snapshots the geometry list for undo and invalidates redo.
func (u *QuoteSessionUseCase) pushHistory(s *entities.QuoteSession) {
	snapshot := make([]entities.Geometry, len(s.Geometries))
	copy(snapshot, s.Geometries)
	s.UndoStack = append(s.UndoStack, snapshot)
	s.RedoStack = nil
}

func (u *QuoteSessionUseCase) commitRing(s *entities.QuoteSession, ring orb.Ring) {
	res, ok := measure.Ring(ring)
	if !ok {
		return
	}
	now := u.clock().UTC()
	u.pushHistory(s)
	s.Geometries = append(s.Geometries, entities.Geometry{
		ID:               uuid.NewString(),
		ServiceID:        s.ActiveServiceID,
		Kind:             entities.GeometryKindPolygon,
		Ring:             ring,
		MeasurementValue: res.AreaSqMeters,
		AreaSqMeters:     res.AreaSqMeters,
		PerimeterMeters:  res.PerimeterMeters,
		CreatedAt:        now,
		UpdatedAt:        now,
	})
	u.recompute(s)
}

func (u *QuoteSessionUseCase) commitPath(s *entities.QuoteSession, path orb.LineString) {
	res, ok := measure.Line(path)
	if !ok {
		return
	}
	now := u.clock().UTC()
	u.pushHistory(s)
	s.Geometries = append(s.Geometries, entities.Geometry{
		ID:               uuid.NewString(),
		ServiceID:        s.ActiveServiceID,
		Kind:             entities.GeometryKindPolyline,
		Path:             path,
		MeasurementValue: res.PerimeterMeters,
		PerimeterMeters:  res.PerimeterMeters,
		CreatedAt:        now,
		UpdatedAt:        now,
	})
	u.recompute(s)
}

// recompute refreshes the committed channel from the authoritative
// geometry list.
func (u *QuoteSessionUseCase) recompute(s *entities.QuoteSession) {
	s.CommittedMeasurements = measure.Aggregate(s.Geometries)
	s.CurrentBid = u.assemble(s, s.Geometries)
}

// recomputeLive rebuilds the live channel from the committed geometries
// plus a provisional shape built from the in-progress input. The
// provisional shape never joins the authoritative list.
func (u *QuoteSessionUseCase) recomputeLive(s *entities.QuoteSession) {
	geometries := s.Geometries
	if provisional, ok := u.provisional(s); ok {
		geometries = append(append([]entities.Geometry{}, s.Geometries...), provisional)
	}
	live := measure.Aggregate(geometries)
	bid := u.assemble(s, geometries)
	s.LiveMeasurements = &live
	s.PreviewBid = &bid
	liveRecomputesTotal.Inc()
}

func (u *QuoteSessionUseCase) provisional(s *entities.QuoteSession) (entities.Geometry, bool) {
	var points orb.LineString
	switch {
	case s.Stroke != nil:
		points = s.Stroke.Points
	case len(s.ClickBuffer) > 0:
		points = s.ClickBuffer
	default:
		return entities.Geometry{}, false
	}

	if s.Mode == entities.DrawModeLine {
		path, ok := geometry.Line(points)
		if !ok {
			return entities.Geometry{}, false
		}
		res, ok := measure.Line(path)
		if !ok {
			return entities.Geometry{}, false
		}
		return entities.Geometry{
			ID:               "preview",
			ServiceID:        s.ActiveServiceID,
			Kind:             entities.GeometryKindPolyline,
			Path:             path,
			MeasurementValue: res.PerimeterMeters,
			PerimeterMeters:  res.PerimeterMeters,
		}, true
	}

	ring, ok := geometry.Polygon(points)
	if !ok {
		return entities.Geometry{}, false
	}
	res, ok := measure.Ring(ring)
	if !ok {
		return entities.Geometry{}, false
	}
	return entities.Geometry{
		ID:               "preview",
		ServiceID:        s.ActiveServiceID,
		Kind:             entities.GeometryKindPolygon,
		Ring:             ring,
		MeasurementValue: res.AreaSqMeters,
		AreaSqMeters:     res.AreaSqMeters,
		PerimeterMeters:  res.PerimeterMeters,
	}, true
}

func (u *QuoteSessionUseCase) assemble(s *entities.QuoteSession, geometries []entities.Geometry) entities.Bid {
	return pricing.AssembleBid(pricing.AssembleInput{
		Geometries:       geometries,
		Templates:        s.Templates,
		Config:           s.PricingConfig,
		Margin:           s.Margin,
		RateOverrides:    s.RateOverrides,
		MinimumOverrides: s.MinimumOverrides,
		Risk:             u.risk,
	})
}
