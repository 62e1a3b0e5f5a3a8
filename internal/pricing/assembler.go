package pricing

import (
	"fmt"
	"math"
	"sort"

	"geoquote/internal/domain/entities"
	"geoquote/internal/units"
)

// RiskPolicy holds the advisory-flag thresholds. Thresholds are policy,
// not constants: callers may tune them per shop.
type RiskPolicy struct {
	// LowQuantityFraction flags a line whose metered value lands below
	// this fraction of its minimum charge.
	LowQuantityFraction float64
	// SliverRatio flags polygons whose isoperimetric ratio 4πA/P² falls
	// below this value, which suggests an implausible sliver shape.
	SliverRatio float64
}

// DefaultRiskPolicy returns the built-in thresholds.
func DefaultRiskPolicy() RiskPolicy {
	return RiskPolicy{LowQuantityFraction: 0.25, SliverRatio: 0.02}
}

// AssembleInput is one consistent snapshot of everything a bid derives
// from. The assembler reads it and nothing else.
type AssembleInput struct {
	Geometries       []entities.Geometry
	Templates        []entities.ServiceTemplate
	Config           *entities.PricingConfig
	Margin           float64
	RateOverrides    map[string]float64
	MinimumOverrides map[string]float64
	Risk             RiskPolicy
}

// AssembleBid builds a bid from the snapshot: geometries grouped by
// service, one line per service with quantity > 0, minimum charges
// applied, margin on top, advisory risk flags attached. Reassembly is
// idempotent and order-independent; lines are sorted by service id so the
// same snapshot always yields an identical bid.
func AssembleBid(in AssembleInput) entities.Bid {
	bid := entities.EmptyBid(in.Margin)

	templates := make(map[string]entities.ServiceTemplate, len(in.Templates))
	for _, t := range in.Templates {
		templates[t.ID] = t
	}

	quantities := groupQuantities(in.Geometries, templates)

	serviceIDs := make([]string, 0, len(quantities))
	for id := range quantities {
		serviceIDs = append(serviceIDs, id)
	}
	sort.Strings(serviceIDs)

	for _, serviceID := range serviceIDs {
		quantity := quantities[serviceID]
		if quantity <= 0 {
			continue
		}
		template := templates[serviceID]

		rate, ok := resolveRate(template, in.Config, in.RateOverrides, &bid)
		if !ok {
			continue
		}
		minimum := template.MinimumCharge
		if override, exists := in.MinimumOverrides[serviceID]; exists {
			minimum = override
		}

		subtotal := LineItemSubtotal(quantity, rate, minimum)
		bid.LineItems = append(bid.LineItems, entities.QuoteLine{
			ID:          serviceID,
			ServiceName: template.Name,
			Quantity:    quantity,
			Unit:        template.UnitLabel,
			Subtotal:    subtotal,
		})
		bid.Subtotal += subtotal

		if minimum > 0 && quantity*rate < in.Risk.LowQuantityFraction*minimum {
			bid.RiskFlags = append(bid.RiskFlags, entities.RiskFlag{
				Severity: entities.RiskSeverityWarning,
				Message:  fmt.Sprintf("%s is metered far below its minimum charge; the floor of %.2f applies", template.Name, minimum),
			})
		}
	}

	bid.RiskFlags = append(bid.RiskFlags, shapeFlags(in.Geometries, in.Risk)...)

	bid.MarginAmount = bid.Subtotal * bid.Margin
	bid.Total = bid.Subtotal + bid.MarginAmount
	return bid
}

// groupQuantities sums each service's billing quantity in its template's
// unit. AREA services consume measured area, LENGTH services consume
// boundary/line length, COUNT services bill one unit per shape.
func groupQuantities(geometries []entities.Geometry, templates map[string]entities.ServiceTemplate) map[string]float64 {
	quantities := make(map[string]float64)
	for _, g := range geometries {
		template, ok := templates[g.ServiceID]
		if !ok {
			continue
		}
		switch template.MeasurementType {
		case entities.MeasurementTypeArea:
			quantities[g.ServiceID] += units.QuantityForLabel(g.AreaSqMeters, template.UnitLabel)
		case entities.MeasurementTypeLength:
			quantities[g.ServiceID] += units.QuantityForLabel(g.PerimeterMeters, template.UnitLabel)
		case entities.MeasurementTypeCount:
			quantities[g.ServiceID]++
		}
	}
	return quantities
}

// resolveRate picks the per-unit rate for a service: operator override
// first, then the effective rate from the active pricing config, then the
// template's flat default. A service whose config violates the
// production-rate invariant (or that has no rate at all) is omitted from
// the bid and surfaced as an error flag instead of crashing assembly.
func resolveRate(template entities.ServiceTemplate, cfg *entities.PricingConfig, overrides map[string]float64, bid *entities.Bid) (float64, bool) {
	if override, ok := overrides[template.ID]; ok && override > 0 {
		return override, true
	}

	if cfg != nil {
		if st, ok := cfg.ServiceTypeByID(template.ID); ok {
			if st.ProductionRate <= 0 || cfg.LaborBurdenRate <= 0 {
				bid.RiskFlags = append(bid.RiskFlags, entities.RiskFlag{
					Severity: entities.RiskSeverityError,
					Message:  fmt.Sprintf("%s has an invalid pricing configuration; line omitted", template.Name),
				})
				return 0, false
			}
			return EffectiveRate(st, *cfg), true
		}
	}

	if template.DefaultRate > 0 {
		return template.DefaultRate, true
	}

	bid.RiskFlags = append(bid.RiskFlags, entities.RiskFlag{
		Severity: entities.RiskSeverityError,
		Message:  fmt.Sprintf("%s has no configured rate; line omitted", template.Name),
	})
	return 0, false
}

func shapeFlags(geometries []entities.Geometry, policy RiskPolicy) []entities.RiskFlag {
	var flags []entities.RiskFlag
	for _, g := range geometries {
		if g.Kind != entities.GeometryKindPolygon || g.PerimeterMeters <= 0 {
			continue
		}
		ratio := 4 * math.Pi * g.AreaSqMeters / (g.PerimeterMeters * g.PerimeterMeters)
		if ratio < policy.SliverRatio {
			flags = append(flags, entities.RiskFlag{
				Severity: entities.RiskSeverityWarning,
				Message:  fmt.Sprintf("shape %s has an implausible area/perimeter ratio; check the drawing", g.ID),
			})
		}
	}
	return flags
}
