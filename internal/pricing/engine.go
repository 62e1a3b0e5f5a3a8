// Package pricing derives effective per-unit rates from shop-rate
// configuration and assembles priced bids from measured geometry sets.
// Everything here is a pure, synchronous transform: same inputs, same
// bid, bit for bit.
package pricing

import "geoquote/internal/domain/entities"

// EffectiveRate derives the per-unit price of a service from its labor
// and material cost model:
//
//	laborCostPerUnit    = hourlyRate * crewSize * laborBurdenRate / productionRate
//	materialCostPerUnit = materialCost * wasteFactor (factor defaults to 1)
//	effectiveRate       = laborCostPerUnit + materialCostPerUnit
//
// ProductionRate > 0 is a config invariant validated upstream; the engine
// does not special-case zero.
func EffectiveRate(st entities.ServiceType, cfg entities.PricingConfig) float64 {
	laborCostPerUnit := st.DefaultHourlyRate * st.DefaultCrewSize * cfg.LaborBurdenRate / st.ProductionRate

	wasteFactor := st.MaterialWasteFactor
	if wasteFactor == 0 {
		wasteFactor = 1
	}
	materialCostPerUnit := st.MaterialCostPerUnit * wasteFactor

	return laborCostPerUnit + materialCostPerUnit
}

// LineItemSubtotal prices a quantity at a rate with a minimum-charge
// floor. Quantity must already be in the service's billing unit; this
// function never converts units.
func LineItemSubtotal(quantity, effectiveRate, minimumCharge float64) float64 {
	subtotal := quantity * effectiveRate
	if subtotal < minimumCharge {
		return minimumCharge
	}
	return subtotal
}
