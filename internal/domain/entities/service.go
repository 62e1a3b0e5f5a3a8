package entities

// MeasurementType determines which measurement channel a service consumes
// and which drawing mode is auto-armed when the service becomes active.

type MeasurementType string

const (
	MeasurementTypeArea   MeasurementType = "AREA"
	MeasurementTypeLength MeasurementType = "LENGTH"
	MeasurementTypeCount  MeasurementType = "COUNT"
)

// ServiceTemplate is an immutable catalog entry describing a billable
// service. Supplied externally as industry presets or configured by the
// operator; never mutated by the pipeline.
type ServiceTemplate struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	MeasurementType MeasurementType `json:"measurement_type"`
	// UnitLabel is the billing unit (sqft, sqm, ft, m, unit). Quantities
	// handed to the pricing engine are already converted to this unit.
	UnitLabel     string  `json:"unit_label"`
	DefaultRate   float64 `json:"default_rate"`
	MinimumCharge float64 `json:"minimum_charge,omitempty"`
}

// PricingModel classifies how a service type derives its effective rate.

type PricingModel string

const (
	PricingModelArea   PricingModel = "area"
	PricingModelLinear PricingModel = "linear"
	PricingModelHourly PricingModel = "hourly"
)

// ServiceType is the pricing-config variant of a service: instead of a
// flat rate it carries the labor and material inputs an effective per-unit
// rate is derived from.
//
// Invariant (enforced when a config is activated): ProductionRate > 0,
// it is a divisor in the effective-rate formula.
type ServiceType struct {
	ID                  string       `json:"id"`
	PricingModel        PricingModel `json:"pricing_model"`
	DefaultHourlyRate   float64      `json:"default_hourly_rate"`
	DefaultCrewSize     float64      `json:"default_crew_size"`
	ProductionRate      float64      `json:"production_rate"`
	MaterialCostPerUnit float64      `json:"material_cost_per_unit,omitempty"`
	MaterialWasteFactor float64      `json:"material_waste_factor,omitempty"`
}

// PricingConfig is the active shop-rate configuration. Shared read-only
// by the pipeline; one config is active at a time.
//
// Invariant: LaborBurdenRate > 0 and every ServiceType.ProductionRate > 0.
type PricingConfig struct {
	ID              string        `json:"id"`
	LaborBurdenRate float64       `json:"labor_burden_rate"`
	ServiceTypes    []ServiceType `json:"service_types"`
}

// ServiceTypeByID returns the service type for the given service id, or
// false when the config does not price that service.
func (c PricingConfig) ServiceTypeByID(serviceID string) (ServiceType, bool) {
	for _, st := range c.ServiceTypes {
		if st.ID == serviceID {
			return st, true
		}
	}
	return ServiceType{}, false
}
