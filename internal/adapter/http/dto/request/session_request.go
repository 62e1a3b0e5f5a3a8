package request

import (
	"strings"

	"geoquote/internal/domain/entities"
)

// CreateSessionRequest opens a new quote session. Both fields are
// optional: an unknown industry falls back to the default preset and an
// empty unit system defaults to imperial.
type CreateSessionRequest struct {
	IndustryID string `json:"industry_id"`
	UnitSystem string `json:"unit_system"`
}

func (r CreateSessionRequest) ResolveUnitSystem() entities.UnitSystem {
	if strings.TrimSpace(r.UnitSystem) == "" {
		return entities.UnitSystemImperial
	}
	return entities.UnitSystem(strings.ToLower(strings.TrimSpace(r.UnitSystem)))
}

type ModeRequest struct {
	Mode string `json:"mode" binding:"required"`
}

func (r ModeRequest) ToMode() entities.DrawMode {
	return entities.DrawMode(strings.ToLower(strings.TrimSpace(r.Mode)))
}

type ActiveServiceRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
}

type UnitSystemRequest struct {
	UnitSystem string `json:"unit_system" binding:"required"`
}

func (r UnitSystemRequest) ToUnitSystem() entities.UnitSystem {
	return entities.UnitSystem(strings.ToLower(strings.TrimSpace(r.UnitSystem)))
}

// SmoothingRequest sets the freehand simplification level. Level is a
// pointer so an explicit 0 (off) survives binding.
type SmoothingRequest struct {
	Level *int `json:"level" binding:"required"`
}

// MarginRequest sets the bid margin fraction. Margin is a pointer so an
// explicit 0 survives binding.
type MarginRequest struct {
	Margin *float64 `json:"margin" binding:"required"`
}

type OverrideRequest struct {
	Value float64 `json:"value" binding:"required"`
}

type ServiceTypeRequest struct {
	ID                  string  `json:"id" binding:"required"`
	PricingModel        string  `json:"pricing_model"`
	DefaultHourlyRate   float64 `json:"default_hourly_rate"`
	DefaultCrewSize     float64 `json:"default_crew_size"`
	ProductionRate      float64 `json:"production_rate"`
	MaterialCostPerUnit float64 `json:"material_cost_per_unit"`
	MaterialWasteFactor float64 `json:"material_waste_factor"`
}

type PricingConfigRequest struct {
	ID              string               `json:"id"`
	LaborBurdenRate float64              `json:"labor_burden_rate" binding:"required"`
	ServiceTypes    []ServiceTypeRequest `json:"service_types"`
}

func (r PricingConfigRequest) ToEntity() entities.PricingConfig {
	cfg := entities.PricingConfig{
		ID:              r.ID,
		LaborBurdenRate: r.LaborBurdenRate,
		ServiceTypes:    make([]entities.ServiceType, 0, len(r.ServiceTypes)),
	}
	for _, st := range r.ServiceTypes {
		cfg.ServiceTypes = append(cfg.ServiceTypes, entities.ServiceType{
			ID:                  st.ID,
			PricingModel:        entities.PricingModel(st.PricingModel),
			DefaultHourlyRate:   st.DefaultHourlyRate,
			DefaultCrewSize:     st.DefaultCrewSize,
			ProductionRate:      st.ProductionRate,
			MaterialCostPerUnit: st.MaterialCostPerUnit,
			MaterialWasteFactor: st.MaterialWasteFactor,
		})
	}
	return cfg
}
