package response

import (
	"geoquote/internal/catalog"
	"geoquote/internal/domain/entities"
)

type TemplateResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	MeasurementType string  `json:"measurement_type"`
	UnitLabel       string  `json:"unit_label"`
	DefaultRate     float64 `json:"default_rate"`
	MinimumCharge   float64 `json:"minimum_charge,omitempty"`
}

func FromTemplate(t entities.ServiceTemplate) TemplateResponse {
	return TemplateResponse{
		ID:              t.ID,
		Name:            t.Name,
		MeasurementType: string(t.MeasurementType),
		UnitLabel:       t.UnitLabel,
		DefaultRate:     t.DefaultRate,
		MinimumCharge:   t.MinimumCharge,
	}
}

type IndustryResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Templates   []TemplateResponse `json:"templates"`
}

func FromIndustry(ind catalog.Industry) IndustryResponse {
	templates := make([]TemplateResponse, 0, len(ind.Templates))
	for _, t := range ind.Templates {
		templates = append(templates, FromTemplate(t))
	}
	return IndustryResponse{
		ID:          ind.ID,
		Name:        ind.Name,
		Description: ind.Description,
		Templates:   templates,
	}
}
