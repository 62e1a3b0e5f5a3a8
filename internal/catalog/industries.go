package catalog

import "geoquote/internal/domain/entities"

// Industry is a bundled preset of service templates for one trade.
type Industry struct {
	ID          string                     `json:"id"`
	Name        string                     `json:"name"`
	Description string                     `json:"description"`
	Templates   []entities.ServiceTemplate `json:"templates"`
}

// Industries returns the built-in presets. The first entry is the default
// when no industry is selected.
func Industries() []Industry {
	return []Industry{
		{
			ID:          "asphalt",
			Name:        "Asphalt & Sealcoating",
			Description: "Parking lots, drive lanes, sealcoating, striping, crack repair.",
			Templates: []entities.ServiceTemplate{
				{ID: "sealcoating", Name: "Sealcoating", MeasurementType: entities.MeasurementTypeArea, UnitLabel: "sqft", DefaultRate: 0.18, MinimumCharge: 450},
				{ID: "crack-filling", Name: "Crack Filling", MeasurementType: entities.MeasurementTypeLength, UnitLabel: "ft", DefaultRate: 0.6, MinimumCharge: 250},
				{ID: "striping", Name: "Line Striping", MeasurementType: entities.MeasurementTypeLength, UnitLabel: "ft", DefaultRate: 1.1, MinimumCharge: 225},
			},
		},
		{
			ID:          "concrete",
			Name:        "Concrete & Flatwork",
			Description: "Flatwork pours, curb & gutter, sidewalk removal/replacement.",
			Templates: []entities.ServiceTemplate{
				{ID: "flatwork", Name: "Concrete Flatwork", MeasurementType: entities.MeasurementTypeArea, UnitLabel: "sqft", DefaultRate: 6.5, MinimumCharge: 1200},
				{ID: "sidewalk", Name: "Sidewalk Replace", MeasurementType: entities.MeasurementTypeArea, UnitLabel: "sqft", DefaultRate: 4.75, MinimumCharge: 900},
				{ID: "curb", Name: "Curb & Gutter", MeasurementType: entities.MeasurementTypeLength, UnitLabel: "ft", DefaultRate: 18, MinimumCharge: 800},
			},
		},
		{
			ID:          "landscape",
			Name:        "Landscaping & Grounds",
			Description: "Mowing acreage, mulch installs, edging, seasonal cleanups.",
			Templates: []entities.ServiceTemplate{
				{ID: "mowing", Name: "Mowing", MeasurementType: entities.MeasurementTypeArea, UnitLabel: "sqft", DefaultRate: 0.06, MinimumCharge: 150},
				{ID: "mulch", Name: "Mulch Install", MeasurementType: entities.MeasurementTypeArea, UnitLabel: "sqft", DefaultRate: 0.25, MinimumCharge: 250},
				{ID: "edging", Name: "Bed Edging", MeasurementType: entities.MeasurementTypeLength, UnitLabel: "ft", DefaultRate: 1.5, MinimumCharge: 200},
			},
		},
	}
}

// IndustryTemplates returns the templates for an industry id, falling
// back to the default industry when the id is unknown or empty.
func IndustryTemplates(industryID string) []entities.ServiceTemplate {
	industries := Industries()
	for _, ind := range industries {
		if ind.ID == industryID {
			return ind.Templates
		}
	}
	return industries[0].Templates
}
