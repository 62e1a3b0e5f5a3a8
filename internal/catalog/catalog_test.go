package catalog

import (
	"testing"

	"geoquote/internal/domain/entities"
)

func TestNew(t *testing.T) {
	t.Run("later duplicates win but keep catalog order", func(t *testing.T) {
		c := New([]entities.ServiceTemplate{
			{ID: "sealcoating", Name: "Sealcoating", DefaultRate: 0.18},
			{ID: "striping", Name: "Line Striping", DefaultRate: 1.1},
			{ID: "sealcoating", Name: "Sealcoating (edited)", DefaultRate: 0.22},
		})

		got, ok := c.Template("sealcoating")
		if !ok {
			t.Fatal("expected sealcoating to resolve")
		}
		if got.Name != "Sealcoating (edited)" || got.DefaultRate != 0.22 {
			t.Fatalf("expected the edited entry to win, got %+v", got)
		}

		all := c.Templates()
		if len(all) != 2 {
			t.Fatalf("expected 2 templates, got %d", len(all))
		}
		if all[0].ID != "sealcoating" || all[1].ID != "striping" {
			t.Fatalf("expected first-seen order, got %v then %v", all[0].ID, all[1].ID)
		}
	})

	t.Run("unknown service does not resolve", func(t *testing.T) {
		c := New(nil)
		if _, ok := c.Template("mystery"); ok {
			t.Fatal("expected unknown service to miss")
		}
		if _, ok := c.MeasurementChannel("mystery"); ok {
			t.Fatal("expected unknown channel to miss")
		}
	})
}

func TestMeasurementChannel(t *testing.T) {
	c := New([]entities.ServiceTemplate{
		{ID: "sealcoating", MeasurementType: entities.MeasurementTypeArea},
		{ID: "striping", MeasurementType: entities.MeasurementTypeLength},
		{ID: "inlet", MeasurementType: entities.MeasurementTypeCount},
	})

	cases := []struct {
		serviceID string
		want      entities.MeasurementType
	}{
		{"sealcoating", entities.MeasurementTypeArea},
		{"striping", entities.MeasurementTypeLength},
		{"inlet", entities.MeasurementTypeCount},
	}
	for _, tc := range cases {
		got, ok := c.MeasurementChannel(tc.serviceID)
		if !ok || got != tc.want {
			t.Fatalf("%s: expected %v, got %v (ok=%v)", tc.serviceID, tc.want, got, ok)
		}
	}
}

func TestIndustries(t *testing.T) {
	t.Run("three presets ship with stable rates", func(t *testing.T) {
		industries := Industries()
		if len(industries) != 3 {
			t.Fatalf("expected 3 industries, got %d", len(industries))
		}
		if industries[0].ID != "asphalt" {
			t.Fatalf("expected asphalt to be the default preset, got %v", industries[0].ID)
		}

		var sealcoating entities.ServiceTemplate
		for _, tpl := range industries[0].Templates {
			if tpl.ID == "sealcoating" {
				sealcoating = tpl
			}
		}
		if sealcoating.DefaultRate != 0.18 || sealcoating.MinimumCharge != 450 {
			t.Fatalf("unexpected sealcoating preset: %+v", sealcoating)
		}
		if sealcoating.MeasurementType != entities.MeasurementTypeArea || sealcoating.UnitLabel != "sqft" {
			t.Fatalf("unexpected sealcoating channel: %+v", sealcoating)
		}
	})

	t.Run("every preset template names a billing unit and a rate", func(t *testing.T) {
		for _, ind := range Industries() {
			if len(ind.Templates) == 0 {
				t.Fatalf("industry %s has no templates", ind.ID)
			}
			for _, tpl := range ind.Templates {
				if tpl.UnitLabel == "" || tpl.DefaultRate <= 0 {
					t.Fatalf("industry %s template %s is incomplete: %+v", ind.ID, tpl.ID, tpl)
				}
			}
		}
	})
}

func TestIndustryTemplates(t *testing.T) {
	t.Run("known industry returns its templates", func(t *testing.T) {
		templates := IndustryTemplates("landscape")
		if len(templates) == 0 || templates[0].ID != "mowing" {
			t.Fatalf("expected landscape templates, got %+v", templates)
		}
	})

	t.Run("unknown or empty industry falls back to the default", func(t *testing.T) {
		fallback := IndustryTemplates("")
		if len(fallback) == 0 || fallback[0].ID != "sealcoating" {
			t.Fatalf("expected asphalt fallback, got %+v", fallback)
		}
		unknown := IndustryTemplates("submarine-detailing")
		if unknown[0].ID != "sealcoating" {
			t.Fatalf("expected asphalt fallback for unknown id, got %+v", unknown)
		}
	})
}
