package measure

import (
	"math"
	"testing"

	"github.com/paulmach/orb"

	"geoquote/internal/domain/entities"
	"geoquote/internal/units"
)

const metersPerDegreeLat = 2 * math.Pi * orb.EarthRadius / 360

// rectRing builds a geographic rectangle of the given metric dimensions
// with its southwest corner at (lng, lat).
func rectRing(lng, lat, widthMeters, heightMeters float64) orb.Ring {
	dLat := heightMeters / metersPerDegreeLat
	dLng := widthMeters / (metersPerDegreeLat * math.Cos(lat*math.Pi/180))
	return orb.Ring{
		{lng, lat},
		{lng + dLng, lat},
		{lng + dLng, lat + dLat},
		{lng, lat + dLat},
		{lng, lat},
	}
}

func within(t *testing.T, got, want, tolerance float64, what string) {
	t.Helper()
	if math.Abs(got-want)/want > tolerance {
		t.Fatalf("%s: expected ~%v (±%.0f%%), got %v", what, want, tolerance*100, got)
	}
}

func TestRing(t *testing.T) {
	t.Run("mid-latitude rectangle measures to contractor tolerance", func(t *testing.T) {
		// 100 ft x 50 ft parking pad near Fort Worth.
		width := 100 / units.FeetPerMeter
		height := 50 / units.FeetPerMeter
		ring := rectRing(-97.3, 32.75, width, height)

		res, ok := Ring(ring)
		if !ok {
			t.Fatal("expected rectangle to measure")
		}
		within(t, res.AreaSqMeters*units.SqFeetPerSqMeter, 5000, 0.01, "area sqft")
		within(t, res.PerimeterMeters*units.FeetPerMeter, 300, 0.01, "perimeter ft")
	})

	t.Run("area is winding independent", func(t *testing.T) {
		ring := rectRing(-97.3, 32.75, 30, 20)
		reversed := make(orb.Ring, len(ring))
		for i, p := range ring {
			reversed[len(ring)-1-i] = p
		}

		a, _ := Ring(ring)
		b, _ := Ring(reversed)
		if math.Abs(a.AreaSqMeters-b.AreaSqMeters) > 1e-6 {
			t.Fatalf("expected winding-independent area: %v vs %v", a.AreaSqMeters, b.AreaSqMeters)
		}
	})

	t.Run("area is start-vertex independent", func(t *testing.T) {
		ring := rectRing(-97.3, 32.75, 30, 20)
		// Rotate the start vertex by one and re-close.
		open := ring[:len(ring)-1]
		rotated := make(orb.Ring, 0, len(ring))
		rotated = append(rotated, open[1:]...)
		rotated = append(rotated, open[0], open[1])

		a, _ := Ring(ring)
		b, ok := Ring(rotated)
		if !ok {
			t.Fatal("expected rotated ring to measure")
		}
		if math.Abs(a.AreaSqMeters-b.AreaSqMeters) > 1e-6 {
			t.Fatalf("expected start-vertex-independent area: %v vs %v", a.AreaSqMeters, b.AreaSqMeters)
		}
	})

	t.Run("unclosed ring is skipped", func(t *testing.T) {
		if _, ok := Ring(orb.Ring{{0, 0}, {0.001, 0}, {0.001, 0.001}, {0, 0.001}}); ok {
			t.Fatal("expected unclosed ring to be skipped")
		}
	})

	t.Run("ring with fewer than 3 unique vertices is skipped", func(t *testing.T) {
		if _, ok := Ring(orb.Ring{{0, 0}, {0.001, 0}, {0, 0}, {0.001, 0}, {0, 0}}); ok {
			t.Fatal("expected collapsed ring to be skipped")
		}
	})
}

func TestLine(t *testing.T) {
	t.Run("segment length matches great-circle distance", func(t *testing.T) {
		length := 100 / units.FeetPerMeter
		dLng := length / (metersPerDegreeLat * math.Cos(32.75*math.Pi/180))
		path := orb.LineString{{-97.3, 32.75}, {-97.3 + dLng, 32.75}}

		res, ok := Line(path)
		if !ok {
			t.Fatal("expected line to measure")
		}
		within(t, res.PerimeterMeters*units.FeetPerMeter, 100, 0.01, "length ft")
		if res.AreaSqMeters != 0 {
			t.Fatalf("expected zero area for a line, got %v", res.AreaSqMeters)
		}
	})

	t.Run("single point is skipped", func(t *testing.T) {
		if _, ok := Line(orb.LineString{{0, 0}}); ok {
			t.Fatal("expected single point to be skipped")
		}
	})
}

func TestAggregate(t *testing.T) {
	t.Run("totals sum over features and skip degenerates", func(t *testing.T) {
		good := rectRing(-97.3, 32.75, 30, 20)
		res, _ := Ring(good)

		m := Aggregate([]entities.Geometry{
			{ID: "a", Kind: entities.GeometryKindPolygon, Ring: good},
			{ID: "b", Kind: entities.GeometryKindPolygon, Ring: good},
			// Degenerate ring contributes nothing but does not abort.
			{ID: "c", Kind: entities.GeometryKindPolygon, Ring: orb.Ring{{0, 0}, {0, 0}}},
		})

		within(t, m.TotalAreaSqMeters, 2*res.AreaSqMeters, 1e-9, "total area")
		within(t, m.TotalPerimeterMeters, 2*res.PerimeterMeters, 1e-9, "total perimeter")
		if len(m.Shapes) != 3 {
			t.Fatalf("expected 3 shapes carried, got %d", len(m.Shapes))
		}
	})

	t.Run("empty set aggregates to zero", func(t *testing.T) {
		m := Aggregate(nil)
		if m.TotalAreaSqMeters != 0 || m.TotalPerimeterMeters != 0 {
			t.Fatalf("expected zero totals, got %+v", m)
		}
		if m.Shapes == nil {
			t.Fatal("expected non-nil shapes slice")
		}
	})
}
