package measure

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"geoquote/internal/domain/entities"
	"geoquote/internal/units"
)

// FeatureCollection renders the current geometry set as GeoJSON with
// per-feature area and perimeter in both unit systems, so report and
// export collaborators can be assembled without recomputation. Values are
// rounded to 2 decimal places, the report boundary.
func FeatureCollection(geometries []entities.Geometry) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, g := range geometries {
		var f *geojson.Feature
		switch g.Kind {
		case entities.GeometryKindPolygon:
			f = geojson.NewFeature(orb.Polygon{g.Ring})
		case entities.GeometryKindPolyline:
			f = geojson.NewFeature(g.Path)
		default:
			continue
		}
		f.ID = g.ID
		f.Properties = geojson.Properties{
			"service_id":   g.ServiceID,
			"kind":         string(g.Kind),
			"area_sq_m":    units.Round2(g.AreaSqMeters),
			"area_sq_ft":   units.Round2(units.AreaToDisplay(g.AreaSqMeters, entities.UnitSystemImperial)),
			"perimeter_m":  units.Round2(g.PerimeterMeters),
			"perimeter_ft": units.Round2(units.LengthToDisplay(g.PerimeterMeters, entities.UnitSystemImperial)),
		}
		fc.Append(f)
	}
	return fc
}
