package render

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/shenikar/coverage_map/internal/models"
)

// MapFeatures переводит полигоны карты в GeoJSON FeatureCollection.
// Кольца замыкаются, если первая и последняя вершины различаются.
func MapFeatures(data *models.MapData) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	if data == nil {
		return fc
	}

	for _, p := range data.Polygons {
		ring := make(orb.Ring, 0, len(p.Path)+1)
		for _, v := range p.Path {
			ring = append(ring, orb.Point{v.Lng, v.Lat})
		}
		if len(ring) > 0 && !ring.Closed() {
			ring = append(ring, ring[0])
		}

		f := geojson.NewFeature(orb.Polygon{ring})
		f.Properties["name"] = p.Name
		f.Properties["stroke"] = p.StrokeColour
		f.Properties["stroke-opacity"] = p.StrokeOpacity
		f.Properties["stroke-width"] = p.StrokeWeight
		f.Properties["fill"] = p.FillColour
		f.Properties["fill-opacity"] = p.FillOpacity
		f.Properties["insured_ratio"] = p.InsuredRatio
		f.Properties["normalized"] = p.Normalized
		fc.Append(f)
	}
	return fc
}
