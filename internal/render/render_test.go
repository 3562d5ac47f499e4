package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/coverage_map/internal/models"
)

func TestChartPNG(t *testing.T) {
	data := &models.ChartData{
		Title:      "Total Population and Uninsured Population by State",
		Categories: []string{"A", "B"},
		Series: []models.ChartSeries{
			{Name: models.SeriesTotal, Data: []int64{100, 200}},
			{Name: models.SeriesUninsured, Data: []int64{10, 100}},
		},
	}

	var buf bytes.Buffer
	err := ChartPNG(&buf, data)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}

func TestChartPNG_Misaligned(t *testing.T) {
	data := &models.ChartData{
		Categories: []string{"A", "B"},
		Series: []models.ChartSeries{
			{Name: models.SeriesTotal, Data: []int64{100}},
		},
	}

	err := ChartPNG(&bytes.Buffer{}, data)
	assert.Error(t, err)

	err = ChartPNG(&bytes.Buffer{}, &models.ChartData{})
	assert.Error(t, err)
}

func TestMapFeatures(t *testing.T) {
	data := &models.MapData{
		Polygons: []models.MapPolygon{{
			Name:         "Colorado",
			Path:         []models.LatLng{{Lat: 41, Lng: -109}, {Lat: 37, Lng: -109}, {Lat: 37, Lng: -102}},
			StrokeColour: "#FF0000",
			FillColour:   "#00ff41",
			Normalized:   1,
		}},
	}

	fc := MapFeatures(data)

	require.Len(t, fc.Features, 1)
	f := fc.Features[0]
	assert.Equal(t, "Colorado", f.Properties["name"])
	assert.Equal(t, "#00ff41", f.Properties["fill"])

	poly, ok := f.Geometry.(orb.Polygon)
	require.True(t, ok)
	require.Len(t, poly[0], 4)
	assert.Equal(t, orb.Point{-109, 41}, poly[0][0])
	assert.True(t, poly[0].Closed())

	raw, err := json.Marshal(fc)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"FeatureCollection"`)
}

func TestMapFeatures_Nil(t *testing.T) {
	assert.Empty(t, MapFeatures(nil).Features)
}
