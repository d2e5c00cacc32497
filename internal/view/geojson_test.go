package view

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/stemmap/internal/model"
)

type featureCollection struct {
	Type     string    `json:"type"`
	BBox     []float64 `json:"bbox"`
	Features []struct {
		Type     string `json:"type"`
		Geometry struct {
			Type        string    `json:"type"`
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties map[string]string `json:"properties"`
	} `json:"features"`
}

func TestEncodeGeoJSON(t *testing.T) {
	data, err := EncodeGeoJSON(sampleView())
	require.NoError(t, err)

	var fc featureCollection
	require.NoError(t, json.Unmarshal(data, &fc))

	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 2)

	f := fc.Features[0]
	assert.Equal(t, "Feature", f.Type)
	assert.Equal(t, "Point", f.Geometry.Type)
	// GeoJSON positions are [lon, lat].
	assert.Equal(t, []float64{-68.15, -16.5}, f.Geometry.Coordinates)
	assert.Equal(t, "A", f.Properties["label"])
	assert.Equal(t, "rgb(95, 70, 144)", f.Properties["color"])
	assert.Equal(t, "<b>A</b>", f.Properties["tooltip"])
	assert.Equal(t, "https://a.example", f.Properties["link"])

	assert.Equal(t, []float64{-68.15, -17.78, -63.18, -16.5}, fc.BBox)
}

func TestEncodeGeoJSON_Empty(t *testing.T) {
	data, err := EncodeGeoJSON(model.ViewModel{})
	require.NoError(t, err)

	var fc featureCollection
	require.NoError(t, json.Unmarshal(data, &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	assert.Empty(t, fc.Features)
	assert.Nil(t, fc.BBox)
}
