package geodata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "geometry": {"type": "Point", "coordinates": [-77.05, 38.89]},
      "properties": {
        "project_id": "P-100",
        "project_title": "Main St Resurfacing",
        "cost": 125000,
        "project_type": "Roadway",
        "improvement": "Resurfacing",
        "locality": "Arlington",
        "product": "Asphalt"
      }
    },
    {
      "type": "Feature",
      "geometry": {"type": "Point", "coordinates": [-76.61, 39.29]},
      "properties": {
        "project_id": "P-200",
        "project_title": "Harbor Trail",
        "cost": "980000",
        "project_type": "Trail",
        "improvement": "New construction",
        "locality": "Baltimore",
        "product": "Concrete"
      }
    }
  ]
}`

func TestParse(t *testing.T) {
	fc, err := Parse([]byte(sampleGeoJSON))
	require.NoError(t, err)
	require.Len(t, fc.Features, 2)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte(`{"type": "FeatureCollection", "features": "nope"`))
	assert.Error(t, err)
}

func TestBounds(t *testing.T) {
	fc, err := Parse([]byte(sampleGeoJSON))
	require.NoError(t, err)

	bounds, ok := Bounds(fc)
	require.True(t, ok)
	assert.InDelta(t, -77.05, bounds.Min(0), 1e-9)
	assert.InDelta(t, -76.61, bounds.Max(0), 1e-9)
	assert.InDelta(t, 38.89, bounds.Min(1), 1e-9)
	assert.InDelta(t, 39.29, bounds.Max(1), 1e-9)
}

func TestBoundsNoFeatures(t *testing.T) {
	fc, err := Parse([]byte(`{"type": "FeatureCollection", "features": []}`))
	require.NoError(t, err)

	_, ok := Bounds(fc)
	assert.False(t, ok)
}

func TestProjects(t *testing.T) {
	fc, err := Parse([]byte(sampleGeoJSON))
	require.NoError(t, err)

	projects := Projects(fc)
	require.Len(t, projects, 2)

	assert.Equal(t, "P-100", projects[0].ID)
	assert.Equal(t, "Main St Resurfacing", projects[0].Title)
	// Numeric property rendered as a plain string.
	assert.Equal(t, "125000", projects[0].Cost)
	assert.Equal(t, "Roadway", projects[0].Type)
	assert.Equal(t, "Arlington", projects[0].Locality)

	// String-typed cost passes through untouched.
	assert.Equal(t, "980000", projects[1].Cost)
	assert.Equal(t, "Harbor Trail", projects[1].Title)
}

func TestProjectByID(t *testing.T) {
	fc, err := Parse([]byte(sampleGeoJSON))
	require.NoError(t, err)

	p, ok := ProjectByID(fc, "P-200")
	require.True(t, ok)
	assert.Equal(t, "Harbor Trail", p.Title)

	_, ok = ProjectByID(fc, "P-999")
	assert.False(t, ok)
}

func TestProjectMissingProperties(t *testing.T) {
	fc, err := Parse([]byte(`{
	  "type": "FeatureCollection",
	  "features": [
	    {"type": "Feature", "geometry": {"type": "Point", "coordinates": [0, 0]}, "properties": {}}
	  ]
	}`))
	require.NoError(t, err)

	projects := Projects(fc)
	require.Len(t, projects, 1)
	assert.Empty(t, projects[0].ID)
	assert.Empty(t, projects[0].Title)
}
