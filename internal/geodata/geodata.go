// Package geodata reads project metadata out of GeoJSON datasets. One
// point feature is one project; the feature properties carry the
// descriptive fields shown in the viewer popup and the export.
package geodata

import (
	"encoding/json"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/sells-group/projectmap/internal/model"
)

// Parse decodes raw GeoJSON into a feature collection.
func Parse(data []byte) (*geojson.FeatureCollection, error) {
	var fc geojson.FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, eris.Wrap(err, "geodata: parse feature collection")
	}
	return &fc, nil
}

// Bounds computes the bounding box spanning every point feature's
// coordinates, used to frame the initial map view. Returns false when
// the collection holds no usable points.
func Bounds(fc *geojson.FeatureCollection) (*geom.Bounds, bool) {
	bounds := geom.NewBounds(geom.XY)
	found := false

	for _, f := range fc.Features {
		pt, ok := f.Geometry.(*geom.Point)
		if !ok || pt == nil {
			continue
		}
		bounds = bounds.Extend(pt)
		found = true
	}

	if !found {
		return nil, false
	}
	return bounds, true
}

// Projects extracts one project per feature from its properties.
// Features without a project_id still yield a project with an empty ID;
// the dataset is trusted as-is.
func Projects(fc *geojson.FeatureCollection) []model.Project {
	projects := make([]model.Project, 0, len(fc.Features))
	for _, f := range fc.Features {
		projects = append(projects, projectFromProperties(f.Properties))
	}
	return projects
}

// ProjectByID finds the first feature whose project_id property equals id.
func ProjectByID(fc *geojson.FeatureCollection, id string) (*model.Project, bool) {
	for _, f := range fc.Features {
		p := projectFromProperties(f.Properties)
		if p.ID == id {
			return &p, true
		}
	}
	return nil, false
}

func projectFromProperties(props map[string]interface{}) model.Project {
	return model.Project{
		ID:          propString(props, "project_id"),
		Title:       propString(props, "project_title"),
		Cost:        propString(props, "cost"),
		Type:        propString(props, "project_type"),
		Improvement: propString(props, "improvement"),
		Locality:    propString(props, "locality"),
		Product:     propString(props, "product"),
	}
}

// propString renders a scalar property as a string. GeoJSON properties
// are untyped; datasets mix numbers and strings for fields like cost.
func propString(props map[string]interface{}, key string) string {
	v, ok := props[key]
	if !ok || v == nil {
		return ""
	}

	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case json.Number:
		return val.String()
	default:
		return ""
	}
}
