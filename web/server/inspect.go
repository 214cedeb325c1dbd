package server

import (
	"fmt"
	"net/http"

	"github.com/df07/phong-raytracer/pkg/core"
	"github.com/df07/phong-raytracer/pkg/geometry"
	"github.com/df07/phong-raytracer/pkg/material"
	"github.com/df07/phong-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Properties   map[string]interface{} `json:"properties"`
}

// handleInspect reports what the primary ray through a pixel hits
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	sceneObj, view, ok := s.lookupView(w, query)
	if !ok {
		return
	}

	vp := view.Camera.Viewport()
	row, err := parseIntParam(query, "row", vp.Height/2, 0, vp.Height-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	col, err := parseIntParam(query, "col", vp.Width/2, 0, vp.Width-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, inspectPixel(sceneObj, view, row, col))
}

// inspectPixel casts the primary ray for (row, col) and describes the nearest hit
func inspectPixel(sceneObj *scene.Scene, view scene.View, row, col int) InspectResponse {
	ray := view.Camera.GetRay(row, col)
	hit, isHit := sceneObj.Intersect(ray)
	if !isHit {
		return InspectResponse{Hit: false}
	}

	return InspectResponse{
		Hit:          true,
		GeometryType: geometryType(sceneObj, ray, hit.Distance),
		Point:        [3]float64{hit.Point.X, hit.Point.Y, hit.Point.Z},
		Normal:       [3]float64{hit.Normal.X, hit.Normal.Y, hit.Normal.Z},
		Distance:     hit.Distance,
		Properties:   materialProperties(hit.Material),
	}
}

// geometryType names the kind of shape at distance along ray
func geometryType(sceneObj *scene.Scene, ray core.Ray, distance float64) string {
	for _, shape := range sceneObj.Shapes {
		if d, ok := shape.Intersect(ray); !ok || d != distance {
			continue
		}
		switch shape.(type) {
		case *geometry.Sphere:
			return "sphere"
		case *geometry.Cuboid:
			return "cuboid"
		case *geometry.Cylinder:
			return "cylinder"
		case *geometry.TriangleMesh:
			return "mesh"
		}
	}
	return "unknown"
}

func materialProperties(mat material.Material) map[string]interface{} {
	c := mat.DiffuseColor.Clamp(0, 1)
	return map[string]interface{}{
		"albedo":           [2]float64{mat.Albedo.X, mat.Albedo.Y},
		"diffuseColor":     [3]float64{mat.DiffuseColor.X, mat.DiffuseColor.Y, mat.DiffuseColor.Z},
		"color":            fmt.Sprintf("#%02x%02x%02x", int(c.X*255), int(c.Y*255), int(c.Z*255)),
		"specularExponent": mat.SpecularExponent,
		"refractionIndex":  mat.RefractionIndex,
		"alpha":            mat.Alpha,
		"opaque":           mat.IsOpaque(),
	}
}
