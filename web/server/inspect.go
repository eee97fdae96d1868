package server

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType,omitempty"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	UV           [2]float64             `json:"uv"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// InspectResult contains the nearest hit along a pixel's center ray
type InspectResult struct {
	Hit       bool
	HitRecord *material.HitRecord
	Shape     geometry.Shape // Top-level scene shape that was hit, nil if unknown
}

func vec3Array(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func hexColor(c core.Vec3) string {
	c = c.Clamp(0, 1)
	return fmt.Sprintf("#%02x%02x%02x", int(c.X*255), int(c.Y*255), int(c.Z*255))
}

// inspectPixel casts the center ray of pixel (x, y) into a preprocessed scene
func inspectPixel(sceneObj *scene.Scene, camera *renderer.Camera, x, y int) InspectResult {
	ray := camera.GetCenterRay(x, y)

	hit, isHit := sceneObj.BVH.Hit(ray, core.Interval{Min: 0.001, Max: math.Inf(1)})
	if !isHit {
		return InspectResult{Hit: false}
	}

	// The BVH returns only the hit record, so find the shape that produced it
	for _, shape := range sceneObj.Shapes {
		if shapeHit, ok := shape.Hit(ray, core.Interval{Min: 0.001, Max: hit.T + 0.001}); ok && shapeHit.T == hit.T {
			return InspectResult{Hit: true, HitRecord: hit, Shape: shape}
		}
	}

	return InspectResult{Hit: true, HitRecord: hit}
}

// extractMaterialInfo describes the material as seen at the hit point
func extractMaterialInfo(hit *material.HitRecord) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := hit.Material.(type) {
	case *material.Lambertian:
		albedo := m.Albedo.Evaluate(hit.UV, hit.Point)
		properties["albedo"] = vec3Array(albedo)
		properties["color"] = hexColor(albedo)
		properties["texture"] = textureType(m.Albedo)
		return "lambertian", properties

	case *material.Metal:
		properties["albedo"] = vec3Array(m.Albedo)
		properties["color"] = hexColor(m.Albedo)
		properties["fuzzness"] = m.Fuzzness
		return "metal", properties

	case *material.Dielectric:
		properties["refractiveIndex"] = m.RefractiveIndex
		properties["color"] = "#ffffff" // Clear glass
		return "dielectric", properties

	case *material.Absorber:
		properties["color"] = "#000000"
		return "absorber", properties

	case nil:
		return "none", properties

	default:
		return "unknown", properties
	}
}

func textureType(source material.ColorSource) string {
	switch t := source.(type) {
	case *material.SolidColor:
		return "solid"
	case *material.CheckerTexture:
		return "checker"
	case *material.SpatialCheckerTexture:
		return "spatial_checker"
	case *material.ImageTexture:
		if len(t.Pixels) == 0 {
			return "fallback"
		}
		return "image"
	default:
		return "unknown"
	}
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})
	if shape == nil {
		return "unknown", properties
	}

	bbox := shape.BoundingBox()
	properties["boundingBox"] = map[string]interface{}{
		"min": [3]float64{bbox.X.Min, bbox.Y.Min, bbox.Z.Min},
		"max": [3]float64{bbox.X.Max, bbox.Y.Max, bbox.Z.Max},
	}

	switch geom := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = vec3Array(geom.Center)
		properties["radius"] = geom.Radius
		return "sphere", properties

	case *geometry.Quad:
		properties["corner"] = vec3Array(geom.Q)
		properties["u"] = vec3Array(geom.U)
		properties["v"] = vec3Array(geom.V)
		properties["normal"] = vec3Array(geom.Normal)
		return "quad", properties

	case *geometry.Disc:
		properties["center"] = vec3Array(geom.Q)
		properties["radius"] = geom.Radius
		properties["normal"] = vec3Array(geom.Normal)
		return "disc", properties

	case *geometry.Triangle:
		properties["corner"] = vec3Array(geom.Q)
		properties["u"] = vec3Array(geom.U)
		properties["v"] = vec3Array(geom.V)
		return "triangle", properties

	case *geometry.TriangleMesh:
		properties["triangleCount"] = geom.GetTriangleCount()
		return "triangle_mesh", properties

	case *geometry.HittableList:
		properties["shapeCount"] = geom.Len()
		return "group", properties

	case *geometry.Translate:
		innerType, innerProps := extractGeometryInfo(geom.Object)
		properties["offset"] = vec3Array(geom.Offset)
		properties["object"] = map[string]interface{}{"type": innerType, "properties": innerProps}
		return "translate", properties

	case *geometry.Rotate:
		innerType, innerProps := extractGeometryInfo(geom.Object)
		properties["axis"] = geom.Axis.String()
		properties["degrees"] = geom.Radians * 180 / math.Pi
		properties["object"] = map[string]interface{}{"type": innerType, "properties": innerProps}
		return "rotate", properties

	default:
		return "unknown", properties
	}
}

// handleInspect casts the center ray of one pixel and describes what it hits
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	sceneObj, err := s.buildScene(req, NewWebLogger("inspect", s.console))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	camera := renderer.NewCamera(sceneObj.CameraConfig)
	if pixelX < 0 || pixelX >= camera.Width() || pixelY < 0 || pixelY >= camera.Height() {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	result := inspectPixel(sceneObj, camera, pixelX, pixelY)
	if !result.Hit {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	materialType, materialProps := extractMaterialInfo(result.HitRecord)
	geometryType, geometryProps := extractGeometryInfo(result.Shape)

	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		GeometryType: geometryType,
		Point:        vec3Array(result.HitRecord.Point),
		Normal:       vec3Array(result.HitRecord.Normal),
		Distance:     result.HitRecord.T,
		FrontFace:    result.HitRecord.FrontFace,
		UV:           [2]float64{result.HitRecord.UV.X, result.HitRecord.UV.Y},
		Properties: map[string]interface{}{
			"material": materialProps,
			"geometry": geometryProps,
		},
	})
}
