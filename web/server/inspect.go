package server

import (
	"fmt"
	"math"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/df07/go-motionblur-raytracer/pkg/core"
	"github.com/df07/go-motionblur-raytracer/pkg/geometry"
	"github.com/df07/go-motionblur-raytracer/pkg/integrator"
	"github.com/df07/go-motionblur-raytracer/pkg/material"
	"github.com/df07/go-motionblur-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType"`
	GeometryType string                 `json:"geometryType"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Properties   map[string]interface{} `json:"properties"`
}

// extractMaterialInfo extracts detailed material information with type assertions
func extractMaterialInfo(mat material.Material) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := mat.(type) {
	case *material.Lambertian:
		properties["albedo"] = [3]float64{m.Albedo.X, m.Albedo.Y, m.Albedo.Z}
		properties["color"] = hexColor(m.Albedo)
		return "lambertian", properties

	case *material.Metal:
		properties["albedo"] = [3]float64{m.Albedo.X, m.Albedo.Y, m.Albedo.Z}
		properties["color"] = hexColor(m.Albedo)
		properties["fuzzness"] = m.Fuzzness
		return "metal", properties

	case *material.Dielectric:
		properties["refractiveIndex"] = m.RefractiveIndex
		properties["color"] = "#ffffff" // Clear glass
		return "dielectric", properties

	default:
		return "unknown", properties
	}
}

func hexColor(c core.Vec3) string {
	c = c.Clamp(0, 1)
	return fmt.Sprintf("#%02x%02x%02x", int(c.X*255), int(c.Y*255), int(c.Z*255))
}

// inspectPixel poses the scene at time and casts a pinhole ray through the
// center of pixel (pixelX, pixelY), reporting the closest object hit
func inspectPixel(sceneObj *scene.Scene, time float64, pixelX, pixelY int) InspectResponse {
	sceneObj.CameraConfig.Aperture = 0 // No lens jitter for inspection
	camera := sceneObj.Camera()
	width, height := sceneObj.RenderConfig.Width, sceneObj.RenderConfig.Height

	sceneObj.World.Update(time)

	s := (float64(pixelX) + 0.5) / float64(max(width-1, 1))
	t := 1.0 - (float64(pixelY)+0.5)/float64(max(height-1, 1))
	ray := camera.GetRay(s, t, nil)

	var closest material.HitRecord
	var hitObject geometry.Object
	closestSoFar := math.Inf(1)
	for _, obj := range sceneObj.World.Objects {
		var rec material.HitRecord
		if obj.Hit(ray, integrator.ShadowEpsilon, closestSoFar, &rec) {
			closestSoFar = rec.T
			closest = rec
			hitObject = obj
		}
	}

	if hitObject == nil {
		return InspectResponse{Hit: false, Properties: map[string]interface{}{}}
	}

	materialType, properties := extractMaterialInfo(closest.Material)
	response := InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		Point:        [3]float64{closest.Point.X, closest.Point.Y, closest.Point.Z},
		Normal:       [3]float64{closest.Normal.X, closest.Normal.Y, closest.Normal.Z},
		Distance:     closest.T,
		FrontFace:    closest.FrontFace,
		Properties:   properties,
	}

	switch g := hitObject.(type) {
	case *geometry.MovingSphere:
		response.GeometryType = "moving-sphere"
		center := g.Center()
		properties["center"] = [3]float64{center.X, center.Y, center.Z}
		properties["center0"] = [3]float64{g.Center0.X, g.Center0.Y, g.Center0.Z}
		properties["center1"] = [3]float64{g.Center1.X, g.Center1.Y, g.Center1.Z}
	case *geometry.Sphere:
		response.GeometryType = "sphere"
		properties["center"] = [3]float64{g.Center.X, g.Center.Y, g.Center.Z}
		properties["radius"] = g.Radius
	default:
		response.GeometryType = "unknown"
	}
	return response
}

// handleInspect reports what lies under a pixel of a scene
func (s *Server) handleInspect(c echo.Context) error {
	values := c.QueryParams()
	sceneName := values.Get("scene")
	if sceneName == "" {
		sceneName = "default"
	}
	seed, err := parseSeedParam(values)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if seed == 0 {
		seed = 1 // Inspect the same random scene a seeded render shows
	}

	sceneObj, err := scene.Create(sceneName, seed)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}

	width, err := parseIntParam(values, "width", sceneObj.RenderConfig.Width, 1, maxWidth)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	sceneObj.Resize(width)

	x, err := parseIntParam(values, "x", 0, 0, sceneObj.RenderConfig.Width-1)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	y, err := parseIntParam(values, "y", 0, 0, sceneObj.RenderConfig.Height-1)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	time, err := parseFloatParam(values, "time", sceneObj.Time0)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, inspectPixel(sceneObj, time, x, y))
}
