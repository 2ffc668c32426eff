package viewer

import (
	"image/color"
	"math"

	"github.com/ADavid9914/PaginaWebTRB/engine"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	skyColor         = "#87ceeb"
	floorColor       = "#228b22"
	placeholderColor = "#4f46e5"
)

var white = color.RGBA{0xff, 0xff, 0xff, 0xff}

// buildScene creates the lit stage every viewer starts from and returns it
// with the hidden placeholder box.
func buildScene() (*engine.Scene, *engine.Node) {
	scene := engine.NewScene()
	scene.Background = engine.ParseHexColor(skyColor)
	scene.AddAmbient(white, 0.5)
	scene.AddDirectional(white, 1, mgl32.Vec3{5, 10, 5})

	floor := engine.NewMeshNode("floor", engine.NewPlane(50, 50, 10, engine.ParseHexColor(floorColor)))
	floor.SetRotationX(-math.Pi / 2)
	scene.Add(floor)

	placeholder := engine.NewMeshNode("placeholder", engine.NewBox(1, 0.2, 1, engine.ParseHexColor(placeholderColor)))
	placeholder.Position = mgl32.Vec3{0, 1, 0}
	placeholder.Visible = false
	scene.Add(placeholder)

	return scene, placeholder
}
