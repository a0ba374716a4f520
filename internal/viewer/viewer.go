/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/skywcs
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package viewer is the thin driver behind the CLI's --gui flag: it
// renders a meridian/parallel grid for a single projection kernel,
// standing in for the interactive GUI line-renderer spec.md §6 describes
// as an external collaborator. It is not part of the WCS core — it only
// calls Projection.Inside and Projection.ProjectInverse in a loop and
// draws lines with github.com/fogleman/gg.
package viewer

/*****************************************************************************************************************/

import (
	"image/color"

	"github.com/fogleman/gg"
	"github.com/observerly/skywcs/pkg/angle"
	"github.com/observerly/skywcs/pkg/projection"
)

/*****************************************************************************************************************/

// Grid configures the native-sphere grid traced across the projection
// plane: meridians at every MeridianStep degrees of native longitude,
// parallels at every ParallelStep degrees of native latitude.
type Grid struct {
	MeridianStep float64
	ParallelStep float64
	Samples      int
}

/*****************************************************************************************************************/

// DefaultGrid is a 30°/30° grid traced in 181 steps per curve, fine
// enough to look continuous once scaled to a few hundred pixels.
func DefaultGrid() Grid {
	return Grid{MeridianStep: 30, ParallelStep: 30, Samples: 181}
}

/*****************************************************************************************************************/

// Scene carries everything RenderGrid needs to map the projection plane
// (intermediate world coordinates, in degrees) onto a pixel canvas.
type Scene struct {
	Width, Height int
	// PixelsPerDegree scales intermediate world coordinates to pixels;
	// the origin of the projection plane is placed at the canvas centre.
	PixelsPerDegree float64
}

/*****************************************************************************************************************/

var (
	background = color.RGBA{R: 15, G: 23, B: 42, A: 255}
	gridLine   = color.RGBA{R: 71, G: 85, B: 105, A: 255}
	equator    = color.RGBA{R: 129, G: 140, B: 248, A: 255}
	primeMerid = color.RGBA{R: 241, G: 245, B: 249, A: 255}
)

/*****************************************************************************************************************/

// RenderGrid draws proj's native meridian/parallel grid onto a new
// canvas sized by scene, and returns the drawing context. The native
// equator (θ=0) and prime meridian (φ=0) are highlighted.
func RenderGrid(proj projection.Projection, scene Scene, grid Grid) *gg.Context {
	dc := gg.NewContext(scene.Width, scene.Height)
	dc.SetColor(background)
	dc.Clear()

	cx, cy := float64(scene.Width)/2, float64(scene.Height)/2

	toPixel := func(xDeg, yDeg float64) (float64, float64) {
		return cx + xDeg*scene.PixelsPerDegree, cy - yDeg*scene.PixelsPerDegree
	}

	traceMeridian := func(phiDeg float64, c color.Color) {
		dc.SetColor(c)
		started := false
		for k := 0; k < grid.Samples; k++ {
			thetaDeg := -90 + 180*float64(k)/float64(grid.Samples-1)
			phi, theta := angle.Radians(phiDeg), angle.Radians(thetaDeg)
			if !proj.Inside(phi, theta) {
				started = false
				continue
			}
			xDeg, yDeg, err := proj.ProjectInverse(phi, theta)
			if err != nil {
				started = false
				continue
			}
			px, py := toPixel(xDeg, yDeg)
			if !started {
				dc.MoveTo(px, py)
				started = true
			} else {
				dc.LineTo(px, py)
			}
		}
		dc.SetLineWidth(1)
		dc.Stroke()
	}

	traceParallel := func(thetaDeg float64, c color.Color) {
		dc.SetColor(c)
		started := false
		for k := 0; k < grid.Samples; k++ {
			phiDeg := 360 * float64(k) / float64(grid.Samples-1)
			phi, theta := angle.Radians(phiDeg), angle.Radians(thetaDeg)
			if !proj.Inside(phi, theta) {
				started = false
				continue
			}
			xDeg, yDeg, err := proj.ProjectInverse(phi, theta)
			if err != nil {
				started = false
				continue
			}
			px, py := toPixel(xDeg, yDeg)
			if !started {
				dc.MoveTo(px, py)
				started = true
			} else {
				dc.LineTo(px, py)
			}
		}
		dc.SetLineWidth(1)
		dc.Stroke()
	}

	for phiDeg := 0.0; phiDeg < 360; phiDeg += grid.MeridianStep {
		c := gridLine
		if phiDeg == 0 {
			c = primeMerid
		}
		traceMeridian(phiDeg, c)
	}

	for thetaDeg := -90 + grid.ParallelStep; thetaDeg < 90; thetaDeg += grid.ParallelStep {
		traceParallel(thetaDeg, gridLine)
	}
	traceParallel(0, equator)

	return dc
}

/*****************************************************************************************************************/
