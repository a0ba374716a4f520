/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/skywcs
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package batch offers concurrent convenience helpers over a WCS core,
// exploiting the guarantee (spec.md §5) that independent pixel/sky
// conversions may run in parallel with no synchronization: neither
// LinearTransform nor a Projection nor a Crs carries any mutable state
// once constructed.
package batch

/*****************************************************************************************************************/

import (
	"context"

	"golang.org/x/sync/errgroup"
)

/*****************************************************************************************************************/

// Point is a generic 2-tuple used for both pixel (i,j) and sky (lon,lat)
// coordinates.
type Point struct {
	X, Y float64
}

/*****************************************************************************************************************/

// PixelToSkyConverter is the narrow interface ConvertPixelsConcurrently
// needs — satisfied by *wcs.Wcs without pkg/batch importing pkg/wcs.
type PixelToSkyConverter interface {
	PixelToSky(i, j float64) (lonDeg, latDeg float64, err error)
}

/*****************************************************************************************************************/

// SkyToPixelConverter is the narrow interface ConvertPositionsConcurrently
// needs.
type SkyToPixelConverter interface {
	SkyToPixel(lonDeg, latDeg float64) (i, j float64, err error)
}

/*****************************************************************************************************************/

// ConvertPixelsConcurrently converts every pixel in pixels to a sky
// position, fanning the work out across goroutines. Results preserve the
// input order; the first error encountered is returned and cancels the
// remaining work via ctx.
func ConvertPixelsConcurrently(ctx context.Context, conv PixelToSkyConverter, pixels []Point) ([]Point, error) {
	results := make([]Point, len(pixels))

	g, gctx := errgroup.WithContext(ctx)
	for idx, pt := range pixels {
		idx, pt := idx, pt
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			lon, lat, err := conv.PixelToSky(pt.X, pt.Y)
			if err != nil {
				return err
			}
			results[idx] = Point{X: lon, Y: lat}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

/*****************************************************************************************************************/

// ConvertPositionsConcurrently converts every sky position in positions
// to a pixel coordinate, fanning the work out across goroutines. Results
// preserve the input order.
func ConvertPositionsConcurrently(ctx context.Context, conv SkyToPixelConverter, positions []Point) ([]Point, error) {
	results := make([]Point, len(positions))

	g, _ := errgroup.WithContext(ctx)
	for idx, pt := range positions {
		idx, pt := idx, pt
		g.Go(func() error {
			i, j, err := conv.SkyToPixel(pt.X, pt.Y)
			if err != nil {
				return err
			}
			results[idx] = Point{X: i, Y: j}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

/*****************************************************************************************************************/
