/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/skywcs
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package cmd

/*****************************************************************************************************************/

import (
	"fmt"
	"image/png"
	"os"

	"github.com/observerly/skywcs/internal/viewer"
	"github.com/observerly/skywcs/pkg/wcs"
	"github.com/spf13/cobra"
)

/*****************************************************************************************************************/

var (
	guiOutputPath      string
	guiPixelsPerDegree float64
)

/*****************************************************************************************************************/

var guiCommand = &cobra.Command{
	Use:   "gui HDR",
	Short: "render the meridian/parallel grid of a WCS header's projection",
	Long: "render the meridian/parallel grid of a WCS header's projection (spec.md §6's --gui), " +
		"standing in for an interactive viewer: writes a PNG to --output.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		header, err := loadHeader(args[0])
		if err != nil {
			return err
		}

		w, err := wcs.Init(header, sink())
		if err != nil {
			return fmt.Errorf("initializing WCS: %w", err)
		}

		width, height := w.Keywords.Naxis1, w.Keywords.Naxis2
		if width <= 0 {
			width = 512
		}
		if height <= 0 {
			height = 512
		}

		scene := viewer.Scene{Width: width, Height: height, PixelsPerDegree: guiPixelsPerDegree}
		dc := viewer.RenderGrid(w.Keywords.Projection, scene, viewer.DefaultGrid())

		out, err := os.Create(guiOutputPath)
		if err != nil {
			return fmt.Errorf("creating output file %q: %w", guiOutputPath, err)
		}
		defer out.Close()

		if err := png.Encode(out, dc.Image()); err != nil {
			return fmt.Errorf("encoding PNG: %w", err)
		}

		fmt.Printf("wrote grid for projection %s to %s\n", w.Keywords.ProjCode, guiOutputPath)
		return nil
	},
}

/*****************************************************************************************************************/

func init() {
	guiCommand.Flags().StringVar(&guiOutputPath, "output", "grid.png", "path to write the rendered PNG")
	guiCommand.Flags().Float64Var(&guiPixelsPerDegree, "pixels-per-degree", 20, "scale of the projection plane onto the canvas")
}

/*****************************************************************************************************************/
