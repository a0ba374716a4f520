/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/skywcs
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package cmd

/*****************************************************************************************************************/

import (
	"fmt"
	"strconv"

	"github.com/observerly/skywcs/pkg/wcs"
	"github.com/spf13/cobra"
)

/*****************************************************************************************************************/

var projectCommand = &cobra.Command{
	Use:   "project HDR X Y",
	Short: "project a pixel coordinate through a WCS header to a sky coordinate",
	Long:  "project a pixel coordinate through a WCS header to a sky coordinate: prints (ra,dec)=(a, b) to stdout.",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		header, err := loadHeader(args[0])
		if err != nil {
			return err
		}

		x, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("bad pixel x coordinate %q: %w", args[1], err)
		}
		y, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("bad pixel y coordinate %q: %w", args[2], err)
		}

		w, err := wcs.Init(header, sink())
		if err != nil {
			return fmt.Errorf("initializing WCS: %w", err)
		}

		ra, dec, err := w.PixelToSky(x, y)
		if err != nil {
			return fmt.Errorf("projecting (%g, %g): %w", x, y, err)
		}

		fmt.Printf("(ra,dec)=(%v, %v)\n", ra, dec)
		return nil
	},
}

/*****************************************************************************************************************/
