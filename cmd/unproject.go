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

var unprojectCommand = &cobra.Command{
	Use:   "unproject HDR RA DEC",
	Short: "unproject a sky coordinate through a WCS header to a pixel coordinate",
	Long:  "unproject a sky coordinate through a WCS header to a pixel coordinate: prints (x,y)=(a, b) to stdout.",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		header, err := loadHeader(args[0])
		if err != nil {
			return err
		}

		ra, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("bad right ascension %q: %w", args[1], err)
		}
		dec, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("bad declination %q: %w", args[2], err)
		}

		w, err := wcs.Init(header, sink())
		if err != nil {
			return fmt.Errorf("initializing WCS: %w", err)
		}

		x, y, err := w.SkyToPixel(ra, dec)
		if err != nil {
			return fmt.Errorf("unprojecting (%g, %g): %w", ra, dec, err)
		}

		fmt.Printf("(x,y)=(%v, %v)\n", x, y)
		return nil
	},
}

/*****************************************************************************************************************/
