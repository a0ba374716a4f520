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
	"strings"

	"github.com/observerly/skywcs/pkg/crsparse"
	"github.com/spf13/cobra"
)

/*****************************************************************************************************************/

var convertCommand = &cobra.Command{
	Use:   "convert LON,LAT SRC TGT",
	Short: "convert a sky coordinate between two coordinate reference systems",
	Long: "convert a sky coordinate between two coordinate reference systems: " +
		"LON,LAT is a comma-separated pair in degrees, SRC and TGT are CRS grammar strings " +
		"(GALACTIC, SUPER_GALACTIC, EQUATORIAL[(frame)], ECLIPTIC[(frame)]). Prints \"<lon> <lat>\" to stdout.",
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		lon, lat, err := parseLonLat(args[0])
		if err != nil {
			return err
		}

		src, err := crsparse.ParseCrs(args[1])
		if err != nil {
			return fmt.Errorf("bad source CRS %q: %w", args[1], err)
		}

		tgt, err := crsparse.ParseCrs(args[2])
		if err != nil {
			return fmt.Errorf("bad target CRS %q: %w", args[2], err)
		}

		outLon, outLat, err := src.ConvertTo(tgt, lon, lat, sink())
		if err != nil {
			return fmt.Errorf("converting (%g, %g): %w", lon, lat, err)
		}

		fmt.Printf("%v %v\n", outLon, outLat)
		return nil
	},
}

/*****************************************************************************************************************/

func parseLonLat(s string) (lon, lat float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected \"lon,lat\", got %q", s)
	}

	lon, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad longitude %q: %w", parts[0], err)
	}

	lat, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad latitude %q: %w", parts[1], err)
	}

	return lon, lat, nil
}

/*****************************************************************************************************************/
