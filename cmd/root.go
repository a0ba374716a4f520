/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/skywcs
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package cmd

/*****************************************************************************************************************/

import (
	"fmt"
	"strings"

	"github.com/observerly/skywcs/pkg/logsink"
	"github.com/spf13/cobra"
)

/*****************************************************************************************************************/

var rootCommand = &cobra.Command{
	Use:           "skywcs",
	Short:         "skywcs is a command-line tool for FITS World Coordinate System projection and reference-frame conversion.",
	Long:          "skywcs is a command-line tool for FITS World Coordinate System projection and reference-frame conversion.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

/*****************************************************************************************************************/

// debugLevel is the raw value of the persistent --debug flag: "", "info",
// "warn", or "error". An empty value keeps the sink a NoopSink.
var debugLevel string

/*****************************************************************************************************************/

func init() {
	rootCommand.PersistentFlags().StringVar(
		&debugLevel,
		"debug",
		"",
		"advisory log level: info, warn, or error (default: silent)",
	)

	rootCommand.AddCommand(projectCommand)
	rootCommand.AddCommand(unprojectCommand)
	rootCommand.AddCommand(convertCommand)
	rootCommand.AddCommand(guiCommand)
}

/*****************************************************************************************************************/

// sink builds the LogSink for the current invocation from --debug: a
// NoopSink when the flag is unset, otherwise a StdSink writing to stderr.
// The core ignores level filtering itself (spec.md §9 advisories are
// always WARN), so --debug is simply on/off at the CLI boundary.
func sink() logsink.LogSink {
	if strings.TrimSpace(debugLevel) == "" {
		return logsink.NoopSink{}
	}
	return logsink.NewStdSink()
}

/*****************************************************************************************************************/

// Execute runs the CLI and returns the process exit code: 0 on success,
// 1 on any user-input error (spec.md §6).
func Execute() int {
	if err := rootCommand.Execute(); err != nil {
		fmt.Println(err)
		return 1
	}
	return 0
}

/*****************************************************************************************************************/
