/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/skywcs
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package main

/*****************************************************************************************************************/

import (
	"os"

	"github.com/observerly/skywcs/cmd"
)

/*****************************************************************************************************************/

func main() {
	os.Exit(cmd.Execute())
}

/*****************************************************************************************************************/
