/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/skywcs
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package cmd

/*****************************************************************************************************************/

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/observerly/skywcs/internal/fixtures"
	"github.com/observerly/skywcs/pkg/keywords"
)

/*****************************************************************************************************************/

// namedFixtures maps the fixture names a caller may pass as HDR to the
// fixtures constant they resolve to, so the CLI can load one of the
// canonical seed headers (spec.md §8) without a filesystem round trip.
var namedFixtures = map[string]string{
	strings.ToLower(fixtures.WFPC2ASSNu5780205bx): fixtures.WFPC2ASSNu5780205bx,
	strings.ToLower(fixtures.FOCx38):              fixtures.FOCx38,
	strings.ToLower(fixtures.AIT1904_66):          fixtures.AIT1904_66,
}

/*****************************************************************************************************************/

// loadHeader resolves HDR into a keywords.KeywordSource: either the name
// of one of the canonical seed fixtures, or a path to a JSON file holding
// a flat object of FITS keyword/value pairs.
func loadHeader(hdr string) (keywords.KeywordSource, error) {
	if name, ok := namedFixtures[strings.ToLower(hdr)]; ok {
		store, err := fixtures.Open(":memory:")
		if err != nil {
			return nil, fmt.Errorf("opening fixture store: %w", err)
		}
		defer store.Close()

		header, err := store.Load(name)
		if err != nil {
			return nil, fmt.Errorf("loading fixture %q: %w", name, err)
		}
		return header, nil
	}

	raw, err := os.ReadFile(hdr)
	if err != nil {
		return nil, fmt.Errorf("reading header file %q: %w", hdr, err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("parsing header file %q: %w", hdr, err)
	}

	header := make(keywords.MapKeywordSource, len(decoded))
	for key, value := range decoded {
		header[strings.ToUpper(key)] = value
	}
	return header, nil
}

/*****************************************************************************************************************/
