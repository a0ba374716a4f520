/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/skywcs
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package crsparse implements the small recursive-descent parser for the
// CLI's CRS factory-string grammar (spec.md §9 design note):
//
//	crs   := 'GALACTIC' | 'SUPER_GALACTIC' | 'EQUATORIAL' ['(' frame ')'] | 'ECLIPTIC' ['(' frame ')']
//	frame := 'ICRS()' | 'J2000()' | 'FK5(' equinox ')' | 'FK4(' equinox [',' epoch] ')' | 'FK4_NO_E(' equinox [',' epoch] ')'
//
// replacing the regex/substring matching the source CLI used.
package crsparse

/*****************************************************************************************************************/

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/observerly/skywcs/pkg/epoch"
	"github.com/observerly/skywcs/pkg/frame"
)

/*****************************************************************************************************************/

// ParseError reports the byte offset and reason a CRS string failed to
// parse, so the CLI can point at the offending character.
type ParseError struct {
	Pos    int
	Reason string
}

/*****************************************************************************************************************/

func (e *ParseError) Error() string {
	return fmt.Sprintf("crsparse: at byte %d: %s", e.Pos, e.Reason)
}

/*****************************************************************************************************************/

// parser is a minimal recursive-descent scanner over a CRS string: no
// token slice is materialized, it walks the source directly.
type parser struct {
	src string
	pos int
}

/*****************************************************************************************************************/

// ParseCrs parses a CRS factory string such as "EQUATORIAL(FK4(1950,1975))",
// "GALACTIC", or "ECLIPTIC(J2000())" into a frame.Crs.
func ParseCrs(s string) (frame.Crs, error) {
	p := &parser{src: s}
	p.skipSpace()

	crs, err := p.parseCrs()
	if err != nil {
		return frame.Crs{}, err
	}

	p.skipSpace()
	if p.pos != len(p.src) {
		return frame.Crs{}, &ParseError{Pos: p.pos, Reason: "unexpected trailing input"}
	}

	return crs, nil
}

/*****************************************************************************************************************/

func (p *parser) parseCrs() (frame.Crs, error) {
	name, err := p.parseIdent()
	if err != nil {
		return frame.Crs{}, err
	}

	switch strings.ToUpper(name) {
	case "GALACTIC":
		return frame.Crs{Kind: frame.Galactic}, nil
	case "SUPER_GALACTIC":
		return frame.Crs{Kind: frame.SuperGalactic}, nil
	case "EQUATORIAL":
		f, err := p.parseOptionalFrame(frame.DefaultICRS())
		if err != nil {
			return frame.Crs{}, err
		}
		return frame.Crs{Kind: frame.Equatorial, Frame: f}, nil
	case "ECLIPTIC":
		f, err := p.parseOptionalFrame(frame.DefaultJ2000())
		if err != nil {
			return frame.Crs{}, err
		}
		return frame.Crs{Kind: frame.Ecliptic, Frame: f}, nil
	default:
		return frame.Crs{}, &ParseError{Pos: p.pos, Reason: fmt.Sprintf("unrecognized CRS %q", name)}
	}
}

/*****************************************************************************************************************/

// parseOptionalFrame parses a "(" frame ")" clause when present, otherwise
// returns def.
func (p *parser) parseOptionalFrame(def frame.Frame) (frame.Frame, error) {
	p.skipSpace()
	if !p.peek('(') {
		return def, nil
	}
	p.pos++ // consume '('

	p.skipSpace()
	f, err := p.parseFrame()
	if err != nil {
		return frame.Frame{}, err
	}

	p.skipSpace()
	if !p.peek(')') {
		return frame.Frame{}, &ParseError{Pos: p.pos, Reason: "expected ')' closing CRS frame clause"}
	}
	p.pos++ // consume ')'

	return f, nil
}

/*****************************************************************************************************************/

func (p *parser) parseFrame() (frame.Frame, error) {
	name, err := p.parseIdent()
	if err != nil {
		return frame.Frame{}, err
	}

	p.skipSpace()
	if !p.peek('(') {
		return frame.Frame{}, &ParseError{Pos: p.pos, Reason: "expected '(' after frame name " + name}
	}
	p.pos++ // consume '('

	args, err := p.parseArgs()
	if err != nil {
		return frame.Frame{}, err
	}

	p.skipSpace()
	if !p.peek(')') {
		return frame.Frame{}, &ParseError{Pos: p.pos, Reason: "expected ')' closing frame arguments"}
	}
	p.pos++ // consume ')'

	switch strings.ToUpper(name) {
	case "ICRS":
		if len(args) != 0 {
			return frame.Frame{}, &ParseError{Pos: p.pos, Reason: "ICRS() takes no arguments"}
		}
		return frame.DefaultICRS(), nil

	case "J2000":
		if len(args) != 0 {
			return frame.Frame{}, &ParseError{Pos: p.pos, Reason: "J2000() takes no arguments"}
		}
		return frame.DefaultJ2000(), nil

	case "FK5":
		if len(args) != 1 {
			return frame.Frame{}, &ParseError{Pos: p.pos, Reason: "FK5(equinox) takes exactly one argument"}
		}
		return frame.Frame{Kind: frame.FK5, Equinox: epoch.Epochs{Julian: args[0], JD: epoch.JulianEpochToJD(args[0])}}, nil

	case "FK4":
		return parseFK4Like(frame.FK4, args, p.pos)

	case "FK4_NO_E":
		return parseFK4Like(frame.FK4NoE, args, p.pos)

	default:
		return frame.Frame{}, &ParseError{Pos: p.pos, Reason: fmt.Sprintf("unrecognized reference frame %q", name)}
	}
}

/*****************************************************************************************************************/

// parseFK4Like builds an FK4 or FK4_NO_E frame from 1 or 2 Besselian-year
// arguments: equinox, and an optional epoch of observation.
func parseFK4Like(kind frame.FrameKind, args []float64, pos int) (frame.Frame, error) {
	if len(args) < 1 || len(args) > 2 {
		return frame.Frame{}, &ParseError{Pos: pos, Reason: "FK4(equinox[,epoch]) takes one or two arguments"}
	}

	f := frame.Frame{Kind: kind, Equinox: epoch.Epochs{Besselian: args[0], JD: epoch.BesselianEpochToJD(args[0])}}
	if len(args) == 2 {
		eo := epoch.Epochs{Besselian: args[1], JD: epoch.BesselianEpochToJD(args[1])}
		f.EpochOfObservation = &eo
	}
	return f, nil
}

/*****************************************************************************************************************/

// parseArgs parses a comma-separated list of numeric literals up to the
// closing ')', without consuming it.
func (p *parser) parseArgs() ([]float64, error) {
	var args []float64

	p.skipSpace()
	if p.peek(')') {
		return args, nil
	}

	for {
		p.skipSpace()
		v, err := p.parseNumber()
		if err != nil {
			return nil, err
		}
		args = append(args, v)

		p.skipSpace()
		if p.peek(',') {
			p.pos++
			continue
		}
		break
	}

	return args, nil
}

/*****************************************************************************************************************/

func (p *parser) parseIdent() (string, error) {
	start := p.pos
	for p.pos < len(p.src) && isIdentRune(rune(p.src[p.pos])) {
		p.pos++
	}
	if p.pos == start {
		return "", &ParseError{Pos: p.pos, Reason: "expected an identifier"}
	}
	return p.src[start:p.pos], nil
}

/*****************************************************************************************************************/

func (p *parser) parseNumber() (float64, error) {
	start := p.pos
	if p.pos < len(p.src) && (p.src[p.pos] == '+' || p.src[p.pos] == '-') {
		p.pos++
	}
	for p.pos < len(p.src) && (isDigit(p.src[p.pos]) || p.src[p.pos] == '.') {
		p.pos++
	}
	if p.pos == start {
		return 0, &ParseError{Pos: p.pos, Reason: "expected a number"}
	}
	v, err := strconv.ParseFloat(p.src[start:p.pos], 64)
	if err != nil {
		return 0, &ParseError{Pos: start, Reason: fmt.Sprintf("invalid number %q", p.src[start:p.pos])}
	}
	return v, nil
}

/*****************************************************************************************************************/

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

/*****************************************************************************************************************/

func (p *parser) peek(c byte) bool {
	return p.pos < len(p.src) && p.src[p.pos] == c
}

/*****************************************************************************************************************/

func isIdentRune(r rune) bool {
	return r == '_' || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

/*****************************************************************************************************************/

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

/*****************************************************************************************************************/
