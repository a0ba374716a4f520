/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/skywcs
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package epoch converts between ISO dates, Julian dates, Modified Julian
// dates, and the Besselian/Julian epoch conventions used by FK4 and FK5
// (spec.md §4.7). The Gregorian calendar arithmetic follows the same
// Julian-day formula used throughout the example pack's astronomy
// libraries (e.g. soniakeys/meeus's julian.GregYMDToJD).
package epoch

/*****************************************************************************************************************/

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

/*****************************************************************************************************************/

// JDMod is the Julian date of the Modified Julian Date epoch (MJD 0).
const JDMod = 2400000.5

/*****************************************************************************************************************/

// j2000JD is the Julian date of the standard J2000.0 epoch.
const j2000JD = 2451545.0

/*****************************************************************************************************************/

// julianDaysPerJulianYear is the length, in days, of one Julian year —
// used by the Julian-epoch<->JD conversion.
const julianDaysPerJulianYear = 365.25

/*****************************************************************************************************************/

// besselianYearDays is the length, in days, of one Besselian (tropical)
// year, and b1900JD is the Julian date of the B1900.0 epoch — both from
// Lieske (1979), the standard reference for Besselian epoch arithmetic.
const besselianYearDays = 365.242198781

const b1900JD = 2415020.31352

/*****************************************************************************************************************/

// GregorianYMDToJD converts a calendar date (year, month, fractional day)
// to a Julian date, following the Meeus algorithm (Ch. 7) that is also the
// basis of soniakeys/meeus's julian.GregYMDToJD: dates on or after the
// Gregorian reform (1582-10-15) get the Gregorian leap-year correction;
// earlier dates are read in the proleptic Julian calendar, so that JD 0
// lands on -4712-01-01.5 exactly as the astronomical convention defines it.
func GregorianYMDToJD(y, m int, d float64) float64 {
	isGregorian := y > 1582 || (y == 1582 && (m > 10 || (m == 10 && d >= 15)))

	yf, mf := y, m
	if mf <= 2 {
		yf--
		mf += 12
	}

	b := 0.0
	if isGregorian {
		a := math.Floor(float64(yf) / 100.0)
		b = 2 - a + math.Floor(a/4.0)
	}

	return math.Floor(365.25*float64(yf+4716)) +
		math.Floor(30.6001*float64(mf+1)) + d + b - 1524.5
}

/*****************************************************************************************************************/

// JDToGregorianYMD converts a Julian date back to a Gregorian calendar
// date (year, month, fractional day). It is the exact inverse of
// GregorianYMDToJD over the Gregorian calendar's valid range.
func JDToGregorianYMD(jd float64) (y, m int, d float64) {
	jd += 0.5
	z := math.Floor(jd)
	f := jd - z

	var a float64
	if z < 2299161 {
		a = z
	} else {
		alpha := math.Floor((z - 1867216.25) / 36524.25)
		a = z + 1 + alpha - math.Floor(alpha/4)
	}

	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	dd := math.Floor(365.25 * c)
	e := math.Floor((b - dd) / 30.6001)

	day := b - dd - math.Floor(30.6001*e) + f

	var month float64
	if e < 14 {
		month = e - 1
	} else {
		month = e - 13
	}

	var year float64
	if month > 2 {
		year = c - 4716
	} else {
		year = c - 4715
	}

	return int(year), int(month), day
}

/*****************************************************************************************************************/

// MJDFromJD converts a Julian date to a Modified Julian Date.
func MJDFromJD(jd float64) float64 {
	return jd - JDMod
}

/*****************************************************************************************************************/

// JDFromMJD converts a Modified Julian Date back to a Julian date.
func JDFromMJD(mjd float64) float64 {
	return mjd + JDMod
}

/*****************************************************************************************************************/

// ISOToJD parses an ISO-8601 timestamp (either a date, or a date-time with
// optional fractional seconds) to a Julian date.
func ISOToJD(s string) (float64, error) {
	t, err := parseISO(s)
	if err != nil {
		return 0, err
	}

	dayFraction := (float64(t.Hour())*3600 + float64(t.Minute())*60 + float64(t.Second())) / 86400.0
	dayFraction += float64(t.Nanosecond()) / 1e9 / 86400.0

	return GregorianYMDToJD(t.Year(), int(t.Month()), float64(t.Day())+dayFraction), nil
}

/*****************************************************************************************************************/

// JDToISO converts a Julian date to an ISO-8601 date-time string (UTC,
// millisecond precision), the inverse of ISOToJD.
func JDToISO(jd float64) string {
	y, m, d := JDToGregorianYMD(jd)
	day := math.Floor(d)
	dayFraction := d - day

	totalMillis := math.Round(dayFraction * 86400000.0)
	hh := int(totalMillis) / 3600000
	totalMillis -= float64(hh) * 3600000
	mm := int(totalMillis) / 60000
	totalMillis -= float64(mm) * 60000
	ss := int(totalMillis) / 1000
	ms := int(totalMillis) - ss*1000

	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d.%03dZ", y, m, int(day), hh, mm, ss, ms)
}

/*****************************************************************************************************************/

// ISOToMJD parses an ISO-8601 timestamp to a Modified Julian Date.
func ISOToMJD(s string) (float64, error) {
	jd, err := ISOToJD(s)
	if err != nil {
		return 0, err
	}
	return MJDFromJD(jd), nil
}

/*****************************************************************************************************************/

func parseISO(s string) (time.Time, error) {
	layouts := []string{
		"2006-01-02T15:04:05.000",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05Z",
		"2006-01-02T15:04:05.000Z",
		time.RFC3339,
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("epoch: %q is not a recognized ISO-8601 timestamp", s)
}

/*****************************************************************************************************************/

// JulianEpochToJD converts a Julian epoch (e.g. 2000.0 for "J2000") to a
// Julian date: J(JD) = 2000.0 + (JD − 2451545.0) / 365.25.
func JulianEpochToJD(j float64) float64 {
	return (j-2000.0)*julianDaysPerJulianYear + j2000JD
}

/*****************************************************************************************************************/

// JDToJulianEpoch is the inverse of JulianEpochToJD.
func JDToJulianEpoch(jd float64) float64 {
	return 2000.0 + (jd-j2000JD)/julianDaysPerJulianYear
}

/*****************************************************************************************************************/

// BesselianEpochToJD converts a Besselian epoch (e.g. 1950.0 for "B1950")
// to a Julian date, per Lieske (1979).
func BesselianEpochToJD(b float64) float64 {
	return (b-1900.0)*besselianYearDays + b1900JD
}

/*****************************************************************************************************************/

// JDToBesselianEpoch is the inverse of BesselianEpochToJD.
func JDToBesselianEpoch(jd float64) float64 {
	return 1900.0 + (jd-b1900JD)/besselianYearDays
}

/*****************************************************************************************************************/

// BesselianToJulianEpoch converts a Besselian epoch directly to the
// equivalent Julian epoch, by round-tripping through a Julian date.
func BesselianToJulianEpoch(b float64) float64 {
	return JDToJulianEpoch(BesselianEpochToJD(b))
}

/*****************************************************************************************************************/

// JulianToBesselianEpoch converts a Julian epoch directly to the
// equivalent Besselian epoch, by round-tripping through a Julian date.
func JulianToBesselianEpoch(j float64) float64 {
	return JDToBesselianEpoch(JulianEpochToJD(j))
}

/*****************************************************************************************************************/

// Epochs is the parsed result of a date specification handed to the CLI or
// to keyword ingest: the same instant expressed as a Besselian epoch, a
// Julian epoch, and a Julian date.
type Epochs struct {
	Besselian float64
	Julian    float64
	JD        float64
}

/*****************************************************************************************************************/

// ParseEpochs parses a date specification of the form "B1950", "J2000",
// "F1987.25" (fractional year, interpreted as a Julian epoch), "MJD40587",
// "JD2440588.5", or an ISO-8601 date/date-time, returning all three
// equivalent representations (spec.md §4.7).
func ParseEpochs(spec string) (Epochs, error) {
	s := strings.TrimSpace(spec)
	if s == "" {
		return Epochs{}, fmt.Errorf("epoch: empty epoch specification")
	}

	switch {
	case strings.HasPrefix(s, "B") || strings.HasPrefix(s, "b"):
		v, err := strconv.ParseFloat(s[1:], 64)
		if err != nil {
			return Epochs{}, fmt.Errorf("epoch: bad Besselian epoch %q: %w", s, err)
		}
		return Epochs{Besselian: v, Julian: BesselianToJulianEpoch(v), JD: BesselianEpochToJD(v)}, nil

	case strings.HasPrefix(s, "JD") || strings.HasPrefix(s, "jd"):
		v, err := strconv.ParseFloat(s[2:], 64)
		if err != nil {
			return Epochs{}, fmt.Errorf("epoch: bad JD %q: %w", s, err)
		}
		return Epochs{Besselian: JDToBesselianEpoch(v), Julian: JDToJulianEpoch(v), JD: v}, nil

	case strings.HasPrefix(s, "J") || strings.HasPrefix(s, "j"):
		v, err := strconv.ParseFloat(s[1:], 64)
		if err != nil {
			return Epochs{}, fmt.Errorf("epoch: bad Julian epoch %q: %w", s, err)
		}
		return Epochs{Besselian: JulianToBesselianEpoch(v), Julian: v, JD: JulianEpochToJD(v)}, nil

	case strings.HasPrefix(s, "F") || strings.HasPrefix(s, "f"):
		v, err := strconv.ParseFloat(s[1:], 64)
		if err != nil {
			return Epochs{}, fmt.Errorf("epoch: bad fractional year %q: %w", s, err)
		}
		return Epochs{Besselian: JulianToBesselianEpoch(v), Julian: v, JD: JulianEpochToJD(v)}, nil

	case strings.HasPrefix(s, "MJD") || strings.HasPrefix(s, "mjd"):
		v, err := strconv.ParseFloat(s[3:], 64)
		if err != nil {
			return Epochs{}, fmt.Errorf("epoch: bad MJD %q: %w", s, err)
		}
		jd := JDFromMJD(v)
		return Epochs{Besselian: JDToBesselianEpoch(jd), Julian: JDToJulianEpoch(jd), JD: jd}, nil

	default:
		jd, err := ISOToJD(s)
		if err != nil {
			return Epochs{}, fmt.Errorf("epoch: %q is not a B/J/F/MJD/JD epoch or an ISO date: %w", s, err)
		}
		return Epochs{Besselian: JDToBesselianEpoch(jd), Julian: JDToJulianEpoch(jd), JD: jd}, nil
	}
}

/*****************************************************************************************************************/
