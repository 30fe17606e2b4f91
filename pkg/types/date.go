// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// Date precision values, coarse to fine. The numbering matches the
// external convention the decoder's consumers already use: 9 is a bare
// year, each finer field raises the precision by one.
const (
	PrecisionYear   = 9
	PrecisionMonth  = 10
	PrecisionDay    = 11
	PrecisionHour   = 12
	PrecisionMinute = 13
)

// PartialDate is a calendar date where only a prefix of {year, month,
// day, hour, minute} may be known. A date with no year is never
// materialized; the decoder represents it as a nil *PartialDate, so a
// PartialDate value always has a meaningful Year.
type PartialDate struct {
	Year uint32 `json:"year" yaml:"year"`

	// Month is 1-12, or 0 when absent.
	Month uint8 `json:"month" yaml:"month"`

	// Day is 0 when absent.
	Day uint8 `json:"day" yaml:"day"`

	// Hour and Minute use -1 as the absent sentinel, since 0 is a
	// valid value for both.
	Hour   int8 `json:"hour" yaml:"hour"`
	Minute int8 `json:"minute" yaml:"minute"`

	// DateType and PubStatus are carried verbatim from the source
	// element's attributes when present.
	DateType  string `json:"date_type,omitempty" yaml:"date_type,omitempty"`
	PubStatus string `json:"pub_status,omitempty" yaml:"pub_status,omitempty"`
}

// Precision derives the date's precision from which fields are present,
// most specific wins.
func (d PartialDate) Precision() int {
	switch {
	case d.Minute >= 0:
		return PrecisionMinute
	case d.Hour >= 0:
		return PrecisionHour
	case d.Day > 0:
		return PrecisionDay
	case d.Month > 0:
		return PrecisionMonth
	default:
		return PrecisionYear
	}
}

// String formats the date down to its known fields: "1961", "1961-05",
// "1961-05-04", "1961-05-04 07h", "1961-05-04 07:30".
func (d PartialDate) String() string {
	s := fmt.Sprintf("%04d", d.Year)
	if d.Month > 0 {
		s += fmt.Sprintf("-%02d", d.Month)
	}
	if d.Day > 0 {
		s += fmt.Sprintf("-%02d", d.Day)
	}
	if d.Hour >= 0 {
		if d.Minute >= 0 {
			s += fmt.Sprintf(" %02d:%02d", d.Hour, d.Minute)
		} else {
			s += fmt.Sprintf(" %02dh", d.Hour)
		}
	}
	return s
}
