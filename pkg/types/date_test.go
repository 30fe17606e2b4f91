// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "testing"

func TestPartialDatePrecision(t *testing.T) {
	tests := []struct {
		name string
		date PartialDate
		want int
	}{
		{"year only", PartialDate{Year: 1961, Hour: -1, Minute: -1}, PrecisionYear},
		{"year and month", PartialDate{Year: 1961, Month: 5, Hour: -1, Minute: -1}, PrecisionMonth},
		{"year month day", PartialDate{Year: 1961, Month: 5, Day: 4, Hour: -1, Minute: -1}, PrecisionDay},
		{"with hour", PartialDate{Year: 2012, Month: 6, Day: 23, Hour: 6, Minute: -1}, PrecisionHour},
		{"with minute", PartialDate{Year: 2012, Month: 6, Day: 23, Hour: 6, Minute: 0}, PrecisionMinute},
		{"midnight hour still counts", PartialDate{Year: 2012, Month: 6, Day: 23, Hour: 0, Minute: -1}, PrecisionHour},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.date.Precision(); got != tt.want {
				t.Errorf("Precision() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPartialDateString(t *testing.T) {
	tests := []struct {
		name string
		date PartialDate
		want string
	}{
		{"year only", PartialDate{Year: 1961, Hour: -1, Minute: -1}, "1961"},
		{"year and month", PartialDate{Year: 1961, Month: 5, Hour: -1, Minute: -1}, "1961-05"},
		{"full date", PartialDate{Year: 1961, Month: 5, Day: 4, Hour: -1, Minute: -1}, "1961-05-04"},
		{"hour no minute", PartialDate{Year: 2012, Month: 6, Day: 23, Hour: 7, Minute: -1}, "2012-06-23 07h"},
		{"hour and minute", PartialDate{Year: 2012, Month: 6, Day: 23, Hour: 7, Minute: 30}, "2012-06-23 07:30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.date.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
