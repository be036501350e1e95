package entity

import (
	"strconv"
	"time"
)

// DateParts is the calendar date as entered on the dashboard, kept as free-form strings.
type DateParts struct {
	Month string `json:"month"`
	Day   string `json:"day"`
	Year  string `json:"year"`
}

// IsZero reports whether no date part was provided.
func (d DateParts) IsZero() bool {
	return d.Month == "" && d.Day == "" && d.Year == ""
}

// DatePartsOf splits t into dashboard date parts.
func DatePartsOf(t time.Time) DateParts {
	return DateParts{
		Month: t.Month().String(),
		Day:   strconv.Itoa(t.Day()),
		Year:  strconv.Itoa(t.Year()),
	}
}
