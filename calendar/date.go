// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"cmp"
	"fmt"
	"time"
)

// Date represents a date with a year, month and day. Dates can only be
// created via NewDate or FromTime and hence always refer to a day that
// exists in the proleptic Gregorian calendar. The zero value is not
// a valid date, see IsZero.
type Date struct {
	year  int
	month Month
	day   int
}

// NewDate returns the Date for the given year, month and day. It returns
// a *RangeError if month is not in the range 1-12 or if day is not
// a valid day of month in year, eg. February 29 in a non-leap year.
func NewDate(year int, month Month, day int) (Date, error) {
	if err := CheckMonth(int(month)); err != nil {
		return Date{}, err
	}
	if n := DaysInMonth(year, month); day < 1 || day > n {
		return Date{}, &RangeError{
			Field:   "day",
			Value:   day,
			Min:     1,
			Max:     n,
			Month:   month,
			Year:    year,
			ForYear: true,
		}
	}
	return Date{year: year, month: month, day: day}, nil
}

// MustNewDate is like NewDate but panics on error.
func MustNewDate(year int, month Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// FromTime returns the Date for the given time in its own location.
func FromTime(t time.Time) Date {
	year, month, day := t.Date()
	return Date{year: year, month: Month(month), day: day}
}

func (d Date) Year() int {
	return d.year
}

func (d Date) Month() Month {
	return d.month
}

func (d Date) Day() int {
	return d.day
}

// IsZero returns true for the zero value of Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Time returns midnight at the start of the date in the given location,
// UTC is used if loc is nil.
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.year, time.Month(d.month), d.day, 0, 0, 0, 0, loc)
}

// YearDay returns the day of the year, 1-365 for non-leap years and 1-366
// for leap years.
func (d Date) YearDay() int {
	days := daysInMonth
	if IsLeap(d.year) {
		days = daysInMonthLeap
	}
	yd := d.day
	for m := 0; m < int(d.month)-1; m++ {
		yd += days[m]
	}
	return yd
}

// Compare returns -1, 0 or +1 depending on whether d is before, the same
// as or after o.
func (d Date) Compare(o Date) int {
	if c := cmp.Compare(d.year, o.year); c != 0 {
		return c
	}
	if c := cmp.Compare(d.month, o.month); c != 0 {
		return c
	}
	return cmp.Compare(d.day, o.day)
}

// Before returns true if d is before o.
func (d Date) Before(o Date) bool {
	return d.Compare(o) < 0
}

// String returns the date in YYYY-MM-DD format.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}
