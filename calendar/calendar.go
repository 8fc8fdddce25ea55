// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendar provides the proleptic Gregorian calendar support
// needed to combine a month and day with a year: leap year rules, the
// number of days in each month and a validated year/month/day Date.
package calendar

import (
	"errors"
	"fmt"
	"iter"
	"time"
)

var (
	daysInMonth     []int // days in each month of a non-leap year
	daysInMonthLeap []int // days in each month of a leap year
)

func daysInMonthForYearInit(year int, month int) int {
	switch month {
	case 2:
		return DaysInFeb(year)
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func init() {
	daysInMonth = make([]int, 12)
	daysInMonthLeap = make([]int, 12)
	for i := 0; i < 12; i++ {
		daysInMonth[i] = daysInMonthForYearInit(2023, i+1)
		daysInMonthLeap[i] = daysInMonthForYearInit(2024, i+1)
	}
}

// Month as an int, 1 for January through 12 for December.
type Month time.Month

func (m Month) String() string {
	return time.Month(m).String()
}

// Valid returns true if m is in the range 1-12.
func (m Month) Valid() bool {
	return m >= 1 && m <= 12
}

// IsLeap returns true if the given year is a leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	if IsLeap(year) {
		return 29
	}
	return 28
}

// DaysInMonth returns the number of days in the given month for the given
// year. It returns 0 for an invalid month.
func DaysInMonth(year int, month Month) int {
	if !month.Valid() {
		return 0
	}
	if IsLeap(year) {
		return daysInMonthLeap[month-1]
	}
	return daysInMonth[month-1]
}

// MaxDaysInMonth returns the largest number of days that the given month
// can have in any year, ie. 29 for February. It returns 0 for an invalid
// month.
func MaxDaysInMonth(month Month) int {
	if !month.Valid() {
		return 0
	}
	return daysInMonthLeap[month-1]
}

// ErrRange is matched by errors.Is for all instances of *RangeError.
var ErrRange = errors.New("value out of range")

// RangeError is returned when a month or day is outside of its valid range.
type RangeError struct {
	Field    string // "month" or "day".
	Value    int    // The offending value.
	Min, Max int    // The inclusive range that Value must lie in.
	Month    Month  // The month that determines Max when Field is "day".
	Year     int    // The year that determines Max if ForYear is set.
	ForYear  bool
}

func (e *RangeError) Error() string {
	switch {
	case e.Field == "day" && e.ForYear:
		return fmt.Sprintf("day must be from %d to %d for month=%d in %d, but %d was given", e.Min, e.Max, int(e.Month), e.Year, e.Value)
	case e.Field == "day":
		return fmt.Sprintf("day must be from %d to %d for month=%d, but %d was given", e.Min, e.Max, int(e.Month), e.Value)
	}
	return fmt.Sprintf("%s must be from %d to %d, not %d", e.Field, e.Min, e.Max, e.Value)
}

// Is supports errors.Is for ErrRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrRange
}

// CheckMonth returns a *RangeError if month is not in the range 1-12.
func CheckMonth(month int) error {
	if month < 1 || month > 12 {
		return &RangeError{Field: "month", Value: month, Min: 1, Max: 12}
	}
	return nil
}

// Years returns an iterator over the years from and to inclusive. The
// years are yielded in descending order if from is greater than to.
func Years(from, to int) iter.Seq[int] {
	step := 1
	if from > to {
		step = -1
	}
	return func(yield func(int) bool) {
		for y := from; ; y += step {
			if !yield(y) || y == to {
				return
			}
		}
	}
}
