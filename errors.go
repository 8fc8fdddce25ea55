// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package monthday

import (
	"errors"
	"fmt"

	"cloudeng.io/monthday/calendar"
)

var (
	// ErrTypeMismatch is returned when an input is not of the required
	// kind, eg. a non-integral month when decoding or a nil sequence
	// of years.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrRange is matched by errors.Is for all instances of *RangeError.
	// It is not matched by *LeapYearError.
	ErrRange = calendar.ErrRange

	// ErrNotLeapYear is matched by errors.Is for all instances of
	// *LeapYearError.
	ErrNotLeapYear = errors.New("not a leap year")
)

// RangeError is returned when a month or day is out of range.
type RangeError = calendar.RangeError

// LeapYearError is returned when February 29 is combined with a year
// that is not a leap year.
type LeapYearError struct {
	Year     int
	MonthDay MonthDay
}

func (e *LeapYearError) Error() string {
	return fmt.Sprintf("since %d is not a leap year, %#v can't be combined with %d", e.Year, e.MonthDay, e.Year)
}

// Is supports errors.Is for ErrNotLeapYear.
func (e *LeapYearError) Is(target error) bool {
	return target == ErrNotLeapYear
}

func typeMismatch(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrTypeMismatch, fmt.Sprintf(format, args...))
}
