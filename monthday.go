// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package monthday provides a date without a year, ie. a month and a day,
// useful for recurring events such as birthdays or anniversaries.
//
// A MonthDay is always a valid calendar combination of month and day
// assuming that some leap year is available, so February 29 is a valid
// MonthDay, but it can only be combined with leap years:
//
//	feb29 := monthday.MustNew(2, 29)
//	feb29.Date(2012) // 2012-02-29
//	feb29.Date(2013) // error: since 2013 is not a leap year...
//
// Dates combines a MonthDay with a sequence of years with an explicit
// policy for how to handle years that February 29 cannot be combined with.
package monthday

import (
	"cmp"
	"fmt"
	"time"

	"cloudeng.io/monthday/calendar"
)

// MonthDay represents a month and day of month. Values are immutable,
// comparable with == and may be used as map keys. The zero value is not
// a valid MonthDay and is reported by IsZero.
type MonthDay struct {
	month calendar.Month
	day   int
}

// New returns the MonthDay for month and day. Month must be in the
// range 1-12 and day must be in the range 1 to 31, 30 or 29 depending on
// the month. A *RangeError is returned otherwise.
func New(month, day int) (MonthDay, error) {
	if err := calendar.CheckMonth(month); err != nil {
		return MonthDay{}, err
	}
	m := calendar.Month(month)
	if n := calendar.MaxDaysInMonth(m); day < 1 || day > n {
		return MonthDay{}, &RangeError{Field: "day", Value: day, Min: 1, Max: n, Month: m}
	}
	return MonthDay{month: m, day: day}, nil
}

// MustNew is like New but panics on error.
func MustNew(month, day int) MonthDay {
	md, err := New(month, day)
	if err != nil {
		panic(err)
	}
	return md
}

// FromDate returns the MonthDay for d, discarding its year. A *RangeError
// is returned for the zero Date.
func FromDate(d calendar.Date) (MonthDay, error) {
	return New(int(d.Month()), d.Day())
}

// FromTime returns the MonthDay for t in t's location, discarding its year.
func FromTime(t time.Time) MonthDay {
	_, month, day := t.Date()
	return MustNew(int(month), day)
}

func (md MonthDay) Month() calendar.Month {
	return md.month
}

func (md MonthDay) Day() int {
	return md.day
}

// IsZero returns true for the zero value of MonthDay.
func (md MonthDay) IsZero() bool {
	return md == MonthDay{}
}

// Equal returns true if md and o represent the same month and day.
func (md MonthDay) Equal(o MonthDay) bool {
	return md == o
}

// Compare returns -1, 0 or +1 depending on whether md is before, the same
// as or after o within a year. It is suitable for use with slices.SortFunc.
func (md MonthDay) Compare(o MonthDay) int {
	if c := cmp.Compare(md.month, o.month); c != 0 {
		return c
	}
	return cmp.Compare(md.day, o.day)
}

// Before returns true if md is earlier in the year than o.
func (md MonthDay) Before(o MonthDay) bool {
	return md.Compare(o) < 0
}

// After returns true if md is later in the year than o.
func (md MonthDay) After(o MonthDay) bool {
	return md.Compare(o) > 0
}

// Hash returns month*100 + day which is unique for every valid MonthDay
// and stable across processes.
func (md MonthDay) Hash() int {
	return int(md.month)*100 + md.day
}

// String returns the MonthDay in MM-DD format, eg. 08-04.
func (md MonthDay) String() string {
	return fmt.Sprintf("%02d-%02d", int(md.month), md.day)
}

// GoString implements fmt.GoStringer and is used for %#v, eg.
// monthday.MonthDay(8, 4).
func (md MonthDay) GoString() string {
	return fmt.Sprintf("monthday.MonthDay(%d, %d)", int(md.month), md.day)
}
