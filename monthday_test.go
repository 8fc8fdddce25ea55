// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package monthday_test

import (
	"errors"
	"fmt"
	"slices"
	"testing"
	"time"

	"cloudeng.io/monthday"
	"cloudeng.io/monthday/calendar"
)

var maxDays = []int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func TestNew(t *testing.T) {
	for m := 1; m <= 12; m++ {
		for d := 1; d <= maxDays[m-1]; d++ {
			md, err := monthday.New(m, d)
			if err != nil {
				t.Errorf("%v-%v: %v", m, d, err)
				continue
			}
			if got, want := int(md.Month()), m; got != want {
				t.Errorf("got %v, want %v", got, want)
			}
			if got, want := md.Day(), d; got != want {
				t.Errorf("got %v, want %v", got, want)
			}
			if md.IsZero() {
				t.Errorf("%v: unexpected zero value", md)
			}
		}
	}
	if !(monthday.MonthDay{}).IsZero() {
		t.Errorf("zero value is not zero")
	}
}

func TestNewRangeErrors(t *testing.T) {
	for _, tc := range []struct {
		month, day int
	}{
		{-12, 1}, {-1, 1}, {0, 1}, {13, 1}, {24, 1},
		{1, -31}, {1, -1}, {1, 0}, {1, 32},
		{2, 30}, {2, 31},
		{3, 32}, {4, 31}, {5, 32}, {6, 31},
		{7, 32}, {8, 32}, {9, 31}, {10, 32},
		{11, 31}, {12, 32},
	} {
		_, err := monthday.New(tc.month, tc.day)
		if !errors.Is(err, monthday.ErrRange) {
			t.Errorf("%v-%v: got %v, want a range error", tc.month, tc.day, err)
		}
		var re *monthday.RangeError
		if !errors.As(err, &re) {
			t.Errorf("%v-%v: not a *RangeError: %v", tc.month, tc.day, err)
		}
	}

	for _, tc := range []struct {
		month, day int
		msg        string
	}{
		{13, 1, "month must be from 1 to 12, not 13"},
		{4, 31, "day must be from 1 to 30 for month=4, but 31 was given"},
		{2, 30, "day must be from 1 to 29 for month=2, but 30 was given"},
		{1, 0, "day must be from 1 to 31 for month=1, but 0 was given"},
	} {
		_, err := monthday.New(tc.month, tc.day)
		if got, want := fmt.Sprint(err), tc.msg; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}

	defer func() {
		if recover() == nil {
			t.Errorf("MustNew failed to panic")
		}
	}()
	monthday.MustNew(2, 30)
}

func TestFromDate(t *testing.T) {
	aug4, dec25 := monthday.MustNew(8, 4), monthday.MustNew(12, 25)
	for _, tc := range []struct {
		date calendar.Date
		want monthday.MonthDay
	}{
		{calendar.MustNewDate(1988, 8, 4), aug4},
		{calendar.MustNewDate(2015, 12, 25), dec25},
		{calendar.MustNewDate(2012, 2, 29), monthday.MustNew(2, 29)},
	} {
		md, err := monthday.FromDate(tc.date)
		if err != nil {
			t.Errorf("%v: %v", tc.date, err)
			continue
		}
		if got, want := md, tc.want; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	if got, want := monthday.FromTime(time.Date(1988, 8, 4, 13, 14, 15, 0, time.UTC)), aug4; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	md, err := monthday.FromDate(calendar.Date{})
	if !errors.Is(err, monthday.ErrRange) {
		t.Errorf("unexpected error: %v", err)
	}
	if !md.IsZero() {
		t.Errorf("got %v, want the zero value", md)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, year := range []int{1900, 1988, 2000, 2012, 2013, 2024} {
		for date := calendar.MustNewDate(year, 1, 1); date.Year() == year; {
			md, err := monthday.FromDate(date)
			if err != nil {
				t.Fatalf("%v: %v", date, err)
			}
			got, err := md.Date(year)
			if err != nil {
				t.Errorf("%v: %v", date, err)
			}
			if got != date {
				t.Errorf("got %v, want %v", got, date)
			}
			next := date.Time(nil).AddDate(0, 0, 1)
			date = calendar.FromTime(next)
		}
	}
}

func TestEquality(t *testing.T) {
	a, b, c := monthday.MustNew(8, 4), monthday.MustNew(8, 4), monthday.MustNew(8, 5)
	if a != b || !a.Equal(b) {
		t.Errorf("%v != %v", a, b)
	}
	if got, want := a.Hash(), b.Hash(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if a == c || a.Equal(c) {
		t.Errorf("%v == %v", a, c)
	}
	if got, want := a.Hash(), 804; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	seen := map[int]monthday.MonthDay{}
	set := map[monthday.MonthDay]bool{}
	for m := 1; m <= 12; m++ {
		for d := 1; d <= maxDays[m-1]; d++ {
			md := monthday.MustNew(m, d)
			if prev, ok := seen[md.Hash()]; ok {
				t.Errorf("hash collision: %v and %v", prev, md)
			}
			seen[md.Hash()] = md
			set[md] = true
		}
	}
	if got, want := len(set), 366; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !set[monthday.MustNew(2, 29)] {
		t.Errorf("set lookup failed")
	}
}

func TestOrdering(t *testing.T) {
	mds := []monthday.MonthDay{
		monthday.MustNew(12, 25),
		monthday.MustNew(2, 29),
		monthday.MustNew(8, 4),
		monthday.MustNew(1, 1),
		monthday.MustNew(8, 3),
	}
	slices.SortFunc(mds, monthday.MonthDay.Compare)
	if got, want := fmt.Sprint(mds), "[01-01 02-29 08-03 08-04 12-25]"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	a, b := monthday.MustNew(8, 4), monthday.MustNew(8, 5)
	if !a.Before(b) || a.After(b) || !b.After(a) || a.Compare(a) != 0 {
		t.Errorf("ordering is incorrect for %v and %v", a, b)
	}
}

func TestStrings(t *testing.T) {
	for _, tc := range []struct {
		md       monthday.MonthDay
		str, dbg string
	}{
		{monthday.MustNew(8, 4), "08-04", "monthday.MonthDay(8, 4)"},
		{monthday.MustNew(12, 25), "12-25", "monthday.MonthDay(12, 25)"},
		{monthday.MustNew(2, 29), "02-29", "monthday.MonthDay(2, 29)"},
	} {
		if got, want := tc.md.String(), tc.str; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := fmt.Sprintf("%#v", tc.md), tc.dbg; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}
