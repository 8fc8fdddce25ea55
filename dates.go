// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package monthday

import (
	"errors"
	"fmt"
	"iter"
	"strings"
	"time"

	"cloudeng.io/monthday/calendar"
)

// Date returns the calendar.Date formed by combining md with year.
// A *LeapYearError is returned if md is February 29 and year is not
// a leap year.
func (md MonthDay) Date(year int) (calendar.Date, error) {
	d, err := calendar.NewDate(year, md.month, md.day)
	if err != nil {
		if md.month == 2 && md.day == 29 {
			return calendar.Date{}, &LeapYearError{Year: year, MonthDay: md}
		}
		return calendar.Date{}, err
	}
	return d, nil
}

// Time returns midnight at the start of md in year in the given location,
// UTC is used if loc is nil.
func (md MonthDay) Time(year int, loc *time.Location) (time.Time, error) {
	d, err := md.Date(year)
	if err != nil {
		return time.Time{}, err
	}
	return d.Time(loc), nil
}

// InvalidDatePolicy determines how Dates handles years that a MonthDay
// cannot be combined with, ie. non-leap years for February 29.
type InvalidDatePolicy int

const (
	// Strict stops at the first invalid year and reports its error.
	Strict InvalidDatePolicy = iota
	// Skip omits invalid years, so fewer dates than years may be produced.
	Skip
	// Fill produces an Occurrence with Valid set to false for each
	// invalid year, so exactly one Occurrence is produced per year.
	Fill
)

var policyNames = []string{"strict", "skip", "fill"}

func (p InvalidDatePolicy) valid() bool {
	return p >= Strict && p <= Fill
}

func (p InvalidDatePolicy) String() string {
	if !p.valid() {
		return fmt.Sprintf("InvalidDatePolicy(%d)", int(p))
	}
	return policyNames[p]
}

// ParsePolicy parses one of "strict", "skip" or "fill" in any case.
// The empty string is treated as "strict".
func ParsePolicy(val string) (InvalidDatePolicy, error) {
	if len(val) == 0 {
		return Strict, nil
	}
	lc := strings.ToLower(val)
	for i, n := range policyNames {
		if n == lc {
			return InvalidDatePolicy(i), nil
		}
	}
	return Strict, fmt.Errorf("invalid date policy %q, expected one of %s", val, strings.Join(policyNames, ", "))
}

func (p InvalidDatePolicy) MarshalText() ([]byte, error) {
	if !p.valid() {
		return nil, typeMismatch("unknown invalid date policy: %d", int(p))
	}
	return []byte(p.String()), nil
}

func (p *InvalidDatePolicy) UnmarshalText(text []byte) error {
	np, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = np
	return nil
}

// Occurrence is the result of combining a MonthDay with a single year.
// Valid is false only for years that the MonthDay cannot be combined
// with when the Fill policy is used, in which case Date is the zero value.
type Occurrence struct {
	Year  int
	Date  calendar.Date
	Valid bool
}

func (o Occurrence) String() string {
	if !o.Valid {
		return "-"
	}
	return o.Date.String()
}

// Dates returns an iterator over the dates formed by combining md with
// each of the supplied years, in the order that they are supplied, with
// invalid combinations handled as per policy. The years are consumed
// one at a time as the returned iterator is advanced.
// ErrTypeMismatch is returned immediately if years is nil or policy
// is not one of Strict, Skip or Fill.
func (md MonthDay) Dates(years iter.Seq[int], policy InvalidDatePolicy) (*DateIterator, error) {
	if years == nil {
		return nil, typeMismatch("years must be a non-nil sequence")
	}
	if !policy.valid() {
		return nil, typeMismatch("unknown invalid date policy: %d", int(policy))
	}
	next, stop := iter.Pull(years)
	return &DateIterator{
		md:     md,
		policy: policy,
		next:   next,
		stop:   stop,
	}, nil
}

// DateIterator is a single pass iterator over the Occurrences of a MonthDay
// for a sequence of years. Typical usage is:
//
//	it, err := md.Dates(calendar.Years(2010, 2016), monthday.Skip)
//	...
//	defer it.Stop()
//	for it.Next() {
//		o := it.Occurrence()
//		...
//	}
//	if err := it.Err(); err != nil {
//		...
//	}
//
// Iteration may be suspended and resumed at any point but can never be
// restarted. A DateIterator must not be used concurrently.
type DateIterator struct {
	md     MonthDay
	policy InvalidDatePolicy
	next   func() (int, bool)
	stop   func()
	cur    Occurrence
	err    error
	done   bool
}

// Next advances to the next Occurrence, which is then available via
// Occurrence. It returns false when the years are exhausted, when an
// error is encountered for the Strict policy or once Stop has been called.
func (it *DateIterator) Next() bool {
	if it.done {
		return false
	}
	for {
		year, ok := it.next()
		if !ok {
			it.Stop()
			return false
		}
		d, err := it.md.Date(year)
		if err == nil {
			it.cur = Occurrence{Year: year, Date: d, Valid: true}
			return true
		}
		if it.policy == Strict || !errors.Is(err, ErrNotLeapYear) {
			it.err = err
			it.Stop()
			return false
		}
		if it.policy == Fill {
			it.cur = Occurrence{Year: year}
			return true
		}
	}
}

// Occurrence returns the Occurrence produced by the most recent call
// to Next.
func (it *DateIterator) Occurrence() Occurrence {
	return it.cur
}

// Err returns the error, if any, that terminated iteration.
func (it *DateIterator) Err() error {
	return it.err
}

// Stop terminates iteration and releases the underlying sequence of
// years. It is safe to call Stop multiple times.
func (it *DateIterator) Stop() {
	if it.done {
		return
	}
	it.done = true
	it.cur = Occurrence{}
	it.stop()
}

// All returns an iterator over the remaining Occurrences. Breaking out
// of a range loop over All leaves the DateIterator positioned after
// the last Occurrence yielded so that iteration can be resumed.
func (it *DateIterator) All() iter.Seq[Occurrence] {
	return func(yield func(Occurrence) bool) {
		for it.Next() {
			if !yield(it.cur) {
				return
			}
		}
	}
}

// Collect returns all of the remaining Occurrences and the error, if any,
// that terminated iteration. For the Strict policy the Occurrences
// produced before the error are returned along with it.
func (it *DateIterator) Collect() ([]Occurrence, error) {
	var out []Occurrence
	for it.Next() {
		out = append(out, it.cur)
	}
	return out, it.err
}
