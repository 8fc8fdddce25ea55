// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package anniversary provides support for named, recurring, dates such
// as birthdays that are specified as a monthday.MonthDay and an
// associated policy for handling February 29 in non-leap years.
//
// Anniversaries are typically read from a YAML file of the form:
//
//	anniversaries:
//	  - name: christmas
//	    date: 12-25
//	  - name: leap-day
//	    date: 02-29
//	    policy: skip
package anniversary

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"cloudeng.io/cmdutil"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/monthday"
	"cloudeng.io/monthday/calendar"
)

// Anniversary represents a named date that recurs every year.
type Anniversary struct {
	Name   string                     `yaml:"name"`
	When   monthday.MonthDay          `yaml:"date"`
	Policy monthday.InvalidDatePolicy `yaml:"policy,omitempty"`
}

func (a Anniversary) String() string {
	return fmt.Sprintf("%s: %s (%s)", a.Name, a.When, a.Policy)
}

// List represents a list of anniversaries.
type List []Anniversary

type config struct {
	Anniversaries List `yaml:"anniversaries"`
}

// ParseString parses and validates a YAML specification of anniversaries.
// The parsed list is returned along with any validation errors.
func ParseString(spec string) (List, error) {
	var cfg config
	if err := cmdutil.ParseYAMLConfigString(spec, &cfg); err != nil {
		return nil, err
	}
	return cfg.Anniversaries, cfg.Anniversaries.Validate()
}

// ParseFile is like ParseString but reads the specification from filename.
func ParseFile(filename string) (List, error) {
	var cfg config
	if err := cmdutil.ParseYAMLConfigFile(filename, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Anniversaries.Validate(); err != nil {
		return cfg.Anniversaries, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg.Anniversaries, nil
}

// Validate returns an error describing every invalid entry in the list:
// missing or duplicate names, missing dates and unknown policies.
func (l List) Validate() error {
	errs := errors.M{}
	seen := map[string]bool{}
	for i, a := range l {
		name := strings.TrimSpace(a.Name)
		if len(name) == 0 {
			errs.Append(fmt.Errorf("anniversary %d: missing name", i))
			name = fmt.Sprintf("#%d", i)
		} else if seen[name] {
			errs.Append(fmt.Errorf("anniversary %d: duplicate name %q", i, name))
		}
		seen[name] = true
		if a.When.IsZero() {
			errs.Append(fmt.Errorf("anniversary %q: missing date", name))
		}
		if _, err := a.Policy.MarshalText(); err != nil {
			errs.Append(errors.Annotate(fmt.Sprintf("anniversary %q", name), err))
		}
	}
	return errs.Err()
}

// Entry represents the occurrence of an anniversary in a specific year.
type Entry struct {
	Name string
	monthday.Occurrence
}

func (e Entry) String() string {
	return fmt.Sprintf("%s %s", e.Occurrence, e.Name)
}

func compareEntries(a, b Entry) int {
	switch {
	case a.Valid && !b.Valid:
		return -1
	case !a.Valid && b.Valid:
		return 1
	}
	if c := a.Date.Compare(b.Date); c != 0 {
		return c
	}
	return strings.Compare(a.Name, b.Name)
}

// occurrences returns the occurrences of a for the supplied years as per
// its policy, along with any error that terminated iteration.
func (a Anniversary) occurrences(ctx context.Context, from, to int) ([]monthday.Occurrence, error) {
	it, err := a.When.Dates(calendar.Years(from, to), a.Policy)
	if err != nil {
		return nil, err
	}
	defer it.Stop()
	occ, err := it.Collect()
	if n := to - from + 1; len(occ) < n && err == nil {
		ctxlog.Logger(ctx).Debug("anniversary skipped in some years",
			"name", a.Name, "date", a.When.String(), "skipped", n-len(occ))
	}
	return occ, err
}

// Occurrences returns the dates of all of the anniversaries in year, sorted
// by date and then name. Anniversaries that cannot occur in year are
// handled according to their policy: they are omitted for Skip and
// returned with Valid set to false, after all valid entries, for Fill.
// Errors for anniversaries with the Strict policy are returned together
// with the entries for all other anniversaries.
func (l List) Occurrences(ctx context.Context, year int) ([]Entry, error) {
	errs := errors.M{}
	entries := make([]Entry, 0, len(l))
	for _, a := range l {
		occ, err := a.occurrences(ctx, year, year)
		if err != nil {
			errs.Append(errors.Annotate(a.Name, err))
			continue
		}
		for _, o := range occ {
			entries = append(entries, Entry{Name: a.Name, Occurrence: o})
		}
	}
	slices.SortFunc(entries, compareEntries)
	return entries, errs.Err()
}

// UpcomingHorizon returns the number of years after from.Year() that
// Upcoming examines when asked for n dates. It is large enough to contain
// n leap years since consecutive leap years are at most 8 years apart
// and any window of 5*n+8 years contains at least n of them.
func UpcomingHorizon(n int) int {
	return 5*n + 8
}

// upcoming returns up to n valid occurrences of a on or after from, in
// order, pulling years from the underlying iterator only until n have
// been found.
func (a Anniversary) upcoming(ctx context.Context, from calendar.Date, n int) ([]monthday.Occurrence, error) {
	pulled := 0
	years := func(yield func(int) bool) {
		for y := range calendar.Years(from.Year(), from.Year()+UpcomingHorizon(n)) {
			pulled++
			if !yield(y) {
				return
			}
		}
	}
	it, err := a.When.Dates(years, a.Policy)
	if err != nil {
		return nil, err
	}
	defer it.Stop()
	var occ []monthday.Occurrence
	valid := 0
	for o := range it.All() {
		if !o.Valid {
			continue
		}
		valid++
		if o.Date.Before(from) {
			continue
		}
		occ = append(occ, o)
		if len(occ) == n {
			break
		}
	}
	if skipped := pulled - valid; skipped > 0 && it.Err() == nil {
		ctxlog.Logger(ctx).Debug("anniversary skipped in some years",
			"name", a.Name, "date", a.When.String(), "skipped", skipped)
	}
	return occ, it.Err()
}

// Upcoming returns, in order, the next n anniversary dates on or after
// from. Years that an anniversary cannot occur in are ignored unless its
// policy is Strict, in which case the error is returned along with the
// upcoming dates of all other anniversaries. Fewer than n dates are
// returned only if the list cannot produce n dates within
// UpcomingHorizon(n) years.
func (l List) Upcoming(ctx context.Context, from calendar.Date, n int) ([]Entry, error) {
	if n <= 0 {
		return nil, nil
	}
	errs := errors.M{}
	var entries []Entry
	for _, a := range l {
		occ, err := a.upcoming(ctx, from, n)
		if err != nil {
			errs.Append(errors.Annotate(a.Name, err))
		}
		for _, o := range occ {
			entries = append(entries, Entry{Name: a.Name, Occurrence: o})
		}
	}
	slices.SortFunc(entries, compareEntries)
	if len(entries) > n {
		entries = entries[:n]
	}
	ctxlog.Logger(ctx).Info("upcoming anniversaries",
		slog.String("from", from.String()), slog.Int("found", len(entries)))
	return entries, errs.Err()
}
