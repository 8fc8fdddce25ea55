// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/monthday"
	"cloudeng.io/monthday/anniversary"
	"cloudeng.io/monthday/calendar"
)

type datesFlags struct {
	cmdutil.LoggingFlags
	Policy string `subcmd:"policy,strict,'how to handle February 29 in non-leap years: strict, skip or fill'"`
}

type fileFlags struct {
	cmdutil.LoggingFlags
}

type upcomingFlags struct {
	cmdutil.LoggingFlags
	From string `subcmd:"from,,'the date, in YYYY-MM-DD format, to start from, defaults to today'"`
	N    int    `subcmd:"n,10,the number of anniversaries to list"`
}

type commands struct {
	out io.Writer
	now func() time.Time
}

func withLogger(ctx context.Context, lf cmdutil.LoggingFlags) (context.Context, func(), error) {
	logger, err := lf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, nil, err
	}
	return ctxlog.Context(ctx, logger.Logger), func() { logger.Close() }, nil
}

func parseYear(val string) (int, error) {
	year, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid year %q: must be an integer", val)
	}
	return year, nil
}

func (c *commands) dates(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*datesFlags)
	ctx, done, err := withLogger(ctx, fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer done()
	policy, err := monthday.ParsePolicy(fv.Policy)
	if err != nil {
		return err
	}
	md, err := monthday.Parse(args[0])
	if err != nil {
		return err
	}
	from, err := parseYear(args[1])
	if err != nil {
		return err
	}
	to, err := parseYear(args[2])
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Info("dates", "monthday", md.String(), "from", from, "to", to, "policy", policy.String())
	it, err := md.Dates(calendar.Years(from, to), policy)
	if err != nil {
		return err
	}
	defer it.Stop()
	for o := range it.All() {
		fmt.Fprintln(c.out, o)
	}
	return it.Err()
}

func (c *commands) check(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*fileFlags)
	ctx, done, err := withLogger(ctx, fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer done()
	l, err := anniversary.ParseFile(args[0])
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Info("checked", "file", args[0], "anniversaries", len(l))
	fmt.Fprintf(c.out, "%s: %d anniversaries ok\n", args[0], len(l))
	return nil
}

func (c *commands) occurrences(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*fileFlags)
	ctx, done, err := withLogger(ctx, fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer done()
	l, err := anniversary.ParseFile(args[0])
	if err != nil {
		return err
	}
	year, err := parseYear(args[1])
	if err != nil {
		return err
	}
	entries, err := l.Occurrences(ctx, year)
	for _, e := range entries {
		fmt.Fprintln(c.out, e)
	}
	return err
}

func (c *commands) upcoming(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*upcomingFlags)
	ctx, done, err := withLogger(ctx, fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer done()
	l, err := anniversary.ParseFile(args[0])
	if err != nil {
		return err
	}
	from := calendar.FromTime(c.now())
	if len(fv.From) > 0 {
		t, err := time.Parse(time.DateOnly, fv.From)
		if err != nil {
			return fmt.Errorf("invalid --from date %q: %w", fv.From, err)
		}
		from = calendar.FromTime(t)
	}
	entries, err := l.Upcoming(ctx, from, fv.N)
	for _, e := range entries {
		fmt.Fprintln(c.out, e)
	}
	return err
}
