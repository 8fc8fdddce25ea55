// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command monthday lists the dates of recurring, year-less, dates such as
// birthdays and anniversaries.
package main

import (
	"context"
	"os"
	"time"

	"cloudeng.io/cmdutil/subcmd"
)

const cmdSpec = `name: monthday
summary: work with dates that have no year, such as birthdays and anniversaries
commands:
  - name: dates
    summary: list the dates formed by combining a month-day (MM-DD) with each year in a range
    arguments:
      - <MM-DD>
      - <from-year>
      - <to-year>
  - name: check
    summary: validate a YAML file of anniversaries
    arguments:
      - <anniversaries.yaml>
  - name: occurrences
    summary: list the dates of all of the anniversaries in a year
    arguments:
      - <anniversaries.yaml>
      - <year>
  - name: upcoming
    summary: list the next anniversaries on or after a given date
    arguments:
      - <anniversaries.yaml>
`

func newCommandSet(cmds *commands) *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(cmdSpec)
	cmdSet.Set("dates").MustRunnerAndFlags(cmds.dates,
		subcmd.MustRegisteredFlagSet(&datesFlags{}))
	cmdSet.Set("check").MustRunnerAndFlags(cmds.check,
		subcmd.MustRegisteredFlagSet(&fileFlags{}))
	cmdSet.Set("occurrences").MustRunnerAndFlags(cmds.occurrences,
		subcmd.MustRegisteredFlagSet(&fileFlags{}))
	cmdSet.Set("upcoming").MustRunnerAndFlags(cmds.upcoming,
		subcmd.MustRegisteredFlagSet(&upcomingFlags{}))
	return cmdSet
}

func main() {
	cmds := &commands{out: os.Stdout, now: time.Now}
	subcmd.Dispatch(context.Background(), newCommandSet(cmds))
}
