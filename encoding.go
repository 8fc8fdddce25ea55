// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package monthday

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// The methods in this file are the only means of creating a MonthDay from
// untyped input and hence check that month and day are integers as well
// as checking their ranges.

var errZeroValue = errors.New("the zero MonthDay cannot be encoded")

func parseInt(field, val string) (int, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, typeMismatch("%s must be an integer, not %q", field, val)
	}
	return n, nil
}

// parseDigits accepts only one or two ASCII digits, so signs and
// extra leading zeros are rejected.
func parseDigits(field, val string) (int, error) {
	if len(val) == 0 || len(val) > 2 {
		return 0, typeMismatch("%s must be one or two digits, not %q", field, val)
	}
	for _, c := range []byte(val) {
		if c < '0' || c > '9' {
			return 0, typeMismatch("%s must be one or two digits, not %q", field, val)
		}
	}
	return parseInt(field, val)
}

// Parse parses the MM-DD format produced by String. Single digit months
// and days are also accepted.
func Parse(val string) (MonthDay, error) {
	m, d, ok := strings.Cut(val, "-")
	if !ok || strings.Contains(d, "-") {
		return MonthDay{}, typeMismatch("%q is not in MM-DD format", val)
	}
	month, err := parseDigits("month", m)
	if err != nil {
		return MonthDay{}, err
	}
	day, err := parseDigits("day", d)
	if err != nil {
		return MonthDay{}, err
	}
	return New(month, day)
}

// MarshalText implements encoding.TextMarshaler using the MM-DD format.
func (md MonthDay) MarshalText() ([]byte, error) {
	if md.IsZero() {
		return nil, errZeroValue
	}
	return []byte(md.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, see Parse.
func (md *MonthDay) UnmarshalText(text []byte) error {
	n, err := Parse(string(text))
	if err != nil {
		return err
	}
	*md = n
	return nil
}

type jsonMonthDay struct {
	Month json.RawMessage `json:"month"`
	Day   json.RawMessage `json:"day"`
}

// MarshalJSON implements json.Marshaler as {"month": 8, "day": 4}.
func (md MonthDay) MarshalJSON() ([]byte, error) {
	if md.IsZero() {
		return nil, errZeroValue
	}
	return []byte(`{"month":` + strconv.Itoa(int(md.month)) + `,"day":` + strconv.Itoa(md.day) + `}`), nil
}

func jsonInt(field string, raw json.RawMessage) (int, error) {
	if len(raw) == 0 {
		return 0, typeMismatch("%s is missing", field)
	}
	return parseInt(field, string(raw))
}

// UnmarshalJSON implements json.Unmarshaler. It accepts the object form
// written by MarshalJSON as well as the "MM-DD" string form. Month and
// day must be JSON integers, so 8.0 or "8" are rejected. A JSON null
// leaves md unchanged.
func (md *MonthDay) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return md.UnmarshalText([]byte(s))
	}
	if len(data) == 0 || data[0] != '{' {
		return typeMismatch("MonthDay must be a JSON object or string, not %s", data)
	}
	var jmd jsonMonthDay
	if err := json.Unmarshal(data, &jmd); err != nil {
		return err
	}
	month, err := jsonInt("month", jmd.Month)
	if err != nil {
		return err
	}
	day, err := jsonInt("day", jmd.Day)
	if err != nil {
		return err
	}
	n, err := New(month, day)
	if err != nil {
		return err
	}
	*md = n
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler as the two bytes
// month, day.
func (md MonthDay) MarshalBinary() ([]byte, error) {
	if md.IsZero() {
		return nil, errZeroValue
	}
	return []byte{byte(md.month), byte(md.day)}, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (md *MonthDay) UnmarshalBinary(data []byte) error {
	if len(data) != 2 {
		return typeMismatch("binary MonthDay must be 2 bytes long, not %d", len(data))
	}
	n, err := New(int(data[0]), int(data[1]))
	if err != nil {
		return err
	}
	*md = n
	return nil
}

// MarshalYAML implements yaml.Marshaler using the MM-DD format.
func (md MonthDay) MarshalYAML() (any, error) {
	if md.IsZero() {
		return nil, errZeroValue
	}
	return md.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, the value must be a
// scalar in MM-DD format.
func (md *MonthDay) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return typeMismatch("line %d: MonthDay must be a scalar in MM-DD format", value.Line)
	}
	return md.UnmarshalText([]byte(value.Value))
}

// Value implements driver.Valuer, storing a MonthDay as MM-DD text.
func (md MonthDay) Value() (driver.Value, error) {
	if md.IsZero() {
		return nil, errZeroValue
	}
	return md.String(), nil
}

// Scan implements sql.Scanner for text columns written by Value.
// NULL is rejected, use sql.Null[MonthDay] for nullable columns.
func (md *MonthDay) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return md.UnmarshalText([]byte(v))
	case []byte:
		return md.UnmarshalText(v)
	case nil:
		return typeMismatch("cannot scan NULL into a MonthDay")
	}
	return typeMismatch("cannot scan %T into a MonthDay", src)
}
