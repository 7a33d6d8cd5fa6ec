// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar-day format used in query strings and forms.
const DateLayout = "2006-01-02"

var (
	ErrInvalidNumber = errors.New("invalid number")
	ErrInvalidDate   = errors.New("invalid date")
)

// FlexInt decodes a JSON number or a numeric string holding a whole number.
// Empty strings and null leave it unset.
type FlexInt struct {
	Value int
	Set   bool
}

// NewFlexInt returns a set [FlexInt].
func NewFlexInt(v int) FlexInt {
	return FlexInt{Value: v, Set: true}
}

// UnmarshalJSON implements [json.Unmarshaler].
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	*f = FlexInt{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidNumber, err)
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return nil
		}
	}

	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || n != math.Trunc(n) || n < math.MinInt64 || n >= math.MaxInt64 {
		return fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}

	f.Value, f.Set = int(n), true
	return nil
}

// MarshalJSON implements [json.Marshaler].
func (f FlexInt) MarshalJSON() ([]byte, error) {
	if !f.Set {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(f.Value)), nil
}

// FlexDate decodes either a calendar day (2006-01-02) or an RFC 3339
// timestamp. Empty strings and null leave it unset.
type FlexDate struct {
	Time time.Time
	Set  bool
}

// NewFlexDate returns a set [FlexDate].
func NewFlexDate(t time.Time) FlexDate {
	return FlexDate{Time: t, Set: true}
}

// ParseFlexDate parses s the way [FlexDate.UnmarshalJSON] does.
func ParseFlexDate(s string) (FlexDate, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return FlexDate{}, nil
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return NewFlexDate(t), nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return NewFlexDate(t), nil
	}
	return FlexDate{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// UnmarshalJSON implements [json.Unmarshaler].
func (f *FlexDate) UnmarshalJSON(data []byte) error {
	*f = FlexDate{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}

	parsed, err := ParseFlexDate(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// MarshalJSON implements [json.Marshaler].
func (f FlexDate) MarshalJSON() ([]byte, error) {
	if !f.Set {
		return []byte("null"), nil
	}
	return json.Marshal(f.Time.Format(time.RFC3339))
}

// PlantInput is the body of POST /plants. Numbers and dates may arrive as
// strings, the way HTML forms submit them.
type PlantInput struct {
	Species           string   `json:"species"`
	PlantedDate       FlexDate `json:"plantedDate"`
	LastWateredDate   FlexDate `json:"lastWateredDate"`
	MinGermination    FlexInt  `json:"minGermination"`
	MaxGermination    FlexInt  `json:"maxGermination"`
	WateringFrequency FlexInt  `json:"wateringFrequency"`

	// Photo is an optional cover image encoded as a data URL.
	Photo string `json:"photo,omitempty"`
}

// NoteInput is the body of POST /plants/{id}/notes.
type NoteInput struct {
	Content string `json:"content"`
}

// PhotoInput is the body of POST /plants/{id}/photos. Photo is a data URL.
type PhotoInput struct {
	Photo   string `json:"photo"`
	Caption string `json:"caption"`
}
