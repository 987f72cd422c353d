package chit

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	ErrNegativeAmount = errors.New("amount cannot be negative")
	ErrInvalidAmount  = errors.New("amount is not a number")
)

// Finite returns v, or 0 when v is NaN or infinite.
func Finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// SafeNumber decodes a JSON value into a number. Numbers and numeric strings are accepted;
// null, booleans, objects, arrays and non-numeric strings yield 0.
func SafeNumber(raw []byte) float64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0
		}
		return ParseDisplayAmount(s)
	}
	v, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return 0
	}
	return Finite(v)
}

// Amount is a money value that never fails to decode: malformed or missing input is zero.
type Amount float64

func (a *Amount) UnmarshalJSON(b []byte) error {
	*a = Amount(SafeNumber(b))
	return nil
}

func (a Amount) Float64() float64 {
	return float64(a)
}

// RawAmount keeps the text an admin typed so it can be validated on submit.
// It accepts JSON numbers and strings.
type RawAmount string

func (r *RawAmount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*r = RawAmount(s)
		return nil
	}
	if string(b) == "null" {
		*r = ""
		return nil
	}
	*r = RawAmount(b)
	return nil
}

// ParseDisplayAmount is the lenient parser used for previews: anything that is not a finite
// number is zero.
func ParseDisplayAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return Finite(v)
}

// ParseSubmitAmount is the strict parser used before anything is persisted. An empty value is
// zero.
func ParseSubmitAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidAmount
	}
	if v < 0 {
		return 0, ErrNegativeAmount
	}
	return v, nil
}
