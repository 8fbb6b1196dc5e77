// Package flex decodes JSON numbers that clients may send either as numbers
// or as numeric strings.
package flex

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Float is a JSON number that also accepts numeric strings. Present is set
// when the key carried a non-null value; Valid when that value was numeric.
type Float struct {
	Value   float64
	Present bool
	Valid   bool
}

// NewFloat returns a valid Float
func NewFloat(v float64) Float {
	return Float{Value: v, Present: true, Valid: true}
}

// UnmarshalJSON implements json.Unmarshaler
func (f *Float) UnmarshalJSON(data []byte) error {
	*f = Float{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	f.Present = true

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	switch v := raw.(type) {
	case float64:
		f.Value, f.Valid = v, true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			f.Present = false
			return nil
		}
		if parsed, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(parsed) && !math.IsInf(parsed, 0) {
			f.Value, f.Valid = parsed, true
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler
func (f Float) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// Ptr returns the value when valid, nil otherwise
func (f Float) Ptr() *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}

// ID returns the value as a positive integer identifier. ok is false for
// missing, non-numeric, fractional or non-positive values.
func (f Float) ID() (id uint, ok bool) {
	if !f.Valid || f.Value <= 0 || f.Value != math.Trunc(f.Value) || f.Value > math.MaxUint32 {
		return 0, false
	}
	return uint(f.Value), true
}
