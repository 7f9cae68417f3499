package money

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Decimal is a monetary value. The backend serializes DECIMAL columns either
// as JSON numbers or as strings such as "52000.00"; both decode here.
type Decimal float64

// UnmarshalJSON accepts a number, a numeric string, or null.
func (d *Decimal) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*d = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("decimal %q: %w", s, err)
		}
		*d = Decimal(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*d = Decimal(f)
	return nil
}

// Float64 returns the raw value.
func (d Decimal) Float64() float64 { return float64(d) }

// String renders the value with two fixed decimals.
func (d Decimal) String() string {
	return strconv.FormatFloat(float64(d), 'f', 2, 64)
}
