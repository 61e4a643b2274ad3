package dto

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// leadingNumber matches the numeric prefix of a string, e.g. "12.5" in "12.50 USD"
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d+)?|\.\d+)([eE][+-]?\d{1,3})?`)

// amountLimit is the first magnitude a decimal(15,2) column cannot hold
var amountLimit = decimal.New(1, 13)

// LenientDecimal is an amount read from a form. It accepts a JSON number or a
// string; a string is read up to the first character that cannot continue a
// number. Anything unreadable becomes zero instead of failing the request.
type LenientDecimal struct {
	decimal.Decimal
}

// NewLenientDecimal wraps d
func NewLenientDecimal(d decimal.Decimal) LenientDecimal {
	return LenientDecimal{Decimal: d}
}

func (l *LenientDecimal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		l.Decimal = decimal.Zero
	case data[0] == '"':
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			l.Decimal = decimal.Zero
			return nil
		}
		l.Decimal = ParseLenientDecimal(raw)
	default:
		l.Decimal = ParseLenientDecimal(string(data))
	}
	return nil
}

// ParseLenientDecimal reads the leading number of value rounded to cents, or
// zero. Numbers too large for a stored amount also read as zero.
func ParseLenientDecimal(value string) decimal.Decimal {
	match := leadingNumber.FindString(strings.TrimSpace(value))
	if match == "" {
		return decimal.Zero
	}

	// ".5" and "-.5" need a leading zero for decimal parsing.
	switch {
	case strings.HasPrefix(match, "."):
		match = "0" + match
	case strings.HasPrefix(match, "-."), strings.HasPrefix(match, "+."):
		match = match[:1] + "0" + match[1:]
	}

	d, err := decimal.NewFromString(strings.TrimPrefix(match, "+"))
	if err != nil {
		return decimal.Zero
	}
	d = d.Round(2)
	if d.Abs().GreaterThanOrEqual(amountLimit) {
		return decimal.Zero
	}
	return d
}
