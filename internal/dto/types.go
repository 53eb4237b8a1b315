package dto

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// accepted on input; output is always dateLayout
var dateLayouts = []string{
	dateLayout,
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// Date is a calendar day at midnight UTC
type Date struct {
	time.Time
}

// NewDate drops the clock part of t, keeping the day as written in t's location.
func NewDate(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(d.Format(dateLayout))), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if raw == "null" {
		*d = Date{}
		return nil
	}

	s, err := strconv.Unquote(raw)
	if err != nil {
		return fmt.Errorf("date must be a string, got %s", raw)
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*d = NewDate(t)
			return nil
		}
	}
	return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
}

// Money is a decimal amount written as a bare JSON number.
// Reading accepts both numbers and quoted strings.
type Money struct {
	decimal.Decimal
}

// NewMoney wraps d; nil stays nil
func NewMoney(d *decimal.Decimal) *Money {
	if d == nil {
		return nil
	}
	return &Money{Decimal: *d}
}

// Amount returns a copy of the underlying decimal, or nil
func (m *Money) Amount() *decimal.Decimal {
	if m == nil {
		return nil
	}
	d := m.Decimal
	return &d
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}
