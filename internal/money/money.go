// Package money holds the monetary amount type shared by the ledger, the stats and the
// renderer. Amounts are exact decimals in BRL major units.
package money

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount is a monetary value. The zero value is R$ 0,00.
type Amount struct {
	value decimal.Decimal
}

// brl formats minor units the pt-BR way: "R$ 1.500,00".
var brl = gomoney.NewFormatter(2, ",", ".", "R$", "$ 1")

// New returns an Amount from a float, int or decimal value.
func New[T float64 | int | int64 | decimal.Decimal](v T) Amount {
	switch x := any(v).(type) {
	case float64:
		return Amount{decimal.NewFromFloat(x)}
	case int:
		return Amount{decimal.NewFromInt(int64(x))}
	case int64:
		return Amount{decimal.NewFromInt(x)}
	case decimal.Decimal:
		return Amount{x}
	}
	return Amount{}
}

// Parse reads a decimal amount such as "1500" or "1500.50".
func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Amount{d}, nil
}

// Lenient is like Parse but yields zero for anything that is not a number.
func Lenient(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		return Amount{}
	}
	return a
}

// Sum adds all amounts.
func Sum(amounts ...Amount) Amount {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a.value)
	}
	return Amount{total}
}

// Max returns the larger of a and b.
func Max(a, b Amount) Amount {
	if a.value.GreaterThanOrEqual(b.value) {
		return a
	}
	return b
}

func (a Amount) Add(b Amount) Amount       { return Amount{a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount       { return Amount{a.value.Sub(b.value)} }
func (a Amount) Cmp(b Amount) int          { return a.value.Cmp(b.value) }
func (a Amount) Equal(b Amount) bool       { return a.value.Equal(b.value) }
func (a Amount) IsZero() bool              { return a.value.IsZero() }
func (a Amount) IsPositive() bool          { return a.value.IsPositive() }
func (a Amount) IsNegative() bool          { return a.value.IsNegative() }
func (a Amount) Decimal() decimal.Decimal  { return a.value }
func (a Amount) Float64() float64          { return a.value.InexactFloat64() }
func (a Amount) LessThan(b Amount) bool    { return a.value.LessThan(b.value) }
func (a Amount) GreaterThan(b Amount) bool { return a.value.GreaterThan(b.value) }

// String returns the plain decimal representation ("1500.5").
func (a Amount) String() string { return a.value.String() }

// Format renders the amount as BRL currency, rounded to cents.
func (a Amount) Format() string {
	return brl.Format(a.value.Round(2).Shift(2).IntPart())
}

// MarshalJSON writes the amount as a JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.value.String()), nil
}

// UnmarshalJSON accepts numbers and numeric strings. Anything else, including null,
// decodes to zero so that stored garbage never breaks aggregation.
func (a *Amount) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		raw = s
	}
	*a = Lenient(raw)
	return nil
}

// Value stores the amount as TEXT to keep every digit.
func (a Amount) Value() (driver.Value, error) {
	return a.value.String(), nil
}

// Scan reads REAL, INTEGER or TEXT columns; non-numeric TEXT reads as zero.
func (a *Amount) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*a = Amount{}
	case float64:
		*a = New(v)
	case int64:
		*a = New(v)
	case string:
		*a = Lenient(v)
	case []byte:
		*a = Lenient(string(v))
	default:
		return fmt.Errorf("cannot scan %T into amount", src)
	}
	return nil
}

var (
	_ json.Marshaler   = Amount{}
	_ json.Unmarshaler = (*Amount)(nil)
	_ driver.Valuer    = Amount{}
)
