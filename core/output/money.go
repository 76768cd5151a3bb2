package output

import (
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount is a monetary total. Finite values render with two decimals;
// NaN and infinities render as NaN, +Inf and -Inf.
type Amount float64

func (a Amount) special() (string, bool) {
	f := float64(a)
	switch {
	case math.IsNaN(f):
		return "NaN", true
	case math.IsInf(f, 1):
		return "+Inf", true
	case math.IsInf(f, -1):
		return "-Inf", true
	}
	return "", false
}

// String returns the plain two-decimal form, e.g. 25.00
func (a Amount) String() string {
	if s, ok := a.special(); ok {
		return s
	}
	return decimal.NewFromFloat(float64(a)).StringFixed(2)
}

// Display returns the amount in the display form of currency, e.g. €25.00.
// Unknown currency codes fall back to "25.00 XYZ".
func (a Amount) Display(currency string) string {
	if s, ok := a.special(); ok {
		return s
	}
	cur := money.GetCurrency(currency)
	if cur == nil {
		return a.String() + " " + currency
	}
	minor := decimal.NewFromFloat(float64(a)).Shift(int32(cur.Fraction)).Round(0)
	if !minor.BigInt().IsInt64() {
		// go-money counts minor units in an int64
		return a.String() + " " + cur.Code
	}
	return money.New(minor.IntPart(), cur.Code).Display()
}

// MarshalJSON writes finite amounts as numbers with two decimals and the
// rest as strings, which encoding/json cannot otherwise represent.
func (a Amount) MarshalJSON() ([]byte, error) {
	if s, ok := a.special(); ok {
		return []byte(`"` + s + `"`), nil
	}
	return []byte(a.String()), nil
}
