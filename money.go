package chart

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is a displayed monetary value. Chart values are float64 for geometry,
// labels are exact decimals formatted in the currency conventions.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns the money value v in currency cur. An empty currency formats as
// a plain number. NaN and infinities have no decimal value and are zero.
func M(v float64, cur string) Money {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Money{cur: cur}
	}
	return Money{value: decimal.NewFromFloat(v), cur: cur}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the value formatted in its currency, e.g. "$1,234.50".
func (m Money) String() string {
	if m.cur == "" {
		return m.value.StringFixed(2)
	}
	cur := m.currency()
	minor := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// SignedString returns the value with an explicit sign. 0 is represented as "-".
func (m Money) SignedString() string {
	if m.value.Round(2).IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Currency() string   { return m.cur }
func (m Money) IsZero() bool       { return m.value.IsZero() }
func (m Money) Float() float64     { return m.value.InexactFloat64() }
func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) Sub(n Money) Money  { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// Decimal returns the exact value in major units.
func (m Money) Decimal() decimal.Decimal { return m.value }

// makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// Percent is a percentage, 12.5 meaning 12.5%.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" || res == "-0.00%" {
		return "-"
	}
	return res
}

// Performance holds the starting value and the value at the inspected point.
type Performance struct {
	Start, End Money
}

func (p Performance) Change() Money { return p.End.Sub(p.Start) }

// Percent returns the relative change. It is 0 when the start value is 0.
func (p Performance) Percent() Percent {
	if p.Start.IsZero() {
		return 0
	}
	return Percent(p.Change().Decimal().Div(p.Start.Decimal().Abs()).Mul(decimal.NewFromInt(100)).InexactFloat64())
}
