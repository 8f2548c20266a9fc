// Package balance derives inflow/outflow totals and the net balance of a set
// of cash rows, either an event's transactions or the kas masjid ledger.
// All sums are exact decimals.
package balance

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Direction string

const (
	In  Direction = "masuk"
	Out Direction = "keluar"
)

func (d Direction) Valid() bool { return d == In || d == Out }

func ParseDirection(s string) (Direction, bool) {
	d := Direction(strings.ToLower(strings.TrimSpace(s)))
	return d, d.Valid()
}

// Amount columns are numeric(15,2).
const AmountScale = 2

var MaxAmount = decimal.RequireFromString("9999999999999.99")

// StorableAmount reports whether d is positive and fits numeric(15,2)
// without rounding. Trailing zeros beyond the scale are fine ("1.500").
func StorableAmount(d decimal.Decimal) bool {
	return d.IsPositive() && d.Equal(d.Truncate(AmountScale)) && d.LessThanOrEqual(MaxAmount)
}

type Entry struct {
	Direction Direction
	Amount    decimal.Decimal
}

type Summary struct {
	TotalIn  decimal.Decimal `json:"total_masuk"`
	TotalOut decimal.Decimal `json:"total_keluar"`
	Balance  decimal.Decimal `json:"saldo"`
}

// Aggregate sums entries by direction. Rows with an unknown direction are skipped.
// SumColumns is the SQL rendition of the same rule for store-side totals.
func Aggregate(entries []Entry) Summary {
	in, out := decimal.Zero, decimal.Zero
	for _, e := range entries {
		switch e.Direction {
		case In:
			in = in.Add(e.Amount)
		case Out:
			out = out.Add(e.Amount)
		}
	}
	return FromTotals(in, out)
}

// FromTotals builds a Summary from grouped sums computed by the store.
func FromTotals(in, out decimal.Decimal) Summary {
	return Summary{TotalIn: in, TotalOut: out, Balance: in.Sub(out)}
}

// Totals is the scan target for SumColumns.
type Totals struct {
	TotalIn  decimal.Decimal `gorm:"column:total_masuk"`
	TotalOut decimal.Decimal `gorm:"column:total_keluar"`
}

func (t Totals) Summary() Summary { return FromTotals(t.TotalIn, t.TotalOut) }

// SumColumns returns the grouped conditional sum select list producing
// total_masuk and total_keluar for the given direction/amount columns.
func SumColumns(typeCol, amountCol string) string {
	return fmt.Sprintf(
		"COALESCE(SUM(CASE WHEN %[1]s = '%[3]s' THEN %[2]s ELSE 0 END), 0) AS total_masuk, "+
			"COALESCE(SUM(CASE WHEN %[1]s = '%[4]s' THEN %[2]s ELSE 0 END), 0) AS total_keluar",
		typeCol, amountCol, In, Out,
	)
}

// FormatIDR renders d as "Rp 1.250.000" (or "Rp 1.250,5" when fractional).
func FormatIDR(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	s := d.String()
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	out := "Rp " + sign + b.String()
	if frac != "" {
		out += "," + frac
	}
	return out
}
