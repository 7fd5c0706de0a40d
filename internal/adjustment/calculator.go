// Package adjustment computes the Section 481(a) adjustment for an
// accounting method change: the one-time cumulative income catch-up and
// its distribution over the recognition period.
package adjustment

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Direction states whether the adjustment increases or decreases income.
type Direction string

const (
	DirectionPositive Direction = "positive"
	DirectionNegative Direction = "negative"
)

// LargeAdjustmentThreshold is the magnitude above which an adjustment is
// flagged for re-verification. Advisory only.
var LargeAdjustmentThreshold = decimal.NewFromInt(10_000_000)

// Adjustment is the result of a 481(a) calculation.
type Adjustment struct {
	PresentMethodIncome  decimal.Decimal `json:"presentMethodIncome"`
	ProposedMethodIncome decimal.Decimal `json:"proposedMethodIncome"`

	// Amount is proposed minus present, signed.
	Amount    decimal.Decimal `json:"adjustmentAmount"`
	Direction Direction       `json:"adjustmentDirection"`

	// SpreadPeriod is the recognition period in tax years, 1 or 4.
	SpreadPeriod int `json:"spreadPeriod"`

	// YearAmounts holds the absolute amount recognized per year. Only
	// the first SpreadPeriod entries are non-zero and they always sum
	// to the absolute adjustment amount.
	YearAmounts [4]decimal.Decimal `json:"yearAmounts"`
}

// Calculate distributes the cumulative income adjustment over the spread
// period. Any spread period other than 4 is treated as 1.
//
// For a four year spread, years 2-4 receive the cent-rounded quarter and
// year 1 absorbs the rounding remainder, so the yearly amounts always sum
// to the absolute adjustment exactly.
func Calculate(present, proposed decimal.Decimal, spreadPeriod int) Adjustment {
	amount := proposed.Sub(present)

	direction := DirectionPositive
	if amount.IsNegative() {
		direction = DirectionNegative
	}

	abs := amount.Abs()

	if spreadPeriod != 4 {
		spreadPeriod = 1
	}

	a := Adjustment{
		PresentMethodIncome:  present,
		ProposedMethodIncome: proposed,
		Amount:               amount,
		Direction:            direction,
		SpreadPeriod:         spreadPeriod,
	}

	if spreadPeriod == 1 {
		a.YearAmounts[0] = abs
		return a
	}

	yearly := abs.DivRound(decimal.NewFromInt(4), 2)
	a.YearAmounts[1] = yearly
	a.YearAmounts[2] = yearly
	a.YearAmounts[3] = yearly
	a.YearAmounts[0] = abs.Sub(yearly.Mul(decimal.NewFromInt(3)))

	return a
}

// IsLarge reports whether the adjustment magnitude exceeds the advisory
// threshold.
func (a Adjustment) IsLarge() bool {
	return a.Amount.Abs().GreaterThan(LargeAdjustmentThreshold)
}

var enUS = message.NewPrinter(language.AmericanEnglish)

// FormatAmount renders a monetary amount with en-US digit grouping for
// the form, e.g. "12,500". Whole dollar amounts drop the fraction the way
// the paper form expects.
func FormatAmount(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return enUS.Sprintf("%d", d.IntPart())
	}

	f, _ := d.Float64()
	return enUS.Sprintf("%.2f", f)
}
