package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Segment thresholds over a customer's aggregate balance.
var (
	segmentHighThreshold   = decimal.NewFromInt(100000)
	segmentMediumThreshold = decimal.NewFromInt(10000)
)

// FormatAmount renders a stored amount as fixed-point with two decimals and
// the currency code appended, e.g. "1250.00 TZS".
func FormatAmount(amount decimal.Decimal, currency string) string {
	if c := strings.TrimSpace(currency); c != "" {
		return amount.StringFixed(2) + " " + c
	}
	return amount.StringFixed(2)
}

// ValueSegment classifies a customer by aggregate balance:
// >= 100000 High Value, >= 10000 Medium Value, > 0 Low Value, else Zero Balance.
func ValueSegment(totalBalance decimal.Decimal) string {
	switch {
	case totalBalance.GreaterThanOrEqual(segmentHighThreshold):
		return SegmentHighValue
	case totalBalance.GreaterThanOrEqual(segmentMediumThreshold):
		return SegmentMediumValue
	case totalBalance.IsPositive():
		return SegmentLowValue
	default:
		return SegmentZeroBalance
	}
}
