package domain

import "strings"

// Balance direction codes carried by lbi_ods.account_type.
const (
	BalanceDirectionDebit   = "D"
	BalanceDirectionCredit  = "C"
	BalanceDirectionNeutral = "N"
)

// Account model codes carried by lbi_ods.account_type.
const (
	AccountModelPersonal     = 1
	AccountModelOrganization = 2
	AccountModelInternal     = 3
)

// Transaction type categories.
const (
	CategoryFinancial    = 1
	CategoryNonFinancial = 2
)

const (
	ServiceCategoryPayment    = 1
	ServiceCategoryTransfer   = 2
	ServiceCategoryCashInOut  = 3
	ServiceCategoryAdjustment = 4
)

// Reversal modes carried by lbi_ods.reason_type.
const (
	ReversalModeNone    = 0
	ReversalModeFull    = 1
	ReversalModePartial = 2
)

const labelUnknown = "Unknown"

var balanceDirectionLabels = map[string]string{
	BalanceDirectionDebit:   "Debit",
	BalanceDirectionCredit:  "Credit",
	BalanceDirectionNeutral: "Neutral",
}

var accountModelLabels = map[int]string{
	AccountModelPersonal:     "Personal",
	AccountModelOrganization: "Organization",
	AccountModelInternal:     "Internal",
}

var financialCategoryLabels = map[int]string{
	CategoryFinancial:    "Financial",
	CategoryNonFinancial: "Non-Financial",
}

var serviceCategoryLabels = map[int]string{
	ServiceCategoryPayment:    "Payment",
	ServiceCategoryTransfer:   "Transfer",
	ServiceCategoryCashInOut:  "Cash In/Out",
	ServiceCategoryAdjustment: "Adjustment",
}

var reversalModeLabels = map[int]string{
	ReversalModeNone:    "Not Reversible",
	ReversalModeFull:    "Full Reversal",
	ReversalModePartial: "Partial Reversal",
}

// BalanceDirectionLabel maps an account type balance direction code to a
// display label. Unknown codes label as "Unknown" rather than failing.
func BalanceDirectionLabel(code string) string {
	if label, ok := balanceDirectionLabels[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return label
	}
	return labelUnknown
}

func AccountModelLabel(code int) string {
	if label, ok := accountModelLabels[code]; ok {
		return label
	}
	return labelUnknown
}

func FinancialCategoryLabel(code int) string {
	if label, ok := financialCategoryLabels[code]; ok {
		return label
	}
	return labelUnknown
}

func ServiceCategoryLabel(code int) string {
	if label, ok := serviceCategoryLabels[code]; ok {
		return label
	}
	return "Other"
}

func ReversalModeLabel(code int) string {
	if label, ok := reversalModeLabels[code]; ok {
		return label
	}
	return labelUnknown
}

// DisplayName picks the alias when present, otherwise the canonical name.
func DisplayName(alias, name string) string {
	if a := strings.TrimSpace(alias); a != "" {
		return a
	}
	return name
}
