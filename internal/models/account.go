package models

import (
	"github.com/lbi-bank/ods-console/internal/domain"
	"github.com/shopspring/decimal"
)

// CustomerAccount is a balance-bearing record from lbi_ods.customer_account.
// The owner is referenced by (identity_id, identity_type); for rows in this
// table the discriminator is expected to hold the customer code, but the
// stored value stays authoritative and is re-checked at resolution time.
type CustomerAccount struct {
	AccountNo       string          `json:"account_no"`
	IdentityID      string          `json:"identity_id"`
	IdentityType    string          `json:"identity_type"`
	AccountTypeID   string          `json:"account_type_id"`
	Balance         decimal.Decimal `json:"balance"`
	ReservedBalance decimal.Decimal `json:"reserved_balance"`
	UnclearBalance  decimal.Decimal `json:"unclear_balance"`
	Currency        string          `json:"currency"`
	Status          string          `json:"status"`
	ValueType       string          `json:"value_type"`
	OpenedAt        string          `json:"opened_at"` // legacy text timestamp
}

func (a *CustomerAccount) IsActive() bool {
	return domain.IsPartyActive(a.Status)
}

// AvailableBalance is the spendable portion: balance minus reserved and
// unclear holds.
func (a *CustomerAccount) AvailableBalance() decimal.Decimal {
	return a.Balance.Sub(a.ReservedBalance).Sub(a.UnclearBalance)
}

func (a *CustomerAccount) FormattedBalance() string {
	return domain.FormatAmount(a.Balance, a.Currency)
}

// OrganizationAccount is the organization-side counterpart from
// lbi_ods.organization_account.
type OrganizationAccount struct {
	AccountNo       string          `json:"account_no"`
	IdentityID      string          `json:"identity_id"`
	IdentityType    string          `json:"identity_type"`
	AccountTypeID   string          `json:"account_type_id"`
	Balance         decimal.Decimal `json:"balance"`
	ReservedBalance decimal.Decimal `json:"reserved_balance"`
	UnclearBalance  decimal.Decimal `json:"unclear_balance"`
	Currency        string          `json:"currency"`
	Status          string          `json:"status"`
	ValueType       string          `json:"value_type"`
	OpenedAt        string          `json:"opened_at"`
}

func (a *OrganizationAccount) IsActive() bool {
	return domain.IsPartyActive(a.Status)
}

func (a *OrganizationAccount) AvailableBalance() decimal.Decimal {
	return a.Balance.Sub(a.ReservedBalance).Sub(a.UnclearBalance)
}

func (a *OrganizationAccount) FormattedBalance() string {
	return domain.FormatAmount(a.Balance, a.Currency)
}
