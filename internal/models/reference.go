package models

import "github.com/lbi-bank/ods-console/internal/domain"

// AccountType classifies accounts and the debit/credit sides of a
// transaction, from lbi_ods.account_type. UniqueID is the canonical key;
// AccountTypeID is the business code accounts reference and is not
// guaranteed unique across historical rows.
type AccountType struct {
	UniqueID         string `json:"unique_id"`
	AccountTypeID    string `json:"account_type_id"`
	Name             string `json:"name"`
	Alias            string `json:"alias"`
	BalanceDirection string `json:"balance_direction"`
	AccountModel     int    `json:"account_model"`
	CanOverdraw      string `json:"can_overdraw"`
	Sharable         string `json:"sharable"`
	Realtime         string `json:"realtime"`
	Status           string `json:"status"`
}

func (t *AccountType) IsActive() bool {
	return domain.IsActiveStatus(t.Status)
}

// DisplayName prefers the alias over the canonical name.
func (t *AccountType) DisplayName() string {
	return domain.DisplayName(t.Alias, t.Name)
}

func (t *AccountType) BalanceDirectionLabel() string {
	return domain.BalanceDirectionLabel(t.BalanceDirection)
}

func (t *AccountType) AccountModelLabel() string {
	return domain.AccountModelLabel(t.AccountModel)
}

func (t *AccountType) AllowsOverdraw() bool {
	return domain.FlagIsSet(t.CanOverdraw)
}

func (t *AccountType) IsRealtime() bool {
	return domain.FlagIsSet(t.Realtime)
}

// ReasonType defines interpretation rules for a transaction reason, from
// lbi_ods.reason_type. Transactions reference it through ReasonIndex.
type ReasonType struct {
	UniqueID          string `json:"unique_id"`
	ReasonIndex       string `json:"reason_index"`
	Name              string `json:"name"`
	Alias             string `json:"alias"`
	ExpirationDay     int    `json:"expiration_day"`
	ExpirationHour    int    `json:"expiration_hour"`
	ExpirationMin     int    `json:"expiration_min"`
	ReversalMode      int    `json:"reversal_mode"`
	LinkedTransaction string `json:"linked_transaction"`
	Status            string `json:"status"`
}

func (r *ReasonType) IsActive() bool {
	return domain.IsActiveStatus(r.Status)
}

func (r *ReasonType) DisplayName() string {
	return domain.DisplayName(r.Alias, r.Name)
}

// TotalExpirationMinutes folds the day/hour/min expiry columns into minutes.
func (r *ReasonType) TotalExpirationMinutes() int {
	return r.ExpirationDay*1440 + r.ExpirationHour*60 + r.ExpirationMin
}

func (r *ReasonType) ReversalModeLabel() string {
	return domain.ReversalModeLabel(r.ReversalMode)
}

func (r *ReasonType) HasLinkedTransaction() bool {
	return domain.FlagIsSet(r.LinkedTransaction)
}

// TransactionType classifies transactions, from lbi_ods.transaction_type.
// Transactions reference it through TxnIndex.
type TransactionType struct {
	UniqueID          string `json:"unique_id"`
	TxnIndex          string `json:"txn_index"`
	Name              string `json:"name"`
	Alias             string `json:"alias"`
	IsBulk            string `json:"is_bulk"`
	IsIntra           string `json:"is_intra"`
	IsReversal        string `json:"is_reversal"`
	IsPartialReversal string `json:"is_partial_reversal"`
	FinancialCategory int    `json:"financial_category"`
	ServiceCategory   int    `json:"service_category"`
	Status            string `json:"status"`
}

func (t *TransactionType) IsActive() bool {
	return domain.IsActiveStatus(t.Status)
}

func (t *TransactionType) DisplayName() string {
	return domain.DisplayName(t.Alias, t.Name)
}

func (t *TransactionType) FinancialCategoryLabel() string {
	return domain.FinancialCategoryLabel(t.FinancialCategory)
}

func (t *TransactionType) ServiceCategoryLabel() string {
	return domain.ServiceCategoryLabel(t.ServiceCategory)
}

func (t *TransactionType) IsBulkTransaction() bool {
	return domain.FlagIsSet(t.IsBulk)
}

func (t *TransactionType) IsReversalTransaction() bool {
	return domain.FlagIsSet(t.IsReversal)
}
