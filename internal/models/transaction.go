package models

import (
	"time"

	"github.com/lbi-bank/ods-console/internal/domain"
	"github.com/shopspring/decimal"
)

// reversalWindow is the rolling window inside which a completed transaction
// may still be reversed.
const reversalWindow = 30 * 24 * time.Hour

// PartyRef is a discriminated reference to a transaction party. The
// discriminator value stored on the row is authoritative; resolution always
// re-applies it rather than trusting a pre-joined foreign key.
type PartyRef struct {
	PartyID   string `json:"party_id"`
	PartyType string `json:"party_type"`
	AccountNo string `json:"account_no"`
}

// IsCustomer reports whether the discriminator selects the customer table.
func (p PartyRef) IsCustomer() bool {
	return p.PartyType == domain.PartyTypeCustomer
}

// IsOrganization reports whether the discriminator selects the organization
// table.
func (p PartyRef) IsOrganization() bool {
	return p.PartyType == domain.PartyTypeOrganization
}

// Transaction is the ledger record from lbi_ods.transaction_record. The
// order id is numeric upstream but handled as an opaque string end to end to
// avoid precision loss on 64-bit-plus ids.
type Transaction struct {
	OrderID      string `json:"order_id"`
	Status       string `json:"status"`
	InitiateTime string `json:"initiate_time"` // legacy text timestamp
	EndTime      string `json:"end_time"`

	DebitParty       PartyRef `json:"debit_party"`
	DebitAccountType string   `json:"debit_account_type"`

	CreditParty       PartyRef `json:"credit_party"`
	CreditAccountType string   `json:"credit_account_type"`

	RequestAmount decimal.Decimal `json:"request_amount"`
	OrgAmount     decimal.Decimal `json:"org_amount"`
	ActualAmount  decimal.Decimal `json:"actual_amount"`
	Fee           decimal.Decimal `json:"fee"`
	Commission    decimal.Decimal `json:"commission"`
	Tax           decimal.Decimal `json:"tax"`
	Currency      string          `json:"currency"`

	ReasonIndex string `json:"reason_index"`
	TxnIndex    string `json:"txn_index"`

	IsReversed      string `json:"is_reversed"` // char(1) flag
	ReversalOrderID string `json:"reversal_order_id"`
}

// IsCompleted reports whether the row carries the completed sentinel.
func (t *Transaction) IsCompleted() bool {
	return t.Status == domain.TxnStatusCompleted
}

// WasReversed reports whether a reversal has already been applied.
func (t *Transaction) WasReversed() bool {
	return domain.FlagIsSet(t.IsReversed)
}

// IsReversible reports whether the transaction can still be reversed at the
// given evaluation time: completed, not already reversed, and initiated
// within the rolling 30-day window. An unparseable initiate time means not
// reversible. Exactly 30 days old is still reversible; one second past the
// window is not.
func (t *Transaction) IsReversible(now time.Time) bool {
	if !t.IsCompleted() || t.WasReversed() {
		return false
	}
	initiated, ok := domain.ParseLegacyTime(t.InitiateTime)
	if !ok {
		return false
	}
	elapsed := now.Sub(initiated)
	return elapsed >= 0 && elapsed <= reversalWindow
}

// ProcessingSeconds is the elapsed whole seconds between the initiate and
// end timestamps, nil when either is absent or malformed.
func (t *Transaction) ProcessingSeconds() *int64 {
	return domain.ElapsedSeconds(t.InitiateTime, t.EndTime)
}

func (t *Transaction) FormattedActualAmount() string {
	return domain.FormatAmount(t.ActualAmount, t.Currency)
}

func (t *Transaction) FormattedFee() string {
	return domain.FormatAmount(t.Fee, t.Currency)
}

// TotalCharges sums fee, commission and tax.
func (t *Transaction) TotalCharges() decimal.Decimal {
	return t.Fee.Add(t.Commission).Add(t.Tax)
}

// InitiateTimeDisplay renders the initiate time, returning the raw stored
// text when it does not parse.
func (t *Transaction) InitiateTimeDisplay() string {
	return domain.FormatLegacyTime(t.InitiateTime)
}

func (t *Transaction) EndTimeDisplay() string {
	return domain.FormatLegacyTime(t.EndTime)
}

// TransactionDetail is the audit/history extension from
// lbi_ods.transaction_detail, at most one row per order id. It carries the
// process-engine metadata the console shows on the drill-down view.
type TransactionDetail struct {
	OrderID string `json:"order_id"`

	// Process-engine metadata.
	ProcessID      string `json:"process_id"`
	ActivityID     string `json:"activity_id"`
	WorkflowStatus string `json:"workflow_status"`
	EngineVersion  string `json:"engine_version"`

	Initiator    PartyRef `json:"initiator"`
	Receiver     PartyRef `json:"receiver"`
	PrimaryParty PartyRef `json:"primary_party"`

	Channel      string `json:"channel"`
	AccessPoint  string `json:"access_point"`
	ErrorCode    string `json:"error_code"`
	ErrorMessage string `json:"error_message"`

	ReasonIndex string `json:"reason_index"`
	TxnIndex    string `json:"txn_index"`
	Remark      string `json:"remark"`

	// Reserved columns the feed populates for forward compatibility. Kept
	// verbatim; the console only ever displays them.
	Reserved1  string `json:"reserved_1"`
	Reserved2  string `json:"reserved_2"`
	Reserved3  string `json:"reserved_3"`
	Reserved4  string `json:"reserved_4"`
	Reserved5  string `json:"reserved_5"`
	Reserved6  string `json:"reserved_6"`
	Reserved7  string `json:"reserved_7"`
	Reserved8  string `json:"reserved_8"`
	Reserved9  string `json:"reserved_9"`
	Reserved10 string `json:"reserved_10"`

	CreatedAt string `json:"created_at"` // legacy text timestamp
}

// HasError reports whether the workflow recorded a failure for the order.
func (d *TransactionDetail) HasError() bool {
	return d.ErrorCode != "" && d.ErrorCode != "0"
}

func (d *TransactionDetail) CreatedAtDisplay() string {
	return domain.FormatLegacyTime(d.CreatedAt)
}
