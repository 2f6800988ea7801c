package domain

// Party type discriminators (wire contract shared by every polymorphic
// reference in the lbi_ods schema; the literals must not change).
const (
	PartyTypeCustomer     = "1000"
	PartyTypeOrganization = "5000"
)

// Party and account status sentinel used across lbi_ods party tables.
const (
	StatusActive = "03"
)

// Transaction statuses as stored in lbi_ods.transaction_record.
const (
	TxnStatusInitiated = "Initiated"
	TxnStatusPending   = "Pending Authorized"
	TxnStatusCompleted = "Completed"
	TxnStatusFailed    = "Failed"
	TxnStatusCancelled = "Cancelled"
	TxnStatusReversed  = "Reversed"
)

// Flag encoding used by the char(1) boolean columns in the reference tables.
const (
	FlagSet   = "1"
	FlagUnset = "0"
)

// Customer value segments derived from aggregate balance.
const (
	SegmentHighValue   = "High Value"
	SegmentMediumValue = "Medium Value"
	SegmentLowValue    = "Low Value"
	SegmentZeroBalance = "Zero Balance"
)
