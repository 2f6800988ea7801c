package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lbi-bank/ods-console/internal/domain"
	"github.com/lbi-bank/ods-console/internal/models"
)

// ReportReader is the data access the report views need.
type ReportReader interface {
	PartyReader
	GetCustomerKYC(ctx context.Context, customerID string) (*models.CustomerKYC, error)
	ListCustomerAccounts(ctx context.Context, customerID string) ([]models.CustomerAccount, error)
	SumCustomerBalances(ctx context.Context, customerID string) (decimal.Decimal, error)
	GetTransaction(ctx context.Context, orderID string) (*models.Transaction, error)
	GetTransactionDetail(ctx context.Context, orderID string) (*models.TransactionDetail, error)
}

// CustomerOverview is the console's customer summary view.
type CustomerOverview struct {
	Customer      *models.Customer         `json:"customer"`
	Accounts      []models.CustomerAccount `json:"accounts"`
	TotalBalance  decimal.Decimal          `json:"total_balance"`
	Segment       string                   `json:"segment"`
	KYC           *models.CustomerKYC      `json:"kyc,omitempty"`
	KYCCompletion *models.KYCCompletion    `json:"kyc_completion,omitempty"`
}

// TransactionReport is the drill-down view for a single order: the ledger
// row, both resolved parties, the audit detail, and the classification rows.
type TransactionReport struct {
	Transaction       *models.Transaction        `json:"transaction"`
	DebitParty        *Party                     `json:"debit_party,omitempty"`
	CreditParty       *Party                     `json:"credit_party,omitempty"`
	Detail            *models.TransactionDetail  `json:"detail,omitempty"`
	Initiator         *Party                     `json:"initiator,omitempty"`
	Receiver          *Party                     `json:"receiver,omitempty"`
	PrimaryParty      *Party                     `json:"primary_party,omitempty"`
	ReasonType        *models.ReasonType         `json:"reason_type,omitempty"`
	TransactionType   *models.TransactionType    `json:"transaction_type,omitempty"`
	Reversible        bool                       `json:"reversible"`
	ProcessingSeconds *int64                     `json:"processing_seconds,omitempty"`
	FormattedAmount   string                     `json:"formatted_amount"`
}

// ReportService assembles read-only console views.
type ReportService struct {
	reader  ReportReader
	parties *PartyService
	refs    *ReferenceService
	now     func() time.Time
}

func NewReportService(reader ReportReader, parties *PartyService, refs *ReferenceService) *ReportService {
	return &ReportService{
		reader:  reader,
		parties: parties,
		refs:    refs,
		now:     time.Now,
	}
}

// WithClock overrides the evaluation clock, for tests.
func (s *ReportService) WithClock(now func() time.Time) *ReportService {
	s.now = now
	return s
}

// CustomerOverview builds the customer summary. An unknown customer id
// yields nil, no error.
func (s *ReportService) CustomerOverview(ctx context.Context, customerID string) (*CustomerOverview, error) {
	customer, err := s.reader.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("customer overview: %w", err)
	}
	if customer == nil {
		return nil, nil
	}

	accounts, err := s.reader.ListCustomerAccounts(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("customer overview accounts: %w", err)
	}
	total, err := s.reader.SumCustomerBalances(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("customer overview balance: %w", err)
	}

	overview := &CustomerOverview{
		Customer:     customer,
		Accounts:     accounts,
		TotalBalance: total,
		Segment:      domain.ValueSegment(total),
	}

	// KYC is optional; a customer without a record still has an overview.
	kyc, err := s.reader.GetCustomerKYC(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("customer overview kyc: %w", err)
	}
	if kyc != nil {
		completion := kyc.Completion()
		overview.KYC = kyc
		overview.KYCCompletion = &completion
	}
	return overview, nil
}

// TransactionReport builds the order drill-down. An unknown order id yields
// nil, no error. Unresolvable parties and missing reference rows leave their
// slots nil rather than failing the whole view.
func (s *ReportService) TransactionReport(ctx context.Context, orderID string) (*TransactionReport, error) {
	txn, err := s.reader.GetTransaction(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("transaction report: %w", err)
	}
	if txn == nil {
		return nil, nil
	}

	report := &TransactionReport{
		Transaction:       txn,
		Reversible:        txn.IsReversible(s.now()),
		ProcessingSeconds: txn.ProcessingSeconds(),
		FormattedAmount:   txn.FormattedActualAmount(),
	}

	if report.DebitParty, err = s.parties.ResolveRef(ctx, txn.DebitParty); err != nil {
		return nil, err
	}
	if report.CreditParty, err = s.parties.ResolveRef(ctx, txn.CreditParty); err != nil {
		return nil, err
	}

	detail, err := s.reader.GetTransactionDetail(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("transaction report detail: %w", err)
	}
	if detail != nil {
		report.Detail = detail
		if report.Initiator, err = s.parties.ResolveRef(ctx, detail.Initiator); err != nil {
			return nil, err
		}
		if report.Receiver, err = s.parties.ResolveRef(ctx, detail.Receiver); err != nil {
			return nil, err
		}
		if report.PrimaryParty, err = s.parties.ResolveRef(ctx, detail.PrimaryParty); err != nil {
			return nil, err
		}
	}

	if txn.ReasonIndex != "" {
		if report.ReasonType, err = s.refs.ReasonTypeByIndex(ctx, txn.ReasonIndex); err != nil {
			return nil, err
		}
	}
	if txn.TxnIndex != "" {
		if report.TransactionType, err = s.refs.TransactionTypeByIndex(ctx, txn.TxnIndex); err != nil {
			return nil, err
		}
	}
	return report, nil
}
