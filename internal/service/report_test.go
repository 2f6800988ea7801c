package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbi-bank/ods-console/internal/domain"
	"github.com/lbi-bank/ods-console/internal/models"
	"github.com/lbi-bank/ods-console/internal/refcache"
)

type fakeReportReader struct {
	fakePartyReader
	fakeReferenceReader
	kyc      map[string]*models.CustomerKYC
	accounts map[string][]models.CustomerAccount
	txns     map[string]*models.Transaction
	details  map[string]*models.TransactionDetail
}

func (f *fakeReportReader) GetCustomerKYC(_ context.Context, id string) (*models.CustomerKYC, error) {
	return f.kyc[id], nil
}

func (f *fakeReportReader) ListCustomerAccounts(_ context.Context, id string) ([]models.CustomerAccount, error) {
	return f.accounts[id], nil
}

func (f *fakeReportReader) SumCustomerBalances(_ context.Context, id string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, a := range f.accounts[id] {
		total = total.Add(a.Balance)
	}
	return total, nil
}

func (f *fakeReportReader) GetTransaction(_ context.Context, orderID string) (*models.Transaction, error) {
	return f.txns[orderID], nil
}

func (f *fakeReportReader) GetTransactionDetail(_ context.Context, orderID string) (*models.TransactionDetail, error) {
	return f.details[orderID], nil
}

func newReportFixture() *fakeReportReader {
	r := &fakeReportReader{
		fakePartyReader:     *newFakePartyReader(),
		fakeReferenceReader: *newFakeReferenceReader(),
		kyc:                 map[string]*models.CustomerKYC{},
		accounts:            map[string][]models.CustomerAccount{},
		txns:                map[string]*models.Transaction{},
		details:             map[string]*models.TransactionDetail{},
	}

	r.accounts["C1001"] = []models.CustomerAccount{
		{AccountNo: "A1", IdentityID: "C1001", IdentityType: domain.PartyTypeCustomer, Balance: decimal.NewFromInt(60000), Currency: "TZS"},
		{AccountNo: "A2", IdentityID: "C1001", IdentityType: domain.PartyTypeCustomer, Balance: decimal.NewFromInt(40000), Currency: "TZS"},
	}
	r.txns["90000000001"] = &models.Transaction{
		OrderID:      "90000000001",
		Status:       domain.TxnStatusCompleted,
		InitiateTime: "20250110120000",
		EndTime:      "20250110120030",
		DebitParty:   models.PartyRef{PartyID: "C1001", PartyType: domain.PartyTypeCustomer, AccountNo: "A1"},
		CreditParty:  models.PartyRef{PartyID: "O2001", PartyType: domain.PartyTypeOrganization, AccountNo: "B1"},
		ActualAmount: decimal.RequireFromString("2500.00"),
		Currency:     "TZS",
		ReasonIndex:  "101",
		TxnIndex:     "7",
		IsReversed:   domain.FlagUnset,
	}
	r.details["90000000001"] = &models.TransactionDetail{
		OrderID:      "90000000001",
		Initiator:    models.PartyRef{PartyID: "C1001", PartyType: domain.PartyTypeCustomer},
		Receiver:     models.PartyRef{PartyID: "O2001", PartyType: domain.PartyTypeOrganization},
		PrimaryParty: models.PartyRef{PartyID: "C1001", PartyType: "9999"},
		Channel:      "USSD",
	}
	return r
}

func newReportService(reader *fakeReportReader) *ReportService {
	parties := NewPartyService(reader)
	refs := NewReferenceService(reader, refcache.NewStore(nil, time.Minute))
	return NewReportService(reader, parties, refs)
}

func TestCustomerOverview(t *testing.T) {
	reader := newReportFixture()
	svc := newReportService(reader)

	overview, err := svc.CustomerOverview(context.Background(), "C1001")
	require.NoError(t, err)
	require.NotNil(t, overview)
	assert.Len(t, overview.Accounts, 2)
	assert.True(t, overview.TotalBalance.Equal(decimal.NewFromInt(100000)))
	assert.Equal(t, domain.SegmentHighValue, overview.Segment)
	assert.Nil(t, overview.KYC)
	assert.Nil(t, overview.KYCCompletion)
}

func TestCustomerOverview_WithKYC(t *testing.T) {
	reader := newReportFixture()
	reader.kyc["C1001"] = &models.CustomerKYC{
		CustomerID: "C1001",
		Identity:   models.KYCIdentity{FirstName: "Amina", LastName: "Mushi", Gender: "F", DateOfBirth: "19900412", Nationality: "TZ"},
	}
	svc := newReportService(reader)

	overview, err := svc.CustomerOverview(context.Background(), "C1001")
	require.NoError(t, err)
	require.NotNil(t, overview.KYCCompletion)
	assert.True(t, overview.KYCCompletion.IdentityComplete)
	assert.False(t, overview.KYCCompletion.Complete())
}

func TestCustomerOverview_UnknownCustomer(t *testing.T) {
	svc := newReportService(newReportFixture())

	overview, err := svc.CustomerOverview(context.Background(), "C-missing")
	require.NoError(t, err)
	assert.Nil(t, overview)
}

func TestTransactionReport(t *testing.T) {
	reader := newReportFixture()
	svc := newReportService(reader).WithClock(func() time.Time {
		return time.Date(2025, 1, 20, 12, 0, 0, 0, time.UTC)
	})

	report, err := svc.TransactionReport(context.Background(), "90000000001")
	require.NoError(t, err)
	require.NotNil(t, report)

	require.NotNil(t, report.DebitParty)
	assert.Equal(t, PartyKindCustomer, report.DebitParty.Kind)
	require.NotNil(t, report.CreditParty)
	assert.Equal(t, PartyKindOrganization, report.CreditParty.Kind)

	require.NotNil(t, report.Detail)
	require.NotNil(t, report.Initiator)
	assert.Equal(t, PartyKindCustomer, report.Initiator.Kind)
	require.NotNil(t, report.Receiver)
	assert.Equal(t, PartyKindOrganization, report.Receiver.Kind)
	// The primary party carries an unknown discriminator and stays nil.
	assert.Nil(t, report.PrimaryParty)

	require.NotNil(t, report.ReasonType)
	assert.Equal(t, "101", report.ReasonType.ReasonIndex)
	require.NotNil(t, report.TransactionType)
	assert.Equal(t, "7", report.TransactionType.TxnIndex)

	assert.True(t, report.Reversible)
	require.NotNil(t, report.ProcessingSeconds)
	assert.Equal(t, int64(30), *report.ProcessingSeconds)
	assert.Equal(t, "2500.00 TZS", report.FormattedAmount)
}

func TestTransactionReport_ReversibilityWindow(t *testing.T) {
	reader := newReportFixture()
	svc := newReportService(reader).WithClock(func() time.Time {
		// 30 days and one second after the initiate time.
		return time.Date(2025, 2, 9, 12, 0, 1, 0, time.UTC)
	})

	report, err := svc.TransactionReport(context.Background(), "90000000001")
	require.NoError(t, err)
	assert.False(t, report.Reversible)
}

func TestTransactionReport_UnknownOrder(t *testing.T) {
	svc := newReportService(newReportFixture())

	report, err := svc.TransactionReport(context.Background(), "404")
	require.NoError(t, err)
	assert.Nil(t, report)
}
