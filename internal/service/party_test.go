package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbi-bank/ods-console/internal/domain"
	"github.com/lbi-bank/ods-console/internal/models"
)

type fakePartyReader struct {
	customers     map[string]*models.Customer
	organizations map[string]*models.Organization
	err           error
}

func (f *fakePartyReader) GetCustomer(_ context.Context, id string) (*models.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.customers[id], nil
}

func (f *fakePartyReader) GetOrganization(_ context.Context, id string) (*models.Organization, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.organizations[id], nil
}

func newFakePartyReader() *fakePartyReader {
	return &fakePartyReader{
		customers: map[string]*models.Customer{
			"C1001": {CustomerID: "C1001", MSISDN: "255700000001", PublicName: "Amina Mushi"},
		},
		organizations: map[string]*models.Organization{
			"O2001": {OrgID: "O2001", Name: "Kariakoo Traders Ltd"},
		},
	}
}

func TestResolveParty_Customer(t *testing.T) {
	svc := NewPartyService(newFakePartyReader())

	party, err := svc.ResolveParty(context.Background(), "C1001", domain.PartyTypeCustomer)
	require.NoError(t, err)
	require.NotNil(t, party)
	assert.Equal(t, PartyKindCustomer, party.Kind)
	require.NotNil(t, party.Customer)
	assert.Nil(t, party.Organization)
	assert.Equal(t, "Amina Mushi", party.DisplayName())
}

func TestResolveParty_Organization(t *testing.T) {
	svc := NewPartyService(newFakePartyReader())

	party, err := svc.ResolveParty(context.Background(), "O2001", domain.PartyTypeOrganization)
	require.NoError(t, err)
	require.NotNil(t, party)
	assert.Equal(t, PartyKindOrganization, party.Kind)
	require.NotNil(t, party.Organization)
	assert.Nil(t, party.Customer)
	assert.Equal(t, "Kariakoo Traders Ltd", party.DisplayName())
}

func TestResolveParty_CustomerCodeNeverYieldsOrganization(t *testing.T) {
	// The id exists in the organization table, but the discriminator says
	// customer: resolution must not cross over.
	reader := newFakePartyReader()
	reader.organizations["X1"] = &models.Organization{OrgID: "X1", Name: "Shadow Org"}

	svc := NewPartyService(reader)
	party, err := svc.ResolveParty(context.Background(), "X1", domain.PartyTypeCustomer)
	require.NoError(t, err)
	assert.Nil(t, party)
}

func TestResolveParty_UnknownDiscriminator(t *testing.T) {
	svc := NewPartyService(newFakePartyReader())

	for _, code := range []string{"", "0", "2000", "9999", "operator"} {
		party, err := svc.ResolveParty(context.Background(), "C1001", code)
		require.NoError(t, err)
		assert.Nil(t, party, "discriminator %q must resolve to no party", code)
	}
}

func TestResolveParty_MissingRow(t *testing.T) {
	svc := NewPartyService(newFakePartyReader())

	party, err := svc.ResolveParty(context.Background(), "C-missing", domain.PartyTypeCustomer)
	require.NoError(t, err)
	assert.Nil(t, party)
}

func TestResolveParty_ReaderError(t *testing.T) {
	svc := NewPartyService(&fakePartyReader{err: errors.New("connection refused")})

	_, err := svc.ResolveParty(context.Background(), "C1001", domain.PartyTypeCustomer)
	assert.Error(t, err)
}

func TestResolveRef(t *testing.T) {
	svc := NewPartyService(newFakePartyReader())

	party, err := svc.ResolveRef(context.Background(), models.PartyRef{
		PartyID:   "O2001",
		PartyType: domain.PartyTypeOrganization,
		AccountNo: "ACC-77",
	})
	require.NoError(t, err)
	require.NotNil(t, party)
	assert.Equal(t, PartyKindOrganization, party.Kind)
}
