package service

import (
	"context"
	"fmt"

	"github.com/lbi-bank/ods-console/internal/domain"
	"github.com/lbi-bank/ods-console/internal/models"
)

// PartyKind tags the concrete side of a resolved party.
type PartyKind string

const (
	PartyKindCustomer     PartyKind = "customer"
	PartyKindOrganization PartyKind = "organization"
)

// Party is the tagged union a discriminated reference resolves to. Exactly
// one of Customer/Organization is set, matching Kind.
type Party struct {
	Kind         PartyKind            `json:"kind"`
	Customer     *models.Customer     `json:"customer,omitempty"`
	Organization *models.Organization `json:"organization,omitempty"`
}

// DisplayName returns a human label for the party for console listings.
func (p *Party) DisplayName() string {
	switch p.Kind {
	case PartyKindCustomer:
		if p.Customer.PublicName != "" {
			return p.Customer.PublicName
		}
		return p.Customer.MSISDN
	case PartyKindOrganization:
		return p.Organization.Name
	}
	return ""
}

// PartyReader is the data access the resolver needs.
type PartyReader interface {
	GetCustomer(ctx context.Context, customerID string) (*models.Customer, error)
	GetOrganization(ctx context.Context, orgID string) (*models.Organization, error)
}

// PartyService resolves (party_id, party_type) pairs to concrete parties.
type PartyService struct {
	reader PartyReader
}

func NewPartyService(reader PartyReader) *PartyService {
	return &PartyService{reader: reader}
}

// ResolveParty applies the discriminator at resolution time: "1000" selects
// the customer table, "5000" the organization table, and any other code is
// no party (nil, no error). A known code whose row is missing also resolves
// to nil, per the not-found contract.
func (s *PartyService) ResolveParty(ctx context.Context, partyID, partyType string) (*Party, error) {
	switch partyType {
	case domain.PartyTypeCustomer:
		c, err := s.reader.GetCustomer(ctx, partyID)
		if err != nil {
			return nil, fmt.Errorf("resolve customer party: %w", err)
		}
		if c == nil {
			return nil, nil
		}
		return &Party{Kind: PartyKindCustomer, Customer: c}, nil
	case domain.PartyTypeOrganization:
		o, err := s.reader.GetOrganization(ctx, partyID)
		if err != nil {
			return nil, fmt.Errorf("resolve organization party: %w", err)
		}
		if o == nil {
			return nil, nil
		}
		return &Party{Kind: PartyKindOrganization, Organization: o}, nil
	}
	return nil, nil
}

// ResolveRef resolves a stored discriminated reference.
func (s *PartyService) ResolveRef(ctx context.Context, ref models.PartyRef) (*Party, error) {
	return s.ResolveParty(ctx, ref.PartyID, ref.PartyType)
}
