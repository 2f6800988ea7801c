package service

import (
	"context"
	"fmt"

	"github.com/lbi-bank/ods-console/internal/models"
	"github.com/lbi-bank/ods-console/internal/refcache"
)

// ReferenceReader is the data access the reference catalog needs.
type ReferenceReader interface {
	GetAccountTypeByUniqueID(ctx context.Context, uniqueID string) (*models.AccountType, error)
	GetAccountTypeByTypeID(ctx context.Context, accountTypeID string) (*models.AccountType, error)
	ListActiveAccountTypes(ctx context.Context) ([]models.AccountType, error)
	GetReasonTypeByIndex(ctx context.Context, reasonIndex string) (*models.ReasonType, error)
	ListActiveReasonTypes(ctx context.Context) ([]models.ReasonType, error)
	GetTransactionTypeByIndex(ctx context.Context, txnIndex string) (*models.TransactionType, error)
	ListActiveTransactionTypes(ctx context.Context) ([]models.TransactionType, error)
}

// ReferenceService serves the classification tables, optionally fronted by
// the redis read-through cache. Lists are always read from the database;
// only single-row lookups cache (they dominate transaction drill-downs).
type ReferenceService struct {
	reader ReferenceReader
	cache  *refcache.Store
}

func NewReferenceService(reader ReferenceReader, cache *refcache.Store) *ReferenceService {
	return &ReferenceService{reader: reader, cache: cache}
}

// AccountTypeByUniqueID looks up an account type by its canonical key.
func (s *ReferenceService) AccountTypeByUniqueID(ctx context.Context, uniqueID string) (*models.AccountType, error) {
	if s.cache.Enabled() {
		var cached models.AccountType
		if s.cache.Get(ctx, "account_type_uid", uniqueID, &cached) {
			return &cached, nil
		}
	}
	t, err := s.reader.GetAccountTypeByUniqueID(ctx, uniqueID)
	if err != nil {
		return nil, fmt.Errorf("account type lookup: %w", err)
	}
	if t != nil {
		s.cache.Set(ctx, "account_type_uid", uniqueID, t)
	}
	return t, nil
}

func (s *ReferenceService) AccountTypeByTypeID(ctx context.Context, accountTypeID string) (*models.AccountType, error) {
	if s.cache.Enabled() {
		var cached models.AccountType
		if s.cache.Get(ctx, "account_type", accountTypeID, &cached) {
			return &cached, nil
		}
	}
	t, err := s.reader.GetAccountTypeByTypeID(ctx, accountTypeID)
	if err != nil {
		return nil, fmt.Errorf("account type lookup: %w", err)
	}
	if t != nil {
		s.cache.Set(ctx, "account_type", accountTypeID, t)
	}
	return t, nil
}

func (s *ReferenceService) ReasonTypeByIndex(ctx context.Context, reasonIndex string) (*models.ReasonType, error) {
	if s.cache.Enabled() {
		var cached models.ReasonType
		if s.cache.Get(ctx, "reason_type", reasonIndex, &cached) {
			return &cached, nil
		}
	}
	rt, err := s.reader.GetReasonTypeByIndex(ctx, reasonIndex)
	if err != nil {
		return nil, fmt.Errorf("reason type lookup: %w", err)
	}
	if rt != nil {
		s.cache.Set(ctx, "reason_type", reasonIndex, rt)
	}
	return rt, nil
}

func (s *ReferenceService) TransactionTypeByIndex(ctx context.Context, txnIndex string) (*models.TransactionType, error) {
	if s.cache.Enabled() {
		var cached models.TransactionType
		if s.cache.Get(ctx, "transaction_type", txnIndex, &cached) {
			return &cached, nil
		}
	}
	tt, err := s.reader.GetTransactionTypeByIndex(ctx, txnIndex)
	if err != nil {
		return nil, fmt.Errorf("transaction type lookup: %w", err)
	}
	if tt != nil {
		s.cache.Set(ctx, "transaction_type", txnIndex, tt)
	}
	return tt, nil
}

// ActiveAccountTypes returns the active classification rows for dropdowns
// and filters.
func (s *ReferenceService) ActiveAccountTypes(ctx context.Context) ([]models.AccountType, error) {
	return s.reader.ListActiveAccountTypes(ctx)
}

func (s *ReferenceService) ActiveReasonTypes(ctx context.Context) ([]models.ReasonType, error) {
	return s.reader.ListActiveReasonTypes(ctx)
}

func (s *ReferenceService) ActiveTransactionTypes(ctx context.Context) ([]models.TransactionType, error) {
	return s.reader.ListActiveTransactionTypes(ctx)
}
