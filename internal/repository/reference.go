package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/lbi-bank/ods-console/internal/models"
)

// activePredicate matches every historical encoding of "active" on the
// reference tables (numeric 1 stores as its text form).
const activePredicate = `TRIM(status) IN ('1', 'Active', 'active')`

const accountTypeColumns = `unique_id, account_type_id, name, alias,
	balance_direction, account_model, can_overdraw, sharable, realtime, status`

func scanAccountType(row interface{ Scan(dest ...any) error }) (*models.AccountType, error) {
	t := &models.AccountType{}
	err := row.Scan(
		&t.UniqueID, &t.AccountTypeID, &t.Name, &t.Alias,
		&t.BalanceDirection, &t.AccountModel, &t.CanOverdraw,
		&t.Sharable, &t.Realtime, &t.Status,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// GetAccountTypeByUniqueID looks up by the canonical key.
func (r *Repository) GetAccountTypeByUniqueID(ctx context.Context, uniqueID string) (*models.AccountType, error) {
	defer observe("get_account_type", time.Now())
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	query := `SELECT ` + accountTypeColumns + `
		FROM lbi_ods.account_type
		WHERE unique_id = $1`
	t, err := scanAccountType(r.db.QueryRow(ctx, query, uniqueID))
	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account type: %w", err)
	}
	return t, nil
}

// GetAccountTypeByTypeID resolves the business code accounts carry. The
// code is not guaranteed unique; the newest active row wins.
func (r *Repository) GetAccountTypeByTypeID(ctx context.Context, accountTypeID string) (*models.AccountType, error) {
	defer observe("get_account_type_by_type_id", time.Now())
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	query := `SELECT ` + accountTypeColumns + `
		FROM lbi_ods.account_type
		WHERE account_type_id = $1 AND ` + activePredicate + `
		ORDER BY unique_id DESC
		LIMIT 1`
	t, err := scanAccountType(r.db.QueryRow(ctx, query, accountTypeID))
	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account type by type id: %w", err)
	}
	return t, nil
}

func (r *Repository) ListActiveAccountTypes(ctx context.Context) ([]models.AccountType, error) {
	defer observe("list_active_account_types", time.Now())
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	query := `SELECT ` + accountTypeColumns + `
		FROM lbi_ods.account_type
		WHERE ` + activePredicate + `
		ORDER BY account_type_id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list account types: %w", err)
	}
	defer rows.Close()

	var types []models.AccountType
	for rows.Next() {
		t, err := scanAccountType(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account type: %w", err)
		}
		types = append(types, *t)
	}
	return types, rows.Err()
}

const reasonTypeColumns = `unique_id, reason_index, name, alias,
	expiration_day, expiration_hour, expiration_min, reversal_mode,
	linked_transaction, status`

func scanReasonType(row interface{ Scan(dest ...any) error }) (*models.ReasonType, error) {
	rt := &models.ReasonType{}
	err := row.Scan(
		&rt.UniqueID, &rt.ReasonIndex, &rt.Name, &rt.Alias,
		&rt.ExpirationDay, &rt.ExpirationHour, &rt.ExpirationMin,
		&rt.ReversalMode, &rt.LinkedTransaction, &rt.Status,
	)
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *Repository) GetReasonTypeByIndex(ctx context.Context, reasonIndex string) (*models.ReasonType, error) {
	defer observe("get_reason_type", time.Now())
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	query := `SELECT ` + reasonTypeColumns + `
		FROM lbi_ods.reason_type
		WHERE reason_index = $1 AND ` + activePredicate + `
		LIMIT 1`
	rt, err := scanReasonType(r.db.QueryRow(ctx, query, reasonIndex))
	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reason type: %w", err)
	}
	return rt, nil
}

func (r *Repository) ListActiveReasonTypes(ctx context.Context) ([]models.ReasonType, error) {
	defer observe("list_active_reason_types", time.Now())
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	query := `SELECT ` + reasonTypeColumns + `
		FROM lbi_ods.reason_type
		WHERE ` + activePredicate + `
		ORDER BY reason_index`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list reason types: %w", err)
	}
	defer rows.Close()

	var types []models.ReasonType
	for rows.Next() {
		rt, err := scanReasonType(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reason type: %w", err)
		}
		types = append(types, *rt)
	}
	return types, rows.Err()
}

const transactionTypeColumns = `unique_id, txn_index, name, alias,
	is_bulk, is_intra, is_reversal, is_partial_reversal,
	financial_category, service_category, status`

func scanTransactionType(row interface{ Scan(dest ...any) error }) (*models.TransactionType, error) {
	tt := &models.TransactionType{}
	err := row.Scan(
		&tt.UniqueID, &tt.TxnIndex, &tt.Name, &tt.Alias,
		&tt.IsBulk, &tt.IsIntra, &tt.IsReversal, &tt.IsPartialReversal,
		&tt.FinancialCategory, &tt.ServiceCategory, &tt.Status,
	)
	if err != nil {
		return nil, err
	}
	return tt, nil
}

func (r *Repository) GetTransactionTypeByIndex(ctx context.Context, txnIndex string) (*models.TransactionType, error) {
	defer observe("get_transaction_type", time.Now())
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	query := `SELECT ` + transactionTypeColumns + `
		FROM lbi_ods.transaction_type
		WHERE txn_index = $1 AND ` + activePredicate + `
		LIMIT 1`
	tt, err := scanTransactionType(r.db.QueryRow(ctx, query, txnIndex))
	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction type: %w", err)
	}
	return tt, nil
}

func (r *Repository) ListActiveTransactionTypes(ctx context.Context) ([]models.TransactionType, error) {
	defer observe("list_active_transaction_types", time.Now())
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	query := `SELECT ` + transactionTypeColumns + `
		FROM lbi_ods.transaction_type
		WHERE ` + activePredicate + `
		ORDER BY txn_index`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list transaction types: %w", err)
	}
	defer rows.Close()

	var types []models.TransactionType
	for rows.Next() {
		tt, err := scanTransactionType(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction type: %w", err)
		}
		types = append(types, *tt)
	}
	return types, rows.Err()
}
