package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lbi-bank/ods-console/internal/domain"
	"github.com/lbi-bank/ods-console/internal/models"
)

// Customer and organization accounts share one column layout.
const accountColumns = `account_no, identity_id, identity_type, account_type_id,
	balance, reserved_balance, unclear_balance, currency, status, value_type, opened_at`

func scanCustomerAccount(row interface{ Scan(dest ...any) error }) (*models.CustomerAccount, error) {
	a := &models.CustomerAccount{}
	err := row.Scan(
		&a.AccountNo, &a.IdentityID, &a.IdentityType, &a.AccountTypeID,
		&a.Balance, &a.ReservedBalance, &a.UnclearBalance,
		&a.Currency, &a.Status, &a.ValueType, &a.OpenedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *Repository) GetCustomerAccount(ctx context.Context, accountNo string) (*models.CustomerAccount, error) {
	defer observe("get_customer_account", time.Now())
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	query := `SELECT ` + accountColumns + `
		FROM lbi_ods.customer_account
		WHERE account_no = $1`
	a, err := scanCustomerAccount(r.db.QueryRow(ctx, query, accountNo))
	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer account: %w", err)
	}
	return a, nil
}

// ListCustomerAccounts returns every account owned by a customer. Ownership
// filters on the stored discriminator as well as the id, so a re-pointed
// discriminator immediately removes the row from the customer view.
func (r *Repository) ListCustomerAccounts(ctx context.Context, customerID string) ([]models.CustomerAccount, error) {
	defer observe("list_customer_accounts", time.Now())
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	query := `SELECT ` + accountColumns + `
		FROM lbi_ods.customer_account
		WHERE identity_id = $1 AND identity_type = $2
		ORDER BY account_no`
	rows, err := r.db.Query(ctx, query, customerID, domain.PartyTypeCustomer)
	if err != nil {
		return nil, fmt.Errorf("failed to list customer accounts: %w", err)
	}
	defer rows.Close()

	var accounts []models.CustomerAccount
	for rows.Next() {
		a, err := scanCustomerAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer account: %w", err)
		}
		accounts = append(accounts, *a)
	}
	return accounts, rows.Err()
}

// SumCustomerBalances aggregates the balance column across a customer's
// accounts. A customer with no accounts sums to zero.
func (r *Repository) SumCustomerBalances(ctx context.Context, customerID string) (decimal.Decimal, error) {
	defer observe("sum_customer_balances", time.Now())
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	var total decimal.Decimal
	query := `
		SELECT COALESCE(SUM(balance), 0)
		FROM lbi_ods.customer_account
		WHERE identity_id = $1 AND identity_type = $2
	`
	err := r.db.QueryRow(ctx, query, customerID, domain.PartyTypeCustomer).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum customer balances: %w", err)
	}
	return total, nil
}

func scanOrganizationAccount(row interface{ Scan(dest ...any) error }) (*models.OrganizationAccount, error) {
	a := &models.OrganizationAccount{}
	err := row.Scan(
		&a.AccountNo, &a.IdentityID, &a.IdentityType, &a.AccountTypeID,
		&a.Balance, &a.ReservedBalance, &a.UnclearBalance,
		&a.Currency, &a.Status, &a.ValueType, &a.OpenedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *Repository) GetOrganizationAccount(ctx context.Context, accountNo string) (*models.OrganizationAccount, error) {
	defer observe("get_organization_account", time.Now())
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	query := `SELECT ` + accountColumns + `
		FROM lbi_ods.organization_account
		WHERE account_no = $1`
	a, err := scanOrganizationAccount(r.db.QueryRow(ctx, query, accountNo))
	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get organization account: %w", err)
	}
	return a, nil
}

func (r *Repository) ListOrganizationAccounts(ctx context.Context, orgID string) ([]models.OrganizationAccount, error) {
	defer observe("list_organization_accounts", time.Now())
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	query := `SELECT ` + accountColumns + `
		FROM lbi_ods.organization_account
		WHERE identity_id = $1 AND identity_type = $2
		ORDER BY account_no`
	rows, err := r.db.Query(ctx, query, orgID, domain.PartyTypeOrganization)
	if err != nil {
		return nil, fmt.Errorf("failed to list organization accounts: %w", err)
	}
	defer rows.Close()

	var accounts []models.OrganizationAccount
	for rows.Next() {
		a, err := scanOrganizationAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan organization account: %w", err)
		}
		accounts = append(accounts, *a)
	}
	return accounts, rows.Err()
}
