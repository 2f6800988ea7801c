package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/lbi-bank/ods-console/internal/models"
)

// Order ids are numeric in storage but opaque strings at this boundary; the
// text cast on both sides keeps large ids loss-free.
const transactionColumns = `order_id::text, status, initiate_time, end_time,
	debit_party_id, debit_party_type, debit_account_no, debit_account_type,
	credit_party_id, credit_party_type, credit_account_no, credit_account_type,
	request_amount, org_amount, actual_amount, fee, commission, tax, currency,
	reason_index, txn_index, is_reversed, reversal_order_id`

func scanTransaction(row interface{ Scan(dest ...any) error }) (*models.Transaction, error) {
	t := &models.Transaction{}
	err := row.Scan(
		&t.OrderID, &t.Status, &t.InitiateTime, &t.EndTime,
		&t.DebitParty.PartyID, &t.DebitParty.PartyType,
		&t.DebitParty.AccountNo, &t.DebitAccountType,
		&t.CreditParty.PartyID, &t.CreditParty.PartyType,
		&t.CreditParty.AccountNo, &t.CreditAccountType,
		&t.RequestAmount, &t.OrgAmount, &t.ActualAmount,
		&t.Fee, &t.Commission, &t.Tax, &t.Currency,
		&t.ReasonIndex, &t.TxnIndex, &t.IsReversed, &t.ReversalOrderID,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *Repository) GetTransaction(ctx context.Context, orderID string) (*models.Transaction, error) {
	defer observe("get_transaction", time.Now())
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	query := `SELECT ` + transactionColumns + `
		FROM lbi_ods.transaction_record
		WHERE order_id::text = $1`
	t, err := scanTransaction(r.db.QueryRow(ctx, query, orderID))
	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return t, nil
}

// ListTransactionsByParty pages through transactions where the given party
// appears on either side, newest first.
func (r *Repository) ListTransactionsByParty(ctx context.Context, partyID, partyType string, limit, offset int) ([]models.Transaction, error) {
	defer observe("list_transactions_by_party", time.Now())
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	query := `SELECT ` + transactionColumns + `
		FROM lbi_ods.transaction_record
		WHERE (debit_party_id = $1 AND debit_party_type = $2)
		   OR (credit_party_id = $1 AND credit_party_type = $2)
		ORDER BY initiate_time DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.db.Query(ctx, query, partyID, partyType, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions by party: %w", err)
	}
	defer rows.Close()

	var txns []models.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, *t)
	}
	return txns, rows.Err()
}

func (r *Repository) ListTransactionsByStatus(ctx context.Context, status string, limit, offset int) ([]models.Transaction, error) {
	defer observe("list_transactions_by_status", time.Now())
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	query := `SELECT ` + transactionColumns + `
		FROM lbi_ods.transaction_record
		WHERE status = $1
		ORDER BY initiate_time DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions by status: %w", err)
	}
	defer rows.Close()

	var txns []models.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, *t)
	}
	return txns, rows.Err()
}

// GetTransactionDetail loads the 1:1 audit extension for an order. Most
// orders have one; absence is not an error.
func (r *Repository) GetTransactionDetail(ctx context.Context, orderID string) (*models.TransactionDetail, error) {
	defer observe("get_transaction_detail", time.Now())
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	d := &models.TransactionDetail{}
	query := `
		SELECT order_id::text, process_id, activity_id, workflow_status,
		       engine_version,
		       initiator_id, initiator_type, initiator_account_no,
		       receiver_id, receiver_type, receiver_account_no,
		       primary_party_id, primary_party_type, primary_party_account_no,
		       channel, access_point, error_code, error_message,
		       reason_index, txn_index, remark,
		       reserved_1, reserved_2, reserved_3, reserved_4, reserved_5,
		       reserved_6, reserved_7, reserved_8, reserved_9, reserved_10,
		       created_at
		FROM lbi_ods.transaction_detail
		WHERE order_id::text = $1
	`
	err := r.db.QueryRow(ctx, query, orderID).Scan(
		&d.OrderID, &d.ProcessID, &d.ActivityID, &d.WorkflowStatus,
		&d.EngineVersion,
		&d.Initiator.PartyID, &d.Initiator.PartyType, &d.Initiator.AccountNo,
		&d.Receiver.PartyID, &d.Receiver.PartyType, &d.Receiver.AccountNo,
		&d.PrimaryParty.PartyID, &d.PrimaryParty.PartyType, &d.PrimaryParty.AccountNo,
		&d.Channel, &d.AccessPoint, &d.ErrorCode, &d.ErrorMessage,
		&d.ReasonIndex, &d.TxnIndex, &d.Remark,
		&d.Reserved1, &d.Reserved2, &d.Reserved3, &d.Reserved4, &d.Reserved5,
		&d.Reserved6, &d.Reserved7, &d.Reserved8, &d.Reserved9, &d.Reserved10,
		&d.CreatedAt,
	)
	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction detail: %w", err)
	}
	return d, nil
}
