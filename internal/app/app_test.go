package app

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lbi-bank/ods-console/internal/config"
	"github.com/lbi-bank/ods-console/internal/testutil/dblock"
)

func TestMain(m *testing.M) {
	release := dblock.Acquire()
	code := m.Run()
	release()
	os.Exit(code)
}

// setupConsole wires the full read layer against the local database, the
// same way the report command does. Redis is picked up from REDIS_URL when
// present.
func setupConsole(t *testing.T) *Console {
	t.Helper()

	connString := os.Getenv("DATABASE_URL")
	if connString == "" {
		t.Skip("Skipping integration test: DATABASE_URL not set")
	}

	cfg := &config.Config{
		DatabaseURL:       connString,
		RedisURL:          os.Getenv("REDIS_URL"),
		LogLevel:          "error",
		QueryTimeout:      5 * time.Second,
		ReferenceCacheTTL: time.Minute,
	}
	console, err := NewConsole(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(console.Close)

	ensureConsoleFixtures(t, console.pool)
	return console
}

func ensureConsoleFixtures(t *testing.T, db *pgxpool.Pool) {
	t.Helper()

	sql := `
		CREATE SCHEMA IF NOT EXISTS lbi_ods;
		CREATE TABLE IF NOT EXISTS lbi_ods.customer (
			customer_id TEXT PRIMARY KEY,
			msisdn TEXT NOT NULL DEFAULT '',
			public_name TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT '',
			trust_level INT NOT NULL DEFAULT 0,
			kyc_profile_id TEXT NOT NULL DEFAULT '',
			rule_profile_id TEXT NOT NULL DEFAULT '',
			language TEXT NOT NULL DEFAULT '',
			registered_at TEXT NOT NULL DEFAULT ''
		);
		CREATE TABLE IF NOT EXISTS lbi_ods.customer_account (
			account_no TEXT PRIMARY KEY,
			identity_id TEXT NOT NULL,
			identity_type TEXT NOT NULL,
			account_type_id TEXT NOT NULL DEFAULT '',
			balance NUMERIC(20,2) NOT NULL DEFAULT 0,
			reserved_balance NUMERIC(20,2) NOT NULL DEFAULT 0,
			unclear_balance NUMERIC(20,2) NOT NULL DEFAULT 0,
			currency TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT '',
			value_type TEXT NOT NULL DEFAULT '',
			opened_at TEXT NOT NULL DEFAULT ''
		);
		CREATE TABLE IF NOT EXISTS lbi_ods.customer_kyc (
			customer_id TEXT PRIMARY KEY
		);
		CREATE TABLE IF NOT EXISTS lbi_ods.reason_type (
			unique_id TEXT PRIMARY KEY,
			reason_index TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			alias TEXT NOT NULL DEFAULT '',
			expiration_day INT NOT NULL DEFAULT 0,
			expiration_hour INT NOT NULL DEFAULT 0,
			expiration_min INT NOT NULL DEFAULT 0,
			reversal_mode INT NOT NULL DEFAULT 0,
			linked_transaction TEXT NOT NULL DEFAULT '0',
			status TEXT NOT NULL DEFAULT ''
		);
	`
	if _, err := db.Exec(context.Background(), sql); err != nil {
		t.Fatalf("failed to ensure lbi_ods fixture tables: %v", err)
	}
	_, err := db.Exec(context.Background(), `TRUNCATE TABLE
		lbi_ods.customer, lbi_ods.customer_account, lbi_ods.reason_type CASCADE`)
	if err != nil {
		t.Fatalf("failed to truncate lbi_ods fixtures: %v", err)
	}
}

func TestNewConsole_CustomerOverview(t *testing.T) {
	console := setupConsole(t)
	ctx := context.Background()

	_, err := console.pool.Exec(ctx, `INSERT INTO lbi_ods.customer
		(customer_id, msisdn, public_name, status) VALUES
		('C3001', '255700000003', 'Asha M', '03')`)
	require.NoError(t, err)
	_, err = console.pool.Exec(ctx, `INSERT INTO lbi_ods.customer_account
		(account_no, identity_id, identity_type, balance, currency, status) VALUES
		('A31', 'C3001', '1000', 15000.00, 'TZS', '03'),
		('A32', 'C3001', '1000', 5000.00, 'TZS', '03')`)
	require.NoError(t, err)

	overview, err := console.Reports.CustomerOverview(ctx, "C3001")
	require.NoError(t, err)
	require.NotNil(t, overview)
	assert.Equal(t, "Asha M", overview.Customer.PublicName)
	assert.Len(t, overview.Accounts, 2)
	assert.Equal(t, "20000", overview.TotalBalance.String())
	assert.Equal(t, "Medium Value", overview.Segment)
}

func TestNewConsole_ReferenceCacheServesSecondRead(t *testing.T) {
	console := setupConsole(t)
	if os.Getenv("REDIS_URL") == "" {
		t.Skip("Skipping cache test: REDIS_URL not set")
	}
	ctx := context.Background()

	// A fresh index per run keeps prior cache entries out of the way.
	reasonIndex := uuid.New().String()
	_, err := console.pool.Exec(ctx, `INSERT INTO lbi_ods.reason_type
		(unique_id, reason_index, name, status) VALUES
		($1, $2, 'Cached Reason', '1')`, uuid.New().String(), reasonIndex)
	require.NoError(t, err)

	first, err := console.Reference.ReasonTypeByIndex(ctx, reasonIndex)
	require.NoError(t, err)
	require.NotNil(t, first)

	// Delete the backing row: a second read can only succeed via the cache.
	_, err = console.pool.Exec(ctx, `DELETE FROM lbi_ods.reason_type WHERE reason_index = $1`, reasonIndex)
	require.NoError(t, err)

	second, err := console.Reference.ReasonTypeByIndex(ctx, reasonIndex)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, "Cached Reason", second.Name)
}
