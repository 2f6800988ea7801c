package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBalanceDirectionLabel(t *testing.T) {
	assert.Equal(t, "Debit", BalanceDirectionLabel("D"))
	assert.Equal(t, "Credit", BalanceDirectionLabel("c"))
	assert.Equal(t, "Neutral", BalanceDirectionLabel(" N "))
	assert.Equal(t, "Unknown", BalanceDirectionLabel("X"))
	assert.Equal(t, "Unknown", BalanceDirectionLabel(""))
}

func TestCategoryLabels(t *testing.T) {
	assert.Equal(t, "Personal", AccountModelLabel(AccountModelPersonal))
	assert.Equal(t, "Unknown", AccountModelLabel(99))

	assert.Equal(t, "Financial", FinancialCategoryLabel(CategoryFinancial))
	assert.Equal(t, "Unknown", FinancialCategoryLabel(0))

	assert.Equal(t, "Transfer", ServiceCategoryLabel(ServiceCategoryTransfer))
	assert.Equal(t, "Other", ServiceCategoryLabel(42))

	assert.Equal(t, "Full Reversal", ReversalModeLabel(ReversalModeFull))
	assert.Equal(t, "Unknown", ReversalModeLabel(-1))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Wallet", DisplayName("Wallet", "Customer E-Money Account"))
	assert.Equal(t, "Customer E-Money Account", DisplayName("", "Customer E-Money Account"))
	assert.Equal(t, "Customer E-Money Account", DisplayName("   ", "Customer E-Money Account"))
}
