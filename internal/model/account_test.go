package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_DebitNormal(t *testing.T) {
	assert.True(t, CategoryAsset.DebitNormal())
	assert.True(t, CategoryExpense.DebitNormal())
	assert.False(t, CategoryLiability.DebitNormal())
	assert.False(t, CategoryEquity.DebitNormal())
	assert.False(t, CategoryRevenue.DebitNormal())
}

func TestAccount_String(t *testing.T) {
	cash := Account{Number: "1000", Name: "cash", Category: CategoryAsset}
	assert.Equal(t, "  1000   cash", cash.String())

	// Dotted sub-accounts indent under their parent.
	envelope := Account{Number: "1000.1", Name: "allocated tithing", Category: CategoryAsset}
	assert.Equal(t, "  1000.1 allocated tithing", envelope.String())
}
