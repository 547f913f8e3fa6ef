package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger(t *testing.T) *LedgerService {
	t.Helper()
	return NewLedgerService(filepath.Join(t.TempDir(), "ledger.json"))
}

func TestLedgerPostAndList(t *testing.T) {
	svc := newTestLedger(t)

	txn, err := svc.Post("Owner seed capital", "1020", "3010", decimal.NewFromInt(100000), time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 1, txn.ID)
	assert.Equal(t, "1020", txn.DebitAccount)
	assert.Equal(t, "3010", txn.CreditAccount)
	assert.False(t, txn.Date.IsZero())

	txn2, err := svc.Post("Room revenue in cash", "1010", "4010", decimal.NewFromInt(2500), time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 2, txn2.ID)

	txns, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, txns, 2)
}

func TestLedgerPersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")

	first := NewLedgerService(path)
	_, err := first.Post("Supplies bought on credit", "5020", "2010", decimal.NewFromInt(1200), time.Time{})
	require.NoError(t, err)

	second := NewLedgerService(path)
	txns, err := second.List()
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "Supplies bought on credit", txns[0].Description)

	txn, err := second.Post("Paid supplier", "2010", "1020", decimal.NewFromInt(1200), time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 2, txn.ID)
}

func TestLedgerValidation(t *testing.T) {
	svc := newTestLedger(t)

	_, err := svc.Post("bad debit", "9999", "1010", decimal.NewFromInt(10), time.Time{})
	assert.EqualError(t, err, "unknown_debit_account")

	_, err = svc.Post("bad credit", "1010", "9999", decimal.NewFromInt(10), time.Time{})
	assert.EqualError(t, err, "unknown_credit_account")

	_, err = svc.Post("same legs", "1010", "1010", decimal.NewFromInt(10), time.Time{})
	assert.EqualError(t, err, "same_account_both_legs")

	_, err = svc.Post("zero", "1010", "4010", decimal.Zero, time.Time{})
	assert.EqualError(t, err, "invalid_amount")

	_, err = svc.Post("negative", "1010", "4010", decimal.NewFromInt(-5), time.Time{})
	assert.EqualError(t, err, "invalid_amount")

	txns, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, txns, "rejected postings must not be persisted")
}

func TestAccountBalancesSumToZero(t *testing.T) {
	txns := []LedgerTransaction{
		{ID: 1, DebitAccount: "1020", CreditAccount: "3010", Amount: decimal.NewFromInt(100000)},
		{ID: 2, DebitAccount: "1010", CreditAccount: "4010", Amount: decimal.NewFromInt(2500)},
		{ID: 3, DebitAccount: "5010", CreditAccount: "1020", Amount: decimal.NewFromInt(18000)},
	}

	balances := AccountBalances(txns)
	assert.Len(t, balances, len(LedgerChart))

	assert.True(t, decimal.NewFromInt(82000).Equal(balances["1020"]))
	assert.True(t, decimal.NewFromInt(2500).Equal(balances["1010"]))
	assert.True(t, decimal.NewFromInt(-100000).Equal(balances["3010"]))
	assert.True(t, decimal.NewFromInt(-2500).Equal(balances["4010"]))
	assert.True(t, decimal.NewFromInt(18000).Equal(balances["5010"]))

	var sum decimal.Decimal
	for _, v := range balances {
		sum = sum.Add(v)
	}
	assert.True(t, sum.IsZero(), "balances sum to %s", sum)
}

func TestLedgerReset(t *testing.T) {
	svc := newTestLedger(t)

	_, err := svc.Post("entry", "1010", "4010", decimal.NewFromInt(100), time.Time{})
	require.NoError(t, err)

	require.NoError(t, svc.Reset())

	txns, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, txns)

	// ids restart after a reset
	txn, err := svc.Post("fresh", "1010", "4010", decimal.NewFromInt(1), time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 1, txn.ID)
}

func TestLookupChartAccount(t *testing.T) {
	acc := LookupChartAccount("4020")
	require.NotNil(t, acc)
	assert.Equal(t, "Restaurant Revenue", acc.Name)
	assert.Equal(t, "revenue", acc.Category)

	assert.Nil(t, LookupChartAccount("0000"))
}
