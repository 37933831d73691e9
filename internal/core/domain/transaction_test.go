package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterDepositRecordsHistory(t *testing.T) {
	a := newTestChecking()
	tx := NewDeposit(1000)

	entry, err := tx.Register(a)
	require.NoError(t, err)

	assert.Equal(t, tx.ID, entry.ID)
	assert.Equal(t, Deposit, entry.Kind)
	assert.Equal(t, int64(1000), entry.Amount)
	assert.Equal(t, 0, entry.At.Nanosecond(), "timestamps are second precision")

	entries := a.History.All()
	require.Len(t, entries, 1)
	assert.Equal(t, entry, entries[0])
}

func TestRegisterWithdrawalRecordsHistory(t *testing.T) {
	a := newTestChecking()
	_, err := NewDeposit(1000).Register(a)
	require.NoError(t, err)

	entry, err := NewWithdrawal(300).Register(a)
	require.NoError(t, err)

	assert.Equal(t, Withdrawal, entry.Kind)
	assert.Equal(t, int64(700), a.Balance())
	assert.Equal(t, 2, a.History.Len())
}

func TestRegisterRejectionLeavesNoTrace(t *testing.T) {
	a := newTestChecking()
	_, err := NewDeposit(100).Register(a)
	require.NoError(t, err)

	before := a.Balance()

	for _, tx := range []Transaction{
		NewDeposit(0),
		NewDeposit(-10),
		NewWithdrawal(0),
		NewWithdrawal(200),  // insufficient
		NewWithdrawal(9999), // over the limit
	} {
		_, err := tx.Register(a)
		assert.Error(t, err, "transaction %+v should be rejected", tx)
	}

	assert.Equal(t, before, a.Balance())
	assert.Equal(t, 1, a.History.Len(), "rejected transactions are never recorded")
}

func TestTransactionIDsAreUnique(t *testing.T) {
	a := NewDeposit(10)
	b := NewDeposit(10)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestRegisterTimestampIsRecordingTime(t *testing.T) {
	a := newTestChecking()

	before := time.Now().Truncate(time.Second)
	entry, err := NewDeposit(50).Register(a)
	require.NoError(t, err)
	after := time.Now()

	assert.False(t, entry.At.Before(before))
	assert.False(t, entry.At.After(after))
}
