package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryAt(kind TransactionKind, amount int64, at time.Time) Entry {
	return Entry{ID: uuid.New(), Kind: kind, Amount: amount, At: at}
}

func TestHistoryAppendPreservesOrder(t *testing.T) {
	h := NewHistory()
	now := time.Now()

	h.Append(entryAt(Deposit, 100, now))
	h.Append(entryAt(Withdrawal, 30, now))
	h.Append(entryAt(Deposit, 50, now))

	entries := h.All()
	require.Len(t, entries, 3)
	assert.Equal(t, Deposit, entries[0].Kind)
	assert.Equal(t, Withdrawal, entries[1].Kind)
	assert.Equal(t, Deposit, entries[2].Kind)
	assert.Equal(t, int64(100), entries[0].Amount)
}

func TestHistoryAllReturnsCopy(t *testing.T) {
	h := NewHistory()
	h.Append(entryAt(Deposit, 100, time.Now()))

	view := h.All()
	view[0].Amount = 999999

	assert.Equal(t, int64(100), h.All()[0].Amount, "callers must not be able to edit the log")
}

func TestHistoryCountOnDay(t *testing.T) {
	h := NewHistory()
	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)

	h.Append(entryAt(Withdrawal, 10, yesterday))
	h.Append(entryAt(Withdrawal, 10, now))
	h.Append(entryAt(Withdrawal, 10, now))
	h.Append(entryAt(Deposit, 10, now))

	assert.Equal(t, 2, h.CountOnDay(Withdrawal, now), "only today's withdrawals count")
	assert.Equal(t, 1, h.CountOnDay(Withdrawal, yesterday))
	assert.Equal(t, 1, h.CountOnDay(Deposit, now))
	assert.Equal(t, 0, h.CountOnDay(Deposit, yesterday))
}

func TestHistoryLen(t *testing.T) {
	h := NewHistory()
	assert.Equal(t, 0, h.Len())

	h.Append(entryAt(Deposit, 1, time.Now()))
	assert.Equal(t, 1, h.Len())
}
