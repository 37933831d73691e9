package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "0001", cfg.BranchCode)
	assert.Equal(t, int64(500), cfg.OverdraftLimit)
	assert.Equal(t, 3, cfg.DailyWithdrawalLimit)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("BRANCH_CODE", "0042")
	t.Setenv("OVERDRAFT_LIMIT", "100000")
	t.Setenv("DAILY_WITHDRAWAL_LIMIT", "5")

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "0042", cfg.BranchCode)
	assert.Equal(t, int64(100000), cfg.OverdraftLimit)
	assert.Equal(t, 5, cfg.DailyWithdrawalLimit)
}

func TestLoadConfigIgnoresBadIntegers(t *testing.T) {
	t.Setenv("OVERDRAFT_LIMIT", "lots")

	cfg := LoadConfig()
	assert.Equal(t, int64(500), cfg.OverdraftLimit)
}
