package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 10.50", FormatBRL(1050))
	assert.Equal(t, "R$ 0.00", FormatBRL(0))
	assert.Equal(t, "R$ 0.07", FormatBRL(7))
	assert.Equal(t, "R$ 1000.00", FormatBRL(100000))
	assert.Equal(t, "-R$ 3.25", FormatBRL(-325))
}
