package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/exporthub/exporthub-api/pkg/money"
)

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$19,800.00", money.Format(19800, "USD"))
	assert.Equal(t, "$0.00", money.Format(0, "USD"))
	assert.Equal(t, "$107,435.00", money.Format(107435, "USD"))
}

func TestFormatUnknownCodeFallsBack(t *testing.T) {
	got := money.Format(1500, "???")
	assert.Contains(t, got, "???")
	assert.Contains(t, got, "1,500.00")
}
