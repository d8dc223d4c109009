package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"moneybox/internal/errors"
)

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("alice@example.com"))
	assert.False(t, ValidEmail("alice@example"))
	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail(""))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("hunter2!hunter2"))
	assert.Error(t, ValidatePassword("short!"))
	assert.Error(t, ValidatePassword("nospecialchars1"))
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, ValidateAmount(decimal.NewFromInt(100)))
	assert.ErrorIs(t, ValidateAmount(decimal.Zero), errors.ErrInvalidAmount)
	assert.ErrorIs(t, ValidateAmount(decimal.NewFromInt(-5)), errors.ErrInvalidAmount)
}
