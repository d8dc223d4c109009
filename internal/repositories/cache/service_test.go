package cache

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"moneybox/internal/models"
)

func TestAccountSerialization(t *testing.T) {
	t.Run("round trip preserves the owner email", func(t *testing.T) {
		account := &models.Account{
			ID:        uuid.New(),
			UserID:    7,
			User:      models.User{Email: "alice@example.com"},
			Balance:   decimal.NewFromInt(120),
			Withdrawn: decimal.NewFromInt(30),
			PaidIn:    decimal.NewFromInt(150),
		}

		data, err := marshalAccount(account)
		assert.NoError(t, err)

		restored, err := unmarshalAccount(data)
		assert.NoError(t, err)
		assert.Equal(t, account.ID, restored.ID)
		assert.Equal(t, account.UserID, restored.UserID)
		assert.Equal(t, "alice@example.com", restored.User.Email)
		assert.True(t, account.Balance.Equal(restored.Balance))
		assert.True(t, account.Withdrawn.Equal(restored.Withdrawn))
		assert.True(t, account.PaidIn.Equal(restored.PaidIn))
	})

	t.Run("rejects a payload without an account", func(t *testing.T) {
		_, err := unmarshalAccount([]byte(`{"owner_email":"alice@example.com"}`))
		assert.Error(t, err)
	})

	t.Run("rejects malformed data", func(t *testing.T) {
		_, err := unmarshalAccount([]byte("not json"))
		assert.Error(t, err)
	})
}

func TestCacheKeys(t *testing.T) {
	id := uuid.MustParse("5c0d49a2-7f3e-4a4d-9b0a-2f1c8d6e4b21")

	assert.Equal(t, "account:5c0d49a2-7f3e-4a4d-9b0a-2f1c8d6e4b21", accountKey(id))
	assert.Equal(t, "account:user:7", userAccountKey(7))
}
