package money

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"moneybox/internal/models"
)

// Service defines the money movement operations.
type Service interface {
	// Account lookups (cache-first)
	GetAccount(ctx context.Context, id uuid.UUID) (*models.Account, error)
	GetAccountByUserID(ctx context.Context, userID uint) (*models.Account, error)

	// Money movement
	Withdraw(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal) error
	Transfer(ctx context.Context, fromAccountID, toAccountID uuid.UUID, amount decimal.Decimal) error
}

// AccountCache is the read cache for account lookups. Balance mutations
// always load fresh from the repository and invalidate the cached entries
// afterwards.
type AccountCache interface {
	GetAccount(ctx context.Context, id uuid.UUID) (*models.Account, error)
	GetAccountByUserID(ctx context.Context, userID uint) (*models.Account, error)
	SetAccount(ctx context.Context, account *models.Account) error
	InvalidateAccount(ctx context.Context, account *models.Account) error
}
