package repositories

import (
	"errors"

	"github.com/google/uuid"

	"moneybox/internal/models"
)

var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the persistence operations the money service
// needs. Every orchestration is a fresh load-mutate-save cycle; the
// repository never caches across calls.
type AccountRepository interface {
	Create(account *models.Account) error
	GetByID(id uuid.UUID) (*models.Account, error)
	GetByUserID(userID uint) (*models.Account, error)
	Update(account *models.Account) error
}
