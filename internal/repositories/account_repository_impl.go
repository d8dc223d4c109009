package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"moneybox/internal/models"
)

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (r *accountRepository) Create(account *models.Account) error {
	result := r.db.Create(account)
	if result.Error != nil {
		return fmt.Errorf("failed to create account: %w", result.Error)
	}
	return nil
}

func (r *accountRepository) GetByID(id uuid.UUID) (*models.Account, error) {
	var account models.Account
	if err := r.db.Preload("User").First(&account, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

func (r *accountRepository) GetByUserID(userID uint) (*models.Account, error) {
	var account models.Account
	if err := r.db.Preload("User").Where("user_id = ?", userID).First(&account).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

func (r *accountRepository) Update(account *models.Account) error {
	result := r.db.Save(account)
	if result.Error != nil {
		return fmt.Errorf("failed to update account: %w", result.Error)
	}
	return nil
}
