package money

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"moneybox/internal/models"
	"moneybox/internal/repositories"
	"moneybox/internal/services/notification"
)

type service struct {
	repo     repositories.AccountRepository
	cache    AccountCache
	notifier notification.Service
}

// NewService creates a new money service.
func NewService(
	repo repositories.AccountRepository,
	cache AccountCache,
	notifier notification.Service,
) Service {
	if repo == nil {
		panic("repo is required")
	}
	if cache == nil {
		panic("cache is required")
	}
	if notifier == nil {
		panic("notifier is required")
	}

	return &service{
		repo:     repo,
		cache:    cache,
		notifier: notifier,
	}
}

func (s *service) GetAccount(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	if account, err := s.cache.GetAccount(ctx, id); err == nil {
		return account, nil
	}

	account, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	s.cache.SetAccount(ctx, account)
	return account, nil
}

func (s *service) GetAccountByUserID(ctx context.Context, userID uint) (*models.Account, error) {
	if account, err := s.cache.GetAccountByUserID(ctx, userID); err == nil {
		return account, nil
	}

	account, err := s.repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	s.cache.SetAccount(ctx, account)
	return account, nil
}

// Withdraw removes amount from the account. The account is loaded fresh,
// validated, mutated and persisted exactly once; nothing is written when
// validation fails.
func (s *service) Withdraw(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal) error {
	from, err := s.repo.GetByID(accountID)
	if err != nil {
		return err
	}

	if err := from.CheckInsufficientFunds(amount); err != nil {
		return err
	}

	if from.CheckLowFunds(amount) {
		s.notifyFundsLow(ctx, from)
	}

	from.Withdraw(amount)

	if err := s.repo.Update(from); err != nil {
		return err
	}

	s.cache.InvalidateAccount(ctx, from)
	return nil
}

// Transfer moves amount between two accounts. Both sides are validated
// before either account is mutated; the two updates are independent writes
// with no cross-account transaction.
func (s *service) Transfer(ctx context.Context, fromAccountID, toAccountID uuid.UUID, amount decimal.Decimal) error {
	from, err := s.repo.GetByID(fromAccountID)
	if err != nil {
		return err
	}
	to, err := s.repo.GetByID(toAccountID)
	if err != nil {
		return err
	}

	if err := from.CheckInsufficientFunds(amount); err != nil {
		return err
	}
	if from.CheckLowFunds(amount) {
		s.notifyFundsLow(ctx, from)
	}

	if err := to.CheckPayInLimitReached(amount); err != nil {
		return err
	}
	if to.CheckApproachingPayInLimit(amount) {
		s.notifyApproachingPayInLimit(ctx, to)
	}

	from.Withdraw(amount)
	to.PayIn(amount)

	if err := s.repo.Update(from); err != nil {
		return err
	}
	if err := s.repo.Update(to); err != nil {
		return err
	}

	s.cache.InvalidateAccount(ctx, from)
	s.cache.InvalidateAccount(ctx, to)
	return nil
}

// Notifications are best-effort: a delivery failure is logged and never
// aborts a movement that already passed validation.

func (s *service) notifyFundsLow(ctx context.Context, account *models.Account) {
	if err := s.notifier.NotifyFundsLow(ctx, account.User.Email); err != nil {
		log.Printf("funds low notification failed for account %s: %v", account.ID, err)
	}
}

func (s *service) notifyApproachingPayInLimit(ctx context.Context, account *models.Account) {
	if err := s.notifier.NotifyApproachingPayInLimit(ctx, account.User.Email); err != nil {
		log.Printf("pay in limit notification failed for account %s: %v", account.ID, err)
	}
}
