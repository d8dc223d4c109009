package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"moneybox/internal/models"
)

// CacheService wraps the redis client with JSON serialization and a default
// TTL. Accounts are stored under both their own ID and their owner's user
// ID, and both entries are invalidated after every balance mutation, so a
// hit always reflects the last persisted state.
type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// cachedAccount is the stored form of an account. The gorm User association
// is excluded from the account's JSON form, so the owner email the
// notification paths rely on is carried alongside it.
type cachedAccount struct {
	Account    *models.Account `json:"account"`
	OwnerEmail string          `json:"owner_email"`
}

func marshalAccount(account *models.Account) ([]byte, error) {
	data, err := json.Marshal(cachedAccount{
		Account:    account,
		OwnerEmail: account.User.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cached account: %w", err)
	}
	return data, nil
}

func unmarshalAccount(data []byte) (*models.Account, error) {
	var cached cachedAccount
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached account: %w", err)
	}
	if cached.Account == nil {
		return nil, errors.New("cached account payload is empty")
	}
	cached.Account.User.Email = cached.OwnerEmail
	return cached.Account, nil
}

func (s *CacheService) GetAccount(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	return s.getAccount(ctx, accountKey(id))
}

func (s *CacheService) GetAccountByUserID(ctx context.Context, userID uint) (*models.Account, error) {
	return s.getAccount(ctx, userAccountKey(userID))
}

func (s *CacheService) getAccount(ctx context.Context, key string) (*models.Account, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, err
	}
	return unmarshalAccount(data)
}

func (s *CacheService) SetAccount(ctx context.Context, account *models.Account) error {
	data, err := marshalAccount(account)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, accountKey(account.ID), data, s.ttl).Err(); err != nil {
		return err
	}
	return s.client.Set(ctx, userAccountKey(account.UserID), data, s.ttl).Err()
}

func (s *CacheService) InvalidateAccount(ctx context.Context, account *models.Account) error {
	return s.client.Del(ctx, accountKey(account.ID), userAccountKey(account.UserID)).Err()
}

func (s *CacheService) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

func (s *CacheService) Close() error {
	return s.client.Close()
}

func accountKey(id uuid.UUID) string {
	return fmt.Sprintf("account:%s", id)
}

func userAccountKey(userID uint) string {
	return fmt.Sprintf("account:user:%d", userID)
}
