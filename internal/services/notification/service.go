// Package notification delivers account warnings to owners. The core only
// depends on the Service interface; the default implementation logs, and a
// real email/SMS transport can be dropped in behind it.
package notification

import (
	"context"
	"log"
)

// Service sends threshold warnings to account owners.
type Service interface {
	NotifyFundsLow(ctx context.Context, email string) error
	NotifyApproachingPayInLimit(ctx context.Context, email string) error
}

type logService struct{}

// NewService creates a log-backed notification service.
func NewService() Service { return &logService{} }

func (s *logService) NotifyFundsLow(ctx context.Context, email string) error {
	log.Printf("Notify %s: account funds are running low", email)
	return nil
}

func (s *logService) NotifyApproachingPayInLimit(ctx context.Context, email string) error {
	log.Printf("Notify %s: account is approaching its pay in limit", email)
	return nil
}
