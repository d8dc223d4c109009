// Package validation holds request-level input checks. Domain invariants
// (balance, pay-in limit) live on the Account entity, not here.
package validation

import (
	"regexp"

	"github.com/shopspring/decimal"

	"moneybox/internal/errors"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

var specialChars = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// HasSpecialChar checks if a string contains at least one special character.
func HasSpecialChar(s string) bool {
	return specialChars.MatchString(s)
}

// ValidatePassword enforces the minimum password policy.
func ValidatePassword(s string) error {
	if len(s) < 8 || !HasSpecialChar(s) {
		return &errors.DomainError{
			Code:    "WEAK_PASSWORD",
			Message: "password must be at least 8 characters and contain special characters",
		}
	}
	return nil
}

// ValidateAmount rejects zero and negative amounts before they reach the
// money service.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errors.ErrInvalidAmount
	}
	return nil
}
