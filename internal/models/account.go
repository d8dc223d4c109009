package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"moneybox/internal/errors"
)

// PayInLimit is the maximum cumulative amount an account may ever receive.
var PayInLimit = decimal.NewFromInt(4000)

// LowFundsThreshold is the balance level below which the owner is warned,
// and the pay-in headroom level below which the approaching-limit warning
// fires.
var LowFundsThreshold = decimal.NewFromInt(500)

// Account holds a user's balance together with the running withdrawal and
// pay-in totals. Money values are exact decimals backed by numeric columns.
type Account struct {
	ID        uuid.UUID       `gorm:"type:uuid;primarykey" json:"id"`
	UserID    uint            `gorm:"uniqueIndex;not null" json:"user_id"`
	User      User            `gorm:"foreignKey:UserID" json:"-"`
	Balance   decimal.Decimal `gorm:"type:numeric(14,2);default:0" json:"balance"`
	Withdrawn decimal.Decimal `gorm:"type:numeric(14,2);default:0" json:"withdrawn"`
	PaidIn    decimal.Decimal `gorm:"type:numeric(14,2);default:0" json:"paid_in"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// CheckInsufficientFunds rejects a withdrawal that would drive the balance
// below zero. It never mutates the account.
func (a *Account) CheckInsufficientFunds(amount decimal.Decimal) error {
	if a.Balance.Sub(amount).IsNegative() {
		return errors.ErrInsufficientFunds
	}
	return nil
}

// CheckPayInLimitReached rejects a deposit that would push the cumulative
// pay-in total past PayInLimit. It never mutates the account.
func (a *Account) CheckPayInLimitReached(amount decimal.Decimal) error {
	if a.PaidIn.Add(amount).GreaterThan(PayInLimit) {
		return errors.ErrPayInLimitReached
	}
	return nil
}

// CheckLowFunds reports whether withdrawing amount would leave the balance
// below LowFundsThreshold.
func (a *Account) CheckLowFunds(amount decimal.Decimal) bool {
	return a.Balance.Sub(amount).LessThan(LowFundsThreshold)
}

// CheckApproachingPayInLimit reports whether receiving amount would leave
// less than LowFundsThreshold of pay-in headroom.
func (a *Account) CheckApproachingPayInLimit(amount decimal.Decimal) bool {
	return PayInLimit.Sub(a.PaidIn.Add(amount)).LessThan(LowFundsThreshold)
}

// Withdraw removes amount from the balance and records it in the withdrawn
// total. Callers must have validated sufficiency first.
func (a *Account) Withdraw(amount decimal.Decimal) {
	a.Balance = a.Balance.Sub(amount)
	a.Withdrawn = a.Withdrawn.Sub(amount)
}

// PayIn adds amount to the balance and records it in the pay-in total.
// Callers must have validated the pay-in limit first.
func (a *Account) PayIn(amount decimal.Decimal) {
	a.Balance = a.Balance.Add(amount)
	a.PaidIn = a.PaidIn.Add(amount)
}
