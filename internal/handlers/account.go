package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerrors "moneybox/internal/errors"
	"moneybox/internal/models"
	"moneybox/internal/repositories"
	"moneybox/internal/services/money"
	"moneybox/internal/utils"
	"moneybox/internal/validation"
)

type AccountHandler struct {
	moneyService money.Service
}

func NewAccountHandler(moneyService money.Service) *AccountHandler {
	return &AccountHandler{
		moneyService: moneyService,
	}
}

func extractUserClaims(c *fiber.Ctx) (*models.UserClaims, error) {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok || claims == nil {
		return nil, fiber.ErrUnauthorized
	}
	return claims, nil
}

// GetAccount returns the authenticated user's account.
func (h *AccountHandler) GetAccount(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	account, err := h.moneyService.GetAccountByUserID(c.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return utils.NotFound(c, "Account not found")
		}
		return utils.InternalError(c, "Failed to get account")
	}

	return utils.Success(c, fiber.Map{
		"account": account,
	})
}

// Withdraw removes funds from the authenticated user's account.
func (h *AccountHandler) Withdraw(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		Amount decimal.Decimal `json:"amount"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}
	if err := validation.ValidateAmount(input.Amount); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	account, err := h.moneyService.GetAccountByUserID(c.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return utils.NotFound(c, "Account not found")
		}
		return utils.InternalError(c, "Failed to get account")
	}

	if err := h.moneyService.Withdraw(c.Context(), account.ID, input.Amount); err != nil {
		return respondMovementError(c, err)
	}

	return utils.Success(c, fiber.Map{
		"message": "Withdrawal successful",
		"amount":  input.Amount,
	})
}

// Transfer moves funds from the authenticated user's account to another.
func (h *AccountHandler) Transfer(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		ToAccountID string          `json:"to_account_id"`
		Amount      decimal.Decimal `json:"amount"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}
	if err := validation.ValidateAmount(input.Amount); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	toAccountID, err := uuid.Parse(input.ToAccountID)
	if err != nil {
		return utils.BadRequest(c, "Invalid destination account ID")
	}

	account, err := h.moneyService.GetAccountByUserID(c.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return utils.NotFound(c, "Account not found")
		}
		return utils.InternalError(c, "Failed to get account")
	}

	if account.ID == toAccountID {
		return utils.BadRequest(c, "Cannot transfer to own account")
	}

	if err := h.moneyService.Transfer(c.Context(), account.ID, toAccountID, input.Amount); err != nil {
		return respondMovementError(c, err)
	}

	return utils.Success(c, fiber.Map{
		"message": "Transfer successful",
		"amount":  input.Amount,
	})
}

func respondMovementError(c *fiber.Ctx, err error) error {
	var domainErr *domainerrors.DomainError
	switch {
	case errors.Is(err, repositories.ErrAccountNotFound):
		return utils.NotFound(c, "Account not found")
	case errors.As(err, &domainErr):
		return utils.UnprocessableEntity(c, domainErr.Message)
	default:
		return utils.InternalError(c, "Operation failed")
	}
}
