package handlers

import (
	"github.com/gofiber/fiber/v2"

	"moneybox/internal/models"
	"moneybox/internal/services/auth"
	"moneybox/internal/utils"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input models.CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}

	user, err := h.authService.Register(&input)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	return utils.Respond(c, fiber.StatusCreated, fiber.Map{
		"user": user,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}

	user, token, err := h.authService.Login(input.Email, input.Password)
	if err != nil {
		return utils.Unauthorized(c, err.Error())
	}

	return utils.Success(c, fiber.Map{
		"user":  user,
		"token": token,
	})
}
