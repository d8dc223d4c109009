package handlers

import (
	"github.com/gofiber/fiber/v2"

	"moneybox/internal/repositories"
)

func HealthCheck(c *fiber.Ctx) error {
	redisStatus := "connected"
	if err := repositories.CacheService.HealthCheck(c.Context()); err != nil {
		redisStatus = "unavailable"
	}

	return c.JSON(fiber.Map{
		"status": "ok",
		"services": fiber.Map{
			"database": "connected",
			"redis":    redisStatus,
		},
	})
}
