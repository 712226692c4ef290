package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"paymentsvc/internal/health"
)

type HealthServiceContract interface {
	Check(ctx context.Context) health.Result
}

type Health struct {
	health HealthServiceContract
}

func NewHealth(svc HealthServiceContract) *Health {
	return &Health{health: svc}
}

func (h *Health) Check(c *fiber.Ctx) error {
	res := h.health.Check(c.UserContext())
	status := fiber.StatusOK
	state := "up"
	if !res.OK {
		status = fiber.StatusServiceUnavailable
		state = "down"
	}
	return c.Status(status).JSON(fiber.Map{"status": state, "checks": res.Checks})
}
