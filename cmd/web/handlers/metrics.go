package handlers

import (
	"github.com/gofiber/fiber/v2"

	"paymentsvc/internal/metrics"
)

type Metrics struct {
	metrics *metrics.Service
}

func NewMetrics(svc *metrics.Service) *Metrics {
	return &Metrics{metrics: svc}
}

func (h *Metrics) Snapshot(c *fiber.Ctx) error {
	return c.JSON(h.metrics.Snapshot())
}
