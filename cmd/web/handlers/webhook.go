package handlers

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"paymentsvc/internal/webhook"
	"paymentsvc/kit/db"
	"paymentsvc/kit/observability"
)

type WebhookServiceContract interface {
	Handle(ctx context.Context, payload map[string]any) (webhook.Result, error)
}

type Webhook struct {
	webhooks WebhookServiceContract
	logger   *observability.Logger
}

func NewWebhook(webhooks WebhookServiceContract, logger *observability.Logger) *Webhook {
	return &Webhook{webhooks: webhooks, logger: logger}
}

// Handle acknowledges provider callbacks. Processing-level rejections still
// answer 200 so the provider does not retry-storm us; 400 is reserved for
// bodies that are not JSON at all.
func (h *Webhook) Handle(c *fiber.Ctx) error {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		return c.JSON(fiber.Map{"message": "no content"})
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid json"})
	}

	res, err := h.webhooks.Handle(c.UserContext(), payload)
	if err != nil {
		h.logger.Error("webhook processing failed", "error", err)
		if db.IsInvalid(err) {
			return c.JSON(fiber.Map{"message": "webhook received"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	msg := res.Message
	if msg == "" {
		msg = "webhook processed"
	}
	return c.JSON(fiber.Map{"message": msg})
}
