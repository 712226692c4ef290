package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"paymentsvc/internal/payment"
	"paymentsvc/kit/db"
	"paymentsvc/kit/mercadopago"
	"paymentsvc/kit/observability"
)

type PaymentServiceContract interface {
	Create(ctx context.Context, req payment.CreateRequest) (*payment.Payment, error)
	GetByID(ctx context.Context, id string) (*payment.Payment, error)
	GetByTransactionID(ctx context.Context, transactionID string) (*payment.Payment, error)
}

type Payment struct {
	payments PaymentServiceContract
	logger   *observability.Logger
}

func NewPayment(payments PaymentServiceContract, logger *observability.Logger) *Payment {
	return &Payment{payments: payments, logger: logger}
}

type createPaymentItem struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Quantity    int64   `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type createPaymentCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type createPaymentReq struct {
	Title           string                `json:"title"`
	Description     string                `json:"description"`
	PaymentMethod   string                `json:"payment_method"`
	TotalAmount     float64               `json:"total_amount"`
	Currency        string                `json:"currency"`
	NotificationURL string                `json:"notification_url"`
	Items           []createPaymentItem   `json:"items"`
	Customer        createPaymentCustomer `json:"customer"`
}

func (h *Payment) Create(c *fiber.Ctx) error {
	var req createPaymentReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid json"})
	}

	items := make([]payment.ItemRequest, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, payment.ItemRequest{
			Name:        it.Name,
			Description: it.Description,
			Category:    it.Category,
			Quantity:    it.Quantity,
			UnitPrice:   decimal.NewFromFloat(it.UnitPrice),
		})
	}

	p, err := h.payments.Create(c.UserContext(), payment.CreateRequest{
		Title:           req.Title,
		Description:     req.Description,
		Method:          req.PaymentMethod,
		TotalAmount:     decimal.NewFromFloat(req.TotalAmount),
		Currency:        req.Currency,
		NotificationURL: req.NotificationURL,
		Items:           items,
		Customer:        payment.CustomerRequest{Name: req.Customer.Name, Email: req.Customer.Email},
	})
	if err != nil {
		h.logger.Error("create payment request failed", "method", req.PaymentMethod, "error", err)
		switch {
		case db.IsInvalid(err):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case db.IsNotFound(err):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "payment method not found"})
		case errors.Is(err, mercadopago.ErrProviderRequest):
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "payment provider unavailable"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(payment.ToQRCodeResponse(p))
}

func (h *Payment) GetByID(c *fiber.Ctx) error {
	p, err := h.payments.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if db.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "payment not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	return c.JSON(payment.ToQRCodeResponse(p))
}

func (h *Payment) GetByTransactionID(c *fiber.Ctx) error {
	p, err := h.payments.GetByTransactionID(c.UserContext(), c.Params("transactionId"))
	if err != nil {
		if db.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "payment not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	return c.JSON(payment.ToQRCodeResponse(p))
}
