package mercadopago

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var ErrBadPayload = errors.New("mercadopago: invalid webhook payload")
var ErrProviderRequest = errors.New("mercadopago: provider request failed")

type Config struct {
	BaseURL     string
	AccessToken string
	UserID      string
	PosID       string
	HTTPClient  *http.Client
}

type Gateway struct {
	cfg Config
}

func NewGateway(cfg Config) *Gateway {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.mercadopago.com"
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Gateway{cfg: cfg}
}

type OrderItem struct {
	Title       string
	Description string
	Category    string
	Quantity    int64
	UnitPrice   decimal.Decimal
	TotalAmount decimal.Decimal
}

type OrderRequest struct {
	Title             string
	Description       string
	TotalAmount       decimal.Decimal
	ExternalReference string
	NotificationURL   string
	Items             []OrderItem
}

type OrderResponse struct {
	QRData         string
	InStoreOrderID string
	Raw            map[string]any
}

// PaymentDetails is the normalized view of a provider payment lookup.
type PaymentDetails struct {
	ExternalReference string
	Status            string
	Method            string
	Amount            float64
	TransactionID     string
	PaymentDate       string
	LastModified      string
}

// VerifyResult distinguishes informational callbacks, which carry no
// payment-state change, from actionable ones.
type VerifyResult struct {
	Passthrough bool
	Message     string
	Details     *PaymentDetails
}

type wireOrderItem struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Quantity    int64   `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	UnitMeasure string  `json:"unit_measure"`
	TotalAmount float64 `json:"total_amount"`
}

type wireOrder struct {
	ExternalReference string          `json:"external_reference"`
	NotificationURL   string          `json:"notification_url"`
	TotalAmount       float64         `json:"total_amount"`
	Items             []wireOrderItem `json:"items"`
	Title             string          `json:"title"`
	Description       string          `json:"description"`
}

// InitiatePayment creates a QR order on the in-store endpoint. Any status
// other than 201 fails with ErrProviderRequest carrying the raw body.
func (g *Gateway) InitiatePayment(ctx context.Context, req OrderRequest) (*OrderResponse, error) {
	items := make([]wireOrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, wireOrderItem{
			Title:       it.Title,
			Description: it.Description,
			Category:    it.Category,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice.InexactFloat64(),
			UnitMeasure: "unit",
			TotalAmount: it.TotalAmount.InexactFloat64(),
		})
	}
	body, err := json.Marshal(wireOrder{
		ExternalReference: req.ExternalReference,
		NotificationURL:   req.NotificationURL,
		TotalAmount:       req.TotalAmount.InexactFloat64(),
		Items:             items,
		Title:             req.Title,
		Description:       req.Description,
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/instore/orders/qr/seller/collectors/%s/pos/%s/qrs", g.cfg.BaseURL, g.cfg.UserID, g.cfg.PosID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	g.setHeaders(httpReq)

	resp, err := g.cfg.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, errors.Join(ErrProviderRequest, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("%w: create order returned %d: %s", ErrProviderRequest, resp.StatusCode, raw)
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%w: decode create order response: %v", ErrProviderRequest, err)
	}
	return &OrderResponse{
		QRData:         stringField(data, "qr_data"),
		InStoreOrderID: stringField(data, "in_store_order_id"),
		Raw:            data,
	}, nil
}

// VerifyPayment inspects a raw webhook payload. Creation notices pass through
// untouched; anything else resolves the resource to the canonical payments or
// merchant-order endpoint and fetches the full payment details.
func (g *Gateway) VerifyPayment(ctx context.Context, payload map[string]any) (VerifyResult, error) {
	if action := stringField(payload, "action"); action == "payment.created" {
		return VerifyResult{Passthrough: true, Message: action}, nil
	}

	resource := stringField(payload, "resource")
	if strings.TrimSpace(resource) == "" {
		return VerifyResult{}, fmt.Errorf("%w: resource is missing", ErrBadPayload)
	}

	if !strings.HasPrefix(resource, "https://api.mercadolibre.com") {
		parts := strings.Split(resource, "/")
		resourceID := parts[len(parts)-1]
		if strings.Contains(stringField(payload, "topic"), "merchant_order") {
			resource = fmt.Sprintf("%s/merchant_orders/%s", g.cfg.BaseURL, resourceID)
		} else {
			resource = fmt.Sprintf("%s/v1/payments/%s", g.cfg.BaseURL, resourceID)
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, resource, nil)
	if err != nil {
		return VerifyResult{}, err
	}
	g.setHeaders(httpReq)

	resp, err := g.cfg.HTTPClient.Do(httpReq)
	if err != nil {
		return VerifyResult{}, errors.Join(ErrProviderRequest, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return VerifyResult{}, fmt.Errorf("%w: fetch payment returned %d: %s", ErrProviderRequest, resp.StatusCode, raw)
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return VerifyResult{}, fmt.Errorf("%w: decode payment details: %v", ErrBadPayload, err)
	}
	if len(data) == 0 {
		return VerifyResult{}, fmt.Errorf("%w: payment details are empty", ErrBadPayload)
	}

	return VerifyResult{
		Details: &PaymentDetails{
			ExternalReference: stringField(data, "external_reference"),
			Status:            stringField(data, "status"),
			Method:            stringField(data, "payment_method_id"),
			Amount:            floatField(data, "transaction_amount"),
			TransactionID:     stringField(data, "in_store_order_id"),
			PaymentDate:       stringField(data, "date_created"),
			LastModified:      stringField(data, "date_last_updated"),
		},
	}, nil
}

func (g *Gateway) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+g.cfg.AccessToken)
	req.Header.Set("Content-Type", "application/json")
}

func stringField(m map[string]any, key string) string {
	v, _ := m[key].(string)
	return v
}

func floatField(m map[string]any, key string) float64 {
	v, _ := m[key].(float64)
	return v
}
