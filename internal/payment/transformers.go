package payment

import (
	"strings"

	"github.com/shopspring/decimal"

	"paymentsvc/kit/mercadopago"
)

// ToOrderRequest builds the provider-facing order payload, computing per-item
// line totals from quantity and unit price.
func ToOrderRequest(req CreateRequest, externalReference, callbackURL string) mercadopago.OrderRequest {
	items := make([]mercadopago.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, mercadopago.OrderItem{
			Title:       it.Name,
			Description: it.Description,
			Category:    it.Category,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalAmount: it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity)),
		})
	}
	return mercadopago.OrderRequest{
		Title:             req.Title,
		Description:       req.Description,
		TotalAmount:       req.TotalAmount,
		ExternalReference: externalReference,
		NotificationURL:   callbackURL,
		Items:             items,
	}
}

// CallbackURL derives the provider callback target from the service's own
// public base URL.
func CallbackURL(publicBaseURL string) string {
	return strings.TrimRight(publicBaseURL, "/") + "/webhook/payment"
}

type QRCodeResponse struct {
	PaymentID         string `json:"payment_id"`
	TransactionID     string `json:"transaction_id"`
	QRCodeLink        string `json:"qr_code_link"`
	ExternalReference string `json:"external_reference"`
}

func ToQRCodeResponse(p *Payment) QRCodeResponse {
	return QRCodeResponse{
		PaymentID:         p.ID,
		TransactionID:     p.TransactionID,
		QRCodeLink:        p.QRCode,
		ExternalReference: p.ExternalReference,
	}
}
