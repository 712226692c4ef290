package payment

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInvalidRequest = errors.New("payment: invalid create request")

type ItemRequest struct {
	Name        string
	Description string
	Category    string
	Quantity    int64
	UnitPrice   decimal.Decimal
}

type CustomerRequest struct {
	Name  string
	Email string
}

type CreateRequest struct {
	Title           string
	Description     string
	Method          string
	TotalAmount     decimal.Decimal
	Currency        string
	NotificationURL string
	Items           []ItemRequest
	Customer        CustomerRequest
}

func ValidateCreateRequest(r CreateRequest) error {
	if r.Method == "" || !r.TotalAmount.IsPositive() {
		return ErrInvalidRequest
	}
	for _, it := range r.Items {
		if it.Name == "" || it.Quantity <= 0 || it.UnitPrice.IsNegative() {
			return ErrInvalidRequest
		}
	}
	return nil
}
