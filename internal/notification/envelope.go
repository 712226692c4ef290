package notification

import "time"

// EventPaymentCompleted is the only event the service emits to clients today.
const EventPaymentCompleted = "payment.completed"

type Envelope struct {
	Event             string    `json:"event"`
	PaymentID         string    `json:"payment_id"`
	ExternalReference string    `json:"external_reference"`
	Amount            float64   `json:"amount"`
	Status            string    `json:"status"`
	TransactionID     string    `json:"transaction_id"`
	Timestamp         time.Time `json:"timestamp"`
}

func NewEnvelope(paymentID, externalReference string, amount float64, status, transactionID string, at time.Time) Envelope {
	return Envelope{
		Event:             EventPaymentCompleted,
		PaymentID:         paymentID,
		ExternalReference: externalReference,
		Amount:            amount,
		Status:            status,
		TransactionID:     transactionID,
		Timestamp:         at.UTC(),
	}
}
