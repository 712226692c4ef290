package mercadopago

import (
	"errors"
	"fmt"

	"paymentsvc/internal/catalog"
)

var ErrUnmappedStatus = errors.New("mercadopago: unmapped payment status")

// statusTable projects the provider vocabulary onto the internal taxonomy.
// Several external codes alias to the same internal status on purpose.
var statusTable = map[string]catalog.StatusName{
	"approved":           catalog.StatusCompleted,
	"closed":             catalog.StatusCompleted,
	"opened":             catalog.StatusPending,
	"pending":            catalog.StatusPending,
	"cancelled":          catalog.StatusCancelled,
	"expired":            catalog.StatusCancelled,
	"refunded":           catalog.StatusRefunded,
	"partially_refunded": catalog.StatusPartiallyRefunded,
}

// StatusMap translates a provider status code. Unknown codes fail, they are
// never silently defaulted.
func (g *Gateway) StatusMap(external string) (catalog.StatusName, error) {
	mapped, ok := statusTable[external]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnmappedStatus, external)
	}
	return mapped, nil
}
