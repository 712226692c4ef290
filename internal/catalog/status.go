package catalog

// StatusName is the canonical internal payment status vocabulary. Provider
// vocabularies are projected onto this set and never stored verbatim.
type StatusName string

const (
	StatusPending           StatusName = "payment_pending"
	StatusCompleted         StatusName = "payment_completed"
	StatusFailed            StatusName = "payment_failed"
	StatusCancelled         StatusName = "payment_cancelled"
	StatusRefunded          StatusName = "payment_refunded"
	StatusPartiallyRefunded StatusName = "payment_partially_refunded"
)

func (s StatusName) String() string { return string(s) }

func (s StatusName) Description() string {
	switch s {
	case StatusPending:
		return "The payment is pending."
	case StatusCompleted:
		return "The payment has been completed."
	case StatusFailed:
		return "The payment has failed."
	case StatusCancelled:
		return "The payment has been cancelled."
	case StatusRefunded:
		return "The payment has been refunded."
	case StatusPartiallyRefunded:
		return "The payment has been partially refunded."
	}
	return ""
}

func AllStatusNames() []StatusName {
	return []StatusName{
		StatusPending,
		StatusCompleted,
		StatusFailed,
		StatusCancelled,
		StatusRefunded,
		StatusPartiallyRefunded,
	}
}
