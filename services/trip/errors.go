package trip

import "fmt"

// BookingError carries a machine-readable code alongside the message.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrNoActiveBooking signals a cancellation attempt for a domain with no
// active booking. Reported to the caller, never fatal.
func ErrNoActiveBooking(domain string) error {
	return &BookingError{
		Code:    "notFound",
		Message: fmt.Sprintf("no active %s booking found to cancel", domain),
	}
}
