package entities

import (
	"errors"
	"fmt"
)

// Error kinds shared by the use cases and the adapters that produce them.
var (
	ErrProcessorUnavailable  = errors.New("payment processor unavailable")
	ErrProcessorRejected     = errors.New("payment processor rejected the request")
	ErrOrderNotFound         = errors.New("order not found")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrMalformedNotification = errors.New("malformed notification")
)

// ProcessorRejectedError carries the error title returned by the processor.
// errors.Is(err, ErrProcessorRejected) holds for it.
type ProcessorRejectedError struct {
	Title string
}

func (e *ProcessorRejectedError) Error() string {
	return fmt.Sprintf("Payler API Error: %s", e.Title)
}

func (e *ProcessorRejectedError) Is(target error) bool {
	return target == ErrProcessorRejected
}
