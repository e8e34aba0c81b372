package usecase

import (
	"errors"
	"fmt"

	"payler_gateway/internal/domain/entities"
)

var (
	ErrInvalidOrderID   = errors.New("invalid order_id")
	ErrGatewayDisabled  = errors.New("payler gateway disabled")
	ErrSessionNotFound  = errors.New("payler session not found for order")
	ErrMissingPageURL   = &entities.ProcessorRejectedError{Title: "missing payment page url"}
	ErrInvalidJSON      = fmt.Errorf("%w: invalid json format", entities.ErrMalformedNotification)
	ErrMissingOrderHash = fmt.Errorf("%w: order id not found", entities.ErrMalformedNotification)
	ErrMissingState     = fmt.Errorf("%w: state not found", entities.ErrMalformedNotification)
)
