package interfaces

import (
	"context"

	"payler_gateway/internal/domain/entities"
)

// IPaymentGateway abstracts the Payler hosted-session API.
//
// Transport failures, timeouts and unreadable bodies surface as
// entities.ErrProcessorUnavailable; an error object returned by the processor
// surfaces as *entities.ProcessorRejectedError.
type IPaymentGateway interface {
	CreateSession(ctx context.Context, account entities.ProcessorAccount, req entities.SessionRequest) (entities.SessionResult, error)
	RefundSession(ctx context.Context, account entities.ProcessorAccount, sessionID string, amountMinor int64) (entities.RefundResult, error)
}
