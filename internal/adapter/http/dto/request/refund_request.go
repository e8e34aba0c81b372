package request

import (
	"errors"
	"strings"
)

var ErrInvalidRefundAmount = errors.New("invalid refund amount")

// RefundRequest is the admin payload for a (partial) refund. Amount is in
// major currency units.
type RefundRequest struct {
	Amount float64 `json:"amount" binding:"required"`
	Reason string  `json:"reason"`
}

func (r RefundRequest) ResolveAmount() (float64, error) {
	if r.Amount <= 0 {
		return 0, ErrInvalidRefundAmount
	}
	return r.Amount, nil
}

func (r RefundRequest) ResolveReason() string {
	return strings.TrimSpace(r.Reason)
}
