package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"payler_gateway/internal/domain/entities"
	"payler_gateway/internal/infrastructure/logger"
	"payler_gateway/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// IRefundUseCase refunds part or all of a paid order through its session.
type IRefundUseCase interface {
	Refund(ctx context.Context, orderID string, amount float64, reason string) error
}

type RefundUseCase struct {
	orders   interfaces.IOrderRepository
	gateway  interfaces.IPaymentGateway
	settings interfaces.ISettingsStore
	log      *zap.Logger
}

var _ IRefundUseCase = (*RefundUseCase)(nil)

func NewRefundUseCase(orders interfaces.IOrderRepository, gateway interfaces.IPaymentGateway, settings interfaces.ISettingsStore, log *zap.Logger) *RefundUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &RefundUseCase{orders: orders, gateway: gateway, settings: settings, log: log}
}

func (u *RefundUseCase) Refund(ctx context.Context, orderID string, amount float64, reason string) error {
	orderID = strings.TrimSpace(orderID)
	log := logger.With(ctx, u.log).With(zap.String("order_id", orderID), zap.Float64("amount", amount))
	log.Info("refund start")
	if orderID == "" {
		return ErrInvalidOrderID
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		log.Error("failed loading order", zap.Error(err))
		return err
	}
	if order.ID == "" {
		log.Warn("order not found")
		return entities.ErrOrderNotFound
	}

	amountMinor := entities.MinorUnits(amount)
	totalMinor := entities.MinorUnits(order.Total)
	if amountMinor <= 0 || amountMinor > totalMinor {
		log.Warn("refund amount out of range", zap.Int64("amount_minor", amountMinor), zap.Int64("total_minor", totalMinor))
		return entities.ErrInvalidAmount
	}

	sessionID, err := u.orders.GetMetadata(ctx, order.ID, entities.MetaSessionOrderID)
	if err != nil {
		log.Error("failed loading session id", zap.Error(err))
		return err
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		log.Warn("order has no payler session")
		return ErrSessionNotFound
	}
	log = log.With(zap.String("session_id", sessionID))

	settings, err := u.settings.Load(ctx)
	if err != nil {
		log.Error("failed loading settings", zap.Error(err))
		return err
	}

	log.Info("calling payler refund", zap.Int64("amount_minor", amountMinor))
	res, err := u.gateway.RefundSession(ctx, settings.Account(), sessionID, amountMinor)
	if err != nil {
		log.Error("payler refund failed", zap.Error(err))
		return err
	}

	switch entities.RefundStatus(strings.ToLower(string(res.Status))) {
	case entities.RefundStatusError:
		log.Warn("payler rejected refund", zap.String("title", res.ErrorTitle))
		return &entities.ProcessorRejectedError{Title: res.ErrorTitle}
	case entities.RefundStatusRefunded:
		note := fmt.Sprintf("Refunded %s via Payler. Reason: %s", formatAmount(amount, order.Currency), reason)
		if err := u.orders.AddNote(ctx, order.ID, note); err != nil {
			// Payler already accepted the refund.
			log.Warn("failed adding refund note", zap.Error(err))
		}
		log.Info("refund success")
	default:
		log.Warn("payler refund status ambiguous; treating as success", zap.String("status", string(res.Status)))
	}
	return nil
}

func formatAmount(amount float64, currency string) string {
	s := strconv.FormatFloat(amount, 'f', 2, 64)
	if currency == "" {
		return s
	}
	return s + " " + currency
}
