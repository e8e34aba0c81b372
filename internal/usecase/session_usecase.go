package usecase

import (
	"context"
	"fmt"
	"strings"

	"payler_gateway/internal/domain/entities"
	"payler_gateway/internal/infrastructure/logger"
	"payler_gateway/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	sessionLifetime     = "200000"
	sessionPageTemplate = "test"
	sessionPageLang     = "en"

	customFieldOrderID    = "original_order_id"
	customFieldCustomerID = "original_customer_id"
)

// ISessionUseCase starts a hosted payment session for an order.
//
// Requested behavior:
//   - Persist fresh order/customer correlation identifiers before calling the processor.
//   - Persist the remote session id and hand back the payment page URL.
type ISessionUseCase interface {
	CreateSession(ctx context.Context, orderID string) (redirectURL string, err error)
}

type SessionUseCase struct {
	orders   interfaces.IOrderRepository
	gateway  interfaces.IPaymentGateway
	urls     interfaces.IOrderURLs
	settings interfaces.ISettingsStore
	ids      interfaces.IIDGenerator
	log      *zap.Logger
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(
	orders interfaces.IOrderRepository,
	gateway interfaces.IPaymentGateway,
	urls interfaces.IOrderURLs,
	settings interfaces.ISettingsStore,
	ids interfaces.IIDGenerator,
	log *zap.Logger,
) *SessionUseCase {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &SessionUseCase{orders: orders, gateway: gateway, urls: urls, settings: settings, ids: ids, log: log}
}

func (u *SessionUseCase) CreateSession(ctx context.Context, orderID string) (string, error) {
	orderID = strings.TrimSpace(orderID)
	log := logger.With(ctx, u.log).With(zap.String("order_id", orderID))
	log.Info("create session start")
	if orderID == "" {
		log.Warn("invalid order_id (empty)")
		return "", ErrInvalidOrderID
	}

	settings, err := u.settings.Load(ctx)
	if err != nil {
		log.Error("failed loading settings", zap.Error(err))
		return "", err
	}
	if !settings.Enabled {
		log.Warn("gateway disabled")
		return "", ErrGatewayDisabled
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		log.Error("failed loading order", zap.Error(err))
		return "", err
	}
	if order.ID == "" {
		log.Warn("order not found")
		return "", entities.ErrOrderNotFound
	}

	hashOrderID, err := u.ids.NewID()
	if err != nil {
		return "", fmt.Errorf("generate order correlation id: %w", err)
	}
	hashCustomerID, err := u.ids.NewID()
	if err != nil {
		return "", fmt.Errorf("generate customer correlation id: %w", err)
	}

	// Both identifiers must be durable before the processor can call back with them.
	if err := u.orders.UpdateMetadata(ctx, order.ID, entities.MetaHashOrderID, hashOrderID); err != nil {
		log.Error("failed persisting order correlation id", zap.Error(err))
		return "", err
	}
	if err := u.orders.UpdateMetadata(ctx, order.ID, entities.MetaHashCustomerID, hashCustomerID); err != nil {
		log.Error("failed persisting customer correlation id", zap.Error(err))
		return "", err
	}
	log.Info("correlation ids persisted", zap.String("hash_order_id", hashOrderID))

	req := u.buildRequest(order, settings.Currency, hashOrderID, hashCustomerID)
	account := settings.Account()

	log.Info("calling payler create session", zap.Bool("test_mode", account.TestMode), zap.Int64("amount", req.AmountMinor), zap.String("currency", req.Currency))
	res, err := u.gateway.CreateSession(ctx, account, req)
	if err != nil {
		log.Error("payler create session failed", zap.Error(err))
		return "", err
	}

	if res.SessionID != "" {
		if err := u.orders.UpdateMetadata(ctx, order.ID, entities.MetaSessionOrderID, res.SessionID); err != nil {
			log.Error("failed persisting session id", zap.String("session_id", res.SessionID), zap.Error(err))
			return "", err
		}
	} else {
		log.Warn("payler returned no session id")
	}

	if res.PaymentPageURL == "" {
		log.Warn("payler returned no payment page url", zap.String("session_id", res.SessionID))
		return "", ErrMissingPageURL
	}

	log.Info("create session success", zap.String("session_id", res.SessionID))
	return res.PaymentPageURL, nil
}

func (u *SessionUseCase) buildRequest(order entities.Order, currency, hashOrderID, hashCustomerID string) entities.SessionRequest {
	return entities.SessionRequest{
		Lifetime: sessionLifetime,
		ReturnURLs: entities.ReturnURLs{
			Default: "/",
			Success: u.urls.ReceivedURL(order),
			Failure: u.urls.CheckoutURL(),
		},
		NotificationURL: u.urls.NotificationURL(),
		PageTemplate:    sessionPageTemplate,
		PageLang:        sessionPageLang,
		OrderID:         hashOrderID,
		Currency:        currency,
		AmountMinor:     entities.MinorUnits(order.Total),
		Customer: entities.SessionCustomer{
			ID:      hashCustomerID,
			Billing: order.Billing,
		},
		CustomFields: map[string]string{
			customFieldOrderID:    order.ID,
			customFieldCustomerID: order.CustomerID,
		},
	}
}
