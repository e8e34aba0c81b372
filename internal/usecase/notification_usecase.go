package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"payler_gateway/internal/domain/entities"
	"payler_gateway/internal/infrastructure/logger"
	"payler_gateway/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	noteCompleted = "Payment completed via Payler."
	noteCancelled = "Payment cancelled via Payler."
	noteRefunded  = "Payment refunded via Payler."

	bodyInvalidJSON   = "Invalid JSON format"
	bodyOrderNotFound = "Order ID not found"
	bodyMissingState  = "State not found"
	bodyInternalError = "Unable to process notification"

	paymentEventType    = "payment.status_changed"
	eventPublishTimeout = 5 * time.Second
)

// NotificationResponse is what the callback endpoint writes back to the
// processor: a redirect on success, a plain-text body otherwise.
type NotificationResponse struct {
	StatusCode  int
	Body        string
	RedirectURL string
}

// NotificationMutation is the single status transition a valid callback asks for.
type NotificationMutation struct {
	OrderID string
	Status  entities.OrderStatus
	Note    string
}

type NotificationDecision struct {
	Mutation NotificationMutation
	Response NotificationResponse
}

// INotificationUseCase reconciles processor callbacks into order state.
type INotificationUseCase interface {
	HandleNotification(ctx context.Context, body []byte) NotificationResponse
}

type NotificationUseCase struct {
	orders    interfaces.IOrderRepository
	urls      interfaces.IOrderURLs
	guard     interfaces.INotificationGuard
	publisher interfaces.IEventPublisher
	log       *zap.Logger
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

// NewNotificationUseCase builds the reconciler. guard and publisher are optional.
func NewNotificationUseCase(
	orders interfaces.IOrderRepository,
	urls interfaces.IOrderURLs,
	guard interfaces.INotificationGuard,
	publisher interfaces.IEventPublisher,
	log *zap.Logger,
) *NotificationUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &NotificationUseCase{orders: orders, urls: urls, guard: guard, publisher: publisher, log: log}
}

// ParseNotification decodes a callback body. The body must be a JSON object;
// orderId may arrive as a string or a number and is trimmed. It does not
// check that the fields are present.
func ParseNotification(body []byte) (entities.Notification, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return entities.Notification{}, ErrInvalidJSON
	}

	var raw map[string]any
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return entities.Notification{}, ErrInvalidJSON
	}

	return entities.Notification{
		OrderID: strings.TrimSpace(scalarString(raw["orderId"])),
		State:   entities.NotificationState(strings.TrimSpace(scalarString(raw["state"]))),
	}, nil
}

func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}

// DecideNotification maps a callback state onto a status transition and the
// redirect for the shopper. Unknown states fail closed to failed.
func DecideNotification(order entities.Order, n entities.Notification, urls interfaces.IOrderURLs) NotificationDecision {
	var (
		status   entities.OrderStatus
		note     string
		redirect string
	)
	switch n.State {
	case entities.NotificationStateAuthorized:
		status, note, redirect = entities.OrderStatusProcessing, noteCompleted, urls.ReceivedURL(order)
	case entities.NotificationStateRefunded:
		status, note, redirect = entities.OrderStatusRefunded, noteRefunded, urls.CancelURL(order)
	case entities.NotificationStateCancelled:
		status, note, redirect = entities.OrderStatusFailed, noteCancelled, urls.CancelURL(order)
	default:
		status, note, redirect = entities.OrderStatusFailed, noteCancelled, urls.CancelURL(order)
	}

	return NotificationDecision{
		Mutation: NotificationMutation{OrderID: order.ID, Status: status, Note: note},
		Response: NotificationResponse{StatusCode: http.StatusFound, RedirectURL: redirect},
	}
}

// ApplyMutation moves the order to the mutation's status. It writes nothing
// when the order already holds that status.
func (u *NotificationUseCase) ApplyMutation(ctx context.Context, current entities.Order, m NotificationMutation) (bool, error) {
	if current.Status == m.Status {
		return false, nil
	}
	return u.orders.SetStatus(ctx, m.OrderID, m.Status, m.Note)
}

func (u *NotificationUseCase) HandleNotification(ctx context.Context, body []byte) NotificationResponse {
	log := logger.With(ctx, u.log).With(zap.Int("body_len", len(body)))
	log.Info("notification received")

	n, err := ParseNotification(body)
	if err != nil {
		log.Warn("notification rejected", zap.Error(err))
		return badRequest(bodyInvalidJSON)
	}
	log = log.With(zap.String("hash_order_id", n.OrderID), zap.String("state", string(n.State)))

	if n.OrderID == "" {
		log.Warn("notification rejected", zap.Error(ErrMissingOrderHash))
		return badRequest(bodyOrderNotFound)
	}

	order, err := u.orders.FindByMetadata(ctx, entities.MetaHashOrderID, n.OrderID)
	if err != nil {
		log.Error("failed resolving order", zap.Error(err))
		return internalError()
	}
	if order.ID == "" {
		log.Warn("notification rejected", zap.Error(entities.ErrOrderNotFound))
		return badRequest(bodyOrderNotFound)
	}
	log = log.With(zap.String("order_id", order.ID))

	if n.State == "" {
		log.Warn("notification rejected", zap.Error(ErrMissingState))
		return badRequest(bodyMissingState)
	}

	decision := DecideNotification(order, n, u.urls)

	// A seen state only short-circuits while the order still holds its status;
	// a later transition for the same order must not be masked.
	if u.guard != nil {
		seen, err := u.guard.Seen(ctx, n.OrderID, string(n.State))
		if err != nil {
			log.Warn("replay guard lookup failed", zap.Error(err))
		} else if seen && order.Status == decision.Mutation.Status {
			log.Info("notification already applied; redirecting only")
			return decision.Response
		}
	}

	changed, err := u.ApplyMutation(ctx, order, decision.Mutation)
	if err != nil {
		log.Error("failed applying status", zap.String("status", string(decision.Mutation.Status)), zap.Error(err))
		return internalError()
	}
	log.Info("notification applied", zap.String("status", string(decision.Mutation.Status)), zap.Bool("changed", changed))

	if u.guard != nil {
		if err := u.guard.Remember(ctx, n.OrderID, string(n.State)); err != nil {
			log.Warn("replay guard store failed", zap.Error(err))
		}
	}
	if changed {
		u.publish(ctx, order, n, decision.Mutation.Status)
	}

	return decision.Response
}

func (u *NotificationUseCase) publish(ctx context.Context, order entities.Order, n entities.Notification, status entities.OrderStatus) {
	if u.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), eventPublishTimeout)
	defer cancel()

	event := entities.PaymentEvent{
		Type:      paymentEventType,
		OrderID:   order.ID,
		State:     string(n.State),
		Status:    string(status),
		Amount:    entities.MinorUnits(order.Total),
		Currency:  order.Currency,
		Timestamp: time.Now().UTC(),
	}
	if err := u.publisher.PublishPaymentEvent(ctx, event); err != nil {
		logger.With(ctx, u.log).Warn("payment event publish failed", zap.String("order_id", order.ID), zap.Error(err))
	}
}

func badRequest(body string) NotificationResponse {
	return NotificationResponse{StatusCode: http.StatusBadRequest, Body: body}
}

func internalError() NotificationResponse {
	return NotificationResponse{StatusCode: http.StatusInternalServerError, Body: bodyInternalError}
}

// IsRedirect reports whether r sends the shopper on.
func (r NotificationResponse) IsRedirect() bool {
	return r.RedirectURL != "" && r.StatusCode >= 300 && r.StatusCode < 400
}
