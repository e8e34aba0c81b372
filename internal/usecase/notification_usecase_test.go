package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"payler_gateway/internal/domain/entities"
	"payler_gateway/internal/infrastructure/logger"
	mock_interfaces "payler_gateway/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const (
	receivedURL = "https://shop.test/checkout/order-received/42/?key=wc_order_abc"
	cancelURL   = "https://shop.test/cart/?cancel_order=true&order=wc_order_abc&order_id=42"
	storedHash  = "0f8fad5b-d9cb-469f-a165-70867728950e"
)

func notificationOrder(status entities.OrderStatus) entities.Order {
	return entities.Order{
		ID:       "42",
		OrderKey: "wc_order_abc",
		Total:    25,
		Currency: "USD",
		Status:   status,
		Meta:     map[string]string{entities.MetaHashOrderID: storedHash},
	}
}

type memoryGuard struct {
	seen map[string]bool
}

func newMemoryGuard() *memoryGuard {
	return &memoryGuard{seen: map[string]bool{}}
}

func (g *memoryGuard) Seen(_ context.Context, orderHash, state string) (bool, error) {
	return g.seen[orderHash+":"+state], nil
}

func (g *memoryGuard) Remember(_ context.Context, orderHash, state string) error {
	g.seen[orderHash+":"+state] = true
	return nil
}

func stubURLs(ctrl *gomock.Controller) *mock_interfaces.MockIOrderURLs {
	urls := mock_interfaces.NewMockIOrderURLs(ctrl)
	urls.EXPECT().ReceivedURL(gomock.Any()).Return(receivedURL).AnyTimes()
	urls.EXPECT().CancelURL(gomock.Any()).Return(cancelURL).AnyTimes()
	return urls
}

func TestParseNotification(t *testing.T) {
	t.Run("object", func(t *testing.T) {
		n, err := ParseNotification([]byte(`{"orderId":" abc ","state":"authorized","extra":1}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n.OrderID != "abc" || n.State != entities.NotificationStateAuthorized {
			t.Fatalf("unexpected notification: %+v", n)
		}
	})

	t.Run("numeric order id", func(t *testing.T) {
		n, err := ParseNotification([]byte(`{"orderId":123,"state":"cancelled"}`))
		if err != nil || n.OrderID != "123" {
			t.Fatalf("unexpected result: %+v %v", n, err)
		}
	})

	t.Run("missing fields parse to empty", func(t *testing.T) {
		n, err := ParseNotification([]byte(`{}`))
		if err != nil || n.OrderID != "" || n.State != "" {
			t.Fatalf("unexpected result: %+v %v", n, err)
		}
	})

	for name, body := range map[string]string{
		"empty":     "",
		"garbage":   "not json",
		"truncated": `{"orderId":"abc"`,
		"array":     `[{"orderId":"abc"}]`,
		"string":    `"abc"`,
	} {
		t.Run("invalid "+name, func(t *testing.T) {
			_, err := ParseNotification([]byte(body))
			if !errors.Is(err, ErrInvalidJSON) || !errors.Is(err, entities.ErrMalformedNotification) {
				t.Fatalf("expected ErrInvalidJSON, got %v", err)
			}
		})
	}
}

func TestDecideNotification(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	urls := stubURLs(ctrl)
	order := notificationOrder(entities.OrderStatusPending)

	cases := []struct {
		state    entities.NotificationState
		status   entities.OrderStatus
		note     string
		redirect string
	}{
		{entities.NotificationStateAuthorized, entities.OrderStatusProcessing, "Payment completed via Payler.", receivedURL},
		{entities.NotificationStateCancelled, entities.OrderStatusFailed, "Payment cancelled via Payler.", cancelURL},
		{entities.NotificationStateRefunded, entities.OrderStatusRefunded, "Payment refunded via Payler.", cancelURL},
		{"charged", entities.OrderStatusFailed, "Payment cancelled via Payler.", cancelURL},
		{"AUTHORIZED", entities.OrderStatusFailed, "Payment cancelled via Payler.", cancelURL},
	}
	for _, tc := range cases {
		t.Run(string(tc.state), func(t *testing.T) {
			d := DecideNotification(order, entities.Notification{OrderID: storedHash, State: tc.state}, urls)
			if d.Mutation.OrderID != "42" || d.Mutation.Status != tc.status || d.Mutation.Note != tc.note {
				t.Fatalf("unexpected mutation: %+v", d.Mutation)
			}
			if d.Response.StatusCode != http.StatusFound || d.Response.RedirectURL != tc.redirect || !d.Response.IsRedirect() {
				t.Fatalf("unexpected response: %+v", d.Response)
			}
		})
	}
}

func TestNotificationUseCase_HandleNotification(t *testing.T) {
	t.Run("invalid json makes no store calls", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewNotificationUseCase(orders, stubURLs(ctrl), nil, nil, nil)

		res := uc.HandleNotification(context.Background(), []byte("{"))
		if res.StatusCode != http.StatusBadRequest || res.Body != "Invalid JSON format" {
			t.Fatalf("unexpected response: %+v", res)
		}
	})

	t.Run("missing order id makes no store calls", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewNotificationUseCase(orders, stubURLs(ctrl), nil, nil, nil)

		for _, body := range []string{`{"state":"authorized"}`, `{"orderId":"   ","state":"authorized"}`, `{"orderId":null}`} {
			res := uc.HandleNotification(context.Background(), []byte(body))
			if res.StatusCode != http.StatusBadRequest || res.Body != "Order ID not found" {
				t.Fatalf("unexpected response for %s: %+v", body, res)
			}
		}
	})

	t.Run("unknown order is rejected without mutation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		orders.EXPECT().FindByMetadata(gomock.Any(), entities.MetaHashOrderID, "nope").Return(entities.Order{}, nil)
		uc := NewNotificationUseCase(orders, stubURLs(ctrl), nil, nil, nil)

		res := uc.HandleNotification(context.Background(), []byte(`{"orderId":"nope","state":"authorized"}`))
		if res.StatusCode != http.StatusBadRequest || res.Body != "Order ID not found" {
			t.Fatalf("unexpected response: %+v", res)
		}
	})

	t.Run("missing state is rejected without mutation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		orders.EXPECT().FindByMetadata(gomock.Any(), entities.MetaHashOrderID, storedHash).Return(notificationOrder(entities.OrderStatusPending), nil)
		uc := NewNotificationUseCase(orders, stubURLs(ctrl), nil, nil, nil)

		res := uc.HandleNotification(context.Background(), []byte(`{"orderId":"`+storedHash+`"}`))
		if res.StatusCode != http.StatusBadRequest {
			t.Fatalf("unexpected response: %+v", res)
		}
	})

	t.Run("lookup failure is a server error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		orders.EXPECT().FindByMetadata(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Order{}, errors.New("db"))
		uc := NewNotificationUseCase(orders, stubURLs(ctrl), nil, nil, nil)

		res := uc.HandleNotification(context.Background(), []byte(`{"orderId":"`+storedHash+`","state":"authorized"}`))
		if res.StatusCode != http.StatusInternalServerError {
			t.Fatalf("unexpected response: %+v", res)
		}
	})

	t.Run("authorized marks the order paid and redirects to received url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
		orders.EXPECT().FindByMetadata(gomock.Any(), entities.MetaHashOrderID, storedHash).Return(notificationOrder(entities.OrderStatusPending), nil)
		orders.EXPECT().SetStatus(gomock.Any(), "42", entities.OrderStatusProcessing, "Payment completed via Payler.").Return(true, nil)
		publisher.EXPECT().PublishPaymentEvent(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.PaymentEvent) error {
				if e.OrderID != "42" || e.Status != "processing" || e.State != "authorized" || e.Amount != 2500 || e.Currency != "USD" {
					t.Fatalf("unexpected event: %+v", e)
				}
				return nil
			},
		)
		uc := NewNotificationUseCase(orders, stubURLs(ctrl), nil, publisher, nil)

		res := uc.HandleNotification(context.Background(), []byte(`{"orderId":"`+storedHash+`","state":"authorized"}`))
		if res.StatusCode != http.StatusFound || res.RedirectURL != receivedURL {
			t.Fatalf("unexpected response: %+v", res)
		}
	})

	t.Run("redelivery is a no-op on final state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)

		current := notificationOrder(entities.OrderStatusPending)
		orders.EXPECT().FindByMetadata(gomock.Any(), entities.MetaHashOrderID, storedHash).DoAndReturn(
			func(context.Context, string, string) (entities.Order, error) { return current, nil },
		).Times(2)
		orders.EXPECT().SetStatus(gomock.Any(), "42", entities.OrderStatusProcessing, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, status entities.OrderStatus, _ string) (bool, error) {
				current.Status = status
				return true, nil
			},
		).Times(1)
		uc := NewNotificationUseCase(orders, stubURLs(ctrl), nil, nil, nil)

		body := []byte(`{"orderId":"` + storedHash + `","state":"authorized"}`)
		first := uc.HandleNotification(context.Background(), body)
		second := uc.HandleNotification(context.Background(), body)
		if first != second || second.RedirectURL != receivedURL {
			t.Fatalf("expected identical redirects, got %+v and %+v", first, second)
		}
		if current.Status != entities.OrderStatusProcessing {
			t.Fatalf("expected processing, got %s", current.Status)
		}
	})

	t.Run("racing delivery reported unchanged does not publish", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
		orders.EXPECT().FindByMetadata(gomock.Any(), gomock.Any(), gomock.Any()).Return(notificationOrder(entities.OrderStatusPending), nil)
		orders.EXPECT().SetStatus(gomock.Any(), "42", entities.OrderStatusFailed, "Payment cancelled via Payler.").Return(false, nil)
		uc := NewNotificationUseCase(orders, stubURLs(ctrl), nil, publisher, nil)

		res := uc.HandleNotification(context.Background(), []byte(`{"orderId":"`+storedHash+`","state":"cancelled"}`))
		if res.RedirectURL != cancelURL {
			t.Fatalf("unexpected response: %+v", res)
		}
	})

	t.Run("apply failure is a server error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		orders.EXPECT().FindByMetadata(gomock.Any(), gomock.Any(), gomock.Any()).Return(notificationOrder(entities.OrderStatusPending), nil)
		orders.EXPECT().SetStatus(gomock.Any(), "42", entities.OrderStatusRefunded, gomock.Any()).Return(false, errors.New("db"))
		uc := NewNotificationUseCase(orders, stubURLs(ctrl), nil, nil, nil)

		res := uc.HandleNotification(context.Background(), []byte(`{"orderId":"`+storedHash+`","state":"refunded"}`))
		if res.StatusCode != http.StatusInternalServerError || res.RedirectURL != "" {
			t.Fatalf("unexpected response: %+v", res)
		}
	})

	t.Run("logs carry the request id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		orders.EXPECT().FindByMetadata(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Order{}, nil)

		core, logs := observer.New(zap.InfoLevel)
		uc := NewNotificationUseCase(orders, stubURLs(ctrl), nil, nil, zap.New(core))

		ctx := logger.WithRequestID(context.Background(), "req-9")
		uc.HandleNotification(ctx, []byte(`{"orderId":"`+storedHash+`","state":"authorized"}`))

		entries := logs.AllUntimed()
		if len(entries) == 0 {
			t.Fatalf("expected log entries")
		}
		for _, e := range entries {
			if e.ContextMap()["request_id"] != "req-9" {
				t.Fatalf("entry %q missing request_id: %v", e.Message, e.ContextMap())
			}
		}
	})

	t.Run("replay guard does not mask a later transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)

		current := notificationOrder(entities.OrderStatusPending)
		orders.EXPECT().FindByMetadata(gomock.Any(), entities.MetaHashOrderID, storedHash).DoAndReturn(
			func(context.Context, string, string) (entities.Order, error) { return current, nil },
		).Times(3)
		orders.EXPECT().SetStatus(gomock.Any(), "42", gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, status entities.OrderStatus, _ string) (bool, error) {
				if current.Status == status {
					return false, nil
				}
				current.Status = status
				return true, nil
			},
		).Times(3)
		uc := NewNotificationUseCase(orders, stubURLs(ctrl), newMemoryGuard(), nil, nil)

		var last NotificationResponse
		for _, state := range []string{"authorized", "cancelled", "authorized"} {
			last = uc.HandleNotification(context.Background(), []byte(`{"orderId":"`+storedHash+`","state":"`+state+`"}`))
		}
		if current.Status != entities.OrderStatusProcessing {
			t.Fatalf("expected processing, got %s", current.Status)
		}
		if last.RedirectURL != receivedURL {
			t.Fatalf("unexpected response: %+v", last)
		}
	})

	t.Run("replay guard short-circuits seen notifications", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		guard := mock_interfaces.NewMockINotificationGuard(ctrl)
		orders.EXPECT().FindByMetadata(gomock.Any(), gomock.Any(), gomock.Any()).Return(notificationOrder(entities.OrderStatusProcessing), nil)
		guard.EXPECT().Seen(gomock.Any(), storedHash, "authorized").Return(true, nil)
		uc := NewNotificationUseCase(orders, stubURLs(ctrl), guard, nil, nil)

		res := uc.HandleNotification(context.Background(), []byte(`{"orderId":"`+storedHash+`","state":"authorized"}`))
		if res.RedirectURL != receivedURL {
			t.Fatalf("unexpected response: %+v", res)
		}
	})

	t.Run("replay guard errors do not block reconciliation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		guard := mock_interfaces.NewMockINotificationGuard(ctrl)
		publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
		orders.EXPECT().FindByMetadata(gomock.Any(), gomock.Any(), gomock.Any()).Return(notificationOrder(entities.OrderStatusPending), nil)
		guard.EXPECT().Seen(gomock.Any(), storedHash, "authorized").Return(false, errors.New("redis down"))
		orders.EXPECT().SetStatus(gomock.Any(), "42", entities.OrderStatusProcessing, gomock.Any()).Return(true, nil)
		guard.EXPECT().Remember(gomock.Any(), storedHash, "authorized").Return(errors.New("redis down"))
		publisher.EXPECT().PublishPaymentEvent(gomock.Any(), gomock.Any()).Return(errors.New("sns down"))
		uc := NewNotificationUseCase(orders, stubURLs(ctrl), guard, publisher, nil)

		res := uc.HandleNotification(context.Background(), []byte(`{"orderId":"`+storedHash+`","state":"authorized"}`))
		if res.StatusCode != http.StatusFound || res.RedirectURL != receivedURL {
			t.Fatalf("unexpected response: %+v", res)
		}
	})
}
