package interfaces

import (
	"context"

	"payler_gateway/internal/config"
	"payler_gateway/internal/domain/entities"
)

// IOrderURLs builds the shopper-facing and callback URLs of the platform.
type IOrderURLs interface {
	ReceivedURL(order entities.Order) string
	CancelURL(order entities.Order) string
	CheckoutURL() string
	NotificationURL() string
}

// ISettingsStore returns the current admin settings.
type ISettingsStore interface {
	Load(ctx context.Context) (config.Settings, error)
}

// INotificationGuard remembers notifications that were already applied so
// redeliveries can be answered without touching the order store.
type INotificationGuard interface {
	Seen(ctx context.Context, orderHash, state string) (bool, error)
	Remember(ctx context.Context, orderHash, state string) error
}

// IEventPublisher announces payment lifecycle changes to other services.
type IEventPublisher interface {
	PublishPaymentEvent(ctx context.Context, event entities.PaymentEvent) error
}

// IIDGenerator produces correlation identifiers.
type IIDGenerator interface {
	NewID() (string, error)
}
