package interfaces

import (
	"context"

	"payler_gateway/internal/domain/entities"
)

// IOrderRepository abstracts the commerce platform's order storage.
//
// The gateway must be able to:
//   - load an order by its local id
//   - resolve an order from a correlation identifier kept in metadata
//   - read and write string metadata on an order
//   - move an order to a status with an audit note, at most once per target
//
// Lookups return a zero-value Order (ID == "") when nothing matches.
type IOrderRepository interface {
	GetByID(ctx context.Context, id string) (entities.Order, error)
	FindByMetadata(ctx context.Context, key, value string) (entities.Order, error)
	UpdateMetadata(ctx context.Context, orderID, key, value string) error
	GetMetadata(ctx context.Context, orderID, key string) (string, error)
	// SetStatus is a conditional write: it reports changed=false without
	// touching the order when it already holds status.
	SetStatus(ctx context.Context, orderID string, status entities.OrderStatus, note string) (changed bool, err error)
	AddNote(ctx context.Context, orderID, note string) error
}
