package usecase

import (
	"context"

	"payler_gateway/internal/config"
	"payler_gateway/internal/domain/entities"
	"payler_gateway/internal/usecase/interfaces"
)

var gatewaySupports = []string{"products", "refunds"}

// IGatewayUseCase describes the payment method to checkout front-ends.
type IGatewayUseCase interface {
	Describe(ctx context.Context) (entities.GatewayDescriptor, error)
}

type GatewayUseCase struct {
	settings interfaces.ISettingsStore
}

var _ IGatewayUseCase = (*GatewayUseCase)(nil)

func NewGatewayUseCase(settings interfaces.ISettingsStore) *GatewayUseCase {
	return &GatewayUseCase{settings: settings}
}

func (u *GatewayUseCase) Describe(ctx context.Context) (entities.GatewayDescriptor, error) {
	s, err := u.settings.Load(ctx)
	if err != nil {
		return entities.GatewayDescriptor{}, err
	}
	return entities.GatewayDescriptor{
		ID:          config.GatewayID,
		Title:       s.Title,
		Description: s.Description,
		Enabled:     s.Enabled,
		TestMode:    s.TestMode,
		Supports:    append([]string(nil), gatewaySupports...),
	}, nil
}
