package usecase

import (
	"context"

	"github.com/tapsilat/tapsilat-go/internal/usecase/interfaces"
	"github.com/tapsilat/tapsilat-go/pkg/entities"
)

type IHealthUseCase interface {
	CheckUpstream(ctx context.Context) (entities.Raw, error)
}

type HealthUseCase struct {
	gateway interfaces.IPaymentGateway
}

var _ IHealthUseCase = (*HealthUseCase)(nil)

func NewHealthUseCase(gateway interfaces.IPaymentGateway) *HealthUseCase {
	return &HealthUseCase{gateway: gateway}
}

// CheckUpstream calls the Tapsilat health endpoint.
func (u *HealthUseCase) CheckUpstream(ctx context.Context) (entities.Raw, error) {
	if u.gateway == nil {
		return entities.Raw{}, ErrGatewayNotConfigured
	}
	return u.gateway.HealthCheck(ctx)
}
