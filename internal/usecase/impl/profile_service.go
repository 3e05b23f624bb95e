package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	backend     service.BackendGateway
	archiveRepo repository.OrderArchiveRepository
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	Backend     service.BackendGateway
	ArchiveRepo repository.OrderArchiveRepository
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		backend:     params.Backend,
		archiveRepo: params.ArchiveRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// OrderHistory lists the user's orders from the backend, falling back to the
// local archive when the backend cannot be reached.
func (srv *profileService) OrderHistory(ctx context.Context, userID string) ([]*entity.Order, error) {
	orders, err := srv.backend.FetchOrders(ctx, userID)
	if err == nil {
		return orders, nil
	}

	srv.log(ctx).Warn("Backend order history unavailable, serving local archive",
		slog.String("userID", userID),
		slog.Any("error", err),
	)

	archived, archiveErr := srv.archiveRepo.FindByUser(ctx, userID)
	if archiveErr != nil {
		// The archive could not help either; the transport failure is the
		// more meaningful error to surface.
		return nil, errors.Wrap(err, "failed to fetch order history")
	}

	return archived, nil
}
