package usecase

import (
	"venue-reservation/internal/data/repository"
	"venue-reservation/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Catalog CatalogService
	Booking BookingService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		Catalog: NewCatalogService(repo, log),
		Booking: NewBookingService(repo, config, log),
	}
}
