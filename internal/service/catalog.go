package service

import (
	"context"
	"strings"

	"grandstay-backend/internal/domain"
	"grandstay-backend/internal/repository"
)

type catalogService struct {
	services repository.ServiceRepository
}

func NewCatalogService(services repository.ServiceRepository) CatalogService {
	return &catalogService{services: services}
}

func validateService(svc *domain.Service) error {
	if strings.TrimSpace(svc.Name) == "" {
		return domain.ValidationError("service name is required")
	}
	if svc.ChargePerPersonCents < 0 {
		return domain.ValidationError("service charge cannot be negative")
	}
	return nil
}

func (s *catalogService) CreateService(ctx context.Context, actingRole domain.Role, svc *domain.Service) error {
	if !actingRole.CanManage() {
		return domain.ForbiddenError("creating services requires the manager role")
	}
	if err := validateService(svc); err != nil {
		return err
	}
	svc.Active = true
	return s.services.Create(ctx, svc)
}

func (s *catalogService) UpdateService(ctx context.Context, actingRole domain.Role, svc *domain.Service) error {
	if !actingRole.CanManage() {
		return domain.ForbiddenError("updating services requires the manager role")
	}
	if err := validateService(svc); err != nil {
		return err
	}
	if _, err := s.services.GetByID(ctx, svc.ID); err != nil {
		return err
	}
	return s.services.Update(ctx, svc)
}

func (s *catalogService) ListServices(ctx context.Context) ([]domain.Service, error) {
	return s.services.List(ctx)
}
