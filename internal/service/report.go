package service

import (
	"context"

	"grandstay-backend/internal/domain"
	"grandstay-backend/internal/repository"
)

type reportService struct {
	reports repository.ReportRepository
}

func NewReportService(reports repository.ReportRepository) ReportService {
	return &reportService{reports: reports}
}

func (s *reportService) FinancialSummary(ctx context.Context, actingRole domain.Role) (*domain.FinancialReport, error) {
	if !actingRole.CanManage() {
		return nil, domain.ForbiddenError("financial reports require the manager role")
	}
	return s.reports.FinancialSummary(ctx)
}

func (s *reportService) RoomStatusSummary(ctx context.Context, actingRole domain.Role) (*domain.RoomStatusReport, error) {
	if !actingRole.CanManage() {
		return nil, domain.ForbiddenError("room status reports require the manager role")
	}
	return s.reports.RoomStatusSummary(ctx)
}

func (s *reportService) DailyOccupancy(ctx context.Context, actingRole domain.Role, days int32) ([]domain.OccupancyDay, error) {
	if !actingRole.CanManage() {
		return nil, domain.ForbiddenError("occupancy reports require the manager role")
	}
	if days < 1 || days > 90 {
		days = 30
	}
	return s.reports.DailyOccupancy(ctx, days)
}
