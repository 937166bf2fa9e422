package postgres

import (
	"context"
	"database/sql"

	"grandstay-backend/internal/domain"
	"grandstay-backend/internal/repository"
)

type reportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) FinancialSummary(ctx context.Context) (*domain.FinancialReport, error) {
	report := &domain.FinancialReport{}

	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(total_amount_cents), 0),
		       COALESCE(AVG(total_amount_cents), 0)::bigint
		FROM bills`).Scan(&report.TotalRevenueCents, &report.AverageBillCents)
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(total_charge_cents), 0) FROM reservation_services`).Scan(&report.ServiceRevenueCents)
	if err != nil {
		return nil, err
	}
	report.RoomRevenueCents = report.TotalRevenueCents - report.ServiceRevenueCents

	err = r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount_cents), 0) FROM payments`).Scan(&report.CompletedPaymentsCents)
	if err != nil {
		return nil, err
	}
	report.PendingPaymentsCents = report.TotalRevenueCents - report.CompletedPaymentsCents
	if report.PendingPaymentsCents < 0 {
		report.PendingPaymentsCents = 0
	}

	return report, nil
}

func (r *reportRepository) RoomStatusSummary(ctx context.Context) (*domain.RoomStatusReport, error) {
	report := &domain.RoomStatusReport{}

	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = $1),
		       COUNT(*) FILTER (WHERE status = $2),
		       COUNT(*) FILTER (WHERE status = $3)
		FROM rooms`,
		domain.RoomStatusAvailable, domain.RoomStatusOccupied, domain.RoomStatusMaintenance).
		Scan(&report.TotalRooms, &report.AvailableRooms, &report.OccupiedRooms, &report.MaintenanceRooms)
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM reservations
		WHERE status = $1 AND check_in_date > NOW()`,
		domain.ReservationStatusActive).Scan(&report.UpcomingBookings)
	if err != nil {
		return nil, err
	}

	if report.TotalRooms > 0 {
		report.OccupancyRate = float64(report.OccupiedRooms) / float64(report.TotalRooms) * 100
	}
	return report, nil
}

func (r *reportRepository) DailyOccupancy(ctx context.Context, days int32) ([]domain.OccupancyDay, error) {
	query := `
		SELECT d.day::date::text,
		       (SELECT COUNT(*) FROM rooms),
		       COUNT(DISTINCT rr.room_id),
		       COALESCE(SUM(DISTINCT b.total_amount_cents) FILTER (WHERE res.check_in_date::date = d.day::date), 0)
		FROM generate_series(NOW() - ($1 - 1) * INTERVAL '1 day', NOW(), INTERVAL '1 day') AS d(day)
		LEFT JOIN reservations res
		       ON res.check_in_date::date <= d.day::date AND res.check_out_date::date > d.day::date
		      AND res.status IN ($2, $3)
		LEFT JOIN reservation_rooms rr ON rr.reservation_id = res.id
		LEFT JOIN bills b ON b.reservation_id = res.id
		GROUP BY d.day
		ORDER BY d.day`
	rows, err := r.db.QueryContext(ctx, query, days,
		domain.ReservationStatusInprogress, domain.ReservationStatusCompleted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var series []domain.OccupancyDay
	for rows.Next() {
		var day domain.OccupancyDay
		if err := rows.Scan(&day.Date, &day.TotalRooms, &day.OccupiedRooms, &day.RevenueCents); err != nil {
			return nil, err
		}
		if day.TotalRooms > 0 {
			day.OccupancyRate = float64(day.OccupiedRooms) / float64(day.TotalRooms) * 100
		}
		series = append(series, day)
	}
	return series, rows.Err()
}
