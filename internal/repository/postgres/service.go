package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"grandstay-backend/internal/domain"
	"grandstay-backend/internal/repository"
)

type serviceRepository struct {
	db *sql.DB
}

func NewServiceRepository(db *sql.DB) repository.ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) Create(ctx context.Context, svc *domain.Service) error {
	query := `INSERT INTO services (name, description, charge_per_person_cents, active)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query, svc.Name, svc.Description, svc.ChargePerPersonCents, svc.Active).Scan(&svc.ID)
}

func (r *serviceRepository) GetByID(ctx context.Context, id int32) (*domain.Service, error) {
	svc := &domain.Service{}
	query := `SELECT id, name, COALESCE(description, ''), charge_per_person_cents, active FROM services WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&svc.ID, &svc.Name, &svc.Description, &svc.ChargePerPersonCents, &svc.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundError("service", id)
	}
	if err != nil {
		return nil, err
	}
	return svc, nil
}

func (r *serviceRepository) Update(ctx context.Context, svc *domain.Service) error {
	query := `UPDATE services SET name=$1, description=$2, charge_per_person_cents=$3, active=$4 WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query, svc.Name, svc.Description, svc.ChargePerPersonCents, svc.Active, svc.ID)
	return err
}

func (r *serviceRepository) List(ctx context.Context) ([]domain.Service, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, COALESCE(description, ''), charge_per_person_cents, active FROM services ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []domain.Service
	for rows.Next() {
		var svc domain.Service
		if err := rows.Scan(&svc.ID, &svc.Name, &svc.Description, &svc.ChargePerPersonCents, &svc.Active); err != nil {
			return nil, err
		}
		services = append(services, svc)
	}
	return services, rows.Err()
}

type serviceAssignmentRepository struct {
	db *sql.DB
}

func NewServiceAssignmentRepository(db *sql.DB) repository.ServiceAssignmentRepository {
	return &serviceAssignmentRepository{db: db}
}

func (r *serviceAssignmentRepository) AssignWithCharge(ctx context.Context, sa *domain.ServiceAssignment, billID, chargeWithTaxCents int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if sa.AssignDate.IsZero() {
		sa.AssignDate = time.Now()
	}
	err = tx.QueryRowContext(ctx,
		`INSERT INTO reservation_services (reservation_id, service_id, total_charge_cents, assign_date)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		sa.ReservationID, sa.ServiceID, sa.TotalChargeCents, sa.AssignDate).Scan(&sa.ID)
	if err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE bills SET total_amount_cents = total_amount_cents + $1, updated_at = $2 WHERE id = $3`,
		chargeWithTaxCents, time.Now(), billID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFoundError("bill", billID)
	}

	return tx.Commit()
}

func (r *serviceAssignmentRepository) ListDetailsByReservation(ctx context.Context, reservationID int32) ([]domain.ServiceAssignmentDetail, error) {
	query := `SELECT rs.id, rs.reservation_id, rs.service_id, rs.total_charge_cents, rs.assign_date,
	                 s.name, s.charge_per_person_cents
	          FROM reservation_services rs
	          JOIN services s ON s.id = rs.service_id
	          WHERE rs.reservation_id = $1 ORDER BY rs.id`
	rows, err := r.db.QueryContext(ctx, query, reservationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []domain.ServiceAssignmentDetail
	for rows.Next() {
		var d domain.ServiceAssignmentDetail
		if err := rows.Scan(&d.ID, &d.ReservationID, &d.ServiceID, &d.TotalChargeCents, &d.AssignDate,
			&d.ServiceName, &d.ChargePerPersonCents); err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}
