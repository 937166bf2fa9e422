package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"grandstay-backend/internal/domain"
	"grandstay-backend/internal/logger"
	"grandstay-backend/internal/repository"
)

type billRepository struct {
	db *sql.DB
}

func NewBillRepository(db *sql.DB) repository.BillRepository {
	return &billRepository{db: db}
}

const billColumns = `id, reservation_id, total_amount_cents, status, created_at, updated_at`

func scanBill(row interface{ Scan(...any) error }, b *domain.Bill) error {
	return row.Scan(&b.ID, &b.ReservationID, &b.TotalAmountCents, &b.Status, &b.CreatedAt, &b.UpdatedAt)
}

func (r *billRepository) GetByID(ctx context.Context, id int32) (*domain.Bill, error) {
	bill := &domain.Bill{}
	err := scanBill(r.db.QueryRowContext(ctx, `SELECT `+billColumns+` FROM bills WHERE id = $1`, id), bill)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundError("bill", id)
	}
	if err != nil {
		return nil, err
	}
	return bill, nil
}

func (r *billRepository) GetByReservation(ctx context.Context, reservationID int32) (*domain.Bill, error) {
	bill := &domain.Bill{}
	err := scanBill(r.db.QueryRowContext(ctx,
		`SELECT `+billColumns+` FROM bills WHERE reservation_id = $1`, reservationID), bill)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundError("bill for reservation", reservationID)
	}
	if err != nil {
		return nil, err
	}
	return bill, nil
}

func (r *billRepository) AddCharge(ctx context.Context, billID, amountCents int32) error {
	logger.EnterMethod("BillRepository.AddCharge", "billId", billID, "amountCents", amountCents)

	result, err := r.db.ExecContext(ctx,
		`UPDATE bills SET total_amount_cents = total_amount_cents + $1, updated_at = $2 WHERE id = $3`,
		amountCents, time.Now(), billID)
	if err != nil {
		logger.ExitMethodWithError("BillRepository.AddCharge", err)
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFoundError("bill", billID)
	}

	logger.ExitMethod("BillRepository.AddCharge", "billId", billID)
	return nil
}

func (r *billRepository) RecomputeStatus(ctx context.Context, billID int32) (domain.BillStatus, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	status, err := recomputeBillStatusTx(ctx, tx, billID)
	if err != nil {
		return "", err
	}
	if err := tx.Commit(); err != nil {
		return "", err
	}
	return status, nil
}

// recomputeBillStatusTx re-derives the bill status from the payment sum
// inside the caller's transaction. Shared with the payment repository so a
// recorded payment and the resulting status land atomically.
func recomputeBillStatusTx(ctx context.Context, tx *sql.Tx, billID int32) (domain.BillStatus, error) {
	bill := &domain.Bill{}
	err := scanBill(tx.QueryRowContext(ctx, `SELECT `+billColumns+` FROM bills WHERE id = $1`, billID), bill)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.NotFoundError("bill", billID)
	}
	if err != nil {
		return "", err
	}

	var paid int64
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount_cents), 0) FROM payments WHERE bill_id = $1`, billID).Scan(&paid)
	if err != nil {
		return "", err
	}

	status := bill.StatusFor(paid)
	if status != bill.Status {
		_, err = tx.ExecContext(ctx,
			`UPDATE bills SET status = $1, updated_at = $2 WHERE id = $3`, status, time.Now(), billID)
		if err != nil {
			return "", err
		}
	}
	return status, nil
}

func (r *billRepository) ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]domain.Bill, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+billColumns+` FROM bills WHERE status = $1 AND created_at < $2 ORDER BY created_at`,
		domain.BillStatusPending, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bills []domain.Bill
	for rows.Next() {
		var b domain.Bill
		if err := scanBill(rows, &b); err != nil {
			return nil, err
		}
		bills = append(bills, b)
	}
	return bills, rows.Err()
}
