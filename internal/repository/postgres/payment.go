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

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

const paymentColumns = `id, bill_id, amount_cents, payment_method, payment_status, external_ref, payment_date`

func scanPayment(row interface{ Scan(...any) error }, p *domain.Payment) error {
	return row.Scan(&p.ID, &p.BillID, &p.AmountCents, &p.PaymentMethod, &p.PaymentStatus,
		&p.ExternalRef, &p.PaymentDate)
}

// Record inserts the payment and re-derives the bill status in one
// transaction. The unique index on external_ref rejects a replayed gateway
// notification before it can double-count.
func (r *paymentRepository) Record(ctx context.Context, p *domain.Payment) (domain.BillStatus, error) {
	logger.EnterMethod("PaymentRepository.Record", "billId", p.BillID, "amountCents", p.AmountCents)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	if p.PaymentDate.IsZero() {
		p.PaymentDate = time.Now()
	}
	err = tx.QueryRowContext(ctx,
		`INSERT INTO payments (bill_id, amount_cents, payment_method, payment_status, external_ref, payment_date)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		p.BillID, p.AmountCents, p.PaymentMethod, p.PaymentStatus, p.ExternalRef, p.PaymentDate).Scan(&p.ID)
	if isUniqueViolation(err) {
		logger.ExitMethodWithError("PaymentRepository.Record", err, "externalRef", p.ExternalRef)
		return "", domain.ConflictError("payment with reference %q already recorded", p.ExternalRef)
	}
	if err != nil {
		logger.ExitMethodWithError("PaymentRepository.Record", err)
		return "", err
	}

	status, err := recomputeBillStatusTx(ctx, tx, p.BillID)
	if err != nil {
		return "", err
	}
	if err := tx.Commit(); err != nil {
		return "", err
	}

	logger.ExitMethod("PaymentRepository.Record", "billId", p.BillID, "billStatus", status)
	return status, nil
}

func (r *paymentRepository) GetByExternalRef(ctx context.Context, ref string) (*domain.Payment, error) {
	p := &domain.Payment{}
	err := scanPayment(r.db.QueryRowContext(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE external_ref = $1`, ref), p)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundError("payment", ref)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *paymentRepository) ListByBill(ctx context.Context, billID int32) ([]domain.Payment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE bill_id = $1 ORDER BY payment_date`, billID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := scanPayment(rows, &p); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *paymentRepository) SumByBill(ctx context.Context, billID int32) (int64, error) {
	var sum int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount_cents), 0) FROM payments WHERE bill_id = $1`, billID).Scan(&sum)
	return sum, err
}
