package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"grandstay-backend/internal/domain"
	"grandstay-backend/internal/repository"
)

type staffRepository struct {
	db *sql.DB
}

func NewStaffRepository(db *sql.DB) repository.StaffRepository {
	return &staffRepository{db: db}
}

func (r *staffRepository) Create(ctx context.Context, s *domain.Staff) error {
	query := `INSERT INTO staff (email, name, password_hash, role, active, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	s.CreatedAt = time.Now()
	err := r.db.QueryRowContext(ctx, query, s.Email, s.Name, s.PasswordHash, s.Role, s.Active, s.CreatedAt).Scan(&s.ID)
	if isUniqueViolation(err) {
		return domain.ConflictError("staff account with email %q already exists", s.Email)
	}
	return err
}

func (r *staffRepository) GetByEmail(ctx context.Context, email string) (*domain.Staff, error) {
	s := &domain.Staff{}
	query := `SELECT id, email, name, password_hash, role, active, created_at FROM staff WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&s.ID, &s.Email, &s.Name, &s.PasswordHash, &s.Role, &s.Active, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundError("staff", email)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
