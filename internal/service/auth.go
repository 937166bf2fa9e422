package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"grandstay-backend/internal/domain"
	"grandstay-backend/internal/logger"
	"grandstay-backend/internal/repository"
	"grandstay-backend/internal/security"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type authService struct {
	staff  repository.StaffRepository
	tokens security.TokenManager
}

func NewAuthService(staff repository.StaffRepository, tokens security.TokenManager) AuthService {
	return &authService{staff: staff, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.Staff, error) {
	logger.EnterMethod("AuthService.Login", "email", email)

	staff, err := s.staff.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Same failure as a wrong password; do not leak which it was.
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !staff.Active {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(staff.ID, staff.Email, staff.Role)
	if err != nil {
		logger.ExitMethodWithError("AuthService.Login", err)
		return "", nil, err
	}

	logger.ExitMethod("AuthService.Login", "staffId", staff.ID, "role", staff.Role)
	return token, staff, nil
}

func (s *authService) CreateStaff(ctx context.Context, actingRole domain.Role, email, name, password string, role domain.Role) (*domain.Staff, error) {
	if !actingRole.CanManage() {
		return nil, domain.ForbiddenError("creating staff accounts requires the manager role")
	}
	if strings.TrimSpace(email) == "" || strings.TrimSpace(name) == "" {
		return nil, domain.ValidationError("email and name are required")
	}
	if len(password) < 8 {
		return nil, domain.ValidationError("password must be at least 8 characters")
	}
	if role != domain.RoleEmployee && role != domain.RoleManager {
		return nil, domain.ValidationError("unknown role %q", role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	staff := &domain.Staff{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
	}
	if err := s.staff.Create(ctx, staff); err != nil {
		return nil, err
	}
	return staff, nil
}
