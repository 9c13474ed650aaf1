package user

import (
	"context"
	"strings"
	"time"

	"candyshop-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const resetTokenTTL = 15 * time.Minute

// Service defines the business logic for accounts and authentication.
type Service interface {
	Register(ctx context.Context, input RegisterInput) (*User, error)
	Login(ctx context.Context, email, password string) (*User, string, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, newPassword string) error
	GetByID(ctx context.Context, id uint) (*User, error)
	List(ctx context.Context) ([]*User, error)
	Update(ctx context.Context, id uint, input UpdateInput) (*User, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, input RegisterInput) (*User, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))

	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, ErrMissingFields
	}
	if len(input.Password) < 6 {
		return nil, ErrPasswordTooShort
	}

	existing, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &User{
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: hash,
		Role:         RoleCustomer,
	})
}

func (s *service) Login(ctx context.Context, email, password string) (*User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if u == nil || !CheckPasswordHash(password, u.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := GenerateJWT(u.ID, u.Role, u.Email)
	if err != nil {
		return nil, "", err
	}

	return u, token, nil
}

// ForgotPassword issues a one-shot reset token. The token is returned to the
// caller; delivery (email/SMS) is outside this service.
func (s *service) ForgotPassword(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrUserNotFound
	}

	token := uuid.New().String()
	if err := s.repo.SetResetToken(ctx, email, token, time.Now().Add(resetTokenTTL)); err != nil {
		return "", err
	}

	logger.FromCtx(ctx).Info("password reset token issued",
		zap.Uint("user_id", u.ID),
	)

	return token, nil
}

func (s *service) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < 6 {
		return ErrPasswordTooShort
	}

	u, err := s.repo.GetByResetToken(ctx, token)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrInvalidResetToken
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.repo.UpdatePassword(ctx, u.ID, hash)
}

func (s *service) GetByID(ctx context.Context, id uint) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, id uint, input UpdateInput) (*User, error) {
	return s.repo.Update(ctx, id, input)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
