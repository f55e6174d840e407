package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/wingscafe/inventory/internal/apperr"
	"github.com/wingscafe/inventory/internal/hash"
	"github.com/wingscafe/inventory/internal/repository"
	"github.com/wingscafe/inventory/internal/session"
)

type AuthService interface {
	// Login verifies the credentials and opens the session gate. Unknown
	// email and wrong password both fail with InvalidCredentialsErr.
	Login(ctx context.Context, email, password string) error
	Logout()
	SessionState() session.State
}

type authService struct {
	userRepo repository.UserRepository
	gate     *session.Gate
}

func NewAuthService(userRepo repository.UserRepository, gate *session.Gate) AuthService {
	return &authService{
		userRepo: userRepo,
		gate:     gate,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) error {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.UserNotFoundErr) {
			return apperr.InvalidCredentialsErr
		}
		return fmt.Errorf("user repository get user by email: %w", err)
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		return apperr.InvalidCredentialsErr
	}

	s.gate.Authenticate()
	return nil
}

func (s *authService) Logout() {
	s.gate.Reset()
}

func (s *authService) SessionState() session.State {
	return s.gate.State()
}
