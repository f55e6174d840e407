package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wingscafe/inventory/internal/apperr"
	"github.com/wingscafe/inventory/internal/hash"
	"github.com/wingscafe/inventory/internal/model"
	"github.com/wingscafe/inventory/internal/repository"
)

type RegisterUserParams struct {
	Email    string
	Password string
}

type UpdateUserParams struct {
	Email    *string
	Password *string
}

type UserService interface {
	ListAllUsers(ctx context.Context) ([]model.User, error)
	// RegisterUser creates a user with a bcrypt-hashed password. Fails with
	// EmailTakenErr when the email is already registered.
	RegisterUser(ctx context.Context, params RegisterUserParams) (model.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, params UpdateUserParams) (model.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{
		userRepo: userRepo,
	}
}

func (s *userService) ListAllUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.ListAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("user repository list all users: %w", err)
	}

	return users, nil
}

func (s *userService) RegisterUser(ctx context.Context, params RegisterUserParams) (model.User, error) {
	_, err := s.userRepo.GetUserByEmail(ctx, params.Email)
	if err == nil {
		return model.User{}, apperr.EmailTakenErr
	}
	if !errors.Is(err, apperr.UserNotFoundErr) {
		return model.User{}, fmt.Errorf("user repository get user by email: %w", err)
	}

	passwordHash, err := hash.Password(params.Password)
	if err != nil {
		return model.User{}, fmt.Errorf("hash password: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return model.User{}, fmt.Errorf("generate uuid v7: %w", err)
	}

	now := time.Now()
	user := model.User{
		ID:           id,
		Email:        params.Email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return model.User{}, fmt.Errorf("user repository create user: %w", err)
	}

	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, id uuid.UUID, params UpdateUserParams) (model.User, error) {
	user, err := s.userRepo.GetUser(ctx, id)
	if err != nil {
		return model.User{}, fmt.Errorf("user repository get user: %w", err)
	}

	if params.Email != nil {
		user.Email = *params.Email
	}
	if params.Password != nil {
		passwordHash, err := hash.Password(*params.Password)
		if err != nil {
			return model.User{}, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = passwordHash
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return model.User{}, fmt.Errorf("user repository update user: %w", err)
	}

	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := s.userRepo.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("user repository delete user: %w", err)
	}

	return nil
}
