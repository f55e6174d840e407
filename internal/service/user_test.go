package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wingscafe/inventory/internal/apperr"
	"github.com/wingscafe/inventory/internal/hash"
	"github.com/wingscafe/inventory/pkg/ptr"
)

func TestUserService_RegisterUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Should store a bcrypt hash, not the password", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewUserService(repo)

		user, err := svc.RegisterUser(ctx, RegisterUserParams{
			Email:    "owner@wingscafe.test",
			Password: "hunter22",
		})
		require.NoError(t, err)

		stored, err := repo.GetUser(ctx, user.ID)
		require.NoError(t, err)
		assert.NotEqual(t, "hunter22", stored.PasswordHash)
		assert.True(t, hash.CheckPassword(stored.PasswordHash, "hunter22"))
	})

	t.Run("Should reject a duplicate email", func(t *testing.T) {
		svc := NewUserService(newFakeUserRepo())

		_, err := svc.RegisterUser(ctx, RegisterUserParams{
			Email:    "owner@wingscafe.test",
			Password: "hunter22",
		})
		require.NoError(t, err)

		_, err = svc.RegisterUser(ctx, RegisterUserParams{
			Email:    "owner@wingscafe.test",
			Password: "other-pass",
		})
		assert.ErrorIs(t, err, apperr.EmailTakenErr)
	})
}

func TestUserService_UpdateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Should rehash the password on change", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewUserService(repo)

		user, err := svc.RegisterUser(ctx, RegisterUserParams{
			Email:    "owner@wingscafe.test",
			Password: "hunter22",
		})
		require.NoError(t, err)

		updated, err := svc.UpdateUser(ctx, user.ID, UpdateUserParams{
			Password: ptr.New("new-secret"),
		})
		require.NoError(t, err)

		assert.True(t, hash.CheckPassword(updated.PasswordHash, "new-secret"))
		assert.False(t, hash.CheckPassword(updated.PasswordHash, "hunter22"))
	})

	t.Run("Should fail for an unknown user", func(t *testing.T) {
		svc := NewUserService(newFakeUserRepo())

		_, err := svc.UpdateUser(ctx, uuid.New(), UpdateUserParams{
			Email: ptr.New("new@wingscafe.test"),
		})
		assert.ErrorIs(t, err, apperr.UserNotFoundErr)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Should delete an existing user", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewUserService(repo)

		user, err := svc.RegisterUser(ctx, RegisterUserParams{
			Email:    "owner@wingscafe.test",
			Password: "hunter22",
		})
		require.NoError(t, err)

		require.NoError(t, svc.DeleteUser(ctx, user.ID))

		users, err := svc.ListAllUsers(ctx)
		require.NoError(t, err)
		assert.Empty(t, users)
	})
}
