package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostelnexus-be/internal/dto"
)

func TestRegisterAndLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	uow := newFakeUow()
	svc := NewAuthService(fakeFactory{uow: uow}, 24*time.Hour)
	ctx := context.Background()

	reg, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "john@example.com",
		Password: "password123",
		FullName: "John Doe",
	})
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", reg.Email)

	// Password hash is stored, never the plaintext
	stored := uow.students.students[0]
	require.NotNil(t, stored.PasswordHash)
	assert.NotContains(t, *stored.PasswordHash, "password123")

	login, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "john@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, reg.Id, login.Student.Id)
	assert.True(t, login.ExpiresAt.After(time.Now()))
}

func TestLoginWrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	uow := newFakeUow()
	svc := NewAuthService(fakeFactory{uow: uow}, 24*time.Hour)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "john@example.com",
		Password: "password123",
		FullName: "John Doe",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "john@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	uow := newFakeUow()
	svc := NewAuthService(fakeFactory{uow: uow}, 24*time.Hour)
	ctx := context.Background()

	req := &dto.RegisterRequest{
		Email:    "john@example.com",
		Password: "password123",
		FullName: "John Doe",
	}

	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	assert.Error(t, err)
	assert.Len(t, uow.students.students, 1)
}
