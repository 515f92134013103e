package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shahmilc/LittleLemonAPI/repository"
)

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)

	user, err := svc.Register(context.Background(), "alice", "alice@example.com", "s3cret")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "s3cret", user.Password, "password must be stored hashed")

	token, got, err := svc.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, got.ID)

	_, _, err = svc.Login(context.Background(), "alice", "wrong")
	require.Error(t, err)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)

	_, err := svc.Register(context.Background(), "alice", "", "pw")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "alice", "", "pw")
	require.Error(t, err)
}
