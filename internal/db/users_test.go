package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ldmoreira/fuellog/internal/apperr"
	"github.com/ldmoreira/fuellog/internal/models"
)

func TestUserStore_InsertAndFind(t *testing.T) {
	users := NewUserStore(NewMemoryRecordStore())
	ctx := context.Background()

	created, err := users.InsertUser(ctx, models.User{
		Username:     "owner",
		PasswordHash: "hashed",
		CreatedAt:    time.Now(),
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	byName, err := users.FindUserByUsername(ctx, "owner")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)
	assert.Equal(t, "hashed", byName.PasswordHash)

	byID, err := users.FindUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "owner", byID.Username)
}

func TestUserStore_InsertMintsDistinctIDs(t *testing.T) {
	users := NewUserStore(NewMemoryRecordStore())
	ctx := context.Background()

	first, err := users.InsertUser(ctx, models.User{Username: "a", CreatedAt: time.Now()})
	require.NoError(t, err)
	second, err := users.InsertUser(ctx, models.User{Username: "b", CreatedAt: time.Now()})
	require.NoError(t, err)

	// back-to-back inserts land in the same millisecond
	assert.NotEqual(t, first.ID, second.ID)
	assert.Greater(t, models.NumericID(second.ID), models.NumericID(first.ID))
}

func TestUserStore_FindMissing(t *testing.T) {
	users := NewUserStore(NewMemoryRecordStore())

	_, err := users.FindUserByUsername(context.Background(), "ghost")
	assert.True(t, apperr.IsNotFound(err))

	_, err = users.FindUserByID(context.Background(), "42")
	assert.True(t, apperr.IsNotFound(err))
}

func TestUserStore_UpdateLastLogin(t *testing.T) {
	users := NewUserStore(NewMemoryRecordStore())
	ctx := context.Background()

	created, err := users.InsertUser(ctx, models.User{Username: "owner", CreatedAt: time.Now()})
	require.NoError(t, err)
	require.NoError(t, users.UpdateLastLogin(ctx, created.ID))

	user, err := users.FindUserByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, user.LastLogin)

	assert.True(t, apperr.IsNotFound(users.UpdateLastLogin(ctx, "nope")))
}
