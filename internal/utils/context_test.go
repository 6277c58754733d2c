package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amorags/notepad/models"
)

func TestGetUserFromContext_Found(t *testing.T) {
	want := models.User{UserID: 1, Email: "user@example.com"}
	ctx := context.WithValue(context.Background(), CurrentUserCtxKey, want)

	got, ok := GetUserFromContext(ctx)

	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestGetUserFromContext_Missing(t *testing.T) {
	_, ok := GetUserFromContext(context.Background())

	assert.False(t, ok)
}

func TestGetUserFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), CurrentUserCtxKey, "not a user")

	_, ok := GetUserFromContext(ctx)

	assert.False(t, ok)
}
