package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/models"
	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/store"
	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/testhelpers"
)

const testSecret = "test-secret"

func TestSignup(t *testing.T) {
	db := testhelpers.OpenTestDB(t)
	users := store.NewUserStore(db)
	svc := NewAuthService(users, testSecret)
	ctx := context.Background()

	user, token, err := svc.Signup(ctx, "alice", "alice@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "password123", user.PasswordHash)

	stored, err := users.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.ID)
}

func TestSignupTrimsWhitespace(t *testing.T) {
	db := testhelpers.OpenTestDB(t)
	users := store.NewUserStore(db)
	svc := NewAuthService(users, testSecret)

	user, _, err := svc.Signup(context.Background(), "  alice  ", " alice@example.com ", " password123 ")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestSignupValidation(t *testing.T) {
	db := testhelpers.OpenTestDB(t)
	users := store.NewUserStore(db)
	svc := NewAuthService(users, testSecret)
	ctx := context.Background()

	tests := []struct {
		name      string
		username  string
		email     string
		password  string
		wantField string
	}{
		{"bad username", "a", "alice@example.com", "password123", "username"},
		{"bad email", "alice", "nope", "password123", "email"},
		{"short password", "alice", "alice@example.com", "short", "password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Signup(ctx, tt.username, tt.email, tt.password)
			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	db := testhelpers.OpenTestDB(t)
	users := store.NewUserStore(db)
	svc := NewAuthService(users, testSecret)
	ctx := context.Background()

	_, _, err := svc.Signup(ctx, "alice", "alice@example.com", "password123")
	require.NoError(t, err)

	_, _, err = svc.Signup(ctx, "other", "alice@example.com", "password123")
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestLogin(t *testing.T) {
	db := testhelpers.OpenTestDB(t)
	users := store.NewUserStore(db)
	svc := NewAuthService(users, testSecret)
	ctx := context.Background()

	created, _, err := svc.Signup(ctx, "alice", "alice@example.com", "password123")
	require.NoError(t, err)

	user, token, err := svc.Login(ctx, "alice@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.NotEmpty(t, token)

	_, _, err = svc.Login(ctx, "alice@example.com", "wrongpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateToken(t *testing.T) {
	db := testhelpers.OpenTestDB(t)
	users := store.NewUserStore(db)
	svc := NewAuthService(users, testSecret)

	user, token, err := svc.Signup(context.Background(), "alice", "alice@example.com", "password123")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	_, err = svc.ValidateToken("not-a-token")
	assert.Error(t, err)

	// A token signed with another secret must be rejected.
	other := NewAuthService(users, "different-secret")
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}
