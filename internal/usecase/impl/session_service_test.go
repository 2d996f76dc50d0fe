package impl

import (
	"context"
	"testing"

	"furnishop/internal/domain/entity"
	"furnishop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_SeedsRegistryOnFirstUse(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	users, err := env.session.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "admin@furnishop.com", users[0].Email)
	assert.Equal(t, entity.RoleAdmin, users[0].Role)
	assert.Equal(t, "john@example.com", users[1].Email)
	assert.Equal(t, entity.RoleUser, users[1].Role)

	raw, err := env.store.Get(ctx, "users")
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "admin123")
	assert.NotContains(t, string(raw), "user123")

	assert.Nil(t, env.session.CurrentUser(ctx))
	assert.False(t, env.session.IsAdmin(ctx))
}

func TestSessionService_Login(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		password  string
		wantOK    bool
		wantAdmin bool
	}{
		{name: "admin", email: "admin@furnishop.com", password: "admin123", wantOK: true, wantAdmin: true},
		{name: "user", email: "john@example.com", password: "user123", wantOK: true},
		{name: "wrong password", email: "john@example.com", password: "user1234"},
		{name: "unknown email", email: "jane@example.com", password: "user123"},
		{name: "email is case-sensitive", email: "John@example.com", password: "user123"},
		{name: "empty", email: "", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			ctx := context.Background()

			ok, err := env.session.Login(ctx, usecase.LoginInput{Email: tt.email, Password: tt.password})
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantAdmin, env.session.IsAdmin(ctx))

			current := env.session.CurrentUser(ctx)
			if !tt.wantOK {
				assert.Nil(t, current)
				_, err := env.store.Get(ctx, "user")
				assert.Error(t, err)

				return
			}
			require.NotNil(t, current)
			assert.Equal(t, tt.email, current.Email)
		})
	}
}

func TestSessionService_SessionSurvivesRestart(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.login(t, "admin@furnishop.com", "admin123")

	raw, err := env.store.Get(ctx, "user")
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")

	restarted := newTestEnvWith(t, env.store, env.seeds, false)
	current := restarted.session.CurrentUser(ctx)
	require.NotNil(t, current)
	assert.Equal(t, int64(1), current.ID)
	assert.True(t, restarted.session.IsAdmin(ctx))
}

func TestSessionService_Signup(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	ok, err := env.session.Signup(ctx, usecase.SignupInput{Name: "A", Email: "x@e.com", Password: "secret1"})
	require.NoError(t, err)
	require.True(t, ok)

	current := env.session.CurrentUser(ctx)
	require.NotNil(t, current)
	assert.Equal(t, "A", current.Name)
	assert.Equal(t, entity.RoleUser, current.Role)
	assert.NotZero(t, current.ID)

	// the new account can log in again after logout
	require.NoError(t, env.session.Logout(ctx))
	env.login(t, "x@e.com", "secret1")

	restarted := newTestEnvWith(t, env.store, env.seeds, false)
	users, err := restarted.session.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3)
}

func TestSessionService_SignupRejectsDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	ok, err := env.session.Signup(ctx, usecase.SignupInput{Name: "A", Email: "x@e.com", Password: "secret1"})
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, env.session.Logout(ctx))

	ok, err = env.session.Signup(ctx, usecase.SignupInput{Name: "B", Email: "x@e.com", Password: "other12"})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, env.session.CurrentUser(ctx))

	users, err := env.session.ListUsers(ctx)
	require.NoError(t, err)

	var matches []*entity.User
	for _, u := range users {
		if u.Email == "x@e.com" {
			matches = append(matches, u)
		}
	}
	require.Len(t, matches, 1)
	assert.Equal(t, "A", matches[0].Name)

	// seed accounts are taken as well
	ok, err = env.session.Signup(ctx, usecase.SignupInput{Name: "C", Email: "admin@furnishop.com", Password: "whatever"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionService_LogoutIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.login(t, "john@example.com", "user123")

	require.NoError(t, env.session.Logout(ctx))
	require.NoError(t, env.session.Logout(ctx))

	assert.Nil(t, env.session.CurrentUser(ctx))
	_, err := env.store.Get(ctx, "user")
	assert.Error(t, err)
}

func TestSessionService_CurrentUserIsACopy(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.login(t, "john@example.com", "user123")

	current := env.session.CurrentUser(ctx)
	current.Role = entity.RoleAdmin

	assert.False(t, env.session.IsAdmin(ctx))
}
