package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finboard/dashboard/internal/domain/entity"
	"github.com/finboard/dashboard/pkg/helpers"
)

func newAuthService(t *testing.T, users *fakeUserRepo) *AuthService {
	t.Helper()
	jwt := helpers.NewJWTManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	return NewAuthService(users, jwt, nil, nil)
}

func seededUsers(t *testing.T) *fakeUserRepo {
	t.Helper()
	hash, err := helpers.HashPassword("123456")
	require.NoError(t, err)
	return &fakeUserRepo{users: map[string]entity.User{
		"user@nextmail.com": {ID: "user-1", Name: "User", Email: "user@nextmail.com", Password: hash},
	}}
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials resolve the user", func(t *testing.T) {
		svc := newAuthService(t, seededUsers(t))

		u, err := svc.Authenticate(ctx, "user@nextmail.com", "123456")
		require.NoError(t, err)
		assert.Equal(t, "user-1", u.ID)
	})

	t.Run("unknown email is invalid credentials", func(t *testing.T) {
		svc := newAuthService(t, seededUsers(t))

		_, err := svc.Authenticate(ctx, "nobody@nextmail.com", "123456")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password is invalid credentials", func(t *testing.T) {
		svc := newAuthService(t, seededUsers(t))

		_, err := svc.Authenticate(ctx, "user@nextmail.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("store failure is not masked as bad credentials", func(t *testing.T) {
		svc := newAuthService(t, &fakeUserRepo{err: errStore})

		_, err := svc.Authenticate(ctx, "user@nextmail.com", "123456")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
		assert.ErrorIs(t, err, errStore)
	})
}

func TestGetUser(t *testing.T) {
	ctx := context.Background()

	t.Run("absent email is nil without error", func(t *testing.T) {
		svc := newAuthService(t, &fakeUserRepo{users: map[string]entity.User{}})

		u, err := svc.GetUser(ctx, "nobody@nextmail.com")
		require.NoError(t, err)
		assert.Nil(t, u)
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		svc := newAuthService(t, &fakeUserRepo{err: errStore})

		_, err := svc.GetUser(ctx, "user@nextmail.com")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to fetch user")
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("rotates the pair off a valid refresh token", func(t *testing.T) {
		svc := newAuthService(t, seededUsers(t))
		_, pair, err := svc.Login(ctx, "user@nextmail.com", "123456")
		require.NoError(t, err)

		u, next, err := svc.Refresh(ctx, pair.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, "user-1", u.ID)
		assert.NotEmpty(t, next.AccessToken)
		assert.NotEmpty(t, next.RefreshToken)
		assert.True(t, next.RefreshTokenExpiry.After(next.AccessTokenExpiry))
	})

	t.Run("garbage token is invalid credentials", func(t *testing.T) {
		svc := newAuthService(t, seededUsers(t))

		_, _, err := svc.Refresh(ctx, "not-a-token")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("access token does not redeem as a refresh token", func(t *testing.T) {
		svc := newAuthService(t, seededUsers(t))
		_, pair, err := svc.Login(ctx, "user@nextmail.com", "123456")
		require.NoError(t, err)

		_, _, err = svc.Refresh(ctx, pair.AccessToken)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a token pair", func(t *testing.T) {
		svc := newAuthService(t, seededUsers(t))

		u, pair, err := svc.Login(ctx, "user@nextmail.com", "123456")
		require.NoError(t, err)
		assert.Equal(t, "User", u.Name)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
		assert.True(t, pair.AccessTokenExpiry.After(time.Now()))
		assert.True(t, pair.RefreshTokenExpiry.After(pair.AccessTokenExpiry))
	})

	t.Run("bad credentials never issue tokens", func(t *testing.T) {
		svc := newAuthService(t, seededUsers(t))

		_, pair, err := svc.Login(ctx, "user@nextmail.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Empty(t, pair.AccessToken)
	})
}
