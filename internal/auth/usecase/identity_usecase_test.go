package usecase_test

import (
	"context"
	"testing"
	"time"

	"estatehub/internal/auth/adapter/security"
	authconfig "estatehub/internal/auth/config"
	"estatehub/internal/auth/usecase"
	"estatehub/internal/domain/model"
	apperrors "estatehub/internal/shared/errors"
	"estatehub/internal/shared/logger"
	"estatehub/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newIdentityFixture(t *testing.T) (*store.Store, *usecase.IdentityUsecase) {
	t.Helper()

	cfg := &authconfig.Config{
		JWTSecretKey: "test-secret-key-32-characters-long-12345",
		JWTIssuer:    "test-issuer",
		TokenTTL:     time.Hour,
		BcryptCost:   4, // minimum cost keeps the test fast
	}
	tokenSvc, err := security.NewJWTokenService(cfg)
	require.NoError(t, err)

	s, err := store.New(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	uc := usecase.NewIdentityUsecase(s, store.NewCodec(), tokenSvc, cfg, logger.NewLogger())
	return s, uc
}

func seedAdmin(t *testing.T, s *store.Store, uc *usecase.IdentityUsecase, email, password string) model.Admin {
	t.Helper()
	hash, err := uc.HashPassword(password)
	require.NoError(t, err)

	admin := model.Admin{
		Meta:         model.Meta{ID: "admin-1", CreatedAt: "2025-01-01T00:00:00.000Z", UpdatedAt: "2025-01-01T00:00:00.000Z"},
		Email:        email,
		PasswordHash: hash,
		Name:         "Site Admin",
		Role:         usecase.RoleAdmin,
	}
	require.NoError(t, store.Replace(s, model.CollectionAdmins, []model.Admin{admin}))
	return admin
}

func TestHashAndVerifyPassword(t *testing.T) {
	_, uc := newIdentityFixture(t)

	hash, err := uc.HashPassword("s3cret-Pass!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-Pass!", hash)

	assert.True(t, uc.VerifyPassword("s3cret-Pass!", hash))
	assert.False(t, uc.VerifyPassword("wrong", hash))
}

func TestLogin_Success(t *testing.T) {
	s, uc := newIdentityFixture(t)
	seedAdmin(t, s, uc, "admin@example.com", "s3cret-Pass!")

	admin, token, err := uc.Login(context.Background(), usecase.LoginRequest{
		Email:    "Admin@Example.com",
		Password: "s3cret-Pass!",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Empty(t, admin.PasswordHash, "password hash must never be returned")

	// Login records the timestamp on the stored record.
	admins, err := store.Read[model.Admin](s, model.CollectionAdmins)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.NotEmpty(t, admins[0].LastLoginAt)
}

func TestLogin_BadCredentials(t *testing.T) {
	s, uc := newIdentityFixture(t)
	seedAdmin(t, s, uc, "admin@example.com", "s3cret-Pass!")

	_, _, err := uc.Login(context.Background(), usecase.LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong",
	})
	assert.True(t, apperrors.IsUnauthorized(err))

	_, _, err = uc.Login(context.Background(), usecase.LoginRequest{
		Email:    "unknown@example.com",
		Password: "s3cret-Pass!",
	})
	assert.True(t, apperrors.IsUnauthorized(err), "unknown email and wrong password are indistinguishable")
}

func TestLogin_InactiveAdminRejected(t *testing.T) {
	s, uc := newIdentityFixture(t)
	admin := seedAdmin(t, s, uc, "admin@example.com", "s3cret-Pass!")
	admin.IsActive = model.Bool(false)
	require.NoError(t, store.Replace(s, model.CollectionAdmins, []model.Admin{admin}))

	_, _, err := uc.Login(context.Background(), usecase.LoginRequest{
		Email:    "admin@example.com",
		Password: "s3cret-Pass!",
	})
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestAuthorize_UniformUnauthorized(t *testing.T) {
	s, uc := newIdentityFixture(t)
	seedAdmin(t, s, uc, "admin@example.com", "s3cret-Pass!")

	_, validToken, err := uc.Login(context.Background(), usecase.LoginRequest{
		Email:    "admin@example.com",
		Password: "s3cret-Pass!",
	})
	require.NoError(t, err)

	headers := map[string]string{
		"missing header": "",
		"non-bearer":     "Basic " + validToken,
		"tampered token": "Bearer " + validToken[:len(validToken)-2] + "xx",
		"bare garbage":   "Bearer not.a.token",
	}
	for name, header := range headers {
		t.Run(name, func(t *testing.T) {
			claims, err := uc.Authorize(context.Background(), header)
			assert.Nil(t, claims)
			require.Error(t, err)
			appErr, ok := err.(*apperrors.AppError)
			require.True(t, ok)
			assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
			assert.Equal(t, "unauthorized", appErr.Message, "failure cause must not leak")
		})
	}
}

func TestAuthorize_ExpiredTokenSameOutcome(t *testing.T) {
	cfg := &authconfig.Config{
		JWTSecretKey: "test-secret-key-32-characters-long-12345",
		JWTIssuer:    "test-issuer",
		TokenTTL:     time.Millisecond,
		BcryptCost:   4,
	}
	tokenSvc, err := security.NewJWTokenService(cfg)
	require.NoError(t, err)
	s, err := store.New(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	uc := usecase.NewIdentityUsecase(s, store.NewCodec(), tokenSvc, cfg, logger.NewLogger())

	token, err := tokenSvc.IssueToken(context.Background(), "admin-1", "a@b.co", "admin")
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	claims, err := uc.Authorize(context.Background(), "Bearer "+token)
	assert.Nil(t, claims)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
}

func TestAuthorize_ValidToken(t *testing.T) {
	s, uc := newIdentityFixture(t)
	seedAdmin(t, s, uc, "admin@example.com", "s3cret-Pass!")

	_, token, err := uc.Login(context.Background(), usecase.LoginRequest{
		Email:    "admin@example.com",
		Password: "s3cret-Pass!",
	})
	require.NoError(t, err)

	claims, err := uc.Authorize(context.Background(), "Bearer "+token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.SubjectID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.True(t, claims.HasRole(usecase.RoleAdmin))
}
