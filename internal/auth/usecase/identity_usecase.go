package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"estatehub/internal/auth/config"
	"estatehub/internal/auth/domain/repository"
	"estatehub/internal/domain/model"
	apperrors "estatehub/internal/shared/errors"
	"estatehub/internal/shared/logger"
	"estatehub/internal/store"

	"golang.org/x/crypto/bcrypt"
)

// RoleAdmin is the only privileged role. A request is either anonymous or
// authenticated as an admin; there is no persisted session state.
const RoleAdmin = "admin"

const bearerPrefix = "Bearer "

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IdentityUsecaseInterface defines the contract for the identity gateway.
type IdentityUsecaseInterface interface {
	Login(ctx context.Context, req LoginRequest) (*model.Admin, string, error)
	Authorize(ctx context.Context, authorizationHeader string) (*repository.Claims, error)
	HashPassword(plain string) (string, error)
	VerifyPassword(plain, hash string) bool
}

// LoginRequest represents the admin login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// IdentityUsecase implements the token-gated identity boundary every
// privileged operation goes through.
type IdentityUsecase struct {
	store    *store.Store
	codec    *store.Codec
	tokenSvc repository.TokenService
	config   *config.Config
	logger   logger.Logger
}

// NewIdentityUsecase creates the identity usecase.
func NewIdentityUsecase(s *store.Store, codec *store.Codec, tokenSvc repository.TokenService, cfg *config.Config, log logger.Logger) *IdentityUsecase {
	return &IdentityUsecase{
		store:    s,
		codec:    codec,
		tokenSvc: tokenSvc,
		config:   cfg,
		logger:   log.WithComponent("identity"),
	}
}

// HashPassword produces a salted, cost-tunable one-way hash.
func (uc *IdentityUsecase) HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), uc.config.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext candidate against a stored hash using
// the hash algorithm's own constant-time verify routine.
func (uc *IdentityUsecase) VerifyPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// Login authenticates an admin by email and password and issues a bearer
// token. Unknown email and wrong password are indistinguishable to the caller.
func (uc *IdentityUsecase) Login(ctx context.Context, req LoginRequest) (*model.Admin, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !emailRegex.MatchString(email) {
		return nil, "", apperrors.NewValidationError("invalid email format")
	}
	if req.Password == "" {
		return nil, "", apperrors.NewValidationError("password is required")
	}

	admins, err := store.Read[model.Admin](uc.store, model.CollectionAdmins)
	if err != nil {
		return nil, "", err
	}

	var admin *model.Admin
	for i := range admins {
		if strings.EqualFold(admins[i].Email, email) && admins[i].Active() {
			admin = &admins[i]
			break
		}
	}
	if admin == nil || !uc.VerifyPassword(req.Password, admin.PasswordHash) {
		return nil, "", apperrors.NewUnauthorizedError().WithCause(apperrors.ErrInvalidCredentials)
	}

	role := admin.Role
	if role == "" {
		role = RoleAdmin
	}
	token, err := uc.tokenSvc.IssueToken(ctx, admin.ID, admin.Email, role)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	uc.touchLastLogin(admin.ID)

	out := *admin
	out.PasswordHash = ""
	return &out, token, nil
}

// touchLastLogin records the login timestamp. The write is non-critical: a
// durability failure here is logged and swallowed so login still succeeds on
// read-only storage.
func (uc *IdentityUsecase) touchLastLogin(adminID string) {
	now := uc.codec.Now()
	err := store.Mutate(uc.store, model.CollectionAdmins, func(admins []model.Admin) ([]model.Admin, error) {
		for i := range admins {
			if admins[i].ID == adminID {
				admins[i].LastLoginAt = now
				admins[i].UpdatedAt = now
			}
		}
		return admins, nil
	})
	if err != nil {
		uc.logger.WithFields(map[string]interface{}{"adminId": adminID}).
			Warnf("could not record login timestamp: %v", err)
	}
}

// Authorize resolves the request's identity from an Authorization header
// value. Missing header, malformed scheme, expired token, and tampered
// signature all yield the same Unauthorized outcome.
func (uc *IdentityUsecase) Authorize(ctx context.Context, authorizationHeader string) (*repository.Claims, error) {
	if !strings.HasPrefix(authorizationHeader, bearerPrefix) {
		return nil, apperrors.NewUnauthorizedError()
	}
	tokenString := strings.TrimPrefix(authorizationHeader, bearerPrefix)

	claims, err := uc.tokenSvc.VerifyToken(ctx, tokenString)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError()
	}
	return claims, nil
}

// Ensure IdentityUsecase implements IdentityUsecaseInterface.
var _ IdentityUsecaseInterface = (*IdentityUsecase)(nil)
