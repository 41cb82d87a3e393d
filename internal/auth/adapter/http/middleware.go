package http

import (
	"context"

	"estatehub/internal/auth/usecase"
	"estatehub/internal/shared/contextkeys"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// AuthMiddleware guards the privileged admin surface.
type AuthMiddleware struct {
	usecase usecase.IdentityUsecaseInterface
}

// NewAuthMiddleware creates the authentication middleware.
func NewAuthMiddleware(uc usecase.IdentityUsecaseInterface) *AuthMiddleware {
	return &AuthMiddleware{usecase: uc}
}

// CORS middleware for the admin panel and the marketing site.
func (m *AuthMiddleware) CORS() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	})
}

// RequestID middleware.
func (m *AuthMiddleware) RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     "X-Request-ID",
		ContextKey: string(contextkeys.RequestIDKey),
	})
}

// RequireAdmin returns middleware that rejects any request whose bearer
// token does not verify. All failure modes produce the same response body.
func (m *AuthMiddleware) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := m.usecase.Authorize(c.Context(), c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "unauthorized",
			})
		}

		ctx := c.UserContext()
		ctx = context.WithValue(ctx, contextkeys.UserIDKey, claims.SubjectID)
		ctx = context.WithValue(ctx, contextkeys.UserEmailKey, claims.Email)
		ctx = context.WithValue(ctx, contextkeys.RoleKey, claims.Role)
		c.SetUserContext(ctx)

		return c.Next()
	}
}
