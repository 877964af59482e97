package middleware

import (
	"strings"

	"promessas-api/internal/config"
	"promessas-api/internal/core/domain"
	"promessas-api/internal/pkg/jwt"
	"promessas-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UserKey is the Locals key holding the authenticated domain.AuthUser
const UserKey = "user"

// AuthMiddleware requires a valid bearer access token
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return response.Unauthorized(c, domain.ErrTokenMissing.Message)
		}

		accessToken := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if accessToken == "" {
			return response.Unauthorized(c, domain.ErrTokenMissing.Message)
		}

		claims, err := jwt.ValidateAccessToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			return response.Unauthorized(c, domain.ErrTokenInvalid.Message)
		}

		c.Locals(UserKey, domain.AuthUser{
			UserID: claims.UserID,
			Email:  claims.Email,
		})

		return c.Next()
	}
}
