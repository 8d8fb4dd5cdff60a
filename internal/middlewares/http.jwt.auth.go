package middlewares

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v3"

	sharedjwt "github.com/joshuarp/image-derivative-api/internal/shared/jwt"
)

func NewHTTPJWTMiddleware(tokenManager sharedjwt.TokenManager) fiber.Handler {
	return func(c fiber.Ctx) error {
		path := c.Path()
		if c.Method() == fiber.MethodPost && strings.Contains(path, "/auth/login") {
			return c.Next()
		}

		tokenString, ok := bearerToken(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing or invalid authorization header",
			})
		}

		claims, err := tokenManager.Verify(context.Background(), tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid token",
			})
		}

		setClaims(c, claims)
		return c.Next()
	}
}

// NewHTTPOptionalJWTMiddleware attaches claims when a valid bearer token is
// present and lets every request through otherwise.
func NewHTTPOptionalJWTMiddleware(tokenManager sharedjwt.TokenManager) fiber.Handler {
	return func(c fiber.Ctx) error {
		if tokenManager == nil {
			return c.Next()
		}

		tokenString, ok := bearerToken(c)
		if !ok {
			return c.Next()
		}

		if claims, err := tokenManager.Verify(context.Background(), tokenString); err == nil {
			setClaims(c, claims)
		}
		return c.Next()
	}
}

func bearerToken(c fiber.Ctx) (string, bool) {
	authorizationHeader := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	parts := strings.SplitN(authorizationHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	tokenString := strings.TrimSpace(parts[1])
	return tokenString, tokenString != ""
}

func setClaims(c fiber.Ctx, claims *sharedjwt.Claims) {
	c.Locals("user_id", claims.Subject)
	c.Locals("jwt_claims", claims)
}
