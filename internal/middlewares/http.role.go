package middlewares

import (
	"slices"

	"github.com/gofiber/fiber/v3"

	sharedjwt "github.com/joshuarp/image-derivative-api/internal/shared/jwt"
)

// NewHTTPRoleMiddleware only lets through callers whose verified token carries
// one of roles. It must run after NewHTTPJWTMiddleware.
func NewHTTPRoleMiddleware(roles ...string) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := c.Locals("jwt_claims").(*sharedjwt.Claims)
		if !ok || claims == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing or invalid authorization header",
			})
		}

		if !slices.Contains(roles, claims.Role) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "insufficient role",
			})
		}
		return c.Next()
	}
}
