package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/boardsdb/internal/services"
	"github.com/localnerve/boardsdb/internal/types"
)

// identityKey is the Fiber locals key carrying the resolved caller identity.
const identityKey = "identity"

// ResolveIdentity decodes an optional bearer credential into a caller
// identity. An absent header leaves the request anonymous and lets it
// proceed; a malformed or forged credential is rejected outright.
func ResolveIdentity(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Next()
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		identity, err := services.ParseToken(jwtSecret, tokenString)
		if err != nil {
			return types.Unauthenticated("Invalid credential", "auth.credential")
		}

		c.Locals(identityKey, *identity)
		return c.Next()
	}
}

// RequireUser is the authorization gate: it fails any request the resolver
// left anonymous. Applied to every resource route; registration and login
// stay open.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := c.Locals(identityKey).(types.Identity); !ok {
			return types.Unauthenticated("Authentication required", "auth.required")
		}
		return c.Next()
	}
}

// Identity returns the resolved identity for the request, if any.
func Identity(c *fiber.Ctx) (types.Identity, bool) {
	identity, ok := c.Locals(identityKey).(types.Identity)
	return identity, ok
}
