package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	LocalUserID  = "userID"
	LocalEmail   = "email"
	LocalIsAdmin = "isAdmin"
)

func parseBearer(c *fiber.Ctx, secret string) (jwt.MapClaims, bool) {
	auth := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(auth, "Bearer ") {
		return nil, false
	}
	raw := strings.TrimPrefix(auth, "Bearer ")

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	return claims, ok
}

func storeClaims(c *fiber.Ctx, claims jwt.MapClaims) {
	if sub, ok := claims["sub"].(string); ok {
		c.Locals(LocalUserID, sub)
	}
	if email, ok := claims["email"].(string); ok {
		c.Locals(LocalEmail, email)
	}
	if isAdmin, ok := claims["isAdmin"].(bool); ok {
		c.Locals(LocalIsAdmin, isAdmin)
	}
}

// RequireAuth rejects requests without a valid bearer token and stores the
// token's identity claims in the request locals.
func RequireAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := parseBearer(c, secret)
		if !ok {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		storeClaims(c, claims)
		return c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if isAdmin, ok := c.Locals(LocalIsAdmin).(bool); !ok || !isAdmin {
			return c.SendStatus(fiber.StatusForbidden)
		}
		return c.Next()
	}
}

// OptionalAuth stores identity claims when a valid token is present and
// passes the request through as anonymous otherwise.
func OptionalAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if claims, ok := parseBearer(c, secret); ok {
			storeClaims(c, claims)
		}
		return c.Next()
	}
}

// CallerID returns the authenticated caller's user id, or "" for anonymous
// requests.
func CallerID(c *fiber.Ctx) string {
	if id, ok := c.Locals(LocalUserID).(string); ok {
		return id
	}
	return ""
}
