// Package auth verifies JWT bearer tokens on API requests.
//
// Token issuance is handled by the credential service; this middleware only
// verifies the HMAC signature and resolves the subject (the user id) into
// fiber locals so handlers can pass an explicit owner id downstream.
package auth

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// LocalsUserID is the fiber locals key holding the authenticated user's id.
const LocalsUserID = "user_id"

// Claims are the token claims issued by the credential service.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// New returns a middleware that rejects requests without a valid bearer token.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")

		userID, err := validate(cfg.Secret, tokenStr)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
		}

		c.Locals(LocalsUserID, userID)
		return c.Next()
	}
}

// UserID returns the authenticated user's id from the request locals.
func UserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(LocalsUserID).(int64)
	return id
}

func validate(secret, tokenStr string) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, jwt.ErrSignatureInvalid
	}

	// Older clients carry the id in the subject instead of the userId claim.
	raw := claims.UserID
	if raw == "" {
		raw = claims.Subject
	}
	return strconv.ParseInt(raw, 10, 64)
}
