package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrAuthRequired is returned when an operation needs a signed-in caller.
var ErrAuthRequired = errors.New("authentication required")

// Caller is the identity behind a request. The zero value is an
// unauthenticated caller.
type Caller struct {
	UserID        uuid.UUID
	Email         string
	Authenticated bool
}

// Anonymous returns an unauthenticated caller.
func Anonymous() Caller {
	return Caller{}
}

// Authenticated returns a signed-in caller with the given identity.
func Authenticated(userID uuid.UUID) Caller {
	return Caller{UserID: userID, Authenticated: true}
}

// Require returns the caller identity or ErrAuthRequired.
func (c Caller) Require() (uuid.UUID, error) {
	if !c.Authenticated || c.UserID == uuid.Nil {
		return uuid.Nil, ErrAuthRequired
	}
	return c.UserID, nil
}

// FromFiber resolves the caller from the token the JWT middleware stored in
// locals. Requests without a valid token resolve to an anonymous caller.
func FromFiber(c *fiber.Ctx) Caller {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil || !token.Valid {
		return Anonymous()
	}
	return fromClaims(token.Claims)
}

func fromClaims(claims jwt.Claims) Caller {
	mc, ok := claims.(jwt.MapClaims)
	if !ok {
		return Anonymous()
	}

	sub, _ := mc["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil || userID == uuid.Nil {
		return Anonymous()
	}

	caller := Authenticated(userID)
	caller.Email, _ = mc["email"].(string)
	return caller
}
