package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"campushub/src/core/config"
	"campushub/src/core/helpers"
)

// Protected middleware for validating JWT tokens
func Protected() fiber.Handler {
	jwtSecret := config.Config("JWT_SECRET")
	if jwtSecret == "" {
		panic("JWT_SECRET is not set in the environment variables") // Panic to prevent startup
	}

	return jwtware.New(jwtware.Config{
		SigningKey:   jwtware.SigningKey{Key: []byte(jwtSecret)},
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			// Extract user claims and attach identity to the context
			user := c.Locals("user").(*jwt.Token)
			claims := user.Claims.(jwt.MapClaims)
			userID, ok := claims["sub"].(string)
			if !ok {
				return helpers.HandleError(c, fiber.StatusUnauthorized, "User ID missing in token", nil)
			}
			c.Locals("user_id", userID)
			if role, ok := claims["role"].(string); ok {
				c.Locals("user_role", role)
			}
			if name, ok := claims["name"].(string); ok {
				c.Locals("user_name", name)
			}
			if email, ok := claims["email"].(string); ok {
				c.Locals("user_email", email)
			}
			return c.Next()
		},
	})
}

// AdminOnly gates administration endpoints; it must run after Protected.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("user_role").(string)
		if role != "admin" {
			return helpers.HandleError(c, fiber.StatusForbidden, "Admin access required", nil)
		}
		return c.Next()
	}
}

// jwtError handles JWT-related errors
func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Missing or malformed JWT", err)
	}
	return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid or expired JWT", err)
}
