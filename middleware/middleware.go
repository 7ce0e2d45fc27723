package middleware

import (
	"fmt"
	"strings"
	"time"

	"minshuku/config"
	"minshuku/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const tokenLifetime = 24 * time.Hour

func jwtKey() []byte {
	return []byte(config.GetAPISecret())
}

func GenerateJWT(username string) (string, error) {
	now := time.Now()
	claims := &domain.Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    config.GetAppName(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey())
}

func VerifyJWT(tokenString string) (*domain.Claims, error) {
	claims := &domain.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return jwtKey(), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// AuthRequired checks the bearer token and stores its claims under the "user" local. With no
// API secret configured every request runs as the local operator.
func AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if config.GetAPISecret() == "" {
			c.Locals("user", &domain.Claims{Username: config.GetOperatorUsername()})
			return c.Next()
		}

		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "No token provided",
			})
		}

		claims, err := VerifyJWT(strings.TrimSpace(strings.TrimPrefix(header, "Bearer ")))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Invalid token",
				"error":   err.Error(),
			})
		}

		c.Locals("user", claims)
		return c.Next()
	}
}

// RequestID tags every request with an id, echoed in X-Request-ID, and logs its outcome.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(fiber.HeaderXRequestID, id)
		c.Locals("request_id", id)

		start := time.Now()
		err := c.Next()

		config.GetLogrusInstance().WithFields(logrus.Fields{
			"request_id": id,
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     c.Response().StatusCode(),
			"latency":    time.Since(start).String(),
		}).Debug("request handled")
		return err
	}
}
