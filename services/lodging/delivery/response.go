package delivery

import (
	"errors"

	"minshuku/config"
	"minshuku/domain"

	"github.com/gofiber/fiber/v2"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrDuplicateNationalID):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrHasDependents):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrLoginDisabled):
		return fiber.StatusForbidden
	}
	return fiber.StatusInternalServerError
}

func currentUser(c *fiber.Ctx) *string {
	if claims, ok := c.Locals("user").(*domain.Claims); ok && claims != nil {
		return &claims.Username
	}
	return nil
}

func respondError(c *fiber.Ctx, function, message string, err error) error {
	status := statusFor(err)
	config.PrintLogInfo(currentUser(c), status, function)

	body := fiber.Map{
		"success": false,
		"message": message,
		"error":   err.Error(),
		"data":    nil,
	}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		body["error"] = ve.First()
		body["data"] = ve.Errors
	}
	return c.Status(status).JSON(body)
}

func respondOK(c *fiber.Ctx, status int, function, message string, data interface{}) error {
	config.PrintLogInfo(currentUser(c), status, function)
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func badRequest(c *fiber.Ctx, function, message string, errs ...string) error {
	return respondError(c, function, message, domain.NewValidationError(errs...))
}

func paramID(c *fiber.Ctx, name string) (int, bool) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
