package delivery

import (
	"minshuku/config"
	"minshuku/domain"
	"minshuku/utils"

	"github.com/gofiber/fiber/v2"
)

type utilityHandler struct {
	auc domain.AuthUseCase
}

// NewUtilityDelivery mounts the unauthenticated routes: login and health.
func NewUtilityDelivery(app *fiber.App, uc domain.AuthUseCase) {
	handler := &utilityHandler{
		auc: uc,
	}

	app.Post("/auth/login", handler.deliveryLogin)
	app.Get("/health", handler.deliveryHealth)
}

// NewValidateDelivery exposes the national ID and email checks used by the forms.
func NewValidateDelivery(router fiber.Router) {
	handler := &utilityHandler{}

	route := router.Group("/validate")
	route.Get("/rut", handler.deliveryValidateRut)
	route.Get("/email", handler.deliveryValidateEmail)
}

func (uh *utilityHandler) deliveryLogin(c *fiber.Ctx) error {
	var req domain.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Login", "Invalid request body", err.Error())
	}
	if errs := utils.ValidateStruct(&req); len(errs) > 0 {
		return badRequest(c, "Login", "Validation failed", errs...)
	}

	token, err := uh.auc.Login(c.Context(), &req)
	if err != nil {
		return respondError(c, "Login", "Login failed", err)
	}

	config.PrintLogInfo(&req.Username, fiber.StatusOK, "Login")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"data":    fiber.Map{"token": *token},
	})
}

func (uh *utilityHandler) deliveryHealth(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": config.GetAppName() + " is running",
	})
}

func (uh *utilityHandler) deliveryValidateRut(c *fiber.Ctx) error {
	value := c.Query("value")
	return respondOK(c, fiber.StatusOK, "ValidateRut", "National ID checked", fiber.Map{
		"value":      value,
		"normalized": utils.NormalizeRut(value),
		"valid":      utils.IsValidRut(value),
	})
}

func (uh *utilityHandler) deliveryValidateEmail(c *fiber.Ctx) error {
	value := c.Query("value")
	return respondOK(c, fiber.StatusOK, "ValidateEmail", "Email checked", fiber.Map{
		"value": value,
		"valid": utils.IsValidEmail(value),
	})
}
