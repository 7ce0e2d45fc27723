package delivery

import (
	"minshuku/domain"

	"github.com/gofiber/fiber/v2"
)

type assignmentHandler struct {
	auc domain.AssignmentUseCase
}

func NewAssignmentDelivery(router fiber.Router, uc domain.AssignmentUseCase) {
	handler := &assignmentHandler{
		auc: uc,
	}

	route := router.Group("/assignments")
	route.Get("/", handler.deliveryListAssignments)
	route.Post("/", handler.deliveryCreateAssignment)
	route.Get("/:id", handler.deliveryGetAssignment)
	route.Put("/:id", handler.deliveryUpdateAssignment)
	route.Delete("/:id", handler.deliveryDeleteAssignment)
}

func (ah *assignmentHandler) deliveryListAssignments(c *fiber.Ctx) error {
	assignments, err := ah.auc.ListAssignments(c.Context(), c.Query("order"))
	if err != nil {
		return respondError(c, "ListAssignments", "Failed to retrieve assignments", err)
	}
	return respondOK(c, fiber.StatusOK, "ListAssignments", "Assignments retrieved successfully", assignments)
}

func (ah *assignmentHandler) deliveryGetAssignment(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "GetAssignment", "Invalid assignment id", "Invalid id")
	}

	assignment, err := ah.auc.GetAssignment(c.Context(), id)
	if err != nil {
		return respondError(c, "GetAssignment", "Failed to retrieve assignment", err)
	}
	return respondOK(c, fiber.StatusOK, "GetAssignment", "Assignment retrieved successfully", assignment)
}

func (ah *assignmentHandler) deliveryCreateAssignment(c *fiber.Ctx) error {
	var req domain.Assignment
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "CreateAssignment", "Invalid request body", err.Error())
	}

	id, err := ah.auc.CreateAssignment(c.Context(), &req)
	if err != nil {
		return respondError(c, "CreateAssignment", "Failed to create assignment", err)
	}
	return respondOK(c, fiber.StatusCreated, "CreateAssignment", "Assignment created successfully", fiber.Map{"assignment_id": id})
}

func (ah *assignmentHandler) deliveryUpdateAssignment(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "UpdateAssignment", "Invalid assignment id", "Invalid id")
	}

	var req domain.Assignment
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "UpdateAssignment", "Invalid request body", err.Error())
	}

	if err := ah.auc.UpdateAssignment(c.Context(), id, &req); err != nil {
		return respondError(c, "UpdateAssignment", "Failed to update assignment", err)
	}
	return respondOK(c, fiber.StatusOK, "UpdateAssignment", "Assignment updated successfully", nil)
}

func (ah *assignmentHandler) deliveryDeleteAssignment(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "DeleteAssignment", "Invalid assignment id", "Invalid id")
	}

	if err := ah.auc.DeleteAssignment(c.Context(), id); err != nil {
		return respondError(c, "DeleteAssignment", "Failed to delete assignment", err)
	}
	return respondOK(c, fiber.StatusOK, "DeleteAssignment", "Assignment deleted successfully", nil)
}
