package delivery

import (
	"minshuku/domain"

	"github.com/gofiber/fiber/v2"
)

type hostHandler struct {
	huc domain.HostUseCase
}

func NewHostDelivery(router fiber.Router, uc domain.HostUseCase) {
	handler := &hostHandler{
		huc: uc,
	}

	route := router.Group("/hosts")
	route.Get("/", handler.deliveryListHosts)
	route.Post("/", handler.deliveryCreateHost)
	route.Get("/:id", handler.deliveryGetHost)
	route.Put("/:id", handler.deliveryUpdateHost)
	route.Delete("/:id", handler.deliveryDeleteHost)
}

func (hh *hostHandler) deliveryListHosts(c *fiber.Ctx) error {
	hosts, err := hh.huc.ListHosts(c.Context(), c.Query("order"))
	if err != nil {
		return respondError(c, "ListHosts", "Failed to retrieve hosts", err)
	}
	return respondOK(c, fiber.StatusOK, "ListHosts", "Hosts retrieved successfully", hosts)
}

func (hh *hostHandler) deliveryGetHost(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "GetHost", "Invalid host id", "Invalid id")
	}

	host, err := hh.huc.GetHost(c.Context(), id)
	if err != nil {
		return respondError(c, "GetHost", "Failed to retrieve host", err)
	}
	return respondOK(c, fiber.StatusOK, "GetHost", "Host retrieved successfully", host)
}

func (hh *hostHandler) deliveryCreateHost(c *fiber.Ctx) error {
	var req domain.Host
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "CreateHost", "Invalid request body", err.Error())
	}

	id, err := hh.huc.CreateHost(c.Context(), &req)
	if err != nil {
		return respondError(c, "CreateHost", "Failed to create host", err)
	}
	return respondOK(c, fiber.StatusCreated, "CreateHost", "Host created successfully", fiber.Map{"host_id": id})
}

func (hh *hostHandler) deliveryUpdateHost(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "UpdateHost", "Invalid host id", "Invalid id")
	}

	var req domain.Host
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "UpdateHost", "Invalid request body", err.Error())
	}
	req.NationalID = ""

	if err := hh.huc.UpdateHost(c.Context(), id, &req); err != nil {
		return respondError(c, "UpdateHost", "Failed to update host", err)
	}
	return respondOK(c, fiber.StatusOK, "UpdateHost", "Host updated successfully", nil)
}

func (hh *hostHandler) deliveryDeleteHost(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "DeleteHost", "Invalid host id", "Invalid id")
	}

	if err := hh.huc.DeleteHost(c.Context(), id); err != nil {
		return respondError(c, "DeleteHost", "Failed to delete host", err)
	}
	return respondOK(c, fiber.StatusOK, "DeleteHost", "Host deleted successfully", nil)
}
