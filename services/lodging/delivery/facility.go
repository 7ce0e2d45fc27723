package delivery

import (
	"minshuku/domain"

	"github.com/gofiber/fiber/v2"
)

type facilityHandler struct {
	fuc domain.FacilityUseCase
}

func NewFacilityDelivery(router fiber.Router, uc domain.FacilityUseCase) {
	handler := &facilityHandler{
		fuc: uc,
	}

	router.Get("/rooms", handler.deliveryListRooms)
	router.Get("/bathrooms", handler.deliveryListBathrooms)
}

func (fh *facilityHandler) deliveryListRooms(c *fiber.Ctx) error {
	rooms, err := fh.fuc.ListRooms(c.Context(), c.QueryInt("house_id"), c.Query("order"))
	if err != nil {
		return respondError(c, "ListRooms", "Failed to retrieve rooms", err)
	}
	return respondOK(c, fiber.StatusOK, "ListRooms", "Rooms retrieved successfully", rooms)
}

func (fh *facilityHandler) deliveryListBathrooms(c *fiber.Ctx) error {
	bathrooms, err := fh.fuc.ListBathrooms(c.Context(), c.QueryInt("house_id"), c.Query("order"))
	if err != nil {
		return respondError(c, "ListBathrooms", "Failed to retrieve bathrooms", err)
	}
	return respondOK(c, fiber.StatusOK, "ListBathrooms", "Bathrooms retrieved successfully", bathrooms)
}
