package delivery

import (
	"minshuku/domain"

	"github.com/gofiber/fiber/v2"
)

type houseHandler struct {
	huc domain.HouseUseCase
}

func NewHouseDelivery(router fiber.Router, uc domain.HouseUseCase) {
	handler := &houseHandler{
		huc: uc,
	}

	route := router.Group("/houses")
	route.Get("/", handler.deliveryListHouses)
	route.Post("/", handler.deliveryCreateHouse)
	route.Get("/:id", handler.deliveryGetHouse)
	route.Put("/:id", handler.deliverySaveHouse)
	route.Delete("/:id", handler.deliveryDeleteHouse)
}

// deliveryListHouses lists every house, or only those of ?host_id= when given.
func (hh *houseHandler) deliveryListHouses(c *fiber.Ctx) error {
	var (
		houses *[]domain.House
		err    error
	)
	if hostID := c.QueryInt("host_id"); hostID > 0 {
		houses, err = hh.huc.ListHousesByHost(c.Context(), hostID)
	} else {
		houses, err = hh.huc.ListHouses(c.Context(), c.Query("order"))
	}
	if err != nil {
		return respondError(c, "ListHouses", "Failed to retrieve houses", err)
	}
	return respondOK(c, fiber.StatusOK, "ListHouses", "Houses retrieved successfully", houses)
}

func (hh *houseHandler) deliveryGetHouse(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "GetHouse", "Invalid house id", "Invalid id")
	}

	house, err := hh.huc.GetHouse(c.Context(), id)
	if err != nil {
		return respondError(c, "GetHouse", "Failed to retrieve house", err)
	}
	return respondOK(c, fiber.StatusOK, "GetHouse", "House retrieved successfully", house)
}

func (hh *houseHandler) deliveryCreateHouse(c *fiber.Ctx) error {
	var req domain.House
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "CreateHouse", "Invalid request body", err.Error())
	}

	id, err := hh.huc.CreateHouse(c.Context(), &req)
	if err != nil {
		return respondError(c, "CreateHouse", "Failed to create house", err)
	}
	return respondOK(c, fiber.StatusCreated, "CreateHouse", "House created successfully", fiber.Map{"house_id": id})
}

// deliverySaveHouse replaces the house and its whole set of rooms and bathrooms.
func (hh *houseHandler) deliverySaveHouse(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "SaveHouse", "Invalid house id", "Invalid id")
	}

	var req domain.House
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "SaveHouse", "Invalid request body", err.Error())
	}
	req.HouseID = id

	if _, err := hh.huc.SaveHouse(c.Context(), &req); err != nil {
		return respondError(c, "SaveHouse", "Failed to save house", err)
	}
	return respondOK(c, fiber.StatusOK, "SaveHouse", "House saved successfully", fiber.Map{"house_id": id})
}

func (hh *houseHandler) deliveryDeleteHouse(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "DeleteHouse", "Invalid house id", "Invalid id")
	}

	if err := hh.huc.DeleteHouse(c.Context(), id); err != nil {
		return respondError(c, "DeleteHouse", "Failed to delete house", err)
	}
	return respondOK(c, fiber.StatusOK, "DeleteHouse", "House deleted successfully", nil)
}
