package delivery

import (
	"minshuku/domain"

	"github.com/gofiber/fiber/v2"
)

type guestHandler struct {
	guc domain.GuestUseCase
	fuc domain.FamilyMemberUseCase
}

func NewGuestDelivery(router fiber.Router, guc domain.GuestUseCase, fuc domain.FamilyMemberUseCase) {
	handler := &guestHandler{
		guc: guc,
		fuc: fuc,
	}

	route := router.Group("/guests")
	route.Get("/", handler.deliveryListGuests)
	route.Post("/", handler.deliveryCreateGuest)
	route.Get("/:id", handler.deliveryGetGuest)
	route.Put("/:id", handler.deliveryUpdateGuest)
	route.Delete("/:id", handler.deliveryDeleteGuest)
	route.Get("/:id/family", handler.deliveryListFamily)
	route.Post("/:id/family", handler.deliveryAddFamilyMember)

	family := router.Group("/family")
	family.Put("/:id", handler.deliveryUpdateFamilyMember)
	family.Delete("/:id", handler.deliveryDeleteFamilyMember)
}

func (gh *guestHandler) deliveryListGuests(c *fiber.Ctx) error {
	var (
		guests *[]domain.Guest
		err    error
	)
	if q := c.Query("q"); q != "" {
		guests, err = gh.guc.SearchGuests(c.Context(), q)
	} else {
		guests, err = gh.guc.ListGuests(c.Context(), c.Query("order"))
	}
	if err != nil {
		return respondError(c, "ListGuests", "Failed to retrieve guests", err)
	}
	return respondOK(c, fiber.StatusOK, "ListGuests", "Guests retrieved successfully", guests)
}

func (gh *guestHandler) deliveryGetGuest(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "GetGuest", "Invalid guest id", "Invalid id")
	}

	guest, err := gh.guc.GetGuest(c.Context(), id)
	if err != nil {
		return respondError(c, "GetGuest", "Failed to retrieve guest", err)
	}
	return respondOK(c, fiber.StatusOK, "GetGuest", "Guest retrieved successfully", guest)
}

func (gh *guestHandler) deliveryCreateGuest(c *fiber.Ctx) error {
	var req domain.Guest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "CreateGuest", "Invalid request body", err.Error())
	}

	id, err := gh.guc.CreateGuest(c.Context(), &req)
	if err != nil {
		return respondError(c, "CreateGuest", "Failed to create guest", err)
	}
	return respondOK(c, fiber.StatusCreated, "CreateGuest", "Guest created successfully", fiber.Map{"guest_id": id})
}

func (gh *guestHandler) deliveryUpdateGuest(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "UpdateGuest", "Invalid guest id", "Invalid id")
	}

	var req domain.Guest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "UpdateGuest", "Invalid request body", err.Error())
	}
	req.NationalID = ""

	if err := gh.guc.UpdateGuest(c.Context(), id, &req); err != nil {
		return respondError(c, "UpdateGuest", "Failed to update guest", err)
	}
	return respondOK(c, fiber.StatusOK, "UpdateGuest", "Guest updated successfully", nil)
}

func (gh *guestHandler) deliveryDeleteGuest(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "DeleteGuest", "Invalid guest id", "Invalid id")
	}

	if err := gh.guc.DeleteGuest(c.Context(), id); err != nil {
		return respondError(c, "DeleteGuest", "Failed to delete guest", err)
	}
	return respondOK(c, fiber.StatusOK, "DeleteGuest", "Guest deleted successfully", nil)
}

func (gh *guestHandler) deliveryListFamily(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "ListFamily", "Invalid guest id", "Invalid id")
	}

	members, err := gh.fuc.ListFamilyMembers(c.Context(), id)
	if err != nil {
		return respondError(c, "ListFamily", "Failed to retrieve family members", err)
	}
	return respondOK(c, fiber.StatusOK, "ListFamily", "Family members retrieved successfully", members)
}

func (gh *guestHandler) deliveryAddFamilyMember(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "AddFamilyMember", "Invalid guest id", "Invalid id")
	}

	var req domain.FamilyMember
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "AddFamilyMember", "Invalid request body", err.Error())
	}
	req.GuestID = id

	memberID, err := gh.fuc.AddFamilyMember(c.Context(), &req)
	if err != nil {
		return respondError(c, "AddFamilyMember", "Failed to add family member", err)
	}
	return respondOK(c, fiber.StatusCreated, "AddFamilyMember", "Family member added successfully", fiber.Map{"family_member_id": memberID})
}

func (gh *guestHandler) deliveryUpdateFamilyMember(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "UpdateFamilyMember", "Invalid family member id", "Invalid id")
	}

	var req domain.FamilyMember
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "UpdateFamilyMember", "Invalid request body", err.Error())
	}

	if err := gh.fuc.UpdateFamilyMember(c.Context(), id, &req); err != nil {
		return respondError(c, "UpdateFamilyMember", "Failed to update family member", err)
	}
	return respondOK(c, fiber.StatusOK, "UpdateFamilyMember", "Family member updated successfully", nil)
}

func (gh *guestHandler) deliveryDeleteFamilyMember(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "DeleteFamilyMember", "Invalid family member id", "Invalid id")
	}

	if err := gh.fuc.DeleteFamilyMember(c.Context(), id); err != nil {
		return respondError(c, "DeleteFamilyMember", "Failed to delete family member", err)
	}
	return respondOK(c, fiber.StatusOK, "DeleteFamilyMember", "Family member deleted successfully", nil)
}
