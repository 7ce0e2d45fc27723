package delivery

import (
	"minshuku/config"
	"minshuku/domain"
	"minshuku/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// UseCases groups the services the HTTP delivery exposes.
type UseCases struct {
	Hosts         domain.HostUseCase
	Houses        domain.HouseUseCase
	Guests        domain.GuestUseCase
	FamilyMembers domain.FamilyMemberUseCase
	Assignments   domain.AssignmentUseCase
	Facilities    domain.FacilityUseCase
	Auth          domain.AuthUseCase
}

// NewApp builds the fiber application with every route mounted.
func NewApp(uc UseCases) *fiber.App {
	app := fiber.New(config.GetFiberConfig())

	app.Use(middleware.RequestID())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	NewUtilityDelivery(app, uc.Auth)

	api := app.Group("/api", middleware.AuthRequired())
	NewHostDelivery(api, uc.Hosts)
	NewHouseDelivery(api, uc.Houses)
	NewGuestDelivery(api, uc.Guests, uc.FamilyMembers)
	NewAssignmentDelivery(api, uc.Assignments)
	NewFacilityDelivery(api, uc.Facilities)
	NewValidateDelivery(api)

	return app
}
