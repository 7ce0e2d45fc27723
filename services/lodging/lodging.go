// Package lodging assembles the repositories and use cases of the hosting service and
// hands them to its two front ends: the HTTP delivery and the toolkit-neutral controllers.
package lodging

import (
	"context"
	"time"

	"minshuku/domain"
	"minshuku/services/lodging/controller"
	"minshuku/services/lodging/delivery"
	"minshuku/services/lodging/repository"
	"minshuku/services/lodging/usecase"

	"gorm.io/gorm"
)

type Repositories struct {
	Hosts         domain.HostRepo
	Houses        domain.HouseRepo
	Rooms         domain.RoomRepo
	Bathrooms     domain.BathroomRepo
	Guests        domain.GuestRepo
	FamilyMembers domain.FamilyMemberRepo
	Assignments   domain.AssignmentRepo
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Hosts:         repository.NewHostRepository(db),
		Houses:        repository.NewHouseRepository(db),
		Rooms:         repository.NewRoomRepository(db),
		Bathrooms:     repository.NewBathroomRepository(db),
		Guests:        repository.NewGuestRepository(db),
		FamilyMembers: repository.NewFamilyMemberRepository(db),
		Assignments:   repository.NewAssignmentRepository(db),
	}
}

type Services struct {
	Hosts         domain.HostUseCase
	Houses        domain.HouseUseCase
	Guests        domain.GuestUseCase
	FamilyMembers domain.FamilyMemberUseCase
	Assignments   domain.AssignmentUseCase
	Facilities    domain.FacilityUseCase
	Auth          domain.AuthUseCase
}

// NewServices builds every use case over repos, each bounded by the timeout to.
func NewServices(repos Repositories, to time.Duration) Services {
	return Services{
		Hosts:         usecase.NewHostUseCase(repos.Hosts, repos.Houses, to),
		Houses:        usecase.NewHouseUseCase(repos.Houses, repos.Hosts, to),
		Guests:        usecase.NewGuestUseCase(repos.Guests, to),
		FamilyMembers: usecase.NewFamilyMemberUseCase(repos.FamilyMembers, repos.Guests, to),
		Assignments:   usecase.NewAssignmentUseCase(repos.Assignments, repos.Guests, repos.Houses, repos.Rooms, to),
		Facilities:    usecase.NewFacilityUseCase(repos.Rooms, repos.Bathrooms, to),
		Auth:          usecase.NewAuthUseCase(),
	}
}

func (s Services) HTTP() delivery.UseCases {
	return delivery.UseCases{
		Hosts:         s.Hosts,
		Houses:        s.Houses,
		Guests:        s.Guests,
		FamilyMembers: s.FamilyMembers,
		Assignments:   s.Assignments,
		Facilities:    s.Facilities,
		Auth:          s.Auth,
	}
}

// Modules returns a router with the guest and house modules built on the views of tk.
// The presentation toolkit itself lives outside this module.
func (s Services) Modules(ctx context.Context, tk controller.Toolkit) *controller.Router {
	r := controller.NewRouter()
	controller.RegisterLodgingModules(r, ctx, controller.UseCases{
		Hosts:         s.Hosts,
		Houses:        s.Houses,
		Guests:        s.Guests,
		FamilyMembers: s.FamilyMembers,
	}, tk)
	return r
}
