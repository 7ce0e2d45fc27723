package usecase

import (
	"context"
	"time"

	"minshuku/domain"
)

type facilityUseCase struct {
	roomRepo     domain.RoomRepo
	bathroomRepo domain.BathroomRepo
	TimeOut      time.Duration
}

func NewFacilityUseCase(roomRepo domain.RoomRepo, bathroomRepo domain.BathroomRepo, to time.Duration) domain.FacilityUseCase {
	return &facilityUseCase{
		roomRepo:     roomRepo,
		bathroomRepo: bathroomRepo,
		TimeOut:      to,
	}
}

// ListRooms lists the rooms of houseID in creation order, or every room by orderBy when
// houseID is zero.
func (fu *facilityUseCase) ListRooms(ctx context.Context, houseID int, orderBy string) (*[]domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, fu.TimeOut)
	defer cancel()

	if houseID > 0 {
		return fu.roomRepo.ListByHouse(ctx, houseID)
	}
	return fu.roomRepo.List(ctx, orderBy)
}

func (fu *facilityUseCase) ListBathrooms(ctx context.Context, houseID int, orderBy string) (*[]domain.Bathroom, error) {
	ctx, cancel := context.WithTimeout(ctx, fu.TimeOut)
	defer cancel()

	if houseID > 0 {
		return fu.bathroomRepo.ListByHouse(ctx, houseID)
	}
	return fu.bathroomRepo.List(ctx, orderBy)
}
