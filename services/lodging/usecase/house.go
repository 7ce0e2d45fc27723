package usecase

import (
	"context"
	"errors"
	"time"

	"minshuku/domain"
)

type houseUseCase struct {
	houseRepo domain.HouseRepo
	hostRepo  domain.HostRepo
	TimeOut   time.Duration
}

func NewHouseUseCase(houseRepo domain.HouseRepo, hostRepo domain.HostRepo, to time.Duration) domain.HouseUseCase {
	return &houseUseCase{
		houseRepo: houseRepo,
		hostRepo:  hostRepo,
		TimeOut:   to,
	}
}

func (hu *houseUseCase) ListHouses(ctx context.Context, orderBy string) (*[]domain.House, error) {
	ctx, cancel := context.WithTimeout(ctx, hu.TimeOut)
	defer cancel()

	return hu.houseRepo.List(ctx, orderBy)
}

func (hu *houseUseCase) ListHousesByHost(ctx context.Context, hostID int) (*[]domain.House, error) {
	ctx, cancel := context.WithTimeout(ctx, hu.TimeOut)
	defer cancel()

	return hu.houseRepo.ListByHost(ctx, hostID)
}

// GetHouse loads the house with its rooms, beds and bathrooms.
func (hu *houseUseCase) GetHouse(ctx context.Context, id int) (*domain.House, error) {
	ctx, cancel := context.WithTimeout(ctx, hu.TimeOut)
	defer cancel()

	return hu.houseRepo.GetWithChildren(ctx, id)
}

func (hu *houseUseCase) CreateHouse(ctx context.Context, house *domain.House) (int, error) {
	house.HouseID = 0
	return hu.SaveHouse(ctx, house)
}

func (hu *houseUseCase) SaveHouse(ctx context.Context, house *domain.House) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, hu.TimeOut)
	defer cancel()

	normalizeHouse(house)
	if err := invalid(ValidateHouse(house)); err != nil {
		return 0, err
	}
	if err := hu.checkHost(ctx, house.HostID); err != nil {
		return 0, err
	}

	return hu.houseRepo.SaveWithChildren(ctx, house)
}

func (hu *houseUseCase) checkHost(ctx context.Context, hostID int) error {
	_, err := hu.hostRepo.Get(ctx, hostID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewValidationError("Selected host does not exist")
	}
	return err
}

func (hu *houseUseCase) DeleteHouse(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, hu.TimeOut)
	defer cancel()

	return hu.houseRepo.Delete(ctx, id, true)
}
