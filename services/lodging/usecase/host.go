package usecase

import (
	"context"
	"time"

	"minshuku/domain"
)

type hostUseCase struct {
	hostRepo  domain.HostRepo
	houseRepo domain.HouseRepo
	TimeOut   time.Duration
}

func NewHostUseCase(hostRepo domain.HostRepo, houseRepo domain.HouseRepo, to time.Duration) domain.HostUseCase {
	return &hostUseCase{
		hostRepo:  hostRepo,
		houseRepo: houseRepo,
		TimeOut:   to,
	}
}

func (hu *hostUseCase) ListHosts(ctx context.Context, orderBy string) (*[]domain.Host, error) {
	ctx, cancel := context.WithTimeout(ctx, hu.TimeOut)
	defer cancel()

	return hu.hostRepo.List(ctx, orderBy)
}

// GetHost returns the host together with the houses it owns.
func (hu *hostUseCase) GetHost(ctx context.Context, id int) (*domain.Host, error) {
	ctx, cancel := context.WithTimeout(ctx, hu.TimeOut)
	defer cancel()

	host, err := hu.hostRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	houses, err := hu.houseRepo.ListByHost(ctx, id)
	if err != nil {
		return nil, err
	}
	host.Houses = *houses
	return host, nil
}

func (hu *hostUseCase) CreateHost(ctx context.Context, host *domain.Host) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, hu.TimeOut)
	defer cancel()

	normalizeHost(host)
	if err := invalid(ValidateHost(host, ValidateOptions{CheckNationalID: true})); err != nil {
		return 0, err
	}

	exists, err := hu.hostRepo.ExistsNationalID(ctx, host.NationalID)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, &domain.UniquenessError{Entity: "host", Field: "national ID", Value: host.NationalID}
	}

	return hu.hostRepo.Create(ctx, host)
}

// UpdateHost rewrites the editable fields. The national ID is fixed at creation.
func (hu *hostUseCase) UpdateHost(ctx context.Context, id int, host *domain.Host) error {
	ctx, cancel := context.WithTimeout(ctx, hu.TimeOut)
	defer cancel()

	normalizeHost(host)
	host.NationalID = ""
	if err := invalid(ValidateHost(host, ValidateOptions{})); err != nil {
		return err
	}
	return hu.hostRepo.Update(ctx, id, host)
}

func (hu *hostUseCase) DeleteHost(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, hu.TimeOut)
	defer cancel()

	return hu.hostRepo.Delete(ctx, id, true)
}
