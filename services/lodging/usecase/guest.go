package usecase

import (
	"context"
	"time"

	"minshuku/domain"
)

type guestUseCase struct {
	guestRepo domain.GuestRepo
	TimeOut   time.Duration
}

func NewGuestUseCase(repo domain.GuestRepo, to time.Duration) domain.GuestUseCase {
	return &guestUseCase{
		guestRepo: repo,
		TimeOut:   to,
	}
}

func (gu *guestUseCase) ListGuests(ctx context.Context, orderBy string) (*[]domain.Guest, error) {
	ctx, cancel := context.WithTimeout(ctx, gu.TimeOut)
	defer cancel()

	return gu.guestRepo.List(ctx, orderBy)
}

func (gu *guestUseCase) SearchGuests(ctx context.Context, query string) (*[]domain.Guest, error) {
	ctx, cancel := context.WithTimeout(ctx, gu.TimeOut)
	defer cancel()

	return gu.guestRepo.Search(ctx, query)
}

func (gu *guestUseCase) GetGuest(ctx context.Context, id int) (*domain.Guest, error) {
	ctx, cancel := context.WithTimeout(ctx, gu.TimeOut)
	defer cancel()

	return gu.guestRepo.Get(ctx, id)
}

func (gu *guestUseCase) CreateGuest(ctx context.Context, guest *domain.Guest) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, gu.TimeOut)
	defer cancel()

	normalizeGuest(guest)
	if err := invalid(ValidateGuest(guest, ValidateOptions{CheckNationalID: true})); err != nil {
		return 0, err
	}

	exists, err := gu.guestRepo.ExistsNationalID(ctx, guest.NationalID)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, &domain.UniquenessError{Entity: "guest", Field: "national ID", Value: guest.NationalID}
	}

	return gu.guestRepo.Create(ctx, guest)
}

// UpdateGuest rewrites the editable fields. The national ID is fixed at creation.
func (gu *guestUseCase) UpdateGuest(ctx context.Context, id int, guest *domain.Guest) error {
	ctx, cancel := context.WithTimeout(ctx, gu.TimeOut)
	defer cancel()

	normalizeGuest(guest)
	guest.NationalID = ""
	if err := invalid(ValidateGuest(guest, ValidateOptions{})); err != nil {
		return err
	}
	return gu.guestRepo.Update(ctx, id, guest)
}

func (gu *guestUseCase) DeleteGuest(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, gu.TimeOut)
	defer cancel()

	return gu.guestRepo.Delete(ctx, id, true)
}
