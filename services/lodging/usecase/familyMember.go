package usecase

import (
	"context"
	"time"

	"minshuku/domain"
)

type familyMemberUseCase struct {
	memberRepo domain.FamilyMemberRepo
	guestRepo  domain.GuestRepo
	TimeOut    time.Duration
}

func NewFamilyMemberUseCase(memberRepo domain.FamilyMemberRepo, guestRepo domain.GuestRepo, to time.Duration) domain.FamilyMemberUseCase {
	return &familyMemberUseCase{
		memberRepo: memberRepo,
		guestRepo:  guestRepo,
		TimeOut:    to,
	}
}

func (fu *familyMemberUseCase) ListFamilyMembers(ctx context.Context, guestID int) (*[]domain.FamilyMember, error) {
	ctx, cancel := context.WithTimeout(ctx, fu.TimeOut)
	defer cancel()

	return fu.memberRepo.ListByGuest(ctx, guestID)
}

// AddFamilyMember stores member under its guest right away; family members are not staged.
func (fu *familyMemberUseCase) AddFamilyMember(ctx context.Context, member *domain.FamilyMember) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, fu.TimeOut)
	defer cancel()

	normalizeFamilyMember(member)
	if err := invalid(ValidateFamilyMember(member)); err != nil {
		return 0, err
	}
	if _, err := fu.guestRepo.Get(ctx, member.GuestID); err != nil {
		return 0, err
	}
	return fu.memberRepo.Create(ctx, member)
}

func (fu *familyMemberUseCase) UpdateFamilyMember(ctx context.Context, id int, member *domain.FamilyMember) error {
	ctx, cancel := context.WithTimeout(ctx, fu.TimeOut)
	defer cancel()

	normalizeFamilyMember(member)
	if err := invalid(ValidateFamilyMember(member)); err != nil {
		return err
	}
	return fu.memberRepo.Update(ctx, id, member)
}

func (fu *familyMemberUseCase) DeleteFamilyMember(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, fu.TimeOut)
	defer cancel()

	return fu.memberRepo.Delete(ctx, id, false)
}
