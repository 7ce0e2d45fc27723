package usecase

import (
	"context"
	"errors"
	"time"

	"minshuku/domain"
)

type assignmentUseCase struct {
	assignmentRepo domain.AssignmentRepo
	guestRepo      domain.GuestRepo
	houseRepo      domain.HouseRepo
	roomRepo       domain.RoomRepo
	TimeOut        time.Duration
}

func NewAssignmentUseCase(assignmentRepo domain.AssignmentRepo, guestRepo domain.GuestRepo, houseRepo domain.HouseRepo, roomRepo domain.RoomRepo, to time.Duration) domain.AssignmentUseCase {
	return &assignmentUseCase{
		assignmentRepo: assignmentRepo,
		guestRepo:      guestRepo,
		houseRepo:      houseRepo,
		roomRepo:       roomRepo,
		TimeOut:        to,
	}
}

func (au *assignmentUseCase) ListAssignments(ctx context.Context, orderBy string) (*[]domain.Assignment, error) {
	ctx, cancel := context.WithTimeout(ctx, au.TimeOut)
	defer cancel()

	return au.assignmentRepo.List(ctx, orderBy)
}

func (au *assignmentUseCase) GetAssignment(ctx context.Context, id int) (*domain.Assignment, error) {
	ctx, cancel := context.WithTimeout(ctx, au.TimeOut)
	defer cancel()

	return au.assignmentRepo.Get(ctx, id)
}

func (au *assignmentUseCase) CreateAssignment(ctx context.Context, assignment *domain.Assignment) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, au.TimeOut)
	defer cancel()

	if err := au.check(ctx, assignment); err != nil {
		return 0, err
	}
	return au.assignmentRepo.Create(ctx, assignment)
}

func (au *assignmentUseCase) UpdateAssignment(ctx context.Context, id int, assignment *domain.Assignment) error {
	ctx, cancel := context.WithTimeout(ctx, au.TimeOut)
	defer cancel()

	if err := au.check(ctx, assignment); err != nil {
		return err
	}
	return au.assignmentRepo.Update(ctx, id, assignment)
}

func (au *assignmentUseCase) DeleteAssignment(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, au.TimeOut)
	defer cancel()

	return au.assignmentRepo.Delete(ctx, id, false)
}

// check validates the assignment and its references: guest and house must exist and the
// room, when given, must belong to the house.
func (au *assignmentUseCase) check(ctx context.Context, a *domain.Assignment) error {
	normalizeAssignment(a)
	if err := invalid(ValidateAssignment(a)); err != nil {
		return err
	}

	if _, err := au.guestRepo.Get(ctx, a.GuestID); err != nil {
		return missingAs(err, "Selected guest does not exist")
	}
	if _, err := au.houseRepo.Get(ctx, a.HouseID); err != nil {
		return missingAs(err, "Selected house does not exist")
	}
	if a.RoomID != nil {
		room, err := au.roomRepo.Get(ctx, *a.RoomID)
		if err != nil {
			return missingAs(err, "Selected room does not exist")
		}
		if room.HouseID != a.HouseID {
			return domain.NewValidationError("Room does not belong to the selected house")
		}
	}
	return nil
}

func missingAs(err error, msg string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewValidationError(msg)
	}
	return err
}
