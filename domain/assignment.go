package domain

import (
	"context"
	"time"

	"gorm.io/datatypes"
)

type AssignmentStatus string

const (
	AssignmentPending  AssignmentStatus = "pending"
	AssignmentActive   AssignmentStatus = "active"
	AssignmentFinished AssignmentStatus = "finished"
)

var AssignmentStatuses = []string{string(AssignmentPending), string(AssignmentActive), string(AssignmentFinished)}

// Assignment places a guest in a house and optionally in one of its rooms. A nil EndDate
// means the stay is open-ended.
type Assignment struct {
	AssignmentID int             `gorm:"primaryKey;autoIncrement" json:"assignment_id"`
	GuestID      int             `gorm:"not null;index" json:"guest_id" valid:"required~Guest is required"`
	Guest        *Guest          `json:"guest,omitempty" valid:"-"`
	HouseID      int             `gorm:"not null;index" json:"house_id" valid:"required~House is required"`
	House        *House          `json:"house,omitempty" valid:"-"`
	RoomID       *int            `gorm:"index" json:"room_id"`
	Room         *Room           `json:"room,omitempty" valid:"-"`
	StartDate    datatypes.Date  `gorm:"not null" json:"start_date"`
	EndDate      *datatypes.Date `json:"end_date"`
	Status       string          `gorm:"type:varchar(20);not null;default:pending" json:"status" valid:"in(pending|active|finished)~Invalid status"`
	Notes        *string         `gorm:"type:text" json:"notes"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// IsOpen reports whether the assignment has no end date.
func (a *Assignment) IsOpen() bool {
	return a.EndDate == nil
}

type AssignmentRepo interface {
	List(ctx context.Context, orderBy string) (*[]Assignment, error)
	ListByGuest(ctx context.Context, guestID int) (*[]Assignment, error)
	ListByHouse(ctx context.Context, houseID int) (*[]Assignment, error)
	Get(ctx context.Context, id int) (*Assignment, error)
	Create(ctx context.Context, assignment *Assignment) (int, error)
	Update(ctx context.Context, id int, assignment *Assignment) error
	Delete(ctx context.Context, id int, cascade bool) error
}

type AssignmentUseCase interface {
	ListAssignments(ctx context.Context, orderBy string) (*[]Assignment, error)
	GetAssignment(ctx context.Context, id int) (*Assignment, error)
	CreateAssignment(ctx context.Context, assignment *Assignment) (int, error)
	UpdateAssignment(ctx context.Context, id int, assignment *Assignment) error
	DeleteAssignment(ctx context.Context, id int) error
}
