package repository

import (
	"context"
	"time"

	"minshuku/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type assignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(database *gorm.DB) domain.AssignmentRepo {
	return &assignmentRepository{
		db: database,
	}
}

var assignmentOrderColumns = map[string]string{
	"start_date":            "start_date",
	"end_date":              "end_date",
	"status":                "status",
	domain.OrderByID:        "assignment_id",
	domain.OrderByCreatedAt: "created_at",
	domain.OrderByUpdatedAt: "updated_at",
}

func (ar *assignmentRepository) preloaded(ctx context.Context) *gorm.DB {
	return ar.db.WithContext(ctx).Preload("Guest").Preload("House").Preload("Room")
}

func (ar *assignmentRepository) List(ctx context.Context, orderBy string) (*[]domain.Assignment, error) {
	var assignments []domain.Assignment
	err := ar.preloaded(ctx).
		Order(orderClause(orderBy, assignmentOrderColumns, "start_date")).
		Find(&assignments).Error
	if err != nil {
		return nil, storageError("list assignments", err)
	}
	return &assignments, nil
}

func (ar *assignmentRepository) ListByGuest(ctx context.Context, guestID int) (*[]domain.Assignment, error) {
	var assignments []domain.Assignment
	err := ar.preloaded(ctx).Where("guest_id = ?", guestID).Order("start_date ASC").Find(&assignments).Error
	if err != nil {
		return nil, storageError("list assignments by guest", err)
	}
	return &assignments, nil
}

func (ar *assignmentRepository) ListByHouse(ctx context.Context, houseID int) (*[]domain.Assignment, error) {
	var assignments []domain.Assignment
	err := ar.preloaded(ctx).Where("house_id = ?", houseID).Order("start_date ASC").Find(&assignments).Error
	if err != nil {
		return nil, storageError("list assignments by house", err)
	}
	return &assignments, nil
}

func (ar *assignmentRepository) Get(ctx context.Context, id int) (*domain.Assignment, error) {
	var assignment domain.Assignment
	if err := ar.preloaded(ctx).Where("assignment_id = ?", id).First(&assignment).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, notFound("assignment", id)
		}
		return nil, storageError("get assignment", err)
	}
	return &assignment, nil
}

func (ar *assignmentRepository) Create(ctx context.Context, assignment *domain.Assignment) (int, error) {
	assignment.AssignmentID = 0
	if err := ar.db.WithContext(ctx).Omit(clause.Associations).Create(assignment).Error; err != nil {
		return 0, storageError("create assignment", err)
	}
	return assignment.AssignmentID, nil
}

func (ar *assignmentRepository) Update(ctx context.Context, id int, assignment *domain.Assignment) error {
	res := ar.db.WithContext(ctx).Model(&domain.Assignment{}).Where("assignment_id = ?", id).Updates(map[string]interface{}{
		"guest_id":   assignment.GuestID,
		"house_id":   assignment.HouseID,
		"room_id":    assignment.RoomID,
		"start_date": assignment.StartDate,
		"end_date":   assignment.EndDate,
		"status":     assignment.Status,
		"notes":      assignment.Notes,
		"updated_at": time.Now(),
	})
	if res.Error != nil {
		return storageError("update assignment", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("assignment", id)
	}
	return nil
}

func (ar *assignmentRepository) Delete(ctx context.Context, id int, cascade bool) error {
	res := ar.db.WithContext(ctx).Where("assignment_id = ?", id).Delete(&domain.Assignment{})
	if res.Error != nil {
		return storageError("delete assignment", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("assignment", id)
	}
	return nil
}
