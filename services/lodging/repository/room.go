package repository

import (
	"context"
	"time"

	"minshuku/domain"

	"gorm.io/gorm"
)

type roomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(database *gorm.DB) domain.RoomRepo {
	return &roomRepository{
		db: database,
	}
}

var roomOrderColumns = map[string]string{
	domain.OrderByName:      "name",
	domain.OrderByID:        "room_id",
	"house_id":              "house_id",
	"capacity":              "capacity",
	domain.OrderByCreatedAt: "created_at",
	domain.OrderByUpdatedAt: "updated_at",
}

func (rr *roomRepository) List(ctx context.Context, orderBy string) (*[]domain.Room, error) {
	db := rr.db.WithContext(ctx)
	var rooms []domain.Room
	if err := db.Order(orderClause(orderBy, roomOrderColumns, domain.OrderByName)).Find(&rooms).Error; err != nil {
		return nil, storageError("list rooms", err)
	}
	if err := attachBeds(db, rooms); err != nil {
		return nil, storageError("list rooms", err)
	}
	return &rooms, nil
}

func (rr *roomRepository) ListByHouse(ctx context.Context, houseID int) (*[]domain.Room, error) {
	db := rr.db.WithContext(ctx)
	var rooms []domain.Room
	if err := db.Where("house_id = ?", houseID).Order("room_id ASC").Find(&rooms).Error; err != nil {
		return nil, storageError("list rooms by house", err)
	}
	if err := attachBeds(db, rooms); err != nil {
		return nil, storageError("list rooms by house", err)
	}
	return &rooms, nil
}

func (rr *roomRepository) Get(ctx context.Context, id int) (*domain.Room, error) {
	db := rr.db.WithContext(ctx)
	var room domain.Room
	if err := db.Where("room_id = ?", id).First(&room).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, notFound("room", id)
		}
		return nil, storageError("get room", err)
	}
	rooms := []domain.Room{room}
	if err := attachBeds(db, rooms); err != nil {
		return nil, storageError("get room", err)
	}
	return &rooms[0], nil
}

func (rr *roomRepository) Create(ctx context.Context, room *domain.Room) (int, error) {
	err := rr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return insertRoom(tx, room.HouseID, room)
	})
	if err != nil {
		return 0, storageError("create room", err)
	}
	return room.RoomID, nil
}

// Update rewrites the room row and replaces its beds with room.Beds.
func (rr *roomRepository) Update(ctx context.Context, id int, room *domain.Room) error {
	err := rr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Room{}).Where("room_id = ?", id).Updates(map[string]interface{}{
			"name":       room.Name,
			"capacity":   room.Capacity,
			"notes":      room.Notes,
			"updated_at": time.Now(),
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return notFound("room", id)
		}

		if err := tx.Where("room_id = ?", id).Delete(&domain.Bed{}).Error; err != nil {
			return err
		}
		room.RoomID = id
		return insertBeds(tx, room)
	})
	if err != nil {
		return storageError("update room", err)
	}
	return nil
}

func (rr *roomRepository) Delete(ctx context.Context, id int, cascade bool) error {
	err := rr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.Room{}).Where("room_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return notFound("room", id)
		}
		if !cascade {
			var beds int64
			if err := tx.Model(&domain.Bed{}).Where("room_id = ?", id).Count(&beds).Error; err != nil {
				return err
			}
			if beds > 0 {
				return hasDependents("delete room", beds)
			}
		}
		return removeRooms(tx, []int{id})
	})
	if err != nil {
		return storageError("delete room", err)
	}
	return nil
}

