package repository

import (
	"context"
	"time"

	"minshuku/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type houseRepository struct {
	db *gorm.DB
}

func NewHouseRepository(database *gorm.DB) domain.HouseRepo {
	return &houseRepository{
		db: database,
	}
}

var houseOrderColumns = map[string]string{
	domain.OrderByName:      "address",
	"address":               "address",
	domain.OrderByID:        "house_id",
	"host_id":               "host_id",
	domain.OrderByCreatedAt: "created_at",
	domain.OrderByUpdatedAt: "updated_at",
}

func (hr *houseRepository) List(ctx context.Context, orderBy string) (*[]domain.House, error) {
	var houses []domain.House
	err := hr.db.WithContext(ctx).
		Preload("Host").
		Order(orderClause(orderBy, houseOrderColumns, domain.OrderByName)).
		Find(&houses).Error
	if err != nil {
		return nil, storageError("list houses", err)
	}
	return &houses, nil
}

func (hr *houseRepository) ListByHost(ctx context.Context, hostID int) (*[]domain.House, error) {
	var houses []domain.House
	err := hr.db.WithContext(ctx).
		Where("host_id = ?", hostID).
		Order("house_id ASC").
		Find(&houses).Error
	if err != nil {
		return nil, storageError("list houses by host", err)
	}
	return &houses, nil
}

func (hr *houseRepository) Get(ctx context.Context, id int) (*domain.House, error) {
	var house domain.House
	err := hr.db.WithContext(ctx).Preload("Host").Where("house_id = ?", id).First(&house).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, notFound("house", id)
		}
		return nil, storageError("get house", err)
	}
	return &house, nil
}

func (hr *houseRepository) GetWithChildren(ctx context.Context, id int) (*domain.House, error) {
	house, err := hr.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	db := hr.db.WithContext(ctx)
	var rooms []domain.Room
	if err := db.Where("house_id = ?", id).Order("room_id ASC").Find(&rooms).Error; err != nil {
		return nil, storageError("load rooms", err)
	}
	if err := attachBeds(db, rooms); err != nil {
		return nil, storageError("load beds", err)
	}

	var bathrooms []domain.Bathroom
	if err := db.Where("house_id = ?", id).Order("bathroom_id ASC").Find(&bathrooms).Error; err != nil {
		return nil, storageError("load bathrooms", err)
	}

	house.Rooms = rooms
	house.Bathrooms = bathrooms
	return house, nil
}

func (hr *houseRepository) Create(ctx context.Context, house *domain.House) (int, error) {
	house.HouseID = 0
	if err := hr.db.WithContext(ctx).Omit(clause.Associations).Create(house).Error; err != nil {
		return 0, storageError("create house", err)
	}
	return house.HouseID, nil
}

func houseFields(house *domain.House) map[string]interface{} {
	return map[string]interface{}{
		"address":          house.Address,
		"host_id":          house.HostID,
		"common_bathrooms": house.CommonBathrooms,
		"single_beds":      house.SingleBeds,
		"double_beds":      house.DoubleBeds,
		"bunk_beds":        house.BunkBeds,
		"notes":            house.Notes,
		"updated_at":       time.Now(),
	}
}

func updateHouseRow(tx *gorm.DB, id int, house *domain.House) error {
	res := tx.Model(&domain.House{}).Where("house_id = ?", id).Updates(houseFields(house))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound("house", id)
	}
	return nil
}

func (hr *houseRepository) Update(ctx context.Context, id int, house *domain.House) error {
	if err := updateHouseRow(hr.db.WithContext(ctx), id, house); err != nil {
		return storageError("update house", err)
	}
	return nil
}

func (hr *houseRepository) SaveWithChildren(ctx context.Context, house *domain.House) (int, error) {
	err := hr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if house.HouseID == 0 {
			if err := tx.Omit(clause.Associations).Create(house).Error; err != nil {
				return err
			}
		} else {
			if err := updateHouseRow(tx, house.HouseID, house); err != nil {
				return err
			}
			// full replace: prior rooms, beds and bathrooms go away
			if err := removeHouseChildren(tx, house.HouseID); err != nil {
				return err
			}
		}

		for i := range house.Rooms {
			if err := insertRoom(tx, house.HouseID, &house.Rooms[i]); err != nil {
				return err
			}
		}
		for i := range house.Bathrooms {
			if err := insertBathroom(tx, house.HouseID, &house.Bathrooms[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, storageError("save house", err)
	}
	return house.HouseID, nil
}

func (hr *houseRepository) Delete(ctx context.Context, id int, cascade bool) error {
	err := hr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.House{}).Where("house_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return notFound("house", id)
		}

		if !cascade {
			var rooms, bathrooms, assignments int64
			if err := tx.Model(&domain.Room{}).Where("house_id = ?", id).Count(&rooms).Error; err != nil {
				return err
			}
			if err := tx.Model(&domain.Bathroom{}).Where("house_id = ?", id).Count(&bathrooms).Error; err != nil {
				return err
			}
			if err := tx.Model(&domain.Assignment{}).Where("house_id = ?", id).Count(&assignments).Error; err != nil {
				return err
			}
			if total := rooms + bathrooms + assignments; total > 0 {
				return hasDependents("delete house", total)
			}
		}
		return removeHouse(tx, id)
	})
	if err != nil {
		return storageError("delete house", err)
	}
	return nil
}
