package repository

import (
	"context"
	"time"

	"minshuku/domain"

	"gorm.io/gorm"
)

type bathroomRepository struct {
	db *gorm.DB
}

func NewBathroomRepository(database *gorm.DB) domain.BathroomRepo {
	return &bathroomRepository{
		db: database,
	}
}

var bathroomOrderColumns = map[string]string{
	domain.OrderByName:      "location",
	"location":              "location",
	domain.OrderByID:        "bathroom_id",
	"house_id":              "house_id",
	domain.OrderByCreatedAt: "created_at",
	domain.OrderByUpdatedAt: "updated_at",
}

func (br *bathroomRepository) List(ctx context.Context, orderBy string) (*[]domain.Bathroom, error) {
	var bathrooms []domain.Bathroom
	err := br.db.WithContext(ctx).
		Order(orderClause(orderBy, bathroomOrderColumns, domain.OrderByName)).
		Find(&bathrooms).Error
	if err != nil {
		return nil, storageError("list bathrooms", err)
	}
	return &bathrooms, nil
}

func (br *bathroomRepository) ListByHouse(ctx context.Context, houseID int) (*[]domain.Bathroom, error) {
	var bathrooms []domain.Bathroom
	err := br.db.WithContext(ctx).Where("house_id = ?", houseID).Order("bathroom_id ASC").Find(&bathrooms).Error
	if err != nil {
		return nil, storageError("list bathrooms by house", err)
	}
	return &bathrooms, nil
}

func (br *bathroomRepository) Get(ctx context.Context, id int) (*domain.Bathroom, error) {
	var bathroom domain.Bathroom
	if err := br.db.WithContext(ctx).Where("bathroom_id = ?", id).First(&bathroom).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, notFound("bathroom", id)
		}
		return nil, storageError("get bathroom", err)
	}
	return &bathroom, nil
}

func (br *bathroomRepository) Create(ctx context.Context, bathroom *domain.Bathroom) (int, error) {
	if err := insertBathroom(br.db.WithContext(ctx), bathroom.HouseID, bathroom); err != nil {
		return 0, storageError("create bathroom", err)
	}
	return bathroom.BathroomID, nil
}

func (br *bathroomRepository) Update(ctx context.Context, id int, bathroom *domain.Bathroom) error {
	res := br.db.WithContext(ctx).Model(&domain.Bathroom{}).Where("bathroom_id = ?", id).Updates(map[string]interface{}{
		"location":   bathroom.Location,
		"has_tub":    bathroom.HasTub,
		"updated_at": time.Now(),
	})
	if res.Error != nil {
		return storageError("update bathroom", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("bathroom", id)
	}
	return nil
}

// Delete removes a bathroom. Bathrooms have no dependents, so cascade is irrelevant.
func (br *bathroomRepository) Delete(ctx context.Context, id int, cascade bool) error {
	res := br.db.WithContext(ctx).Where("bathroom_id = ?", id).Delete(&domain.Bathroom{})
	if res.Error != nil {
		return storageError("delete bathroom", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("bathroom", id)
	}
	return nil
}
