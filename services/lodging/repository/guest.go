package repository

import (
	"context"
	"strings"
	"time"

	"minshuku/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type guestRepository struct {
	db *gorm.DB
}

func NewGuestRepository(database *gorm.DB) domain.GuestRepo {
	return &guestRepository{
		db: database,
	}
}

var guestOrderColumns = map[string]string{
	domain.OrderByName:      "full_name",
	domain.OrderByID:        "guest_id",
	"national_id":           "national_id",
	"age":                   "age",
	domain.OrderByCreatedAt: "created_at",
	domain.OrderByUpdatedAt: "updated_at",
}

func (gr *guestRepository) List(ctx context.Context, orderBy string) (*[]domain.Guest, error) {
	var guests []domain.Guest
	err := gr.db.WithContext(ctx).
		Order(orderClause(orderBy, guestOrderColumns, domain.OrderByName)).
		Find(&guests).Error
	if err != nil {
		return nil, storageError("list guests", err)
	}
	return &guests, nil
}

// likeEscaper quotes LIKE wildcards with '!', the ESCAPE character used by Search.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// Search matches query, case-insensitively, against name, national ID, email and phone.
func (gr *guestRepository) Search(ctx context.Context, query string) (*[]domain.Guest, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return gr.List(ctx, domain.OrderByName)
	}

	pattern := "%" + likeEscaper.Replace(q) + "%"
	var guests []domain.Guest
	err := gr.db.WithContext(ctx).
		Where("LOWER(full_name) LIKE ? ESCAPE '!' OR LOWER(national_id) LIKE ? ESCAPE '!' OR "+
			"LOWER(email) LIKE ? ESCAPE '!' OR LOWER(COALESCE(phone, '')) LIKE ? ESCAPE '!'",
			pattern, pattern, pattern, pattern).
		Order("full_name ASC").
		Find(&guests).Error
	if err != nil {
		return nil, storageError("search guests", err)
	}
	return &guests, nil
}

func (gr *guestRepository) Get(ctx context.Context, id int) (*domain.Guest, error) {
	db := gr.db.WithContext(ctx)
	var guest domain.Guest
	if err := db.Where("guest_id = ?", id).First(&guest).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, notFound("guest", id)
		}
		return nil, storageError("get guest", err)
	}

	var members []domain.FamilyMember
	if err := db.Where("guest_id = ?", id).Order("name ASC").Find(&members).Error; err != nil {
		return nil, storageError("get guest", err)
	}
	guest.FamilyMembers = members
	return &guest, nil
}

func (gr *guestRepository) GetByNationalID(ctx context.Context, nationalID string) (*domain.Guest, error) {
	var guest domain.Guest
	err := gr.db.WithContext(ctx).Where("national_id = ?", nationalID).First(&guest).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, &domain.NotFoundError{Entity: "guest", Key: nationalID}
		}
		return nil, storageError("get guest by national id", err)
	}
	return &guest, nil
}

func (gr *guestRepository) ExistsNationalID(ctx context.Context, nationalID string) (bool, error) {
	var count int64
	err := gr.db.WithContext(ctx).Model(&domain.Guest{}).Where("national_id = ?", nationalID).Count(&count).Error
	if err != nil {
		return false, storageError("check guest national id", err)
	}
	return count > 0, nil
}

func (gr *guestRepository) Create(ctx context.Context, guest *domain.Guest) (int, error) {
	guest.GuestID = 0
	if err := gr.db.WithContext(ctx).Omit(clause.Associations).Create(guest).Error; err != nil {
		if isDuplicateKey(err) {
			return 0, &domain.UniquenessError{Entity: "guest", Field: "national ID", Value: guest.NationalID}
		}
		return 0, storageError("create guest", err)
	}
	return guest.GuestID, nil
}

func (gr *guestRepository) Update(ctx context.Context, id int, guest *domain.Guest) error {
	fields := map[string]interface{}{
		"full_name":           guest.FullName,
		"email":               guest.Email,
		"phone":               guest.Phone,
		"age":                 guest.Age,
		"sex":                 guest.Sex,
		"arrives_with_family": guest.ArrivesWithFamily,
		"updated_at":          time.Now(),
	}
	if guest.NationalID != "" {
		fields["national_id"] = guest.NationalID
	}

	res := gr.db.WithContext(ctx).Model(&domain.Guest{}).Where("guest_id = ?", id).Updates(fields)
	if res.Error != nil {
		if isDuplicateKey(res.Error) {
			return &domain.UniquenessError{Entity: "guest", Field: "national ID", Value: guest.NationalID}
		}
		return storageError("update guest", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("guest", id)
	}
	return nil
}

func (gr *guestRepository) Delete(ctx context.Context, id int, cascade bool) error {
	err := gr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.Guest{}).Where("guest_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return notFound("guest", id)
		}
		if !cascade {
			var members, assignments int64
			if err := tx.Model(&domain.FamilyMember{}).Where("guest_id = ?", id).Count(&members).Error; err != nil {
				return err
			}
			if err := tx.Model(&domain.Assignment{}).Where("guest_id = ?", id).Count(&assignments).Error; err != nil {
				return err
			}
			if total := members + assignments; total > 0 {
				return hasDependents("delete guest", total)
			}
		}
		return removeGuest(tx, id)
	})
	if err != nil {
		return storageError("delete guest", err)
	}
	return nil
}
