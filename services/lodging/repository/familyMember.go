package repository

import (
	"context"
	"time"

	"minshuku/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type familyMemberRepository struct {
	db *gorm.DB
}

func NewFamilyMemberRepository(database *gorm.DB) domain.FamilyMemberRepo {
	return &familyMemberRepository{
		db: database,
	}
}

var familyMemberOrderColumns = map[string]string{
	domain.OrderByName:      "name",
	domain.OrderByID:        "family_member_id",
	"guest_id":              "guest_id",
	"age":                   "age",
	domain.OrderByCreatedAt: "created_at",
	domain.OrderByUpdatedAt: "updated_at",
}

func (fr *familyMemberRepository) List(ctx context.Context, orderBy string) (*[]domain.FamilyMember, error) {
	var members []domain.FamilyMember
	err := fr.db.WithContext(ctx).
		Order(orderClause(orderBy, familyMemberOrderColumns, domain.OrderByName)).
		Find(&members).Error
	if err != nil {
		return nil, storageError("list family members", err)
	}
	return &members, nil
}

func (fr *familyMemberRepository) ListByGuest(ctx context.Context, guestID int) (*[]domain.FamilyMember, error) {
	var members []domain.FamilyMember
	err := fr.db.WithContext(ctx).Where("guest_id = ?", guestID).Order("name ASC").Find(&members).Error
	if err != nil {
		return nil, storageError("list family members by guest", err)
	}
	return &members, nil
}

func (fr *familyMemberRepository) Get(ctx context.Context, id int) (*domain.FamilyMember, error) {
	var member domain.FamilyMember
	if err := fr.db.WithContext(ctx).Where("family_member_id = ?", id).First(&member).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, notFound("family member", id)
		}
		return nil, storageError("get family member", err)
	}
	return &member, nil
}

func (fr *familyMemberRepository) Create(ctx context.Context, member *domain.FamilyMember) (int, error) {
	member.FamilyMemberID = 0
	if err := fr.db.WithContext(ctx).Omit(clause.Associations).Create(member).Error; err != nil {
		return 0, storageError("create family member", err)
	}
	return member.FamilyMemberID, nil
}

func (fr *familyMemberRepository) Update(ctx context.Context, id int, member *domain.FamilyMember) error {
	res := fr.db.WithContext(ctx).Model(&domain.FamilyMember{}).Where("family_member_id = ?", id).Updates(map[string]interface{}{
		"name":       member.Name,
		"age":        member.Age,
		"sex":        member.Sex,
		"relation":   member.Relation,
		"updated_at": time.Now(),
	})
	if res.Error != nil {
		return storageError("update family member", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("family member", id)
	}
	return nil
}

func (fr *familyMemberRepository) Delete(ctx context.Context, id int, cascade bool) error {
	res := fr.db.WithContext(ctx).Where("family_member_id = ?", id).Delete(&domain.FamilyMember{})
	if res.Error != nil {
		return storageError("delete family member", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("family member", id)
	}
	return nil
}
