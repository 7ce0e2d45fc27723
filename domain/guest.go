package domain

import (
	"context"
	"fmt"
	"time"
)

type Guest struct {
	GuestID           int            `gorm:"primaryKey;autoIncrement" json:"guest_id"`
	FullName          string         `gorm:"type:varchar(180);not null" json:"full_name" valid:"required~Name is required"`
	NationalID        string         `gorm:"type:varchar(20);not null;uniqueIndex" json:"national_id" valid:"rut~Invalid national ID,optional"`
	Email             string         `gorm:"type:varchar(180);not null" json:"email" valid:"required~Email is required,mail~Invalid email format"`
	Phone             *string        `gorm:"type:varchar(32)" json:"phone"`
	Age               *int           `gorm:"check:chk_guests_age,age >= 0 AND age <= 120" json:"age"`
	Sex               string         `gorm:"type:varchar(16);not null;default:male" json:"sex" valid:"required~Sex is required,in(male|female)~Invalid sex"`
	ArrivesWithFamily bool           `gorm:"not null;default:false" json:"arrives_with_family"`
	FamilyMembers     []FamilyMember `gorm:"foreignKey:GuestID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"family_members,omitempty" valid:"-"`
	Assignments       []Assignment   `gorm:"foreignKey:GuestID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-" valid:"-"`
	CreatedAt         time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (g *Guest) DisplayLabel() string {
	return fmt.Sprintf("%s - %s", g.NationalID, g.FullName)
}

type FamilyMember struct {
	FamilyMemberID int       `gorm:"primaryKey;autoIncrement" json:"family_member_id"`
	GuestID        int       `gorm:"not null;index" json:"guest_id"`
	Guest          *Guest    `json:"-" valid:"-"`
	Name           string    `gorm:"type:varchar(180);not null" json:"name" valid:"required~Name is required"`
	Age            *int      `gorm:"check:chk_family_members_age,age >= 0 AND age <= 120" json:"age"`
	Sex            string    `gorm:"type:varchar(16);not null;default:male" json:"sex" valid:"required~Sex is required,in(male|female)~Invalid sex"`
	Relation       *string   `gorm:"type:varchar(40)" json:"relation"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (f *FamilyMember) DisplayLabel() string {
	return fmt.Sprintf("%s - %s", f.Name, StringValue(f.Relation))
}

type GuestRepo interface {
	List(ctx context.Context, orderBy string) (*[]Guest, error)
	Search(ctx context.Context, query string) (*[]Guest, error)
	Get(ctx context.Context, id int) (*Guest, error)
	GetByNationalID(ctx context.Context, nationalID string) (*Guest, error)
	ExistsNationalID(ctx context.Context, nationalID string) (bool, error)
	Create(ctx context.Context, guest *Guest) (int, error)
	Update(ctx context.Context, id int, guest *Guest) error
	Delete(ctx context.Context, id int, cascade bool) error
}

type FamilyMemberRepo interface {
	List(ctx context.Context, orderBy string) (*[]FamilyMember, error)
	ListByGuest(ctx context.Context, guestID int) (*[]FamilyMember, error)
	Get(ctx context.Context, id int) (*FamilyMember, error)
	Create(ctx context.Context, member *FamilyMember) (int, error)
	Update(ctx context.Context, id int, member *FamilyMember) error
	Delete(ctx context.Context, id int, cascade bool) error
}

type GuestUseCase interface {
	ListGuests(ctx context.Context, orderBy string) (*[]Guest, error)
	SearchGuests(ctx context.Context, query string) (*[]Guest, error)
	GetGuest(ctx context.Context, id int) (*Guest, error)
	CreateGuest(ctx context.Context, guest *Guest) (int, error)
	UpdateGuest(ctx context.Context, id int, guest *Guest) error
	DeleteGuest(ctx context.Context, id int) error
}

type FamilyMemberUseCase interface {
	ListFamilyMembers(ctx context.Context, guestID int) (*[]FamilyMember, error)
	AddFamilyMember(ctx context.Context, member *FamilyMember) (int, error)
	UpdateFamilyMember(ctx context.Context, id int, member *FamilyMember) error
	DeleteFamilyMember(ctx context.Context, id int) error
}
