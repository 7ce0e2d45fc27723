package domain

import (
	"context"
	"fmt"
	"time"
)

const (
	BedSingle = "individual"
	BedDouble = "matrimonial"
	BedBunk   = "litera"
)

var BedTypes = []string{BedSingle, BedDouble, BedBunk}

type House struct {
	HouseID         int          `gorm:"primaryKey;autoIncrement" json:"house_id"`
	Address         string       `gorm:"type:varchar(240);not null" json:"address" valid:"required~Address is required"`
	HostID          int          `gorm:"not null;index" json:"host_id" valid:"required~Host is required"`
	Host            *Host        `json:"host,omitempty" valid:"-"`
	CommonBathrooms int          `gorm:"not null;default:0;check:chk_houses_common_bathrooms,common_bathrooms >= 0" json:"common_bathrooms"`
	SingleBeds      int          `gorm:"not null;default:0;check:chk_houses_single_beds,single_beds >= 0" json:"single_beds"`
	DoubleBeds      int          `gorm:"not null;default:0;check:chk_houses_double_beds,double_beds >= 0" json:"double_beds"`
	BunkBeds        int          `gorm:"not null;default:0;check:chk_houses_bunk_beds,bunk_beds >= 0" json:"bunk_beds"`
	Notes           *string      `gorm:"type:text" json:"notes"`
	Rooms           []Room       `gorm:"foreignKey:HouseID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"rooms" valid:"-"`
	Bathrooms       []Bathroom   `gorm:"foreignKey:HouseID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"bathrooms" valid:"-"`
	Assignments     []Assignment `gorm:"foreignKey:HouseID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-" valid:"-"`
	CreatedAt       time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

func (h *House) DisplayLabel() string {
	if h.Host == nil {
		return h.Address
	}
	return fmt.Sprintf("%s - %s", h.Address, h.Host.FullName)
}

type Room struct {
	RoomID      int          `gorm:"primaryKey;autoIncrement" json:"room_id"`
	HouseID     int          `gorm:"not null;index" json:"house_id"`
	House       *House       `json:"-" valid:"-"`
	Name        string       `gorm:"type:varchar(80)" json:"name"`
	Capacity    int          `gorm:"not null;default:1;check:chk_rooms_capacity,capacity >= 1" json:"capacity"`
	Notes       *string      `gorm:"type:text" json:"notes"`
	Beds        []Bed        `gorm:"foreignKey:RoomID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"beds" valid:"-"`
	Assignments []Assignment `gorm:"foreignKey:RoomID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-" valid:"-"`
	CreatedAt   time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

// BedTypes returns the type label of every bed in the room, in storage order.
func (r *Room) BedTypes() []string {
	out := make([]string, 0, len(r.Beds))
	for _, b := range r.Beds {
		out = append(out, b.Type)
	}
	return out
}

type Bed struct {
	BedID     int       `gorm:"primaryKey;autoIncrement" json:"bed_id"`
	RoomID    int       `gorm:"not null;index" json:"room_id"`
	Room      *Room     `json:"-" valid:"-"`
	Type      string    `gorm:"type:varchar(32);not null" json:"type"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type Bathroom struct {
	BathroomID int       `gorm:"primaryKey;autoIncrement" json:"bathroom_id"`
	HouseID    int       `gorm:"not null;index" json:"house_id"`
	House      *House    `json:"-" valid:"-"`
	Location   string    `gorm:"type:varchar(120);not null" json:"location"`
	HasTub     bool      `gorm:"not null;default:false" json:"has_tub"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type HouseRepo interface {
	List(ctx context.Context, orderBy string) (*[]House, error)
	ListByHost(ctx context.Context, hostID int) (*[]House, error)
	Get(ctx context.Context, id int) (*House, error)
	GetWithChildren(ctx context.Context, id int) (*House, error)
	Create(ctx context.Context, house *House) (int, error)
	Update(ctx context.Context, id int, house *House) error
	// SaveWithChildren creates or updates the house row and replaces every room, bed and
	// bathroom of the house with the ones carried by house, in a single transaction.
	SaveWithChildren(ctx context.Context, house *House) (int, error)
	Delete(ctx context.Context, id int, cascade bool) error
}

type RoomRepo interface {
	List(ctx context.Context, orderBy string) (*[]Room, error)
	ListByHouse(ctx context.Context, houseID int) (*[]Room, error)
	Get(ctx context.Context, id int) (*Room, error)
	Create(ctx context.Context, room *Room) (int, error)
	Update(ctx context.Context, id int, room *Room) error
	Delete(ctx context.Context, id int, cascade bool) error
}

type BathroomRepo interface {
	List(ctx context.Context, orderBy string) (*[]Bathroom, error)
	ListByHouse(ctx context.Context, houseID int) (*[]Bathroom, error)
	Get(ctx context.Context, id int) (*Bathroom, error)
	Create(ctx context.Context, bathroom *Bathroom) (int, error)
	Update(ctx context.Context, id int, bathroom *Bathroom) error
	Delete(ctx context.Context, id int, cascade bool) error
}

type HouseUseCase interface {
	ListHouses(ctx context.Context, orderBy string) (*[]House, error)
	ListHousesByHost(ctx context.Context, hostID int) (*[]House, error)
	GetHouse(ctx context.Context, id int) (*House, error)
	CreateHouse(ctx context.Context, house *House) (int, error)
	// SaveHouse persists the house together with its staged rooms and bathrooms using
	// full-replace semantics.
	SaveHouse(ctx context.Context, house *House) (int, error)
	DeleteHouse(ctx context.Context, id int) error
}

// FacilityUseCase reads rooms and bathrooms outside of their house. Changes go through
// HouseUseCase.SaveHouse.
type FacilityUseCase interface {
	ListRooms(ctx context.Context, houseID int, orderBy string) (*[]Room, error)
	ListBathrooms(ctx context.Context, houseID int, orderBy string) (*[]Bathroom, error)
}
