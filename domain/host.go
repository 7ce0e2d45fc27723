package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type Host struct {
	HostID        int       `gorm:"primaryKey;autoIncrement" json:"host_id"`
	FullName      string    `gorm:"type:varchar(180);not null" json:"full_name" valid:"required~Name is required"`
	NationalID    string    `gorm:"type:varchar(20);not null;uniqueIndex" json:"national_id" valid:"rut~Invalid national ID,optional"`
	Phone         *string   `gorm:"type:varchar(32)" json:"phone"`
	Email         *string   `gorm:"type:varchar(180)" json:"email" valid:"mail~Invalid email format,optional"`
	Sex           string    `gorm:"type:varchar(16);not null;default:male" json:"sex" valid:"required~Sex is required,in(male|female)~Invalid sex"`
	MaritalStatus string    `gorm:"type:varchar(32)" json:"marital_status"`
	OwnershipRole string    `gorm:"type:varchar(64)" json:"ownership_role"`
	Houses        []House   `gorm:"foreignKey:HostID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"houses,omitempty" valid:"-"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// IsMarried reports whether the marital status reads as married ("Casado"/"Casada"/"married").
func (h *Host) IsMarried() bool {
	s := strings.ToLower(strings.TrimSpace(h.MaritalStatus))
	return strings.HasPrefix(s, "casad") || s == "married"
}

func (h *Host) DisplayLabel() string {
	married := "No"
	if h.IsMarried() {
		married = "Sí"
	}
	return fmt.Sprintf("%s - %s (Casado: %s)", h.NationalID, h.FullName, married)
}

type HostRepo interface {
	List(ctx context.Context, orderBy string) (*[]Host, error)
	Get(ctx context.Context, id int) (*Host, error)
	GetByNationalID(ctx context.Context, nationalID string) (*Host, error)
	ExistsNationalID(ctx context.Context, nationalID string) (bool, error)
	Create(ctx context.Context, host *Host) (int, error)
	Update(ctx context.Context, id int, host *Host) error
	Delete(ctx context.Context, id int, cascade bool) error
}

type HostUseCase interface {
	ListHosts(ctx context.Context, orderBy string) (*[]Host, error)
	GetHost(ctx context.Context, id int) (*Host, error)
	CreateHost(ctx context.Context, host *Host) (int, error)
	UpdateHost(ctx context.Context, id int, host *Host) error
	DeleteHost(ctx context.Context, id int) error
}
