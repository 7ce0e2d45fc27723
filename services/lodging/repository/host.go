package repository

import (
	"context"
	"time"

	"minshuku/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type hostRepository struct {
	db *gorm.DB
}

func NewHostRepository(database *gorm.DB) domain.HostRepo {
	return &hostRepository{
		db: database,
	}
}

var hostOrderColumns = map[string]string{
	domain.OrderByName:      "full_name",
	domain.OrderByID:        "host_id",
	"national_id":           "national_id",
	domain.OrderByCreatedAt: "created_at",
	domain.OrderByUpdatedAt: "updated_at",
}

func (hr *hostRepository) List(ctx context.Context, orderBy string) (*[]domain.Host, error) {
	var hosts []domain.Host
	err := hr.db.WithContext(ctx).
		Order(orderClause(orderBy, hostOrderColumns, domain.OrderByName)).
		Find(&hosts).Error
	if err != nil {
		return nil, storageError("list hosts", err)
	}
	return &hosts, nil
}

func (hr *hostRepository) Get(ctx context.Context, id int) (*domain.Host, error) {
	var host domain.Host
	err := hr.db.WithContext(ctx).Where("host_id = ?", id).First(&host).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, notFound("host", id)
		}
		return nil, storageError("get host", err)
	}
	return &host, nil
}

func (hr *hostRepository) GetByNationalID(ctx context.Context, nationalID string) (*domain.Host, error) {
	var host domain.Host
	err := hr.db.WithContext(ctx).Where("national_id = ?", nationalID).First(&host).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, &domain.NotFoundError{Entity: "host", Key: nationalID}
		}
		return nil, storageError("get host by national id", err)
	}
	return &host, nil
}

func (hr *hostRepository) ExistsNationalID(ctx context.Context, nationalID string) (bool, error) {
	var count int64
	err := hr.db.WithContext(ctx).Model(&domain.Host{}).Where("national_id = ?", nationalID).Count(&count).Error
	if err != nil {
		return false, storageError("check host national id", err)
	}
	return count > 0, nil
}

func (hr *hostRepository) Create(ctx context.Context, host *domain.Host) (int, error) {
	host.HostID = 0
	if err := hr.db.WithContext(ctx).Omit(clause.Associations).Create(host).Error; err != nil {
		if isDuplicateKey(err) {
			return 0, &domain.UniquenessError{Entity: "host", Field: "national ID", Value: host.NationalID}
		}
		return 0, storageError("create host", err)
	}
	return host.HostID, nil
}

func (hr *hostRepository) Update(ctx context.Context, id int, host *domain.Host) error {
	fields := map[string]interface{}{
		"full_name":      host.FullName,
		"phone":          host.Phone,
		"email":          host.Email,
		"sex":            host.Sex,
		"marital_status": host.MaritalStatus,
		"ownership_role": host.OwnershipRole,
		"updated_at":     time.Now(),
	}
	if host.NationalID != "" {
		fields["national_id"] = host.NationalID
	}

	res := hr.db.WithContext(ctx).Model(&domain.Host{}).Where("host_id = ?", id).Updates(fields)
	if res.Error != nil {
		if isDuplicateKey(res.Error) {
			return &domain.UniquenessError{Entity: "host", Field: "national ID", Value: host.NationalID}
		}
		return storageError("update host", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("host", id)
	}
	return nil
}

func (hr *hostRepository) Delete(ctx context.Context, id int, cascade bool) error {
	err := hr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.Host{}).Where("host_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return notFound("host", id)
		}

		var houseIDs []int
		if err := tx.Model(&domain.House{}).Where("host_id = ?", id).Pluck("house_id", &houseIDs).Error; err != nil {
			return err
		}
		if len(houseIDs) > 0 && !cascade {
			return hasDependents("delete host", int64(len(houseIDs)))
		}

		for _, houseID := range houseIDs {
			if err := removeHouse(tx, houseID); err != nil {
				return err
			}
		}
		return tx.Where("host_id = ?", id).Delete(&domain.Host{}).Error
	})
	if err != nil {
		return storageError("delete host", err)
	}
	return nil
}
