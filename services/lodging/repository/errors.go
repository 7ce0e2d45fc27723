package repository

import (
	"errors"
	"fmt"
	"strings"

	"minshuku/domain"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == 1062 {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// storageError wraps a driver error unless it already belongs to the domain taxonomy.
func storageError(op string, err error) error {
	var (
		nf  *domain.NotFoundError
		ue  *domain.UniquenessError
		se  *domain.StorageError
		val *domain.ValidationError
	)
	if errors.As(err, &nf) || errors.As(err, &ue) || errors.As(err, &se) || errors.As(err, &val) {
		return err
	}
	return &domain.StorageError{Op: op, Err: err}
}

func notFound(entity string, id int) error {
	return &domain.NotFoundError{Entity: entity, ID: id}
}

func hasDependents(op string, count int64) error {
	return &domain.StorageError{Op: op, Err: fmt.Errorf("%w (%d)", domain.ErrHasDependents, count)}
}
