package storage

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound: the id or slug does not resolve to a row.
	ErrNotFound = errors.New("record not found")
	// ErrConflict: a uniqueness or foreign-key invariant was broken.
	ErrConflict = errors.New("constraint violation")
)

func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrConflict
	default:
		return err
	}
}
