package repository

import (
	"errors"

	"github.com/amirasaad/ledger/pkg/domain"
	"gorm.io/gorm"
)

// MapGormErrorToDomain converts GORM errors to domain errors.
// Traverses the error chain to find GORM errors and maps them to the
// matching domain error. Unknown errors are returned unchanged.
func MapGormErrorToDomain(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrAlreadyExists
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	}
	return err
}

// wrapError maps err to a domain error, or wraps it in a StorageError
// tagged with op when it has no domain meaning.
func wrapError(op string, err error) error {
	if err == nil {
		return nil
	}
	mapped := MapGormErrorToDomain(err)
	if mapped != err {
		return mapped
	}
	return domain.NewStorageError(op, err)
}
