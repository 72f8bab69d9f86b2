package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound means the addressed record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrReferenceNotFound means a record named in the request body does not exist.
	ErrReferenceNotFound = errors.New("reference not found")
)

// LookupError names the entity that could not be found.
type LookupError struct {
	Entity string
	Kind   error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s matching query does not exist.", e.Entity)
}

func (e *LookupError) Unwrap() error {
	return e.Kind
}

func notFound(entity string) error {
	return &LookupError{Entity: entity, Kind: ErrNotFound}
}

func referenceNotFound(entity string) error {
	return &LookupError{Entity: entity, Kind: ErrReferenceNotFound}
}

// translate maps a missing-row error from the repository layer onto
// ErrNotFound for entity and passes everything else through.
func translate(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(entity)
	}
	return err
}
