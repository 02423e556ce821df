// Package store is the record access layer: parameterized reads, writes
// and deletes per entity, plus the two compound operations (atomic sale
// placement and reversal) and credential verification.
package store

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Error kinds surfaced by the store. Callers match them with errors.Is;
// each returned error wraps one of these with a human-readable message.
var (
	ErrValidation         = errors.New("validation failed")
	ErrDuplicateKey       = errors.New("duplicate key")
	ErrNotFound           = errors.New("not found")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Store struct {
	db  *gorm.DB
	log *logrus.Logger
}

func New(db *gorm.DB, log *logrus.Logger) *Store {
	return &Store{db: db, log: log}
}
