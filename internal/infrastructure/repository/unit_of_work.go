package repository

import (
	"context"

	domainRepo "github.com/motorsync/garage-api/internal/domain/repository"
	"gorm.io/gorm"
)

type unitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a unit of work backed by database transactions
func NewUnitOfWork(db *gorm.DB) domainRepo.UnitOfWork {
	return &unitOfWork{db: db}
}

// Do runs fn inside a single transaction; any returned error rolls the whole
// unit back.
func (u *unitOfWork) Do(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return u.db.WithContext(ctx).Transaction(fn)
}
