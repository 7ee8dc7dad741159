package repository

import (
	"context"

	"gorm.io/gorm"
)

// UnitOfWork groups writes that must commit or fail together. The callback
// receives the transaction handle; repositories are rebound to it via
// WithTx. Any error aborts the whole unit.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(tx *gorm.DB) error) error
}
