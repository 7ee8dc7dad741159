package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/motorsync/garage-api/internal/domain/entity"
	"github.com/motorsync/garage-api/internal/domain/enum"
	"github.com/motorsync/garage-api/pkg/pagination"
	"gorm.io/gorm"
)

// JobCardRepository defines the interface for job card data operations
type JobCardRepository interface {
	WithTx(tx *gorm.DB) JobCardRepository
	Create(ctx context.Context, jobCard *entity.JobCard) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.JobCard, error)
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.JobCard, error)
	Update(ctx context.Context, jobCard *entity.JobCard) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.JobCardStatus) error
	List(ctx context.Context, params *JobCardFilterParams) ([]entity.JobCard, int64, error)
}

// JobCardFilterParams contains filtering parameters for job card queries
type JobCardFilterParams struct {
	Pagination   *pagination.PaginationParams
	Search       string
	Status       *enum.JobCardStatus
	VehicleID    *uuid.UUID
	TechnicianID *uuid.UUID
	StartDate    *time.Time
	EndDate      *time.Time
}

// JobCardServiceRepository defines the interface for labor line items
type JobCardServiceRepository interface {
	WithTx(tx *gorm.DB) JobCardServiceRepository
	Create(ctx context.Context, service *entity.JobCardService) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.JobCardService, error)
	GetByJobCardID(ctx context.Context, jobCardID uuid.UUID) ([]entity.JobCardService, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// JobCardPartRepository defines the interface for consumed part line items
type JobCardPartRepository interface {
	WithTx(tx *gorm.DB) JobCardPartRepository
	Create(ctx context.Context, part *entity.JobCardPart) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.JobCardPart, error)
	GetByJobCardID(ctx context.Context, jobCardID uuid.UUID) ([]entity.JobCardPart, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
