package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/motorsync/garage-api/internal/domain/entity"
	"github.com/motorsync/garage-api/internal/domain/enum"
	domainRepo "github.com/motorsync/garage-api/internal/domain/repository"
	"gorm.io/gorm"
)

type jobCardRepository struct {
	db *gorm.DB
}

// NewJobCardRepository creates a new job card repository
func NewJobCardRepository(db *gorm.DB) domainRepo.JobCardRepository {
	return &jobCardRepository{db: db}
}

func (r *jobCardRepository) WithTx(tx *gorm.DB) domainRepo.JobCardRepository {
	return &jobCardRepository{db: tx}
}

func (r *jobCardRepository) Create(ctx context.Context, jobCard *entity.JobCard) error {
	return r.db.WithContext(ctx).Create(jobCard).Error
}

func (r *jobCardRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.JobCard, error) {
	var jobCard entity.JobCard
	err := r.db.WithContext(ctx).First(&jobCard, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &jobCard, err
}

// GetWithDetails loads a job card with its vehicle, technician and line items
// resolved; this is the aggregate shape served to observers.
func (r *jobCardRepository) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.JobCard, error) {
	var jobCard entity.JobCard
	err := r.db.WithContext(ctx).
		Preload("Vehicle").Preload("Vehicle.Customer").
		Preload("Technician").
		Preload("Services").
		Preload("Parts").Preload("Parts.InventoryItem").
		First(&jobCard, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &jobCard, err
}

func (r *jobCardRepository) Update(ctx context.Context, jobCard *entity.JobCard) error {
	return r.db.WithContext(ctx).Save(jobCard).Error
}

func (r *jobCardRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.JobCardStatus) error {
	return r.db.WithContext(ctx).Model(&entity.JobCard{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *jobCardRepository) List(ctx context.Context, params *domainRepo.JobCardFilterParams) ([]entity.JobCard, int64, error) {
	var jobCards []entity.JobCard
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.JobCard{})

	if params.Search != "" {
		query = query.Where("job_number LIKE ? OR complaint LIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.VehicleID != nil {
		query = query.Where("vehicle_id = ?", *params.VehicleID)
	}

	if params.TechnicianID != nil {
		query = query.Where("technician_id = ?", *params.TechnicianID)
	}

	if params.StartDate != nil {
		query = query.Where("created_at >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("created_at <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Vehicle").Preload("Technician").
		Order("created_at DESC").
		Find(&jobCards).Error

	return jobCards, total, err
}

type jobCardServiceRepository struct {
	db *gorm.DB
}

// NewJobCardServiceRepository creates a new labor line item repository
func NewJobCardServiceRepository(db *gorm.DB) domainRepo.JobCardServiceRepository {
	return &jobCardServiceRepository{db: db}
}

func (r *jobCardServiceRepository) WithTx(tx *gorm.DB) domainRepo.JobCardServiceRepository {
	return &jobCardServiceRepository{db: tx}
}

func (r *jobCardServiceRepository) Create(ctx context.Context, service *entity.JobCardService) error {
	return r.db.WithContext(ctx).Create(service).Error
}

func (r *jobCardServiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.JobCardService, error) {
	var service entity.JobCardService
	err := r.db.WithContext(ctx).First(&service, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &service, err
}

func (r *jobCardServiceRepository) GetByJobCardID(ctx context.Context, jobCardID uuid.UUID) ([]entity.JobCardService, error) {
	var services []entity.JobCardService
	err := r.db.WithContext(ctx).
		Where("job_card_id = ?", jobCardID).
		Order("created_at ASC").
		Find(&services).Error
	return services, err
}

func (r *jobCardServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.JobCardService{}, "id = ?", id).Error
}

type jobCardPartRepository struct {
	db *gorm.DB
}

// NewJobCardPartRepository creates a new part line item repository
func NewJobCardPartRepository(db *gorm.DB) domainRepo.JobCardPartRepository {
	return &jobCardPartRepository{db: db}
}

func (r *jobCardPartRepository) WithTx(tx *gorm.DB) domainRepo.JobCardPartRepository {
	return &jobCardPartRepository{db: tx}
}

func (r *jobCardPartRepository) Create(ctx context.Context, part *entity.JobCardPart) error {
	return r.db.WithContext(ctx).Create(part).Error
}

func (r *jobCardPartRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.JobCardPart, error) {
	var part entity.JobCardPart
	err := r.db.WithContext(ctx).First(&part, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &part, err
}

func (r *jobCardPartRepository) GetByJobCardID(ctx context.Context, jobCardID uuid.UUID) ([]entity.JobCardPart, error) {
	var parts []entity.JobCardPart
	err := r.db.WithContext(ctx).
		Preload("InventoryItem").
		Where("job_card_id = ?", jobCardID).
		Order("created_at ASC").
		Find(&parts).Error
	return parts, err
}

func (r *jobCardPartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.JobCardPart{}, "id = ?", id).Error
}
