package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/motorsync/garage-api/internal/domain/entity"
	domainRepo "github.com/motorsync/garage-api/internal/domain/repository"
	"github.com/motorsync/garage-api/pkg/pagination"
	"gorm.io/gorm"
)

type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository creates a new vehicle repository
func NewVehicleRepository(db *gorm.DB) domainRepo.VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	return r.db.WithContext(ctx).Create(vehicle).Error
}

func (r *vehicleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	var vehicle entity.Vehicle
	err := r.db.WithContext(ctx).
		Preload("Customer").
		First(&vehicle, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &vehicle, err
}

func (r *vehicleRepository) GetByRegistration(ctx context.Context, registration string) (*entity.Vehicle, error) {
	var vehicle entity.Vehicle
	err := r.db.WithContext(ctx).
		Preload("Customer").
		First(&vehicle, "registration_number = ?", registration).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &vehicle, err
}

func (r *vehicleRepository) Update(ctx context.Context, vehicle *entity.Vehicle) error {
	return r.db.WithContext(ctx).Save(vehicle).Error
}

func (r *vehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Vehicle{}, "id = ?", id).Error
}

func (r *vehicleRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Vehicle, int64, error) {
	var vehicles []entity.Vehicle
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Vehicle{})

	if search != "" {
		query = query.Where("registration_number LIKE ? OR make LIKE ? OR model LIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Customer").
		Order("created_at DESC").
		Find(&vehicles).Error

	return vehicles, total, err
}

type technicianRepository struct {
	db *gorm.DB
}

// NewTechnicianRepository creates a new technician repository
func NewTechnicianRepository(db *gorm.DB) domainRepo.TechnicianRepository {
	return &technicianRepository{db: db}
}

func (r *technicianRepository) Create(ctx context.Context, technician *entity.Technician) error {
	return r.db.WithContext(ctx).Create(technician).Error
}

func (r *technicianRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Technician, error) {
	var technician entity.Technician
	err := r.db.WithContext(ctx).First(&technician, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &technician, err
}

func (r *technicianRepository) Update(ctx context.Context, technician *entity.Technician) error {
	return r.db.WithContext(ctx).Save(technician).Error
}

func (r *technicianRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Technician{}, "id = ?", id).Error
}

func (r *technicianRepository) List(ctx context.Context, params *pagination.PaginationParams, activeOnly bool) ([]entity.Technician, int64, error) {
	var technicians []entity.Technician
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Technician{})

	if activeOnly {
		query = query.Where("active = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&technicians).Error

	return technicians, total, err
}
