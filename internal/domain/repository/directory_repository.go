package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/motorsync/garage-api/internal/domain/entity"
	"github.com/motorsync/garage-api/pkg/pagination"
)

// VehicleRepository defines the interface for vehicle directory lookups
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *entity.Vehicle) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error)
	GetByRegistration(ctx context.Context, registration string) (*entity.Vehicle, error)
	Update(ctx context.Context, vehicle *entity.Vehicle) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Vehicle, int64, error)
}

// TechnicianRepository defines the interface for technician directory lookups
type TechnicianRepository interface {
	Create(ctx context.Context, technician *entity.Technician) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Technician, error)
	Update(ctx context.Context, technician *entity.Technician) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, activeOnly bool) ([]entity.Technician, int64, error)
}
