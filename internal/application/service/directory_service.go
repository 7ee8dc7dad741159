package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/motorsync/garage-api/internal/domain/entity"
	"github.com/motorsync/garage-api/internal/domain/repository"
	"github.com/motorsync/garage-api/pkg/apperror"
	"github.com/motorsync/garage-api/pkg/pagination"
)

// VehicleService handles the vehicle directory
type VehicleService struct {
	vehicleRepo  repository.VehicleRepository
	customerRepo repository.CustomerRepository
}

// NewVehicleService creates a new vehicle service
func NewVehicleService(vehicleRepo repository.VehicleRepository, customerRepo repository.CustomerRepository) *VehicleService {
	return &VehicleService{vehicleRepo: vehicleRepo, customerRepo: customerRepo}
}

// CreateVehicleInput represents the create vehicle input
type CreateVehicleInput struct {
	CustomerID         uuid.UUID
	RegistrationNumber string
	Make               string
	Model              string
	Year               int
}

// CreateVehicle registers a vehicle under an existing customer
func (s *VehicleService) CreateVehicle(ctx context.Context, input *CreateVehicleInput) (*entity.Vehicle, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	existing, err := s.vehicleRepo.GetByRegistration(ctx, input.RegistrationNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Registration number already exists")
	}

	vehicle := &entity.Vehicle{
		CustomerID:         input.CustomerID,
		RegistrationNumber: input.RegistrationNumber,
		Make:               input.Make,
		Model:              input.Model,
		Year:               input.Year,
	}
	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// GetVehicle retrieves a vehicle with its owner resolved
func (s *VehicleService) GetVehicle(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, apperror.NewNotFoundError("Vehicle")
	}
	return vehicle, nil
}

// UpdateVehicleInput represents the update vehicle input
type UpdateVehicleInput struct {
	Make  *string
	Model *string
	Year  *int
}

// UpdateVehicle updates a vehicle's details
func (s *VehicleService) UpdateVehicle(ctx context.Context, id uuid.UUID, input *UpdateVehicleInput) (*entity.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, apperror.NewNotFoundError("Vehicle")
	}

	if input.Make != nil {
		vehicle.Make = *input.Make
	}
	if input.Model != nil {
		vehicle.Model = *input.Model
	}
	if input.Year != nil {
		vehicle.Year = *input.Year
	}

	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// DeleteVehicle removes a vehicle from the directory
func (s *VehicleService) DeleteVehicle(ctx context.Context, id uuid.UUID) error {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if vehicle == nil {
		return apperror.NewNotFoundError("Vehicle")
	}
	return s.vehicleRepo.Delete(ctx, id)
}

// ListVehicles retrieves vehicles with search and pagination
func (s *VehicleService) ListVehicles(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Vehicle, int64, error) {
	return s.vehicleRepo.List(ctx, params, search)
}

// TechnicianService handles the technician directory
type TechnicianService struct {
	technicianRepo repository.TechnicianRepository
}

// NewTechnicianService creates a new technician service
func NewTechnicianService(technicianRepo repository.TechnicianRepository) *TechnicianService {
	return &TechnicianService{technicianRepo: technicianRepo}
}

// CreateTechnicianInput represents the create technician input
type CreateTechnicianInput struct {
	Name      string
	Phone     string
	Specialty string
}

// CreateTechnician registers a new technician
func (s *TechnicianService) CreateTechnician(ctx context.Context, input *CreateTechnicianInput) (*entity.Technician, error) {
	technician := &entity.Technician{
		Name:      input.Name,
		Phone:     input.Phone,
		Specialty: input.Specialty,
		Active:    true,
	}
	if err := s.technicianRepo.Create(ctx, technician); err != nil {
		return nil, err
	}
	return technician, nil
}

// GetTechnician retrieves a technician by ID
func (s *TechnicianService) GetTechnician(ctx context.Context, id uuid.UUID) (*entity.Technician, error) {
	technician, err := s.technicianRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if technician == nil {
		return nil, apperror.NewNotFoundError("Technician")
	}
	return technician, nil
}

// UpdateTechnicianInput represents the update technician input
type UpdateTechnicianInput struct {
	Name      *string
	Phone     *string
	Specialty *string
	Active    *bool
}

// UpdateTechnician updates a technician's details
func (s *TechnicianService) UpdateTechnician(ctx context.Context, id uuid.UUID, input *UpdateTechnicianInput) (*entity.Technician, error) {
	technician, err := s.technicianRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if technician == nil {
		return nil, apperror.NewNotFoundError("Technician")
	}

	if input.Name != nil {
		technician.Name = *input.Name
	}
	if input.Phone != nil {
		technician.Phone = *input.Phone
	}
	if input.Specialty != nil {
		technician.Specialty = *input.Specialty
	}
	if input.Active != nil {
		technician.Active = *input.Active
	}

	if err := s.technicianRepo.Update(ctx, technician); err != nil {
		return nil, err
	}
	return technician, nil
}

// DeleteTechnician removes a technician from the directory
func (s *TechnicianService) DeleteTechnician(ctx context.Context, id uuid.UUID) error {
	technician, err := s.technicianRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if technician == nil {
		return apperror.NewNotFoundError("Technician")
	}
	return s.technicianRepo.Delete(ctx, id)
}

// ListTechnicians retrieves technicians with pagination
func (s *TechnicianService) ListTechnicians(ctx context.Context, params *pagination.PaginationParams, activeOnly bool) ([]entity.Technician, int64, error) {
	return s.technicianRepo.List(ctx, params, activeOnly)
}
