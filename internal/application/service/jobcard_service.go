package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/motorsync/garage-api/internal/domain/entity"
	"github.com/motorsync/garage-api/internal/domain/enum"
	"github.com/motorsync/garage-api/internal/domain/repository"
	"github.com/motorsync/garage-api/pkg/apperror"
	"github.com/motorsync/garage-api/pkg/coalesce"
	"github.com/motorsync/garage-api/pkg/numbering"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// JobCardService handles job card lifecycle, line items and the cost ledger
type JobCardService struct {
	uow            repository.UnitOfWork
	jobCardRepo    repository.JobCardRepository
	serviceRepo    repository.JobCardServiceRepository
	partRepo       repository.JobCardPartRepository
	inventoryRepo  repository.InventoryRepository
	vehicleRepo    repository.VehicleRepository
	technicianRepo repository.TechnicianRepository
	invoiceRepo    repository.InvoiceRepository
	sequenceRepo   repository.SequenceRepository
	watcher        *coalesce.Coalescer[*entity.JobCard]
}

// NewJobCardService creates a new job card service
func NewJobCardService(
	uow repository.UnitOfWork,
	jobCardRepo repository.JobCardRepository,
	serviceRepo repository.JobCardServiceRepository,
	partRepo repository.JobCardPartRepository,
	inventoryRepo repository.InventoryRepository,
	vehicleRepo repository.VehicleRepository,
	technicianRepo repository.TechnicianRepository,
	invoiceRepo repository.InvoiceRepository,
	sequenceRepo repository.SequenceRepository,
	watchGrace time.Duration,
) *JobCardService {
	return &JobCardService{
		uow:            uow,
		jobCardRepo:    jobCardRepo,
		serviceRepo:    serviceRepo,
		partRepo:       partRepo,
		inventoryRepo:  inventoryRepo,
		vehicleRepo:    vehicleRepo,
		technicianRepo: technicianRepo,
		invoiceRepo:    invoiceRepo,
		sequenceRepo:   sequenceRepo,
		watcher:        coalesce.New[*entity.JobCard](watchGrace),
	}
}

// CreateJobCardInput represents the create job card input
type CreateJobCardInput struct {
	VehicleID    uuid.UUID
	TechnicianID *uuid.UUID
	Priority     enum.JobCardPriority
	Complaint    string
	Odometer     int
}

// CreateJobCard opens a new job card and allocates its display number. The
// number allocation and the insert share one transaction so a rolled-back
// create never burns a sequence value for readers of the committed state.
func (s *JobCardService) CreateJobCard(ctx context.Context, input *CreateJobCardInput) (*entity.JobCard, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, input.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, apperror.NewNotFoundError("Vehicle")
	}

	if input.TechnicianID != nil {
		technician, err := s.technicianRepo.GetByID(ctx, *input.TechnicianID)
		if err != nil {
			return nil, err
		}
		if technician == nil {
			return nil, apperror.NewNotFoundError("Technician")
		}
	}

	jobCard := &entity.JobCard{
		VehicleID:    input.VehicleID,
		TechnicianID: input.TechnicianID,
		Status:       enum.JobCardStatusPending,
		Priority:     input.Priority,
		Complaint:    input.Complaint,
		Odometer:     input.Odometer,
	}

	err = s.uow.Do(ctx, func(tx *gorm.DB) error {
		now := time.Now()
		seq, err := s.sequenceRepo.WithTx(tx).Next(ctx, numbering.JobCardPrefix, now)
		if err != nil {
			return err
		}
		jobCard.JobNumber = numbering.Format(numbering.JobCardPrefix, now, seq)
		return s.jobCardRepo.WithTx(tx).Create(ctx, jobCard)
	})
	if err != nil {
		return nil, err
	}

	return jobCard, nil
}

// GetJobCard retrieves a job card with its relations resolved
func (s *JobCardService) GetJobCard(ctx context.Context, id uuid.UUID) (*entity.JobCard, error) {
	jobCard, err := s.jobCardRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if jobCard == nil {
		return nil, apperror.NewNotFoundError("Job card")
	}
	return jobCard, nil
}

// ListJobCards retrieves job cards with filtering and pagination
func (s *JobCardService) ListJobCards(ctx context.Context, params *repository.JobCardFilterParams) ([]entity.JobCard, int64, error) {
	return s.jobCardRepo.List(ctx, params)
}

// WatchJobCard attaches the caller to the shared live view of a job card.
// Concurrent watchers of the same card share one load per change instead of
// issuing one query each. The returned cancel function must be called when
// the caller is done.
func (s *JobCardService) WatchJobCard(ctx context.Context, id uuid.UUID) (<-chan *entity.JobCard, func(), error) {
	jobCard, err := s.jobCardRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if jobCard == nil {
		return nil, nil, apperror.NewNotFoundError("Job card")
	}

	key := coalesce.Key{Kind: "job_card", ID: id.String()}
	ch, cancel := s.watcher.Subscribe(key, func(ctx context.Context) (*entity.JobCard, error) {
		return s.jobCardRepo.GetWithDetails(ctx, id)
	})
	return ch, cancel, nil
}

func (s *JobCardService) notifyWatchers(id uuid.UUID) {
	s.watcher.Invalidate(coalesce.Key{Kind: "job_card", ID: id.String()})
}

// guardEditable rejects line item mutations on cancelled or already invoiced
// job cards.
func (s *JobCardService) guardEditable(ctx context.Context, jobCard *entity.JobCard) error {
	if jobCard.Status == enum.JobCardStatusCancelled {
		return apperror.NewInvalidStateError("job card is cancelled")
	}
	invoice, err := s.invoiceRepo.GetByJobCardID(ctx, jobCard.ID)
	if err != nil {
		return err
	}
	if invoice != nil {
		return apperror.NewInvalidStateError("job card is already invoiced")
	}
	return nil
}

// AddServiceInput represents a labor line item input
type AddServiceInput struct {
	Name     string
	Quantity int
	UnitCost decimal.Decimal
}

// AddService appends a labor line item and recomputes the job card ledger in
// one transaction.
func (s *JobCardService) AddService(ctx context.Context, jobCardID uuid.UUID, input *AddServiceInput) (*entity.JobCardService, error) {
	if input.Quantity <= 0 {
		return nil, apperror.NewValidationError("Quantity must be positive")
	}
	if input.UnitCost.IsNegative() {
		return nil, apperror.NewValidationError("Unit cost cannot be negative")
	}

	jobCard, err := s.jobCardRepo.GetByID(ctx, jobCardID)
	if err != nil {
		return nil, err
	}
	if jobCard == nil {
		return nil, apperror.NewNotFoundError("Job card")
	}
	if err := s.guardEditable(ctx, jobCard); err != nil {
		return nil, err
	}

	line := &entity.JobCardService{
		JobCardID: jobCardID,
		Name:      input.Name,
		Quantity:  input.Quantity,
		UnitCost:  input.UnitCost,
		TotalCost: input.UnitCost.Mul(decimal.NewFromInt(int64(input.Quantity))),
	}

	err = s.uow.Do(ctx, func(tx *gorm.DB) error {
		if err := s.serviceRepo.WithTx(tx).Create(ctx, line); err != nil {
			return err
		}
		return s.recomputeCosts(ctx, tx, jobCardID)
	})
	if err != nil {
		return nil, err
	}

	s.notifyWatchers(jobCardID)
	return line, nil
}

// RemoveService deletes a labor line item and recomputes the ledger.
func (s *JobCardService) RemoveService(ctx context.Context, jobCardID, serviceID uuid.UUID) error {
	jobCard, err := s.jobCardRepo.GetByID(ctx, jobCardID)
	if err != nil {
		return err
	}
	if jobCard == nil {
		return apperror.NewNotFoundError("Job card")
	}
	if err := s.guardEditable(ctx, jobCard); err != nil {
		return err
	}

	line, err := s.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return err
	}
	if line == nil || line.JobCardID != jobCardID {
		return apperror.NewNotFoundError("Service line")
	}

	err = s.uow.Do(ctx, func(tx *gorm.DB) error {
		if err := s.serviceRepo.WithTx(tx).Delete(ctx, serviceID); err != nil {
			return err
		}
		return s.recomputeCosts(ctx, tx, jobCardID)
	})
	if err != nil {
		return err
	}

	s.notifyWatchers(jobCardID)
	return nil
}

// AddPartInput represents a consumed part input
type AddPartInput struct {
	InventoryItemID uuid.UUID
	Quantity        int
}

// AddPart consumes stock for a part and records the line item. The
// conditional stock debit, the line insert and the ledger recompute commit
// as one unit; an insufficient-stock failure leaves nothing written.
func (s *JobCardService) AddPart(ctx context.Context, jobCardID uuid.UUID, input *AddPartInput) (*entity.JobCardPart, error) {
	if input.Quantity <= 0 {
		return nil, apperror.NewValidationError("Quantity must be positive")
	}

	jobCard, err := s.jobCardRepo.GetByID(ctx, jobCardID)
	if err != nil {
		return nil, err
	}
	if jobCard == nil {
		return nil, apperror.NewNotFoundError("Job card")
	}
	if err := s.guardEditable(ctx, jobCard); err != nil {
		return nil, err
	}

	item, err := s.inventoryRepo.GetByID(ctx, input.InventoryItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Inventory item")
	}

	line := &entity.JobCardPart{
		JobCardID:       jobCardID,
		InventoryItemID: item.ID,
		Quantity:        input.Quantity,
		UnitPrice:       item.SellingPrice,
		TotalPrice:      item.SellingPrice.Mul(decimal.NewFromInt(int64(input.Quantity))),
	}

	err = s.uow.Do(ctx, func(tx *gorm.DB) error {
		ok, err := s.inventoryRepo.WithTx(tx).DecrementStock(ctx, item.ID, input.Quantity)
		if err != nil {
			return err
		}
		if !ok {
			// Re-read inside the transaction so the reported availability
			// matches what the guard saw.
			current, err := s.inventoryRepo.WithTx(tx).GetByID(ctx, item.ID)
			if err != nil {
				return err
			}
			available := 0
			if current != nil {
				available = current.CurrentStock
			}
			return apperror.NewInsufficientStockError(item.Name, available, input.Quantity)
		}
		if err := s.partRepo.WithTx(tx).Create(ctx, line); err != nil {
			return err
		}
		return s.recomputeCosts(ctx, tx, jobCardID)
	})
	if err != nil {
		return nil, err
	}

	s.notifyWatchers(jobCardID)
	return line, nil
}

// RemovePart deletes a part line item, returns its quantity to stock and
// recomputes the ledger, all in one transaction.
func (s *JobCardService) RemovePart(ctx context.Context, jobCardID, partID uuid.UUID) error {
	jobCard, err := s.jobCardRepo.GetByID(ctx, jobCardID)
	if err != nil {
		return err
	}
	if jobCard == nil {
		return apperror.NewNotFoundError("Job card")
	}
	if err := s.guardEditable(ctx, jobCard); err != nil {
		return err
	}

	line, err := s.partRepo.GetByID(ctx, partID)
	if err != nil {
		return err
	}
	if line == nil || line.JobCardID != jobCardID {
		return apperror.NewNotFoundError("Part line")
	}

	err = s.uow.Do(ctx, func(tx *gorm.DB) error {
		if err := s.partRepo.WithTx(tx).Delete(ctx, partID); err != nil {
			return err
		}
		if err := s.inventoryRepo.WithTx(tx).IncrementStock(ctx, line.InventoryItemID, line.Quantity); err != nil {
			return err
		}
		return s.recomputeCosts(ctx, tx, jobCardID)
	})
	if err != nil {
		return err
	}

	s.notifyWatchers(jobCardID)
	return nil
}

// SetDiscount updates the job card discount and recomputes the final amount.
func (s *JobCardService) SetDiscount(ctx context.Context, jobCardID uuid.UUID, discount decimal.Decimal) (*entity.JobCard, error) {
	if discount.IsNegative() {
		return nil, apperror.NewValidationError("Discount cannot be negative")
	}

	jobCard, err := s.jobCardRepo.GetByID(ctx, jobCardID)
	if err != nil {
		return nil, err
	}
	if jobCard == nil {
		return nil, apperror.NewNotFoundError("Job card")
	}
	if err := s.guardEditable(ctx, jobCard); err != nil {
		return nil, err
	}
	if discount.GreaterThan(jobCard.TotalCost) {
		return nil, apperror.NewValidationError("Discount cannot exceed total cost")
	}

	err = s.uow.Do(ctx, func(tx *gorm.DB) error {
		repo := s.jobCardRepo.WithTx(tx)
		current, err := repo.GetByID(ctx, jobCardID)
		if err != nil {
			return err
		}
		current.Discount = discount
		current.FinalAmount = current.TotalCost.Sub(discount)
		jobCard = current
		return repo.Update(ctx, current)
	})
	if err != nil {
		return nil, err
	}

	s.notifyWatchers(jobCardID)
	return jobCard, nil
}

// UpdateStatus moves the job card through its lifecycle. Transitions only
// move forward; cancellation is allowed from any non-terminal state.
func (s *JobCardService) UpdateStatus(ctx context.Context, jobCardID uuid.UUID, status enum.JobCardStatus) (*entity.JobCard, error) {
	jobCard, err := s.jobCardRepo.GetByID(ctx, jobCardID)
	if err != nil {
		return nil, err
	}
	if jobCard == nil {
		return nil, apperror.NewNotFoundError("Job card")
	}

	if !jobCard.Status.CanTransitionTo(status) {
		return nil, apperror.NewInvalidStateError(
			"cannot move job card from " + jobCard.Status.String() + " to " + status.String())
	}

	if err := s.jobCardRepo.UpdateStatus(ctx, jobCardID, status); err != nil {
		return nil, err
	}
	jobCard.Status = status

	s.notifyWatchers(jobCardID)
	return jobCard, nil
}

// recomputeCosts rebuilds the job card cost fields from its line items. It
// always sums from the children rather than applying deltas, so the ledger
// cannot drift.
func (s *JobCardService) recomputeCosts(ctx context.Context, tx *gorm.DB, jobCardID uuid.UUID) error {
	services, err := s.serviceRepo.WithTx(tx).GetByJobCardID(ctx, jobCardID)
	if err != nil {
		return err
	}
	parts, err := s.partRepo.WithTx(tx).GetByJobCardID(ctx, jobCardID)
	if err != nil {
		return err
	}

	laborCost := decimal.Zero
	for _, svc := range services {
		laborCost = laborCost.Add(svc.TotalCost)
	}
	partsCost := decimal.Zero
	for _, part := range parts {
		partsCost = partsCost.Add(part.TotalPrice)
	}

	repo := s.jobCardRepo.WithTx(tx)
	jobCard, err := repo.GetByID(ctx, jobCardID)
	if err != nil {
		return err
	}
	if jobCard == nil {
		return apperror.NewNotFoundError("Job card")
	}

	jobCard.LaborCost = laborCost
	jobCard.PartsCost = partsCost
	jobCard.TotalCost = laborCost.Add(partsCost)
	jobCard.FinalAmount = jobCard.TotalCost.Sub(jobCard.Discount)
	return repo.Update(ctx, jobCard)
}
