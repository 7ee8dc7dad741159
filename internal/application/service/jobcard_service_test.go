package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/motorsync/garage-api/internal/domain/entity"
	"github.com/motorsync/garage-api/internal/domain/enum"
	"github.com/motorsync/garage-api/pkg/apperror"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestJobCard(t *testing.T, env *testEnv) *entity.JobCard {
	t.Helper()
	_, vehicle := seedCustomerAndVehicle(t, env.db)

	jobCard, err := env.jobCards.CreateJobCard(testCtx, &CreateJobCardInput{
		VehicleID: vehicle.ID,
		Priority:  enum.PriorityNormal,
		Complaint: "Engine noise",
		Odometer:  45000,
	})
	require.NoError(t, err)
	return jobCard
}

func TestCreateJobCard(t *testing.T) {
	env := newTestEnv(t)

	t.Run("allocates sequential day scoped numbers", func(t *testing.T) {
		first := createTestJobCard(t, env)
		assert.Regexp(t, `^JC-\d{4}-\d{4}-0001$`, first.JobNumber)

		_, vehicle := seedCustomerAndVehicle2(t, env)
		second, err := env.jobCards.CreateJobCard(testCtx, &CreateJobCardInput{
			VehicleID: vehicle.ID,
			Complaint: "Brake check",
		})
		require.NoError(t, err)
		assert.Regexp(t, `^JC-\d{4}-\d{4}-0002$`, second.JobNumber)
	})

	t.Run("rejects unknown vehicle", func(t *testing.T) {
		_, err := env.jobCards.CreateJobCard(testCtx, &CreateJobCardInput{
			VehicleID: uuid.New(),
			Complaint: "x",
		})
		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)
	})
}

// seedCustomerAndVehicle2 creates a second customer with a distinct plate.
func seedCustomerAndVehicle2(t *testing.T, env *testEnv) (*entity.Customer, *entity.Vehicle) {
	t.Helper()
	customer := &entity.Customer{Name: "Asha Patel", Phone: "9000000001"}
	require.NoError(t, env.db.Create(customer).Error)
	vehicle := &entity.Vehicle{
		CustomerID:         customer.ID,
		RegistrationNumber: "KA-02-CD-5678",
		Make:               "Hyundai",
		Model:              "i20",
	}
	require.NoError(t, env.db.Create(vehicle).Error)
	return customer, vehicle
}

func TestLedgerConsistency(t *testing.T) {
	env := newTestEnv(t)
	jobCard := createTestJobCard(t, env)
	item := seedInventoryItem(t, env.db, "Oil Filter", 10, "250.00")

	// Two labor lines and one part.
	_, err := env.jobCards.AddService(testCtx, jobCard.ID, &AddServiceInput{
		Name: "Oil change", Quantity: 1, UnitCost: decimal.RequireFromString("500"),
	})
	require.NoError(t, err)
	svc2, err := env.jobCards.AddService(testCtx, jobCard.ID, &AddServiceInput{
		Name: "Wheel alignment", Quantity: 2, UnitCost: decimal.RequireFromString("300"),
	})
	require.NoError(t, err)
	_, err = env.jobCards.AddPart(testCtx, jobCard.ID, &AddPartInput{
		InventoryItemID: item.ID, Quantity: 2,
	})
	require.NoError(t, err)

	got, err := env.jobCards.GetJobCard(testCtx, jobCard.ID)
	require.NoError(t, err)
	assert.True(t, got.LaborCost.Equal(decimal.RequireFromString("1100")), "labor: %s", got.LaborCost)
	assert.True(t, got.PartsCost.Equal(decimal.RequireFromString("500")), "parts: %s", got.PartsCost)
	assert.True(t, got.TotalCost.Equal(decimal.RequireFromString("1600")))
	assert.True(t, got.FinalAmount.Equal(decimal.RequireFromString("1600")))

	// Removing a line recomputes from children, never applies a delta.
	require.NoError(t, env.jobCards.RemoveService(testCtx, jobCard.ID, svc2.ID))
	got, err = env.jobCards.GetJobCard(testCtx, jobCard.ID)
	require.NoError(t, err)
	assert.True(t, got.LaborCost.Equal(decimal.RequireFromString("500")))
	assert.True(t, got.TotalCost.Equal(decimal.RequireFromString("1000")))

	// Discount feeds the final amount.
	_, err = env.jobCards.SetDiscount(testCtx, jobCard.ID, decimal.RequireFromString("100"))
	require.NoError(t, err)
	got, err = env.jobCards.GetJobCard(testCtx, jobCard.ID)
	require.NoError(t, err)
	assert.True(t, got.FinalAmount.Equal(decimal.RequireFromString("900")))
}

func TestStockConservation(t *testing.T) {
	env := newTestEnv(t)
	jobCard := createTestJobCard(t, env)
	item := seedInventoryItem(t, env.db, "Brake Pad", 10, "800.00")

	part1, err := env.jobCards.AddPart(testCtx, jobCard.ID, &AddPartInput{
		InventoryItemID: item.ID, Quantity: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, currentStock(t, env.db, item))

	_, err = env.jobCards.AddPart(testCtx, jobCard.ID, &AddPartInput{
		InventoryItemID: item.ID, Quantity: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, currentStock(t, env.db, item))

	// Removing a part returns exactly its quantity.
	require.NoError(t, env.jobCards.RemovePart(testCtx, jobCard.ID, part1.ID))
	assert.Equal(t, 6, currentStock(t, env.db, item))
}

func TestInsufficientStockLeavesNothingWritten(t *testing.T) {
	env := newTestEnv(t)
	jobCard := createTestJobCard(t, env)
	item := seedInventoryItem(t, env.db, "Brake Pad", 2, "800.00")

	_, err := env.jobCards.AddPart(testCtx, jobCard.ID, &AddPartInput{
		InventoryItemID: item.ID, Quantity: 5,
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, "Insufficient stock for Brake Pad. Available: 2, Required: 5", appErr.Message)

	// Stock unchanged, no line item, ledger untouched.
	assert.Equal(t, 2, currentStock(t, env.db, item))
	var partCount int64
	require.NoError(t, env.db.Model(&entity.JobCardPart{}).Where("job_card_id = ?", jobCard.ID).Count(&partCount).Error)
	assert.Zero(t, partCount)

	got, err := env.jobCards.GetJobCard(testCtx, jobCard.ID)
	require.NoError(t, err)
	assert.True(t, got.PartsCost.IsZero())
}

func TestStatusTransitions(t *testing.T) {
	env := newTestEnv(t)

	t.Run("forward path", func(t *testing.T) {
		jobCard := createTestJobCard(t, env)

		for _, next := range []enum.JobCardStatus{
			enum.JobCardStatusInProgress,
			enum.JobCardStatusCompleted,
			enum.JobCardStatusDelivered,
		} {
			updated, err := env.jobCards.UpdateStatus(testCtx, jobCard.ID, next)
			require.NoError(t, err)
			assert.Equal(t, next, updated.Status)
		}
	})

	t.Run("cannot skip straight to completed", func(t *testing.T) {
		_, vehicle := seedCustomerAndVehicle2(t, env)
		jobCard, err := env.jobCards.CreateJobCard(testCtx, &CreateJobCardInput{
			VehicleID: vehicle.ID, Complaint: "x",
		})
		require.NoError(t, err)

		_, err = env.jobCards.UpdateStatus(testCtx, jobCard.ID, enum.JobCardStatusCompleted)
		require.Error(t, err)
		assert.Equal(t, 409, apperror.GetAppError(err).Code)
	})

	t.Run("cancelled job card rejects line items", func(t *testing.T) {
		customer := &entity.Customer{Name: "Dev Mehta", Phone: "9000000002"}
		require.NoError(t, env.db.Create(customer).Error)
		vehicle := &entity.Vehicle{CustomerID: customer.ID, RegistrationNumber: "KA-03-EF-9012"}
		require.NoError(t, env.db.Create(vehicle).Error)

		jobCard, err := env.jobCards.CreateJobCard(testCtx, &CreateJobCardInput{
			VehicleID: vehicle.ID, Complaint: "x",
		})
		require.NoError(t, err)
		_, err = env.jobCards.UpdateStatus(testCtx, jobCard.ID, enum.JobCardStatusCancelled)
		require.NoError(t, err)

		_, err = env.jobCards.AddService(testCtx, jobCard.ID, &AddServiceInput{
			Name: "Late add", Quantity: 1, UnitCost: decimal.RequireFromString("100"),
		})
		require.Error(t, err)
		assert.Equal(t, 409, apperror.GetAppError(err).Code)
	})
}

func TestWatchJobCardSharesLoads(t *testing.T) {
	env := newTestEnv(t)
	jobCard := createTestJobCard(t, env)

	ch1, cancel1, err := env.jobCards.WatchJobCard(testCtx, jobCard.ID)
	require.NoError(t, err)
	defer cancel1()
	ch2, cancel2, err := env.jobCards.WatchJobCard(testCtx, jobCard.ID)
	require.NoError(t, err)
	defer cancel2()

	first := <-ch1
	assert.Equal(t, jobCard.ID, first.ID)

	// A mutation pushes the refreshed aggregate to every watcher.
	_, err = env.jobCards.AddService(testCtx, jobCard.ID, &AddServiceInput{
		Name: "Oil change", Quantity: 1, UnitCost: decimal.RequireFromString("500"),
	})
	require.NoError(t, err)

	sawUpdate := func(ch <-chan *entity.JobCard) bool {
		for v := range ch {
			if v.LaborCost.Equal(decimal.RequireFromString("500")) {
				return true
			}
		}
		return false
	}
	assert.True(t, sawUpdate(chDrain(ch1, 2)))
	assert.True(t, sawUpdate(chDrain(ch2, 2)))
}

// chDrain copies up to n values from ch into a closed channel so asserts can
// range over it without blocking forever.
func chDrain(ch <-chan *entity.JobCard, n int) <-chan *entity.JobCard {
	out := make(chan *entity.JobCard, n)
	for i := 0; i < n; i++ {
		select {
		case v, ok := <-ch:
			if !ok {
				close(out)
				return out
			}
			out <- v
		case <-time.After(2 * time.Second):
			close(out)
			return out
		}
	}
	close(out)
	return out
}
