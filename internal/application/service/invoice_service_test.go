package service

import (
	"testing"

	"github.com/motorsync/garage-api/internal/domain/entity"
	"github.com/motorsync/garage-api/internal/domain/enum"
	"github.com/motorsync/garage-api/pkg/apperror"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// completedJobCard builds a job card with known costs and walks it to the
// completed state.
func completedJobCard(t *testing.T, env *testEnv) *entity.JobCard {
	t.Helper()
	jobCard := createTestJobCard(t, env)
	item := seedInventoryItem(t, env.db, "Air Filter-"+jobCard.JobNumber, 10, "250.00")

	_, err := env.jobCards.AddService(testCtx, jobCard.ID, &AddServiceInput{
		Name: "Full service", Quantity: 1, UnitCost: decimal.RequireFromString("1000"),
	})
	require.NoError(t, err)
	_, err = env.jobCards.AddPart(testCtx, jobCard.ID, &AddPartInput{
		InventoryItemID: item.ID, Quantity: 2,
	})
	require.NoError(t, err)

	_, err = env.jobCards.UpdateStatus(testCtx, jobCard.ID, enum.JobCardStatusInProgress)
	require.NoError(t, err)
	_, err = env.jobCards.UpdateStatus(testCtx, jobCard.ID, enum.JobCardStatusCompleted)
	require.NoError(t, err)

	return jobCard
}

func TestCreateInvoice(t *testing.T) {
	env := newTestEnv(t)
	seedSettings(t, env.db, "18")

	t.Run("bills a completed job card", func(t *testing.T) {
		jobCard := completedJobCard(t, env)

		invoice, err := env.invoices.CreateInvoice(testCtx, &CreateInvoiceInput{
			JobCardID:          jobCard.ID,
			DiscountPercentage: decimal.RequireFromString("10"),
		})
		require.NoError(t, err)

		assert.Regexp(t, `^INV-\d{4}-\d{4}-\d{4}$`, invoice.InvoiceNumber)
		assert.True(t, invoice.LaborCost.Equal(decimal.RequireFromString("1000")))
		assert.True(t, invoice.PartsCost.Equal(decimal.RequireFromString("500")))
		assert.True(t, invoice.Subtotal.Equal(decimal.RequireFromString("1500")))
		assert.True(t, invoice.Discount.Equal(decimal.RequireFromString("150")))
		assert.True(t, invoice.TaxableAmount.Equal(decimal.RequireFromString("1350")))
		assert.True(t, invoice.TaxAmount.Equal(decimal.RequireFromString("243")))
		assert.True(t, invoice.TotalAmount.Equal(decimal.RequireFromString("1593")))
		assert.Equal(t, enum.PaymentStatusUnpaid, invoice.PaymentStatus)
		assert.True(t, invoice.PaidAmount.IsZero())
		assert.True(t, invoice.PendingAmount.Equal(invoice.TotalAmount))
	})

	t.Run("rejects a second invoice for the same job card", func(t *testing.T) {
		jobCard := completedJobCard(t, env)

		_, err := env.invoices.CreateInvoice(testCtx, &CreateInvoiceInput{JobCardID: jobCard.ID})
		require.NoError(t, err)

		_, err = env.invoices.CreateInvoice(testCtx, &CreateInvoiceInput{JobCardID: jobCard.ID})
		require.Error(t, err)
		assert.Equal(t, 409, apperror.GetAppError(err).Code)
	})

	t.Run("rejects a job card that is not ready", func(t *testing.T) {
		jobCard := createTestJobCard(t, env)

		_, err := env.invoices.CreateInvoice(testCtx, &CreateInvoiceInput{JobCardID: jobCard.ID})
		require.Error(t, err)

		appErr := apperror.GetAppError(err)
		assert.Equal(t, 409, appErr.Code)
		assert.Contains(t, appErr.Message, "not ready")
	})

	t.Run("delivered job card is billable", func(t *testing.T) {
		jobCard := completedJobCard(t, env)
		_, err := env.jobCards.UpdateStatus(testCtx, jobCard.ID, enum.JobCardStatusDelivered)
		require.NoError(t, err)

		invoice, err := env.invoices.CreateInvoice(testCtx, &CreateInvoiceInput{JobCardID: jobCard.ID})
		require.NoError(t, err)
		assert.NotEmpty(t, invoice.InvoiceNumber)
	})

	t.Run("invoice numbers increment independently of job numbers", func(t *testing.T) {
		env := newTestEnv(t)
		seedSettings(t, env.db, "18")

		first := completedJobCard(t, env)
		inv1, err := env.invoices.CreateInvoice(testCtx, &CreateInvoiceInput{JobCardID: first.ID})
		require.NoError(t, err)
		assert.Regexp(t, `-0001$`, inv1.InvoiceNumber)

		// Several job cards exist already; the invoice counter is its own.
		var jobCount int64
		require.NoError(t, env.db.Model(&entity.JobCard{}).Count(&jobCount).Error)
		assert.Greater(t, jobCount, int64(0))
	})
}

func TestInvoiceAmountsAreFrozen(t *testing.T) {
	env := newTestEnv(t)
	seedSettings(t, env.db, "18")

	jobCard := completedJobCard(t, env)
	invoice, err := env.invoices.CreateInvoice(testCtx, &CreateInvoiceInput{JobCardID: jobCard.ID})
	require.NoError(t, err)
	originalTotal := invoice.TotalAmount

	// Raising the tax rate afterwards must not reprice the existing invoice.
	require.NoError(t, env.db.Model(&entity.GarageSettings{}).
		Where("1 = 1").
		Update("tax_rate_percent", decimal.RequireFromString("28")).Error)

	got, err := env.invoices.GetInvoice(testCtx, invoice.ID)
	require.NoError(t, err)
	assert.True(t, got.TotalAmount.Equal(originalTotal))
}
