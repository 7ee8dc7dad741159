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

func invoicedJobCard(t *testing.T, env *testEnv) *entity.Invoice {
	t.Helper()
	jobCard := completedJobCard(t, env)
	invoice, err := env.invoices.CreateInvoice(testCtx, &CreateInvoiceInput{JobCardID: jobCard.ID})
	require.NoError(t, err)
	return invoice
}

func customerOf(t *testing.T, env *testEnv, invoice *entity.Invoice) *entity.Customer {
	t.Helper()
	var customer entity.Customer
	require.NoError(t, env.db.First(&customer, "id = ?", invoice.CustomerID).Error)
	return &customer
}

func TestRecordPayment(t *testing.T) {
	env := newTestEnv(t)
	seedSettings(t, env.db, "18")

	t.Run("full payment marks paid and credits the customer ledger", func(t *testing.T) {
		invoice := invoicedJobCard(t, env)
		// 1000 labor + 500 parts at 18% tax.
		require.True(t, invoice.TotalAmount.Equal(decimal.RequireFromString("1770")))

		updated, err := env.payments.RecordPayment(testCtx, &RecordPaymentInput{
			InvoiceID:     invoice.ID,
			PaidAmount:    invoice.TotalAmount,
			PaymentMode:   "UPI",
			TransactionID: "TXN-001",
		})
		require.NoError(t, err)

		assert.Equal(t, enum.PaymentStatusPaid, updated.PaymentStatus)
		assert.True(t, updated.PendingAmount.IsZero())
		assert.NotNil(t, updated.PaidAt)
		assert.Equal(t, "UPI", updated.PaymentMode)

		customer := customerOf(t, env, invoice)
		assert.True(t, customer.TotalSpent.Equal(invoice.TotalAmount),
			"total spent: %s", customer.TotalSpent)
		assert.Equal(t, 17, customer.LoyaltyPoints)
	})

	t.Run("partial payment is stored but stays unpaid", func(t *testing.T) {
		invoice := invoicedJobCard(t, env)

		updated, err := env.payments.RecordPayment(testCtx, &RecordPaymentInput{
			InvoiceID:   invoice.ID,
			PaidAmount:  decimal.RequireFromString("500"),
			PaymentMode: "Cash",
		})
		require.NoError(t, err)

		assert.Equal(t, enum.PaymentStatusUnpaid, updated.PaymentStatus)
		assert.True(t, updated.PaidAmount.Equal(decimal.RequireFromString("500")))
		assert.True(t, updated.PendingAmount.Equal(invoice.TotalAmount.Sub(decimal.RequireFromString("500"))))

		// No ledger credit until the invoice is fully paid.
		customer := customerOf(t, env, invoice)
		assert.True(t, customer.TotalSpent.IsZero())
	})

	t.Run("rejects non positive amounts", func(t *testing.T) {
		invoice := invoicedJobCard(t, env)

		_, err := env.payments.RecordPayment(testCtx, &RecordPaymentInput{
			InvoiceID: invoice.ID, PaidAmount: decimal.Zero, PaymentMode: "Cash",
		})
		require.Error(t, err)
		assert.Equal(t, 422, apperror.GetAppError(err).Code)
	})

	t.Run("rejects payment exceeding the total", func(t *testing.T) {
		invoice := invoicedJobCard(t, env)

		_, err := env.payments.RecordPayment(testCtx, &RecordPaymentInput{
			InvoiceID:   invoice.ID,
			PaidAmount:  invoice.TotalAmount.Add(decimal.RequireFromString("0.01")),
			PaymentMode: "Cash",
		})
		require.Error(t, err)
		assert.Equal(t, 422, apperror.GetAppError(err).Code)

		// Nothing was written.
		got, err := env.invoices.GetInvoice(testCtx, invoice.ID)
		require.NoError(t, err)
		assert.True(t, got.PaidAmount.IsZero())
	})

	t.Run("rejects paying a settled invoice twice", func(t *testing.T) {
		invoice := invoicedJobCard(t, env)

		_, err := env.payments.RecordPayment(testCtx, &RecordPaymentInput{
			InvoiceID: invoice.ID, PaidAmount: invoice.TotalAmount, PaymentMode: "Cash",
		})
		require.NoError(t, err)

		_, err = env.payments.RecordPayment(testCtx, &RecordPaymentInput{
			InvoiceID: invoice.ID, PaidAmount: invoice.TotalAmount, PaymentMode: "Cash",
		})
		require.Error(t, err)
		assert.Equal(t, 409, apperror.GetAppError(err).Code)

		// The customer ledger was credited exactly once.
		customer := customerOf(t, env, invoice)
		assert.True(t, customer.TotalSpent.Equal(invoice.TotalAmount))
	})
}

func TestCancelInvoice(t *testing.T) {
	env := newTestEnv(t)
	seedSettings(t, env.db, "18")

	t.Run("cancels an unpaid invoice", func(t *testing.T) {
		invoice := invoicedJobCard(t, env)

		updated, err := env.payments.CancelInvoice(testCtx, invoice.ID)
		require.NoError(t, err)

		assert.Equal(t, enum.PaymentStatusCancelled, updated.PaymentStatus)
		assert.True(t, updated.PaidAmount.IsZero())
		assert.True(t, updated.PendingAmount.Equal(invoice.TotalAmount))

		customer := customerOf(t, env, invoice)
		assert.True(t, customer.TotalSpent.IsZero())
	})

	t.Run("refuses to cancel a paid invoice", func(t *testing.T) {
		invoice := invoicedJobCard(t, env)
		_, err := env.payments.RecordPayment(testCtx, &RecordPaymentInput{
			InvoiceID: invoice.ID, PaidAmount: invoice.TotalAmount, PaymentMode: "Card",
		})
		require.NoError(t, err)

		_, err = env.payments.CancelInvoice(testCtx, invoice.ID)
		require.Error(t, err)
		assert.Equal(t, 409, apperror.GetAppError(err).Code)
	})

	t.Run("refuses to cancel twice", func(t *testing.T) {
		invoice := invoicedJobCard(t, env)
		_, err := env.payments.CancelInvoice(testCtx, invoice.ID)
		require.NoError(t, err)

		_, err = env.payments.CancelInvoice(testCtx, invoice.ID)
		require.Error(t, err)
		assert.Equal(t, 409, apperror.GetAppError(err).Code)
	})
}
