package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculateInvoice(t *testing.T) {
	t.Run("percentage discount with tax", func(t *testing.T) {
		amounts := CalculateInvoice(d("1000"), d("500"), decimal.Zero, d("10"), d("18"))

		assert.True(t, amounts.Subtotal.Equal(d("1500")), "subtotal: %s", amounts.Subtotal)
		assert.True(t, amounts.DiscountAmount.Equal(d("150")), "discount: %s", amounts.DiscountAmount)
		assert.True(t, amounts.TaxableAmount.Equal(d("1350")), "taxable: %s", amounts.TaxableAmount)
		assert.True(t, amounts.TaxAmount.Equal(d("243")), "tax: %s", amounts.TaxAmount)
		assert.True(t, amounts.TotalAmount.Equal(d("1593")), "total: %s", amounts.TotalAmount)
	})

	t.Run("explicit discount amount", func(t *testing.T) {
		amounts := CalculateInvoice(d("800"), d("200"), d("100"), decimal.Zero, d("18"))

		assert.True(t, amounts.Subtotal.Equal(d("1000")))
		assert.True(t, amounts.DiscountAmount.Equal(d("100")))
		assert.True(t, amounts.TaxableAmount.Equal(d("900")))
		assert.True(t, amounts.TaxAmount.Equal(d("162")))
		assert.True(t, amounts.TotalAmount.Equal(d("1062")))
	})

	t.Run("percentage wins over explicit amount", func(t *testing.T) {
		amounts := CalculateInvoice(d("1000"), d("0"), d("999"), d("5"), d("18"))

		assert.True(t, amounts.DiscountAmount.Equal(d("50")))
	})

	t.Run("zero discount and zero tax", func(t *testing.T) {
		amounts := CalculateInvoice(d("250.50"), d("49.50"), decimal.Zero, decimal.Zero, decimal.Zero)

		assert.True(t, amounts.Subtotal.Equal(d("300")))
		assert.True(t, amounts.DiscountAmount.IsZero())
		assert.True(t, amounts.TaxAmount.IsZero())
		assert.True(t, amounts.TotalAmount.Equal(d("300")))
	})

	t.Run("round trip identity holds with awkward rates", func(t *testing.T) {
		amounts := CalculateInvoice(d("333.33"), d("166.67"), decimal.Zero, d("7.5"), d("12.5"))

		// taxableAmount + taxAmount must equal totalAmount exactly.
		assert.True(t, amounts.TaxableAmount.Add(amounts.TaxAmount).Equal(amounts.TotalAmount))
		// subtotal - discountAmount must equal taxableAmount exactly.
		assert.True(t, amounts.Subtotal.Sub(amounts.DiscountAmount).Equal(amounts.TaxableAmount))
	})

	t.Run("rounds money to two decimal places", func(t *testing.T) {
		amounts := CalculateInvoice(d("100"), d("0"), decimal.Zero, d("33.33"), d("18"))

		assert.True(t, amounts.DiscountAmount.Exponent() >= -2)
		assert.True(t, amounts.TaxAmount.Exponent() >= -2)
	})
}
