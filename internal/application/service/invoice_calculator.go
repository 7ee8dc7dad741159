package service

import "github.com/shopspring/decimal"

// InvoiceAmounts holds the derived monetary fields of an invoice.
type InvoiceAmounts struct {
	LaborCost      decimal.Decimal
	PartsCost      decimal.Decimal
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxableAmount  decimal.Decimal
	TaxRate        decimal.Decimal
	TaxAmount      decimal.Decimal
	TotalAmount    decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// CalculateInvoice derives every invoice amount from the job card costs, the
// discount input and the tax rate. A positive discount percentage wins over
// an explicit discount amount. Pure function, no side effects.
//
// The rounded intermediate amounts are what get summed, so the identity
// taxableAmount + taxAmount == totalAmount holds exactly.
func CalculateInvoice(laborCost, partsCost, discount, discountPercentage, taxRatePercent decimal.Decimal) InvoiceAmounts {
	subtotal := laborCost.Add(partsCost)

	discountAmount := discount
	if discountPercentage.IsPositive() {
		discountAmount = subtotal.Mul(discountPercentage).Div(hundred).Round(2)
	}

	taxableAmount := subtotal.Sub(discountAmount)
	taxAmount := taxableAmount.Mul(taxRatePercent).Div(hundred).Round(2)
	totalAmount := taxableAmount.Add(taxAmount)

	return InvoiceAmounts{
		LaborCost:      laborCost,
		PartsCost:      partsCost,
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		TaxableAmount:  taxableAmount,
		TaxRate:        taxRatePercent,
		TaxAmount:      taxAmount,
		TotalAmount:    totalAmount,
	}
}
