package utils

import (
	"github.com/shopspring/decimal"
)

// CalculateLineAmount returns unitPrice * qty for one order line.
func CalculateLineAmount(unitPrice decimal.Decimal, qty int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(qty)))
}

// CalculateGstAmount applies a fractional GST rate (0.05 for 5%) to a line
// amount. GST here is always exclusive: the levy is added on top of the
// price, never carved out of it.
func CalculateGstAmount(lineAmount decimal.Decimal, gstRate decimal.Decimal) decimal.Decimal {
	return lineAmount.Mul(gstRate)
}

// CalculateGrandTotal combines the frozen order figures:
// sum(line amounts) + shipping - discount + sum(GST), rounded to 2 decimals.
func CalculateGrandTotal(gross, shipping, discount, gst decimal.Decimal) decimal.Decimal {
	return Round2(gross.Add(shipping).Sub(discount).Add(gst))
}
