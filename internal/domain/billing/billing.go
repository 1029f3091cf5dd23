// Package billing holds the monetary arithmetic shared by invoices and
// kitchen orders. All computation runs at full float64 precision; values are
// rounded to two decimal places only when they are persisted or serialized,
// so rounding error never compounds across line items.
package billing

import (
	"math"

	"github.com/greenpalms/resort-api/pkg/apperror"
)

// Line is the computed breakdown of a single invoice or order item
type Line struct {
	ItemSubtotal float64
	GSTAmount    float64
	LineTotal    float64
}

// Totals is the aggregate of a sequence of lines
type Totals struct {
	Subtotal    float64
	TaxAmount   float64
	TotalAmount float64
}

// ComputeLine computes the subtotal, GST amount and total for a single line.
// Quantity must be positive; rate and GST percentage must be non-negative.
func ComputeLine(quantity int, rate, gstPercentage float64) (Line, error) {
	if quantity <= 0 {
		return Line{}, apperror.NewBadRequestError("quantity must be greater than zero")
	}
	if rate < 0 {
		return Line{}, apperror.NewBadRequestError("rate must not be negative")
	}
	if gstPercentage < 0 {
		return Line{}, apperror.NewBadRequestError("gst percentage must not be negative")
	}

	subtotal := float64(quantity) * rate
	gst := subtotal * gstPercentage / 100

	return Line{
		ItemSubtotal: subtotal,
		GSTAmount:    gst,
		LineTotal:    subtotal + gst,
	}, nil
}

// Aggregate sums lines into invoice-level totals. It is a pure function:
// the same lines always produce the same totals, and an empty slice yields
// all zeroes.
func Aggregate(lines []Line) Totals {
	var t Totals
	for _, l := range lines {
		t.Subtotal += l.ItemSubtotal
		t.TaxAmount += l.GSTAmount
	}
	t.TotalAmount = t.Subtotal + t.TaxAmount
	return t
}

// SplitGST splits a combined GST amount into the equal CGST and SGST halves
// shown on printed invoices. The split is display-only; stored tax amounts
// stay combined.
func SplitGST(taxAmount float64) (cgst, sgst float64) {
	half := taxAmount / 2
	return half, half
}

// Round2 rounds a currency value to two decimal places. Call it at the
// persistence/serialization boundary, never mid-accumulation.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
