package repository

import (
	"context"
	"time"

	"github.com/greenpalms/resort-api/internal/domain/enum"
)

// SalesSummaryResult is the headline block of the sales report
type SalesSummaryResult struct {
	InvoiceCount int64   `json:"invoice_count"`
	Subtotal     float64 `json:"subtotal"`
	TaxAmount    float64 `json:"tax_amount"`
	TotalAmount  float64 `json:"total_amount"`
}

// DailySalesRow is one date bucket of the sales report
type DailySalesRow struct {
	Date         string  `json:"date"`
	InvoiceCount int64   `json:"invoice_count"`
	Subtotal     float64 `json:"subtotal"`
	TaxAmount    float64 `json:"tax_amount"`
	TotalAmount  float64 `json:"total_amount"`
}

// TypeTotalsResult carries the GST figures for one invoice type: taxable
// value (subtotal), tax collected and gross total
type TypeTotalsResult struct {
	TaxableAmount float64 `json:"taxable_amount"`
	TaxAmount     float64 `json:"tax_amount"`
	TotalAmount   float64 `json:"total_amount"`
}

// KitchenItemSalesRow is one menu item's sales over a period
type KitchenItemSalesRow struct {
	ItemName      string  `json:"item_name"`
	TotalQuantity int64   `json:"total_quantity"`
	TotalAmount   float64 `json:"total_amount"`
}

// RevenueResult is an invoice count + gross total for a type and period
type RevenueResult struct {
	Count int64   `json:"count"`
	Total float64 `json:"total"`
}

// ReportRepository runs the aggregate queries behind reports and the
// dashboard. Cancelled invoices are excluded from every revenue figure.
type ReportRepository interface {
	SalesSummary(ctx context.Context, start, end time.Time, invoiceType *enum.InvoiceType) (*SalesSummaryResult, error)
	DailySales(ctx context.Context, start, end time.Time, invoiceType *enum.InvoiceType) ([]DailySalesRow, error)
	TypeTotals(ctx context.Context, start, end time.Time, invoiceType enum.InvoiceType) (*TypeTotalsResult, error)
	KitchenItemSales(ctx context.Context, start, end time.Time) ([]KitchenItemSalesRow, error)
	Revenue(ctx context.Context, start, end time.Time, invoiceType enum.InvoiceType) (*RevenueResult, error)
}
