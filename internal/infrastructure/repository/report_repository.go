package repository

import (
	"context"
	"time"

	"github.com/greenpalms/resort-api/internal/domain/enum"
	domainRepo "github.com/greenpalms/resort-api/internal/domain/repository"
	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) domainRepo.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) SalesSummary(ctx context.Context, start, end time.Time, invoiceType *enum.InvoiceType) (*domainRepo.SalesSummaryResult, error) {
	var result domainRepo.SalesSummaryResult

	query := `
		SELECT
			COUNT(*) as invoice_count,
			COALESCE(SUM(subtotal), 0) as subtotal,
			COALESCE(SUM(tax_amount), 0) as tax_amount,
			COALESCE(SUM(total_amount), 0) as total_amount
		FROM invoices
		WHERE invoice_date >= ? AND invoice_date <= ?
		  AND payment_status <> 'cancelled'`
	args := []interface{}{start, end}

	if invoiceType != nil {
		query += ` AND type = ?`
		args = append(args, *invoiceType)
	}

	err := r.db.WithContext(ctx).Raw(query, args...).Scan(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *reportRepository) DailySales(ctx context.Context, start, end time.Time, invoiceType *enum.InvoiceType) ([]domainRepo.DailySalesRow, error) {
	var rows []domainRepo.DailySalesRow

	query := `
		SELECT
			TO_CHAR(invoice_date::date, 'YYYY-MM-DD') as date,
			COUNT(*) as invoice_count,
			COALESCE(SUM(subtotal), 0) as subtotal,
			COALESCE(SUM(tax_amount), 0) as tax_amount,
			COALESCE(SUM(total_amount), 0) as total_amount
		FROM invoices
		WHERE invoice_date >= ? AND invoice_date <= ?
		  AND payment_status <> 'cancelled'`
	args := []interface{}{start, end}

	if invoiceType != nil {
		query += ` AND type = ?`
		args = append(args, *invoiceType)
	}

	query += `
		GROUP BY invoice_date::date
		ORDER BY invoice_date::date ASC`

	err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reportRepository) TypeTotals(ctx context.Context, start, end time.Time, invoiceType enum.InvoiceType) (*domainRepo.TypeTotalsResult, error) {
	var result domainRepo.TypeTotalsResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(subtotal), 0) as taxable_amount,
			COALESCE(SUM(tax_amount), 0) as tax_amount,
			COALESCE(SUM(total_amount), 0) as total_amount
		FROM invoices
		WHERE invoice_date >= ? AND invoice_date <= ?
		  AND payment_status <> 'cancelled'
		  AND type = ?
	`, start, end, invoiceType).Scan(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *reportRepository) KitchenItemSales(ctx context.Context, start, end time.Time) ([]domainRepo.KitchenItemSalesRow, error) {
	var rows []domainRepo.KitchenItemSalesRow

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			ii.item_name as item_name,
			COALESCE(SUM(ii.quantity), 0) as total_quantity,
			COALESCE(SUM(ii.total), 0) as total_amount
		FROM invoice_items ii
		JOIN invoices i ON i.id = ii.invoice_id
		WHERE i.invoice_date >= ? AND i.invoice_date <= ?
		  AND i.payment_status <> 'cancelled'
		  AND i.type = 'kitchen'
		GROUP BY ii.item_name
		ORDER BY total_amount DESC
	`, start, end).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reportRepository) Revenue(ctx context.Context, start, end time.Time, invoiceType enum.InvoiceType) (*domainRepo.RevenueResult, error) {
	var result domainRepo.RevenueResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) as count,
			COALESCE(SUM(total_amount), 0) as total
		FROM invoices
		WHERE invoice_date >= ? AND invoice_date <= ?
		  AND payment_status <> 'cancelled'
		  AND type = ?
	`, start, end, invoiceType).Scan(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}
