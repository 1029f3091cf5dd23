package service

import (
	"bytes"
	"context"
	"time"

	"github.com/greenpalms/resort-api/internal/domain/billing"
	"github.com/greenpalms/resort-api/internal/domain/entity"
	"github.com/greenpalms/resort-api/internal/domain/enum"
	"github.com/greenpalms/resort-api/internal/domain/repository"
	"github.com/greenpalms/resort-api/pkg/apperror"
	"github.com/greenpalms/resort-api/pkg/excel"
)

// ReportService builds the sales, GST, kitchen item and dashboard reports
// plus their spreadsheet exports
type ReportService struct {
	reportRepo  repository.ReportRepository
	invoiceRepo repository.InvoiceRepository
	orderRepo   repository.KitchenOrderRepository
}

// NewReportService creates a new report service
func NewReportService(
	reportRepo repository.ReportRepository,
	invoiceRepo repository.InvoiceRepository,
	orderRepo repository.KitchenOrderRepository,
) *ReportService {
	return &ReportService{
		reportRepo:  reportRepo,
		invoiceRepo: invoiceRepo,
		orderRepo:   orderRepo,
	}
}

// ReportPeriod is the inclusive date range of a report
type ReportPeriod struct {
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
}

func newPeriod(start, end time.Time) ReportPeriod {
	return ReportPeriod{
		FromDate: start.Format("2006-01-02"),
		ToDate:   end.Format("2006-01-02"),
	}
}

// SalesReport is the sales report payload
type SalesReport struct {
	Period  ReportPeriod                   `json:"period"`
	Type    string                         `json:"type,omitempty"`
	Summary *repository.SalesSummaryResult `json:"summary"`
	Daily   []repository.DailySalesRow     `json:"daily"`
}

// SalesReportInput selects the sales report range and optional type filter
type SalesReportInput struct {
	StartDate time.Time
	EndDate   time.Time
	Type      *enum.InvoiceType
}

// Sales builds the sales report: headline sums plus per-day buckets
func (s *ReportService) Sales(ctx context.Context, input *SalesReportInput) (*SalesReport, error) {
	if err := validateRange(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	summary, err := s.reportRepo.SalesSummary(ctx, input.StartDate, input.EndDate, input.Type)
	if err != nil {
		return nil, err
	}

	daily, err := s.reportRepo.DailySales(ctx, input.StartDate, input.EndDate, input.Type)
	if err != nil {
		return nil, err
	}
	if daily == nil {
		daily = []repository.DailySalesRow{}
	}

	report := &SalesReport{
		Period:  newPeriod(input.StartDate, input.EndDate),
		Summary: summary,
		Daily:   daily,
	}
	if input.Type != nil {
		report.Type = input.Type.String()
	}
	return report, nil
}

// GSTTypeBlock is one invoice type's GST figures
type GSTTypeBlock struct {
	TaxableAmount float64 `json:"taxable_amount"`
	CGST          float64 `json:"cgst"`
	SGST          float64 `json:"sgst"`
	TotalTax      float64 `json:"total_tax"`
	TotalAmount   float64 `json:"total_amount"`
}

// GSTReport is the GST report payload: per-type blocks plus the combined sum
type GSTReport struct {
	Period   ReportPeriod  `json:"period"`
	Resort   *GSTTypeBlock `json:"resort"`
	Kitchen  *GSTTypeBlock `json:"kitchen"`
	Combined *GSTTypeBlock `json:"combined"`
}

// GST builds the GST report
func (s *ReportService) GST(ctx context.Context, start, end time.Time) (*GSTReport, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	resortTotals, err := s.reportRepo.TypeTotals(ctx, start, end, enum.InvoiceTypeResort)
	if err != nil {
		return nil, err
	}
	kitchenTotals, err := s.reportRepo.TypeTotals(ctx, start, end, enum.InvoiceTypeKitchen)
	if err != nil {
		return nil, err
	}

	resort := newGSTBlock(resortTotals)
	kitchen := newGSTBlock(kitchenTotals)
	combined := newGSTBlock(&repository.TypeTotalsResult{
		TaxableAmount: resortTotals.TaxableAmount + kitchenTotals.TaxableAmount,
		TaxAmount:     resortTotals.TaxAmount + kitchenTotals.TaxAmount,
		TotalAmount:   resortTotals.TotalAmount + kitchenTotals.TotalAmount,
	})

	return &GSTReport{
		Period:   newPeriod(start, end),
		Resort:   resort,
		Kitchen:  kitchen,
		Combined: combined,
	}, nil
}

func newGSTBlock(t *repository.TypeTotalsResult) *GSTTypeBlock {
	cgst, sgst := billing.SplitGST(t.TaxAmount)
	return &GSTTypeBlock{
		TaxableAmount: billing.Round2(t.TaxableAmount),
		CGST:          billing.Round2(cgst),
		SGST:          billing.Round2(sgst),
		TotalTax:      billing.Round2(t.TaxAmount),
		TotalAmount:   billing.Round2(t.TotalAmount),
	}
}

// KitchenItemsReport is the menu item sales report payload
type KitchenItemsReport struct {
	Period ReportPeriod                     `json:"period"`
	Items  []repository.KitchenItemSalesRow `json:"items"`
}

// KitchenItems builds the per-menu-item sales report, best sellers first
func (s *ReportService) KitchenItems(ctx context.Context, start, end time.Time) (*KitchenItemsReport, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	rows, err := s.reportRepo.KitchenItemSales(ctx, start, end)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []repository.KitchenItemSalesRow{}
	}

	return &KitchenItemsReport{
		Period: newPeriod(start, end),
		Items:  rows,
	}, nil
}

// RevenueBlock is an invoice count and gross total for one slice of time
type RevenueBlock struct {
	Count int64   `json:"count"`
	Total float64 `json:"total"`
}

// Dashboard is the landing page payload
type Dashboard struct {
	TodayResort   RevenueBlock          `json:"today_resort"`
	TodayKitchen  RevenueBlock          `json:"today_kitchen"`
	MonthResort   RevenueBlock          `json:"month_resort"`
	MonthKitchen  RevenueBlock          `json:"month_kitchen"`
	PendingOrders []entity.KitchenOrder `json:"pending_orders"`
}

// BuildDashboard assembles today's and the current month's revenue per
// invoice type plus the open kitchen queue
func (s *ReportService) BuildDashboard(ctx context.Context, now time.Time) (*Dashboard, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	dash := &Dashboard{}

	fill := func(start, end time.Time, invoiceType enum.InvoiceType, dst *RevenueBlock) error {
		res, err := s.reportRepo.Revenue(ctx, start, end, invoiceType)
		if err != nil {
			return err
		}
		dst.Count = res.Count
		dst.Total = billing.Round2(res.Total)
		return nil
	}

	if err := fill(dayStart, dayEnd, enum.InvoiceTypeResort, &dash.TodayResort); err != nil {
		return nil, err
	}
	if err := fill(dayStart, dayEnd, enum.InvoiceTypeKitchen, &dash.TodayKitchen); err != nil {
		return nil, err
	}
	if err := fill(monthStart, dayEnd, enum.InvoiceTypeResort, &dash.MonthResort); err != nil {
		return nil, err
	}
	if err := fill(monthStart, dayEnd, enum.InvoiceTypeKitchen, &dash.MonthKitchen); err != nil {
		return nil, err
	}

	pending, err := s.orderRepo.ListPending(ctx, 10)
	if err != nil {
		return nil, err
	}
	if pending == nil {
		pending = []entity.KitchenOrder{}
	}
	dash.PendingOrders = pending

	return dash, nil
}

// ResortDetailsReport lists resort invoices with their items over a period
type ResortDetailsReport struct {
	Period   ReportPeriod     `json:"period"`
	Invoices []entity.Invoice `json:"invoices"`
}

// ResortDetails builds the detailed resort invoice listing
func (s *ReportService) ResortDetails(ctx context.Context, start, end time.Time) (*ResortDetailsReport, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	invoices, err := s.invoiceRepo.ListForAggregate(ctx, &repository.AggregateFilterParams{
		FromDate: start,
		ToDate:   end,
		Type:     enum.InvoiceTypeResort,
	})
	if err != nil {
		return nil, err
	}

	return &ResortDetailsReport{
		Period:   newPeriod(start, end),
		Invoices: invoices,
	}, nil
}

// SalesExcel renders the sales report as a spreadsheet
func (s *ReportService) SalesExcel(ctx context.Context, input *SalesReportInput) ([]byte, string, error) {
	report, err := s.Sales(ctx, input)
	if err != nil {
		return nil, "", err
	}

	rows := make([][]excel.Cell, 0, len(report.Daily))
	for _, d := range report.Daily {
		rows = append(rows, []excel.Cell{
			d.Date, d.InvoiceCount,
			billing.Round2(d.Subtotal), billing.Round2(d.TaxAmount), billing.Round2(d.TotalAmount),
		})
	}

	table := excel.Table{
		Sheet:   "Sales",
		Title:   "Sales Report " + report.Period.FromDate + " to " + report.Period.ToDate,
		Headers: []string{"Date", "Invoices", "Subtotal", "Tax", "Total"},
		Rows:    rows,
		Footer: [][]excel.Cell{{
			"Total", report.Summary.InvoiceCount,
			billing.Round2(report.Summary.Subtotal),
			billing.Round2(report.Summary.TaxAmount),
			billing.Round2(report.Summary.TotalAmount),
		}},
	}

	return renderWorkbook("sales-report.xlsx", table)
}

// GSTExcel renders the GST report as a spreadsheet
func (s *ReportService) GSTExcel(ctx context.Context, start, end time.Time) ([]byte, string, error) {
	report, err := s.GST(ctx, start, end)
	if err != nil {
		return nil, "", err
	}

	row := func(label string, b *GSTTypeBlock) []excel.Cell {
		return []excel.Cell{label, b.TaxableAmount, b.CGST, b.SGST, b.TotalTax, b.TotalAmount}
	}

	table := excel.Table{
		Sheet:   "GST",
		Title:   "GST Report " + report.Period.FromDate + " to " + report.Period.ToDate,
		Headers: []string{"Category", "Taxable Amount", "CGST", "SGST", "Total Tax", "Total Amount"},
		Rows: [][]excel.Cell{
			row("Resort", report.Resort),
			row("Kitchen", report.Kitchen),
		},
		Footer: [][]excel.Cell{row("Combined", report.Combined)},
	}

	return renderWorkbook("gst-report.xlsx", table)
}

// KitchenItemsExcel renders the menu item sales report as a spreadsheet
func (s *ReportService) KitchenItemsExcel(ctx context.Context, start, end time.Time) ([]byte, string, error) {
	report, err := s.KitchenItems(ctx, start, end)
	if err != nil {
		return nil, "", err
	}

	rows := make([][]excel.Cell, 0, len(report.Items))
	var totalQty int64
	var totalAmount float64
	for _, it := range report.Items {
		rows = append(rows, []excel.Cell{it.ItemName, it.TotalQuantity, billing.Round2(it.TotalAmount)})
		totalQty += it.TotalQuantity
		totalAmount += it.TotalAmount
	}

	table := excel.Table{
		Sheet:   "Kitchen Items",
		Title:   "Kitchen Item Sales " + report.Period.FromDate + " to " + report.Period.ToDate,
		Headers: []string{"Item", "Quantity Sold", "Total Amount"},
		Rows:    rows,
		Footer:  [][]excel.Cell{{"Total", totalQty, billing.Round2(totalAmount)}},
	}

	return renderWorkbook("kitchen-items-report.xlsx", table)
}

// ResortDetailsExcel renders the detailed resort invoice listing as a
// spreadsheet, one row per invoice line
func (s *ReportService) ResortDetailsExcel(ctx context.Context, start, end time.Time) ([]byte, string, error) {
	report, err := s.ResortDetails(ctx, start, end)
	if err != nil {
		return nil, "", err
	}

	rows := make([][]excel.Cell, 0, len(report.Invoices))
	var totalAmount float64
	for _, inv := range report.Invoices {
		for _, it := range inv.Items {
			rows = append(rows, []excel.Cell{
				inv.InvoiceNumber,
				inv.InvoiceDate.Format("2006-01-02"),
				inv.GuestName,
				inv.RoomNumber,
				it.ItemName,
				it.Quantity,
				billing.Round2(it.Rate),
				billing.Round2(it.GSTAmount),
				billing.Round2(it.Total),
			})
		}
		totalAmount += inv.TotalAmount
	}

	table := excel.Table{
		Sheet: "Resort Details",
		Title: "Resort Invoice Details " + report.Period.FromDate + " to " + report.Period.ToDate,
		Headers: []string{
			"Invoice", "Date", "Guest", "Room", "Item", "Qty", "Rate", "GST", "Total",
		},
		Rows: rows,
		Footer: [][]excel.Cell{{
			"Grand Total", "", "", "", "", "", "", "", billing.Round2(totalAmount),
		}},
	}

	return renderWorkbook("resort-details-report.xlsx", table)
}

func renderWorkbook(filename string, tables ...excel.Table) ([]byte, string, error) {
	f, err := excel.Build(tables...)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), filename, nil
}

func validateRange(start, end time.Time) error {
	if end.Before(start) {
		return apperror.NewBadRequestError("end_date must not precede start_date")
	}
	return nil
}
