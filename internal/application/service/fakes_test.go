package service

import (
	"context"
	"strings"
	"time"

	"github.com/greenpalms/resort-api/internal/domain/entity"
	"github.com/greenpalms/resort-api/internal/domain/enum"
	"github.com/greenpalms/resort-api/internal/domain/repository"
)

// In-memory repository fakes. Each fake keeps its entities in a slice and
// hands out copies so tests cannot mutate stored state by accident.

type fakeMenuItemRepo struct {
	items []entity.MenuItem
}

func (f *fakeMenuItemRepo) Create(ctx context.Context, item *entity.MenuItem) error {
	item.ID = uint(len(f.items) + 1)
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeMenuItemRepo) GetByID(ctx context.Context, id uint) (*entity.MenuItem, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			item := f.items[i]
			return &item, nil
		}
	}
	return nil, nil
}

func (f *fakeMenuItemRepo) List(ctx context.Context, itemType string, activeOnly bool) ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	for _, it := range f.items {
		if itemType != "" && it.Type != itemType {
			continue
		}
		if activeOnly && !it.IsActive {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

func (f *fakeMenuItemRepo) Update(ctx context.Context, item *entity.MenuItem) error {
	for i := range f.items {
		if f.items[i].ID == item.ID {
			f.items[i] = *item
		}
	}
	return nil
}

func (f *fakeMenuItemRepo) Delete(ctx context.Context, id uint) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			break
		}
	}
	return nil
}

type fakeServiceRepo struct {
	services []entity.Service
}

func (f *fakeServiceRepo) Create(ctx context.Context, svc *entity.Service) error {
	svc.ID = uint(len(f.services) + 1)
	f.services = append(f.services, *svc)
	return nil
}

func (f *fakeServiceRepo) GetByID(ctx context.Context, id uint) (*entity.Service, error) {
	for i := range f.services {
		if f.services[i].ID == id {
			svc := f.services[i]
			return &svc, nil
		}
	}
	return nil, nil
}

func (f *fakeServiceRepo) List(ctx context.Context, activeOnly bool) ([]entity.Service, error) {
	var out []entity.Service
	for _, s := range f.services {
		if activeOnly && !s.IsActive {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeServiceRepo) Update(ctx context.Context, svc *entity.Service) error {
	for i := range f.services {
		if f.services[i].ID == svc.ID {
			f.services[i] = *svc
		}
	}
	return nil
}

func (f *fakeServiceRepo) Delete(ctx context.Context, id uint) error {
	for i := range f.services {
		if f.services[i].ID == id {
			f.services = append(f.services[:i], f.services[i+1:]...)
			break
		}
	}
	return nil
}

type fakeGuestRepo struct {
	guests []entity.Guest
}

func (f *fakeGuestRepo) Create(ctx context.Context, guest *entity.Guest) error {
	guest.ID = uint(len(f.guests) + 1)
	f.guests = append(f.guests, *guest)
	return nil
}

func (f *fakeGuestRepo) GetByID(ctx context.Context, id uint) (*entity.Guest, error) {
	for i := range f.guests {
		if f.guests[i].ID == id {
			g := f.guests[i]
			return &g, nil
		}
	}
	return nil, nil
}

func (f *fakeGuestRepo) List(ctx context.Context, search string) ([]entity.Guest, error) {
	var out []entity.Guest
	for _, g := range f.guests {
		if search != "" && !strings.Contains(strings.ToLower(g.Name), strings.ToLower(search)) {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

func (f *fakeGuestRepo) Update(ctx context.Context, guest *entity.Guest) error {
	for i := range f.guests {
		if f.guests[i].ID == guest.ID {
			f.guests[i] = *guest
		}
	}
	return nil
}

func (f *fakeGuestRepo) Delete(ctx context.Context, id uint) error {
	for i := range f.guests {
		if f.guests[i].ID == id {
			f.guests = append(f.guests[:i], f.guests[i+1:]...)
			break
		}
	}
	return nil
}

type fakeInvoiceRepo struct {
	invoices []entity.Invoice
	seq      map[enum.InvoiceType]int64
}

func (f *fakeInvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	invoice.ID = uint(len(f.invoices) + 1)
	for i := range invoice.Items {
		invoice.Items[i].InvoiceID = invoice.ID
	}
	f.invoices = append(f.invoices, *invoice)
	return nil
}

func (f *fakeInvoiceRepo) GetByID(ctx context.Context, id uint) (*entity.Invoice, error) {
	for i := range f.invoices {
		if f.invoices[i].ID == id {
			inv := f.invoices[i]
			return &inv, nil
		}
	}
	return nil, nil
}

func (f *fakeInvoiceRepo) GetWithItems(ctx context.Context, id uint) (*entity.Invoice, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeInvoiceRepo) List(ctx context.Context, params *repository.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	return f.invoices, int64(len(f.invoices)), nil
}

func (f *fakeInvoiceRepo) ListForAggregate(ctx context.Context, params *repository.AggregateFilterParams) ([]entity.Invoice, error) {
	var out []entity.Invoice
	for _, inv := range f.invoices {
		if inv.Type != params.Type {
			continue
		}
		if inv.InvoiceDate.Before(params.FromDate) || inv.InvoiceDate.After(params.ToDate) {
			continue
		}
		if params.GuestName != "" && !strings.Contains(strings.ToLower(inv.GuestName), strings.ToLower(params.GuestName)) {
			continue
		}
		out = append(out, inv)
	}
	return out, nil
}

func (f *fakeInvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error {
	for i := range f.invoices {
		if f.invoices[i].ID == invoice.ID {
			f.invoices[i] = *invoice
		}
	}
	return nil
}

func (f *fakeInvoiceRepo) Delete(ctx context.Context, id uint) error {
	for i := range f.invoices {
		if f.invoices[i].ID == id {
			f.invoices = append(f.invoices[:i], f.invoices[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeInvoiceRepo) NextSequence(ctx context.Context, invoiceType enum.InvoiceType) (int64, error) {
	if f.seq == nil {
		f.seq = map[enum.InvoiceType]int64{}
	}
	f.seq[invoiceType]++
	return f.seq[invoiceType], nil
}

type fakeKitchenOrderRepo struct {
	orders []entity.KitchenOrder
	seq    int64

	// claimRejected forces SetInvoiceID to report a lost race
	claimRejected bool
}

func (f *fakeKitchenOrderRepo) Create(ctx context.Context, order *entity.KitchenOrder) error {
	order.ID = uint(len(f.orders) + 1)
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}
	f.orders = append(f.orders, *order)
	return nil
}

func (f *fakeKitchenOrderRepo) GetByID(ctx context.Context, id uint) (*entity.KitchenOrder, error) {
	for i := range f.orders {
		if f.orders[i].ID == id {
			o := f.orders[i]
			return &o, nil
		}
	}
	return nil, nil
}

func (f *fakeKitchenOrderRepo) GetWithItems(ctx context.Context, id uint) (*entity.KitchenOrder, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeKitchenOrderRepo) List(ctx context.Context, params *repository.KitchenOrderFilterParams) ([]entity.KitchenOrder, int64, error) {
	return f.orders, int64(len(f.orders)), nil
}

func (f *fakeKitchenOrderRepo) UpdateStatus(ctx context.Context, id uint, status enum.OrderStatus) error {
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders[i].Status = status
		}
	}
	return nil
}

func (f *fakeKitchenOrderRepo) SetInvoiceID(ctx context.Context, id uint, invoiceID uint) (bool, error) {
	if f.claimRejected {
		return false, nil
	}
	for i := range f.orders {
		if f.orders[i].ID == id {
			if f.orders[i].InvoiceID != nil {
				return false, nil
			}
			f.orders[i].InvoiceID = &invoiceID
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeKitchenOrderRepo) NextSequence(ctx context.Context) (int64, error) {
	f.seq++
	return f.seq, nil
}

func (f *fakeKitchenOrderRepo) ListPending(ctx context.Context, limit int) ([]entity.KitchenOrder, error) {
	var out []entity.KitchenOrder
	for _, o := range f.orders {
		if o.Status == enum.OrderStatusPending || o.Status == enum.OrderStatusProcessing {
			out = append(out, o)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

type fakeSettingsRepo struct {
	settings *entity.ResortSettings
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (*entity.ResortSettings, error) {
	return f.settings, nil
}

func (f *fakeSettingsRepo) Save(ctx context.Context, settings *entity.ResortSettings) error {
	f.settings = settings
	return nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}
