package service

import (
	"context"

	"github.com/greenpalms/resort-api/internal/domain/entity"
	"github.com/greenpalms/resort-api/internal/domain/repository"
	"github.com/greenpalms/resort-api/pkg/apperror"
)

// CatalogService handles the resort service and kitchen menu catalogs
type CatalogService struct {
	serviceRepo  repository.ServiceRepository
	menuItemRepo repository.MenuItemRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(serviceRepo repository.ServiceRepository, menuItemRepo repository.MenuItemRepository) *CatalogService {
	return &CatalogService{
		serviceRepo:  serviceRepo,
		menuItemRepo: menuItemRepo,
	}
}

// CatalogEntryInput carries the writable fields of a catalog entry
type CatalogEntryInput struct {
	Name          string
	Description   string
	Price         float64
	GSTPercentage float64
	Category      string
	IsActive      *bool
}

func validateCatalogEntry(input *CatalogEntryInput) error {
	if input.Price < 0 {
		return apperror.NewBadRequestError("Price must not be negative")
	}
	if input.GSTPercentage < 0 || input.GSTPercentage > 100 {
		return apperror.NewBadRequestError("GST percentage must be between 0 and 100")
	}
	return nil
}

// CreateService adds a resort service to the catalog
func (s *CatalogService) CreateService(ctx context.Context, input *CatalogEntryInput) (*entity.Service, error) {
	if err := validateCatalogEntry(input); err != nil {
		return nil, err
	}

	svc := &entity.Service{
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		GSTPercentage: input.GSTPercentage,
		Category:      input.Category,
		IsActive:      true,
	}
	if svc.Category == "" {
		svc.Category = "resort"
	}
	if input.IsActive != nil {
		svc.IsActive = *input.IsActive
	}

	if err := s.serviceRepo.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// GetService retrieves a resort service by ID
func (s *CatalogService) GetService(ctx context.Context, id uint) (*entity.Service, error) {
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, apperror.NewNotFoundError("Service")
	}
	return svc, nil
}

// ListServices returns catalog services, optionally only active ones
func (s *CatalogService) ListServices(ctx context.Context, activeOnly bool) ([]entity.Service, error) {
	return s.serviceRepo.List(ctx, activeOnly)
}

// UpdateService updates a resort service. Rate changes never touch
// historical invoices, which keep their snapshotted rates.
func (s *CatalogService) UpdateService(ctx context.Context, id uint, input *CatalogEntryInput) (*entity.Service, error) {
	if err := validateCatalogEntry(input); err != nil {
		return nil, err
	}

	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, apperror.NewNotFoundError("Service")
	}

	svc.Name = input.Name
	svc.Description = input.Description
	svc.Price = input.Price
	svc.GSTPercentage = input.GSTPercentage
	if input.Category != "" {
		svc.Category = input.Category
	}
	if input.IsActive != nil {
		svc.IsActive = *input.IsActive
	}

	if err := s.serviceRepo.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// DeleteService removes a resort service from the catalog
func (s *CatalogService) DeleteService(ctx context.Context, id uint) error {
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if svc == nil {
		return apperror.NewNotFoundError("Service")
	}
	return s.serviceRepo.Delete(ctx, id)
}

// CreateMenuItem adds a kitchen menu item
func (s *CatalogService) CreateMenuItem(ctx context.Context, input *CatalogEntryInput) (*entity.MenuItem, error) {
	if err := validateCatalogEntry(input); err != nil {
		return nil, err
	}

	item := &entity.MenuItem{
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		GSTPercentage: input.GSTPercentage,
		Type:          input.Category,
		IsActive:      true,
	}
	if item.Type == "" {
		item.Type = "kitchen"
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}

	if err := s.menuItemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetMenuItem retrieves a menu item by ID
func (s *CatalogService) GetMenuItem(ctx context.Context, id uint) (*entity.MenuItem, error) {
	item, err := s.menuItemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}
	return item, nil
}

// ListMenuItems returns menu items, optionally filtered by type
func (s *CatalogService) ListMenuItems(ctx context.Context, itemType string, activeOnly bool) ([]entity.MenuItem, error) {
	return s.menuItemRepo.List(ctx, itemType, activeOnly)
}

// UpdateMenuItem updates a kitchen menu item
func (s *CatalogService) UpdateMenuItem(ctx context.Context, id uint, input *CatalogEntryInput) (*entity.MenuItem, error) {
	if err := validateCatalogEntry(input); err != nil {
		return nil, err
	}

	item, err := s.menuItemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}

	item.Name = input.Name
	item.Description = input.Description
	item.Price = input.Price
	item.GSTPercentage = input.GSTPercentage
	if input.Category != "" {
		item.Type = input.Category
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}

	if err := s.menuItemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteMenuItem removes a kitchen menu item
func (s *CatalogService) DeleteMenuItem(ctx context.Context, id uint) error {
	item, err := s.menuItemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Menu item")
	}
	return s.menuItemRepo.Delete(ctx, id)
}
