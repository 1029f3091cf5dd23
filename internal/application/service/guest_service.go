package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/greenpalms/resort-api/internal/domain/entity"
	"github.com/greenpalms/resort-api/internal/domain/repository"
	"github.com/greenpalms/resort-api/pkg/apperror"
)

// GuestService handles guest management
type GuestService struct {
	guestRepo repository.GuestRepository
}

// NewGuestService creates a new guest service
func NewGuestService(guestRepo repository.GuestRepository) *GuestService {
	return &GuestService{guestRepo: guestRepo}
}

// GuestInput carries the writable guest fields
type GuestInput struct {
	Name         string
	Mobile       string
	RoomNumber   string
	CompanyName  *string
	GSTNumber    *string
	CheckInDate  time.Time
	CheckOutDate *time.Time
}

// CreateGuest registers a new guest. A missing check-in date defaults to
// the moment of registration.
func (s *GuestService) CreateGuest(ctx context.Context, input *GuestInput, createdBy uuid.UUID) (*entity.Guest, error) {
	checkIn := input.CheckInDate
	if checkIn.IsZero() {
		checkIn = time.Now()
	}

	guest := &entity.Guest{
		Name:         input.Name,
		Mobile:       input.Mobile,
		RoomNumber:   input.RoomNumber,
		CompanyName:  input.CompanyName,
		GSTNumber:    input.GSTNumber,
		CheckInDate:  checkIn,
		CheckOutDate: input.CheckOutDate,
		CreatedBy:    createdBy,
	}

	if err := s.guestRepo.Create(ctx, guest); err != nil {
		return nil, err
	}

	return guest, nil
}

// GetGuest retrieves a guest by ID
func (s *GuestService) GetGuest(ctx context.Context, id uint) (*entity.Guest, error) {
	guest, err := s.guestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, apperror.NewNotFoundError("Guest")
	}
	return guest, nil
}

// ListGuests returns guests, optionally filtered by a search term matched
// against name, room number and mobile
func (s *GuestService) ListGuests(ctx context.Context, search string) ([]entity.Guest, error) {
	return s.guestRepo.List(ctx, search)
}

// UpdateGuest updates a guest record
func (s *GuestService) UpdateGuest(ctx context.Context, id uint, input *GuestInput) (*entity.Guest, error) {
	guest, err := s.guestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, apperror.NewNotFoundError("Guest")
	}

	guest.Name = input.Name
	guest.Mobile = input.Mobile
	guest.RoomNumber = input.RoomNumber
	guest.CompanyName = input.CompanyName
	guest.GSTNumber = input.GSTNumber
	if !input.CheckInDate.IsZero() {
		guest.CheckInDate = input.CheckInDate
	}
	guest.CheckOutDate = input.CheckOutDate

	if err := s.guestRepo.Update(ctx, guest); err != nil {
		return nil, err
	}

	return guest, nil
}

// DeleteGuest removes a guest. Existing invoices keep their guest snapshot
// fields, so deletion never orphans billing history.
func (s *GuestService) DeleteGuest(ctx context.Context, id uint) error {
	guest, err := s.guestRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if guest == nil {
		return apperror.NewNotFoundError("Guest")
	}

	return s.guestRepo.Delete(ctx, id)
}
