package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/greenpalms/resort-api/internal/application/service"
	"github.com/greenpalms/resort-api/internal/presentation/http/dto/request"
	"github.com/greenpalms/resort-api/internal/presentation/http/dto/response"
)

// GuestHandler handles guest HTTP requests
type GuestHandler struct {
	guestService *service.GuestService
}

// NewGuestHandler creates a new guest handler
func NewGuestHandler(guestService *service.GuestService) *GuestHandler {
	return &GuestHandler{guestService: guestService}
}

func guestInputFromRequest(req *request.GuestRequest) *service.GuestInput {
	var checkIn time.Time
	if req.CheckInDate != nil {
		checkIn = *req.CheckInDate
	}
	return &service.GuestInput{
		Name:         req.Name,
		Mobile:       req.Mobile,
		RoomNumber:   req.RoomNumber,
		CompanyName:  req.CompanyName,
		GSTNumber:    req.GSTNumber,
		CheckInDate:  checkIn,
		CheckOutDate: req.CheckOutDate,
	}
}

// Create registers a new guest
func (h *GuestHandler) Create(c *gin.Context) {
	var req request.GuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	createdBy := uuid.Nil
	if id := GetUserID(c); id != nil {
		createdBy = *id
	}

	guest, err := h.guestService.CreateGuest(c.Request.Context(), guestInputFromRequest(&req), createdBy)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Guest created", guest)
}

// List returns guests, optionally filtered by ?search=
func (h *GuestHandler) List(c *gin.Context) {
	guests, err := h.guestService.ListGuests(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Guests retrieved", guests)
}

// Get returns one guest
func (h *GuestHandler) Get(c *gin.Context) {
	id, err := ParseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	guest, err := h.guestService.GetGuest(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Guest retrieved", guest)
}

// Update updates a guest record
func (h *GuestHandler) Update(c *gin.Context) {
	id, err := ParseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.GuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	guest, err := h.guestService.UpdateGuest(c.Request.Context(), id, guestInputFromRequest(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Guest updated", guest)
}

// Delete removes a guest
func (h *GuestHandler) Delete(c *gin.Context) {
	id, err := ParseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.guestService.DeleteGuest(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
