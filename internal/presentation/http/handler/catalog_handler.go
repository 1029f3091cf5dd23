package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/greenpalms/resort-api/internal/application/service"
	"github.com/greenpalms/resort-api/internal/presentation/http/dto/request"
	"github.com/greenpalms/resort-api/internal/presentation/http/dto/response"
)

// CatalogHandler handles resort service and menu item HTTP requests
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// CreateService adds a resort service to the catalog
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req request.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	svc, err := h.catalogService.CreateService(c.Request.Context(), &service.CatalogEntryInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price.Float(),
		GSTPercentage: req.GSTPercentage.Float(),
		Category:      req.Category,
		IsActive:      req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Service created", svc)
}

// ListServices returns catalog services; ?active=true filters to active
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.catalogService.ListServices(c.Request.Context(), c.Query("active") == "true")
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Services retrieved", services)
}

// GetService returns one catalog service
func (h *CatalogHandler) GetService(c *gin.Context) {
	id, err := ParseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	svc, err := h.catalogService.GetService(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service retrieved", svc)
}

// UpdateService updates a catalog service
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	id, err := ParseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	svc, err := h.catalogService.UpdateService(c.Request.Context(), id, &service.CatalogEntryInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price.Float(),
		GSTPercentage: req.GSTPercentage.Float(),
		Category:      req.Category,
		IsActive:      req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service updated", svc)
}

// DeleteService removes a catalog service
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	id, err := ParseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.catalogService.DeleteService(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// CreateMenuItem adds a kitchen menu item
func (h *CatalogHandler) CreateMenuItem(c *gin.Context) {
	var req request.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.catalogService.CreateMenuItem(c.Request.Context(), &service.CatalogEntryInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price.Float(),
		GSTPercentage: req.GSTPercentage.Float(),
		Category:      req.Type,
		IsActive:      req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Menu item created", item)
}

// ListMenuItems returns menu items; ?type= filters by menu type and
// ?active=true filters to active entries
func (h *CatalogHandler) ListMenuItems(c *gin.Context) {
	items, err := h.catalogService.ListMenuItems(c.Request.Context(), c.Query("type"), c.Query("active") == "true")
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu items retrieved", items)
}

// GetMenuItem returns one menu item
func (h *CatalogHandler) GetMenuItem(c *gin.Context) {
	id, err := ParseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	item, err := h.catalogService.GetMenuItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu item retrieved", item)
}

// UpdateMenuItem updates a kitchen menu item
func (h *CatalogHandler) UpdateMenuItem(c *gin.Context) {
	id, err := ParseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.catalogService.UpdateMenuItem(c.Request.Context(), id, &service.CatalogEntryInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price.Float(),
		GSTPercentage: req.GSTPercentage.Float(),
		Category:      req.Type,
		IsActive:      req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu item updated", item)
}

// DeleteMenuItem removes a kitchen menu item
func (h *CatalogHandler) DeleteMenuItem(c *gin.Context) {
	id, err := ParseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.catalogService.DeleteMenuItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
