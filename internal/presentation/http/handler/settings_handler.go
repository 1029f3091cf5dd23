package handler

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/greenpalms/resort-api/internal/application/service"
	"github.com/greenpalms/resort-api/internal/config"
	"github.com/greenpalms/resort-api/internal/presentation/http/dto/response"
	"github.com/greenpalms/resort-api/pkg/utils"
)

// SettingsHandler handles resort settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
	storage         *config.StorageConfig
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService, storage *config.StorageConfig) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		storage:         storage,
	}
}

// Get returns the resort settings
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved", settings)
}

// Update updates the resort settings. The request is multipart form data so
// the console can attach a new logo alongside the text fields.
func (h *SettingsHandler) Update(c *gin.Context) {
	input := &service.UpdateSettingsInput{
		ResortName:    c.PostForm("resort_name"),
		ResortGSTIN:   c.PostForm("resort_gstin"),
		KitchenGSTIN:  c.PostForm("kitchen_gstin"),
		ResortAddress: c.PostForm("resort_address"),
		ResortContact: c.PostForm("resort_contact"),
		ResortEmail:   c.PostForm("resort_email"),
	}

	if raw := c.PostForm("tax_rate"); raw != "" {
		taxRate, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			response.BadRequest(c, "tax_rate must be numeric")
			return
		}
		input.TaxRate = &taxRate
	}

	if file, err := c.FormFile("logo"); err == nil && file != nil {
		if h.storage.UploadMaxSize > 0 && file.Size > h.storage.UploadMaxSize {
			response.BadRequest(c, "Logo file is too large")
			return
		}
		ext := strings.ToLower(filepath.Ext(file.Filename))
		if ext != ".png" && ext != ".jpg" && ext != ".jpeg" && ext != ".svg" && ext != ".webp" {
			response.BadRequest(c, "Unsupported logo format")
			return
		}

		stored := utils.UploadFileName(file.Filename)
		dst := filepath.Join(h.storage.Path, "logos", stored)
		if err := c.SaveUploadedFile(file, dst); err != nil {
			response.Error(c, err)
			return
		}

		logoPath := "logos/" + stored
		input.LogoPath = &logoPath
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated", settings)
}
