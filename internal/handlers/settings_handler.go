package handlers

import (
	"cobbler_crm/internal/models"
	"cobbler_crm/internal/services"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsService services.SettingsService
}

func NewSettingsHandler(settingsService services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

func (h *SettingsHandler) GetBusiness(c *gin.Context) {
	settings, err := h.settingsService.GetBusinessSettings()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, settings)
}

func (h *SettingsHandler) SaveBusiness(c *gin.Context) {
	var settings models.BusinessSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		respondBadRequest(c, "Invalid request format")
		return
	}

	if err := h.settingsService.SaveBusinessSettings(&settings); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, settings)
}

func (h *SettingsHandler) ListStaff(c *gin.Context) {
	staff, err := h.settingsService.GetStaff()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, staff)
}

func (h *SettingsHandler) CreateStaff(c *gin.Context) {
	var staff models.StaffMember
	if err := c.ShouldBindJSON(&staff); err != nil {
		respondBadRequest(c, "Invalid request format")
		return
	}

	if err := h.settingsService.CreateStaff(&staff); err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, staff)
}

func (h *SettingsHandler) UpdateStaff(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var staff models.StaffMember
	if err := c.ShouldBindJSON(&staff); err != nil {
		respondBadRequest(c, "Invalid request format")
		return
	}
	staff.ID = id

	if err := h.settingsService.UpdateStaff(&staff); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, staff)
}

func (h *SettingsHandler) DeleteStaff(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.settingsService.DeleteStaff(id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"id": id, "status": "deleted"})
}

func (h *SettingsHandler) GetSecurity(c *gin.Context) {
	status, err := h.settingsService.GetSecurityStatus()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, status)
}

func (h *SettingsHandler) SaveSecurity(c *gin.Context) {
	var req struct {
		PIN       string `json:"pin"`
		UpdatedBy string `json:"updated_by"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format")
		return
	}

	if err := h.settingsService.SetPIN(req.PIN, req.UpdatedBy); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"status": "updated"})
}
