package handler

import (
	"github.com/craftlister/craftlister-api/internal/application/service"
	"github.com/craftlister/craftlister-api/internal/presentation/http/dto/request"
	"github.com/craftlister/craftlister-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// SettingsHandler handles default listing settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings returns the user's settings, or the defaults when no row
// exists. The response body is the flat settings record.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	settings, err := h.settingsService.GetSettings(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(200, response.NewSettingsResponse(settings))
}

// SaveSettings applies a partial update and returns the resulting record
func (h *SettingsHandler) SaveSettings(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settingsService.SaveSettings(c.Request.Context(), *userID, &service.UpdateSettingsInput{
		DefaultPrice:    req.DefaultPrice,
		DefaultQuantity: req.DefaultQuantity,
		AutoRenew:       req.AutoRenew,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(200, response.SaveSettingsResponse{
		Message:          "Settings saved successfully",
		SettingsResponse: response.NewSettingsResponse(settings),
	})
}
