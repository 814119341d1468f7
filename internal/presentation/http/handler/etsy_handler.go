package handler

import (
	"net/http"

	"github.com/craftlister/craftlister-api/internal/application/service"
	"github.com/craftlister/craftlister-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// EtsyHandler handles Etsy shop connection HTTP requests
type EtsyHandler struct {
	etsyService *service.EtsyService
	frontendURL string
}

// NewEtsyHandler creates a new Etsy handler
func NewEtsyHandler(etsyService *service.EtsyService, frontendURL string) *EtsyHandler {
	return &EtsyHandler{
		etsyService: etsyService,
		frontendURL: frontendURL,
	}
}

// GetStatus reports whether the user has a connected Etsy shop
func (h *EtsyHandler) GetStatus(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	status, err := h.etsyService.GetStatus(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(200, status)
}

// Connect returns the Etsy consent URL for the frontend to redirect to
func (h *EtsyHandler) Connect(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	authURL, err := h.etsyService.GetConnectURL(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(200, gin.H{"auth_url": authURL})
}

// Callback completes the OAuth flow. Etsy redirects the browser here, so the
// user is identified by the state token rather than a bearer credential, and
// the handler redirects back to the frontend settings page.
func (h *EtsyHandler) Callback(c *gin.Context) {
	state := c.Query("state")
	code := c.Query("code")
	if state == "" || code == "" {
		c.Redirect(http.StatusFound, h.frontendURL+"/settings?etsy=error")
		return
	}

	if err := h.etsyService.HandleCallback(c.Request.Context(), state, code); err != nil {
		c.Redirect(http.StatusFound, h.frontendURL+"/settings?etsy=error")
		return
	}

	c.Redirect(http.StatusFound, h.frontendURL+"/settings?etsy=connected")
}

// Disconnect removes the user's Etsy connection
func (h *EtsyHandler) Disconnect(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	if err := h.etsyService.Disconnect(c.Request.Context(), *userID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Etsy account disconnected", nil)
}
