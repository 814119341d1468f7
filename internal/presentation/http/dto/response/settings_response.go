package response

import "github.com/craftlister/craftlister-api/internal/domain/entity"

// SettingsResponse is the flat settings record returned to clients
type SettingsResponse struct {
	DefaultPrice    float64 `json:"default_price"`
	DefaultQuantity int     `json:"default_quantity"`
	AutoRenew       bool    `json:"auto_renew"`
}

// SaveSettingsResponse is the flat confirmation returned after a save
type SaveSettingsResponse struct {
	Message string `json:"message"`
	SettingsResponse
}

// NewSettingsResponse maps a settings row to its flat response record
func NewSettingsResponse(s *entity.UserSettings) SettingsResponse {
	return SettingsResponse{
		DefaultPrice:    s.DefaultPrice,
		DefaultQuantity: s.DefaultQuantity,
		AutoRenew:       s.AutoRenew,
	}
}
