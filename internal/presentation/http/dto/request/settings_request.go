package request

// UpdateSettingsRequest represents a partial settings update. Pointer fields
// distinguish "absent" from a zero value, so only keys present in the JSON
// body overwrite the stored row.
type UpdateSettingsRequest struct {
	DefaultPrice    *float64 `json:"default_price"`
	DefaultQuantity *int     `json:"default_quantity"`
	AutoRenew       *bool    `json:"auto_renew"`
}
