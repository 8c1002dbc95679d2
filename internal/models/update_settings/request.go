package models

type UpdateSettingsRequest struct {
	ThemeMode       *string `json:"themeMode,omitempty"`
	DefaultProvince *string `json:"defaultProvince,omitempty"`
}
