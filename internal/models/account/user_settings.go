package models

import "time"

type UserSettings struct {
	UID             string    `json:"uid" db:"uid"`
	ThemeMode       string    `json:"themeMode" db:"theme_mode"`
	DefaultProvince string    `json:"defaultProvince" db:"default_province"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}
