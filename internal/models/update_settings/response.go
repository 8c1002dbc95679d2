package models

import (
	usermodels "io.mapleapps.campquest/internal/models/account"
)

type UpdateSettingsResponse struct {
	Success  bool                    `json:"success"`
	Message  string                  `json:"message"`
	Settings usermodels.UserSettings `json:"settings"`
}
