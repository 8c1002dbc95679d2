package models

import "io.mapleapps.campquest/internal/camp"

type SavedCampsResponse struct {
	Camps []camp.GroupedCamp `json:"camps"`
	Total int                `json:"total"`
}
