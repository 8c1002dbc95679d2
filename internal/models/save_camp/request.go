package models

type SaveCampRequest struct {
	CampName string `json:"campName" binding:"required"`
}
