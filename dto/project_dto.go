package dto

import (
	"github.com/ajshan23/alghazal-b-p/models"
)

// ProjectFilter represents filter criteria for projects
type ProjectFilter struct {
	Status    string
	ClientID  string
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

// ProjectListResponse represents paginated project list response
type ProjectListResponse struct {
	Projects   []models.Project `json:"projects"`
	TotalCount int64            `json:"totalCount"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalPages int              `json:"totalPages"`
}

// CreateProjectRequest represents the request payload for creating a new project
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ClientID    string `json:"clientId" binding:"required"`
	Location    string `json:"location"`
	Building    string `json:"building"`
	Apartment   string `json:"apartment"`
}

// UpdateProjectRequest represents the request payload for a generic project
// update. Status and Progress are optional; when present they go through the
// same validation as the dedicated endpoints.
type UpdateProjectRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Building    string  `json:"building"`
	Apartment   string  `json:"apartment"`
	Status      *string `json:"status"`
	Progress    *int    `json:"progress"`
}

// UpdateStatusRequest represents an explicit status transition request
type UpdateStatusRequest struct {
	Status  string `json:"status" binding:"required"`
	Comment string `json:"comment"`
}

// UpdateProgressRequest represents a progress update request
type UpdateProgressRequest struct {
	Progress int `json:"progress" binding:"min=0,max=100"`
}

// AssignTeamRequest represents the payload for assigning workers and a driver
type AssignTeamRequest struct {
	WorkerIDs  []string `json:"workerIds" binding:"required,min=1"`
	DriverID   *string  `json:"driverId"`
	EngineerID *string  `json:"engineerId"`
}

// AddCommentRequest represents the payload for adding a project comment
type AddCommentRequest struct {
	Content string `json:"content" binding:"required"`
}
