package dto

import "github.com/ajshan23/alghazal-b-p/models"

// MarkAttendanceRequest represents the payload for marking a user's
// attendance on a date. ProjectID is required for type "project" and
// must be absent for type "normal".
type MarkAttendanceRequest struct {
	ProjectID *string `json:"projectId"`
	UserID    string  `json:"userId" binding:"required"`
	Date      string  `json:"date" binding:"required"` // YYYY-MM-DD
	Present   bool    `json:"present"`
	Type      string  `json:"type" binding:"required,oneof=project normal"`
}

// AttendanceFilter represents filter criteria for attendance queries
type AttendanceFilter struct {
	ProjectID string
	UserID    string
	Type      string
	From      string
	To        string
	Page      int
	PageSize  int
}

// AttendanceListResponse represents a paginated attendance list
type AttendanceListResponse struct {
	Records    []models.Attendance `json:"records"`
	TotalCount int64               `json:"totalCount"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"pageSize"`
	TotalPages int                 `json:"totalPages"`
}
