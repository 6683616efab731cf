package dto

import "github.com/ajshan23/alghazal-b-p/models"

// CreateUserRequest represents the payload for an admin creating a staff account.
// When password is omitted a secure one is generated and emailed to the user.
type CreateUserRequest struct {
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password"`
	Name        string  `json:"name" binding:"required"`
	Phone       string  `json:"phone"`
	Role        string  `json:"role" binding:"required,oneof=admin engineer finance worker driver"`
	DailySalary float64 `json:"dailySalary" binding:"gte=0"`
}

// UpdateUserRequest represents the payload for updating a staff account
type UpdateUserRequest struct {
	Name        string   `json:"name"`
	Phone       string   `json:"phone"`
	DailySalary *float64 `json:"dailySalary"`
}

// UserListResponse represents a paginated user list
type UserListResponse struct {
	Users      []models.User `json:"users"`
	TotalCount int64         `json:"totalCount"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
	TotalPages int           `json:"totalPages"`
}
