package dto

import "github.com/ajshan23/alghazal-b-p/models"

// CreateClientRequest represents the payload for creating a client
type CreateClientRequest struct {
	ClientName string `json:"clientName" binding:"required"`
	Email      string `json:"email" binding:"omitempty,email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	TRN        string `json:"trn"`
}

// UpdateClientRequest represents the payload for updating a client
type UpdateClientRequest struct {
	ClientName string `json:"clientName"`
	Email      string `json:"email" binding:"omitempty,email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	TRN        string `json:"trn"`
}

// ClientListResponse represents a paginated client list
type ClientListResponse struct {
	Clients    []models.Client `json:"clients"`
	TotalCount int64           `json:"totalCount"`
	Page       int             `json:"page"`
	PageSize   int             `json:"pageSize"`
	TotalPages int             `json:"totalPages"`
}
