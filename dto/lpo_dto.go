package dto

// CreateLPORequest represents the payload for recording a client-issued
// local purchase order
type CreateLPORequest struct {
	LPONumber string  `json:"lpoNumber" binding:"required"`
	ProjectID string  `json:"projectId" binding:"required"`
	LPODate   string  `json:"lpoDate" binding:"required"` // YYYY-MM-DD
	Supplier  string  `json:"supplier"`
	Amount    float64 `json:"amount" binding:"gte=0"`
}
