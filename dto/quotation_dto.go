package dto

// QuotationItemRequest is one line of a quotation request
type QuotationItemRequest struct {
	Description string  `json:"description" binding:"required"`
	UOM         string  `json:"uom"`
	Quantity    float64 `json:"quantity" binding:"required,gt=0"`
	UnitPrice   float64 `json:"unitPrice" binding:"required,gte=0"`
}

// CreateQuotationRequest represents the payload for creating a quotation
type CreateQuotationRequest struct {
	ProjectID   string                 `json:"projectId" binding:"required"`
	Items       []QuotationItemRequest `json:"items" binding:"required,min=1,dive"`
	VATPercent  float64                `json:"vatPercent" binding:"gte=0"`
	ValidUntil  string                 `json:"validUntil"` // YYYY-MM-DD
	ScopeOfWork string                 `json:"scopeOfWork"`
}
