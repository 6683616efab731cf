package dto

// ExpenseItemRequest is one material or miscellaneous cost line
type ExpenseItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Date        string  `json:"date" binding:"required"` // YYYY-MM-DD
	Amount      float64 `json:"amount" binding:"required,gte=0"`
}

// CreateExpenseRequest represents the payload for creating an expense
// record. Labor figures are not part of the request: they are computed
// by the labor aggregator and frozen into the expense at creation time.
type CreateExpenseRequest struct {
	Materials     []ExpenseItemRequest `json:"materials" binding:"dive"`
	Miscellaneous []ExpenseItemRequest `json:"miscellaneous" binding:"dive"`
}
