package dto

// CreateWorkCompletionRequest represents the payload for recording work
// completion and handover details
type CreateWorkCompletionRequest struct {
	CompletionDate  string `json:"completionDate" binding:"required"` // YYYY-MM-DD
	HandoverDate    string `json:"handoverDate"`
	AcceptanceNotes string `json:"acceptanceNotes"`
}
