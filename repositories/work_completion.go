package repositories

import (
	"github.com/ajshan23/alghazal-b-p/database"
	"github.com/ajshan23/alghazal-b-p/models"
)

// WorkCompletionRepository handles database operations for work completion records
type WorkCompletionRepository struct{}

// NewWorkCompletionRepository creates a new work completion repository instance
func NewWorkCompletionRepository() *WorkCompletionRepository {
	return &WorkCompletionRepository{}
}

// FindByID retrieves a work completion record by its ID
func (r *WorkCompletionRepository) FindByID(id string) (models.WorkCompletion, error) {
	var completion models.WorkCompletion
	result := database.DB.Preload("PreparedBy").First(&completion, "id = ?", id)
	return completion, result.Error
}

// FindByProjectID retrieves the work completion record for a project
func (r *WorkCompletionRepository) FindByProjectID(projectID string) (models.WorkCompletion, error) {
	var completion models.WorkCompletion
	result := database.DB.Preload("PreparedBy").First(&completion, "project_id = ?", projectID)
	return completion, result.Error
}

// Create inserts a new work completion record into the database
func (r *WorkCompletionRepository) Create(completion models.WorkCompletion) (models.WorkCompletion, error) {
	result := database.DB.Create(&completion)
	return completion, result.Error
}

// Update modifies an existing work completion record
func (r *WorkCompletionRepository) Update(completion models.WorkCompletion) error {
	result := database.DB.Save(&completion)
	return result.Error
}
