package repositories

import (
	"github.com/ajshan23/alghazal-b-p/database"
	"github.com/ajshan23/alghazal-b-p/models"
)

// LPORepository handles database operations for local purchase orders
type LPORepository struct{}

// NewLPORepository creates a new LPO repository instance
func NewLPORepository() *LPORepository {
	return &LPORepository{}
}

// FindByID retrieves an LPO by its ID
func (r *LPORepository) FindByID(id string) (models.LPO, error) {
	var lpo models.LPO
	result := database.DB.First(&lpo, "id = ?", id)
	return lpo, result.Error
}

// FindByProjectID retrieves all LPOs for a project
func (r *LPORepository) FindByProjectID(projectID string) ([]models.LPO, error) {
	var lpos []models.LPO
	result := database.DB.Where("project_id = ?", projectID).Order("lpo_date desc").Find(&lpos)
	return lpos, result.Error
}

// Create inserts a new LPO into the database
func (r *LPORepository) Create(lpo models.LPO) (models.LPO, error) {
	result := database.DB.Create(&lpo)
	return lpo, result.Error
}

// Update modifies an existing LPO
func (r *LPORepository) Update(lpo models.LPO) error {
	result := database.DB.Save(&lpo)
	return result.Error
}

// Delete removes an LPO from the database (soft delete)
func (r *LPORepository) Delete(id string) error {
	result := database.DB.Delete(&models.LPO{}, "id = ?", id)
	return result.Error
}
