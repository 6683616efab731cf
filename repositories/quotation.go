package repositories

import (
	"github.com/ajshan23/alghazal-b-p/database"
	"github.com/ajshan23/alghazal-b-p/models"
)

// QuotationRepository handles database operations for quotations
type QuotationRepository struct{}

// NewQuotationRepository creates a new quotation repository instance
func NewQuotationRepository() *QuotationRepository {
	return &QuotationRepository{}
}

// FindByID retrieves a quotation by its ID
func (r *QuotationRepository) FindByID(id string) (models.Quotation, error) {
	var quotation models.Quotation
	result := database.DB.Preload("PreparedBy").First(&quotation, "id = ?", id)
	return quotation, result.Error
}

// FindByProjectID retrieves all quotations for a project, newest first
func (r *QuotationRepository) FindByProjectID(projectID string) ([]models.Quotation, error) {
	var quotations []models.Quotation
	result := database.DB.Where("project_id = ?", projectID).Order("created_at desc").Find(&quotations)
	return quotations, result.Error
}

// LatestByProjectID retrieves the newest quotation for a project
func (r *QuotationRepository) LatestByProjectID(projectID string) (models.Quotation, error) {
	var quotation models.Quotation
	result := database.DB.Where("project_id = ?", projectID).Order("created_at desc").First(&quotation)
	return quotation, result.Error
}

// Create inserts a new quotation into the database
func (r *QuotationRepository) Create(quotation models.Quotation) (models.Quotation, error) {
	result := database.DB.Create(&quotation)
	return quotation, result.Error
}

// Update modifies an existing quotation
func (r *QuotationRepository) Update(quotation models.Quotation) error {
	result := database.DB.Save(&quotation)
	return result.Error
}

// Delete removes a quotation from the database (soft delete)
func (r *QuotationRepository) Delete(id string) error {
	result := database.DB.Delete(&models.Quotation{}, "id = ?", id)
	return result.Error
}

// CountByYear counts quotations created in the given year, used for
// generating sequential quotation numbers
func (r *QuotationRepository) CountByYear(year int) (int64, error) {
	var count int64
	result := database.DB.Unscoped().Model(&models.Quotation{}).
		Where("EXTRACT(YEAR FROM created_at) = ?", year).
		Count(&count)
	return count, result.Error
}
