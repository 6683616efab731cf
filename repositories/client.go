package repositories

import (
	"github.com/ajshan23/alghazal-b-p/database"
	"github.com/ajshan23/alghazal-b-p/models"
)

// ClientRepository handles database operations for clients
type ClientRepository struct{}

// NewClientRepository creates a new client repository instance
func NewClientRepository() *ClientRepository {
	return &ClientRepository{}
}

// FindByID retrieves a client by its ID
func (r *ClientRepository) FindByID(id string) (models.Client, error) {
	var client models.Client
	result := database.DB.First(&client, "id = ?", id)
	return client, result.Error
}

// Create inserts a new client into the database
func (r *ClientRepository) Create(client models.Client) (models.Client, error) {
	result := database.DB.Create(&client)
	return client, result.Error
}

// Update modifies an existing client
func (r *ClientRepository) Update(client models.Client) error {
	result := database.DB.Save(&client)
	return result.Error
}

// Delete removes a client from the database (soft delete)
func (r *ClientRepository) Delete(id string) error {
	result := database.DB.Delete(&models.Client{}, "id = ?", id)
	return result.Error
}

// CountProjects counts the projects referencing a client
func (r *ClientRepository) CountProjects(id string) (int64, error) {
	var count int64
	result := database.DB.Model(&models.Project{}).Where("client_id = ?", id).Count(&count)
	return count, result.Error
}

// FindWithPagination retrieves clients with pagination and search
func (r *ClientRepository) FindWithPagination(page, pageSize int, search string) ([]models.Client, int64, error) {
	var clients []models.Client
	var totalCount int64

	db := database.DB.Model(&models.Client{})

	if search != "" {
		searchPattern := "%" + search + "%"
		db = db.Where("(client_name ILIKE ? OR email ILIKE ? OR trn ILIKE ?)", searchPattern, searchPattern, searchPattern)
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := db.Order("created_at desc").Limit(pageSize).Offset(offset).Find(&clients).Error; err != nil {
		return nil, 0, err
	}

	return clients, totalCount, nil
}
