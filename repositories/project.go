package repositories

import (
	"github.com/ajshan23/alghazal-b-p/database"
	"github.com/ajshan23/alghazal-b-p/models"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct{}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// FindByID retrieves a project by its ID
func (r *ProjectRepository) FindByID(id string) (models.Project, error) {
	var project models.Project
	result := database.DB.First(&project, "id = ?", id)
	return project, result.Error
}

// WithTeam loads a project with its client, engineer, workers and driver resolved
func (r *ProjectRepository) WithTeam(id string) (models.Project, error) {
	var project models.Project
	result := database.DB.
		Preload("Client").
		Preload("AssignedEngineer").
		Preload("AssignedWorkers").
		Preload("AssignedDriver").
		First(&project, "id = ?", id)
	return project, result.Error
}

// Create inserts a new project into the database
func (r *ProjectRepository) Create(project models.Project) (models.Project, error) {
	result := database.DB.Create(&project)
	return project, result.Error
}

// Update modifies an existing project
func (r *ProjectRepository) Update(project models.Project) error {
	result := database.DB.Save(&project)
	return result.Error
}

// UpdateFields applies a partial update to a project
func (r *ProjectRepository) UpdateFields(id string, fields map[string]interface{}) error {
	result := database.DB.Model(&models.Project{}).Where("id = ?", id).Updates(fields)
	return result.Error
}

// UpdateStatusIfCurrent applies a status change only if the row still holds
// the expected current status. Returns the number of rows updated so the
// caller can detect a lost race (compare-and-swap on (id, status)).
func (r *ProjectRepository) UpdateStatusIfCurrent(id string, current, target models.ProjectStatus, updatedByID string) (int64, error) {
	result := database.DB.Model(&models.Project{}).
		Where("id = ? AND status = ?", id, current).
		Updates(map[string]interface{}{
			"status":        target,
			"updated_by_id": updatedByID,
		})
	return result.RowsAffected, result.Error
}

// ReplaceWorkers replaces the project's assigned worker set
func (r *ProjectRepository) ReplaceWorkers(project models.Project, workers []models.User) error {
	return database.DB.Model(&project).Association("AssignedWorkers").Replace(workers)
}

// HardDelete permanently removes a project and its worker assignments.
// Only called for draft projects; the service enforces that rule.
func (r *ProjectRepository) HardDelete(id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM project_workers WHERE project_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Unscoped().Delete(&models.Project{}, "id = ?", id)
		return result.Error
	})
}

// CountByYear counts projects created in the given year, used for
// generating sequential project numbers
func (r *ProjectRepository) CountByYear(year int) (int64, error) {
	var count int64
	result := database.DB.Unscoped().Model(&models.Project{}).
		Where("EXTRACT(YEAR FROM created_at) = ?", year).
		Count(&count)
	return count, result.Error
}

// FindWithPagination retrieves projects with pagination, filtering and sorting
func (r *ProjectRepository) FindWithPagination(
	page, pageSize int,
	sortBy, sortOrder string,
	status string,
	clientID string,
	search string) ([]models.Project, int64, error) {

	var projects []models.Project
	var totalCount int64

	db := database.DB.Model(&models.Project{})

	if status != "" {
		db = db.Where("status = ?", status)
	}

	if clientID != "" {
		db = db.Where("client_id = ?", clientID)
	}

	if search != "" {
		searchPattern := "%" + search + "%"
		db = db.Where("(name ILIKE ? OR description ILIKE ? OR project_number ILIKE ?)", searchPattern, searchPattern, searchPattern)
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize

	orderString := sortBy + " " + sortOrder
	if err := db.Preload("Client").Order(orderString).Limit(pageSize).Offset(offset).Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	return projects, totalCount, nil
}
