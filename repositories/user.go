package repositories

import (
	"github.com/ajshan23/alghazal-b-p/database"
	"github.com/ajshan23/alghazal-b-p/models"
)

// UserRepository handles database operations for users
type UserRepository struct{}

// NewUserRepository creates a new user repository instance
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindByID retrieves a user by its ID
func (r *UserRepository) FindByID(id string) (models.User, error) {
	var user models.User
	result := database.DB.First(&user, "id = ?", id)
	return user, result.Error
}

// FindByEmail retrieves a user by email
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	result := database.DB.First(&user, "email = ?", email)
	return user, result.Error
}

// FindByIDs retrieves all users matching the given IDs
func (r *UserRepository) FindByIDs(ids []string) ([]models.User, error) {
	var users []models.User
	if len(ids) == 0 {
		return users, nil
	}
	result := database.DB.Where("id IN ?", ids).Find(&users)
	return users, result.Error
}

// FindByRole retrieves all users with the given role
func (r *UserRepository) FindByRole(role models.Role) ([]models.User, error) {
	var users []models.User
	result := database.DB.Where("role = ?", role).Find(&users)
	return users, result.Error
}

// Create inserts a new user into the database
func (r *UserRepository) Create(user models.User) (models.User, error) {
	result := database.DB.Create(&user)
	return user, result.Error
}

// Update modifies an existing user
func (r *UserRepository) Update(user models.User) error {
	result := database.DB.Save(&user)
	return result.Error
}

// Delete removes a user from the database (soft delete)
func (r *UserRepository) Delete(id string) error {
	result := database.DB.Delete(&models.User{}, "id = ?", id)
	return result.Error
}

// FindWithPagination retrieves users with pagination and optional role filter
func (r *UserRepository) FindWithPagination(page, pageSize int, role string, search string) ([]models.User, int64, error) {
	var users []models.User
	var totalCount int64

	db := database.DB.Model(&models.User{})

	if role != "" {
		db = db.Where("role = ?", role)
	}

	if search != "" {
		searchPattern := "%" + search + "%"
		db = db.Where("(name ILIKE ? OR email ILIKE ?)", searchPattern, searchPattern)
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := db.Order("created_at desc").Limit(pageSize).Offset(offset).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, totalCount, nil
}
