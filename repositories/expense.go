package repositories

import (
	"github.com/ajshan23/alghazal-b-p/database"
	"github.com/ajshan23/alghazal-b-p/models"
)

// ExpenseRepository handles database operations for expenses
type ExpenseRepository struct{}

// NewExpenseRepository creates a new expense repository instance
func NewExpenseRepository() *ExpenseRepository {
	return &ExpenseRepository{}
}

// FindByID retrieves an expense by its ID
func (r *ExpenseRepository) FindByID(id string) (models.Expense, error) {
	var expense models.Expense
	result := database.DB.Preload("Project").Preload("Project.Client").Preload("CreatedBy").First(&expense, "id = ?", id)
	return expense, result.Error
}

// FindByProjectID retrieves all expenses for a project, newest first
func (r *ExpenseRepository) FindByProjectID(projectID string) ([]models.Expense, error) {
	var expenses []models.Expense
	result := database.DB.Where("project_id = ?", projectID).Order("created_at desc").Find(&expenses)
	return expenses, result.Error
}

// Create inserts a new expense into the database
func (r *ExpenseRepository) Create(expense models.Expense) (models.Expense, error) {
	result := database.DB.Create(&expense)
	return expense, result.Error
}

// Update modifies an existing expense
func (r *ExpenseRepository) Update(expense models.Expense) error {
	result := database.DB.Save(&expense)
	return result.Error
}

// Delete removes an expense from the database (soft delete)
func (r *ExpenseRepository) Delete(id string) error {
	result := database.DB.Delete(&models.Expense{}, "id = ?", id)
	return result.Error
}
