package repositories

import (
	"github.com/ajshan23/alghazal-b-p/database"
	"github.com/ajshan23/alghazal-b-p/models"
)

// CommentRepository handles database operations for project comments
type CommentRepository struct{}

// NewCommentRepository creates a new comment repository instance
func NewCommentRepository() *CommentRepository {
	return &CommentRepository{}
}

// Create inserts a new comment into the database
func (r *CommentRepository) Create(comment models.Comment) (models.Comment, error) {
	result := database.DB.Create(&comment)
	return comment, result.Error
}

// FindByProjectID retrieves all comments for a project, newest first
func (r *CommentRepository) FindByProjectID(projectID string) ([]models.Comment, error) {
	var comments []models.Comment
	result := database.DB.Preload("User").Where("project_id = ?", projectID).Order("created_at desc").Find(&comments)
	return comments, result.Error
}
