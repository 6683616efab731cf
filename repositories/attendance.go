package repositories

import (
	"time"

	"github.com/ajshan23/alghazal-b-p/database"
	"github.com/ajshan23/alghazal-b-p/models"
)

// AttendanceRepository handles database operations for attendance records
type AttendanceRepository struct{}

// NewAttendanceRepository creates a new attendance repository instance
func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{}
}

// Create inserts a new attendance record
func (r *AttendanceRepository) Create(attendance models.Attendance) (models.Attendance, error) {
	result := database.DB.Create(&attendance)
	return attendance, result.Error
}

// ExistsForProjectUserDate checks the (project, user, date) uniqueness
// invariant for project attendance
func (r *AttendanceRepository) ExistsForProjectUserDate(projectID, userID string, date time.Time) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Attendance{}).
		Where("project_id = ? AND user_id = ? AND date = ? AND type = ?",
			projectID, userID, date.Format("2006-01-02"), models.AttendanceTypeProject).
		Count(&count).Error
	return count > 0, err
}

// FindPresentByProject retrieves every present=true project attendance row
// for a project. The labor aggregator re-derives totals from these raw
// records on every call.
func (r *AttendanceRepository) FindPresentByProject(projectID string) ([]models.Attendance, error) {
	var records []models.Attendance
	result := database.DB.
		Where("project_id = ? AND present = ? AND type = ?", projectID, true, models.AttendanceTypeProject).
		Find(&records)
	return records, result.Error
}

// FindWithFilters retrieves attendance records with optional filters and pagination
func (r *AttendanceRepository) FindWithFilters(
	page, pageSize int,
	projectID, userID string,
	attendanceType string,
	from, to *time.Time) ([]models.Attendance, int64, error) {

	var records []models.Attendance
	var totalCount int64

	db := database.DB.Model(&models.Attendance{})

	if projectID != "" {
		db = db.Where("project_id = ?", projectID)
	}

	if userID != "" {
		db = db.Where("user_id = ?", userID)
	}

	if attendanceType != "" {
		db = db.Where("type = ?", attendanceType)
	}

	if from != nil {
		db = db.Where("date >= ?", from.Format("2006-01-02"))
	}

	if to != nil {
		db = db.Where("date <= ?", to.Format("2006-01-02"))
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := db.Preload("User").Order("date desc").Limit(pageSize).Offset(offset).Find(&records).Error; err != nil {
		return nil, 0, err
	}

	return records, totalCount, nil
}
