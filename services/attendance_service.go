package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/ajshan23/alghazal-b-p/apperrors"
	"github.com/ajshan23/alghazal-b-p/dto"
	"github.com/ajshan23/alghazal-b-p/models"
	"github.com/ajshan23/alghazal-b-p/repositories"
	"github.com/ajshan23/alghazal-b-p/utils"
	"gorm.io/gorm"
)

// AttendanceService handles business logic for attendance marking
type AttendanceService struct {
	attendanceRepo *repositories.AttendanceRepository
	projectRepo    *repositories.ProjectRepository
	userRepo       *repositories.UserRepository
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService() *AttendanceService {
	return &AttendanceService{
		attendanceRepo: repositories.NewAttendanceRepository(),
		projectRepo:    repositories.NewProjectRepository(),
		userRepo:       repositories.NewUserRepository(),
	}
}

// MarkAttendance records a per-user, per-day presence flag. Project
// attendance enforces the (project, user, date) uniqueness invariant;
// records are immutable once created.
func (s *AttendanceService) MarkAttendance(req dto.MarkAttendanceRequest, markedByID string) (models.Attendance, error) {
	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return models.Attendance{}, apperrors.Validationf("invalid date %q, expected YYYY-MM-DD", req.Date)
	}

	attendanceType := models.AttendanceType(req.Type)

	if attendanceType == models.AttendanceTypeProject {
		if req.ProjectID == nil || *req.ProjectID == "" {
			return models.Attendance{}, apperrors.Validationf("projectId is required for project attendance")
		}
	} else if req.ProjectID != nil {
		return models.Attendance{}, apperrors.Validationf("projectId must not be set for normal attendance")
	}

	if _, err := s.userRepo.FindByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Attendance{}, apperrors.NotFoundf("user %s", req.UserID)
		}
		return models.Attendance{}, err
	}

	if attendanceType == models.AttendanceTypeProject {
		if _, err := s.projectRepo.FindByID(*req.ProjectID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.Attendance{}, apperrors.NotFoundf("project %s", *req.ProjectID)
			}
			return models.Attendance{}, err
		}

		exists, err := s.attendanceRepo.ExistsForProjectUserDate(*req.ProjectID, req.UserID, date)
		if err != nil {
			return models.Attendance{}, err
		}
		if exists {
			return models.Attendance{}, fmt.Errorf("%w: attendance already marked for this project, user and date", apperrors.ErrConflict)
		}
	}

	attendance := models.Attendance{
		ProjectID:  req.ProjectID,
		UserID:     req.UserID,
		Date:       date,
		Present:    req.Present,
		MarkedByID: markedByID,
		Type:       attendanceType,
	}

	return s.attendanceRepo.Create(attendance)
}

// ListAttendance retrieves attendance records with filters and pagination
func (s *AttendanceService) ListAttendance(filter dto.AttendanceFilter) (dto.AttendanceListResponse, error) {
	var response dto.AttendanceListResponse

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	var from, to *time.Time
	if filter.From != "" {
		parsed, err := utils.ParseDate(filter.From)
		if err != nil {
			return response, apperrors.Validationf("invalid from date %q", filter.From)
		}
		from = &parsed
	}
	if filter.To != "" {
		parsed, err := utils.ParseDate(filter.To)
		if err != nil {
			return response, apperrors.Validationf("invalid to date %q", filter.To)
		}
		to = &parsed
	}

	records, totalCount, err := s.attendanceRepo.FindWithFilters(
		filter.Page, filter.PageSize,
		filter.ProjectID, filter.UserID, filter.Type,
		from, to,
	)
	if err != nil {
		return response, err
	}

	totalPages := int(totalCount) / filter.PageSize
	if int(totalCount)%filter.PageSize > 0 {
		totalPages++
	}

	response = dto.AttendanceListResponse{
		Records:    records,
		TotalCount: totalCount,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}

	return response, nil
}
