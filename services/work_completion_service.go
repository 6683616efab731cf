package services

import (
	"context"
	"errors"
	"time"

	"github.com/ajshan23/alghazal-b-p/apperrors"
	"github.com/ajshan23/alghazal-b-p/dto"
	"github.com/ajshan23/alghazal-b-p/lib/objectstore"
	"github.com/ajshan23/alghazal-b-p/models"
	"github.com/ajshan23/alghazal-b-p/repositories"
	"github.com/ajshan23/alghazal-b-p/utils"
	"gorm.io/gorm"
)

// completionEligibleStatuses are the statuses from which work completion
// can be recorded
var completionEligibleStatuses = map[models.ProjectStatus]bool{
	models.StatusWorkCompleted:    true,
	models.StatusQualityCheck:     true,
	models.StatusClientHandover:   true,
	models.StatusFinalInvoiceSent: true,
	models.StatusPaymentReceived:  true,
	models.StatusProjectClosed:    true,
}

// WorkCompletionService handles business logic for completion records and
// their site photos
type WorkCompletionService struct {
	completionRepo *repositories.WorkCompletionRepository
	projectRepo    *repositories.ProjectRepository
	storage        *objectstore.Client
}

// NewWorkCompletionService creates a new work completion service instance
func NewWorkCompletionService(storage *objectstore.Client) *WorkCompletionService {
	return &WorkCompletionService{
		completionRepo: repositories.NewWorkCompletionRepository(),
		projectRepo:    repositories.NewProjectRepository(),
		storage:        storage,
	}
}

// CreateWorkCompletion records handover details once site work finishes
func (s *WorkCompletionService) CreateWorkCompletion(projectID string, req dto.CreateWorkCompletionRequest, preparedByID string) (models.WorkCompletion, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.WorkCompletion{}, apperrors.NotFoundf("project %s", projectID)
		}
		return models.WorkCompletion{}, err
	}

	if !completionEligibleStatuses[project.Status] {
		return models.WorkCompletion{}, apperrors.PreconditionFailedf(
			"work completion requires the project to have completed work, current status is %s", project.Status)
	}

	completionDate, err := utils.ParseDate(req.CompletionDate)
	if err != nil {
		return models.WorkCompletion{}, apperrors.Validationf("invalid completionDate %q", req.CompletionDate)
	}

	var handoverDate *time.Time
	if req.HandoverDate != "" {
		parsed, err := utils.ParseDate(req.HandoverDate)
		if err != nil {
			return models.WorkCompletion{}, apperrors.Validationf("invalid handoverDate %q", req.HandoverDate)
		}
		handoverDate = &parsed
	}

	completion := models.WorkCompletion{
		ProjectID:       projectID,
		CompletionDate:  completionDate,
		HandoverDate:    handoverDate,
		AcceptanceNotes: req.AcceptanceNotes,
		SitePhotos:      models.SitePhotos{},
		PreparedByID:    preparedByID,
	}

	return s.completionRepo.Create(completion)
}

// GetByProject retrieves the completion record for a project
func (s *WorkCompletionService) GetByProject(projectID string) (models.WorkCompletion, error) {
	completion, err := s.completionRepo.FindByProjectID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.WorkCompletion{}, apperrors.NotFoundf("work completion for project %s", projectID)
		}
		return models.WorkCompletion{}, err
	}
	return completion, nil
}

// AddSitePhoto uploads a site photo to object storage and attaches it to
// the completion record
func (s *WorkCompletionService) AddSitePhoto(ctx context.Context, projectID, filename, contentType, caption string, data []byte) (models.WorkCompletion, error) {
	completion, err := s.GetByProject(projectID)
	if err != nil {
		return models.WorkCompletion{}, err
	}

	result, err := s.storage.Upload(ctx, "site-photos", filename, contentType, data)
	if err != nil {
		return models.WorkCompletion{}, apperrors.Upstreamf("photo upload failed: %v", err)
	}

	completion.SitePhotos = append(completion.SitePhotos, models.SitePhoto{
		URL:     result.URL,
		Key:     result.Key,
		Caption: caption,
	})

	if err := s.completionRepo.Update(completion); err != nil {
		return models.WorkCompletion{}, err
	}

	return completion, nil
}
