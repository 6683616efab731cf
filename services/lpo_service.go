package services

import (
	"context"
	"errors"
	"log"

	"github.com/ajshan23/alghazal-b-p/apperrors"
	"github.com/ajshan23/alghazal-b-p/dto"
	"github.com/ajshan23/alghazal-b-p/lib/objectstore"
	"github.com/ajshan23/alghazal-b-p/models"
	"github.com/ajshan23/alghazal-b-p/repositories"
	"github.com/ajshan23/alghazal-b-p/utils"
	"gorm.io/gorm"
)

// LPOService handles business logic for local purchase orders, including
// the scanned document upload to object storage
type LPOService struct {
	lpoRepo     *repositories.LPORepository
	projectRepo *repositories.ProjectRepository
	storage     *objectstore.Client
}

// NewLPOService creates a new LPO service instance
func NewLPOService(storage *objectstore.Client) *LPOService {
	return &LPOService{
		lpoRepo:     repositories.NewLPORepository(),
		projectRepo: repositories.NewProjectRepository(),
		storage:     storage,
	}
}

// CreateLPO records a client-issued purchase order for a project
func (s *LPOService) CreateLPO(req dto.CreateLPORequest, createdByID string) (models.LPO, error) {
	if _, err := s.projectRepo.FindByID(req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.LPO{}, apperrors.NotFoundf("project %s", req.ProjectID)
		}
		return models.LPO{}, err
	}

	lpoDate, err := utils.ParseDate(req.LPODate)
	if err != nil {
		return models.LPO{}, apperrors.Validationf("invalid lpoDate %q, expected YYYY-MM-DD", req.LPODate)
	}

	lpo := models.LPO{
		LPONumber:   req.LPONumber,
		ProjectID:   req.ProjectID,
		LPODate:     lpoDate,
		Supplier:    req.Supplier,
		Amount:      req.Amount,
		CreatedByID: createdByID,
	}

	return s.lpoRepo.Create(lpo)
}

// GetLPO retrieves an LPO by ID
func (s *LPOService) GetLPO(lpoID string) (models.LPO, error) {
	lpo, err := s.lpoRepo.FindByID(lpoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.LPO{}, apperrors.NotFoundf("LPO %s", lpoID)
		}
		return models.LPO{}, err
	}
	return lpo, nil
}

// ListByProject retrieves all LPOs for a project
func (s *LPOService) ListByProject(projectID string) ([]models.LPO, error) {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("project %s", projectID)
		}
		return nil, err
	}
	return s.lpoRepo.FindByProjectID(projectID)
}

// UploadDocument stores the scanned LPO in object storage and records its
// URL and key. An upload failure surfaces immediately; there is no retry.
func (s *LPOService) UploadDocument(ctx context.Context, lpoID, filename, contentType string, data []byte) (models.LPO, error) {
	lpo, err := s.GetLPO(lpoID)
	if err != nil {
		return models.LPO{}, err
	}

	result, err := s.storage.Upload(ctx, "lpo-documents", filename, contentType, data)
	if err != nil {
		return models.LPO{}, apperrors.Upstreamf("document upload failed: %v", err)
	}

	// Replace a previously uploaded scan; an orphaned old object is logged
	// and cleaned up out of band
	if lpo.DocumentKey != "" {
		if err := s.storage.Delete(ctx, lpo.DocumentKey); err != nil {
			log.Printf("Warning: failed to delete old LPO document %s: %v", lpo.DocumentKey, err)
		}
	}

	lpo.DocumentURL = result.URL
	lpo.DocumentKey = result.Key
	if err := s.lpoRepo.Update(lpo); err != nil {
		return models.LPO{}, err
	}

	return lpo, nil
}

// DeleteDocument removes the uploaded scan from object storage
func (s *LPOService) DeleteDocument(ctx context.Context, lpoID string) (models.LPO, error) {
	lpo, err := s.GetLPO(lpoID)
	if err != nil {
		return models.LPO{}, err
	}

	if lpo.DocumentKey == "" {
		return models.LPO{}, apperrors.NotFoundf("LPO %s has no document", lpoID)
	}

	if err := s.storage.Delete(ctx, lpo.DocumentKey); err != nil {
		return models.LPO{}, apperrors.Upstreamf("document delete failed: %v", err)
	}

	lpo.DocumentURL = ""
	lpo.DocumentKey = ""
	if err := s.lpoRepo.Update(lpo); err != nil {
		return models.LPO{}, err
	}

	return lpo, nil
}
