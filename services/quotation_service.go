package services

import (
	"errors"
	"time"

	"github.com/ajshan23/alghazal-b-p/apperrors"
	"github.com/ajshan23/alghazal-b-p/dto"
	"github.com/ajshan23/alghazal-b-p/models"
	"github.com/ajshan23/alghazal-b-p/repositories"
	"github.com/ajshan23/alghazal-b-p/utils"
	"gorm.io/gorm"
)

// QuotationService handles business logic for quotations
type QuotationService struct {
	quotationRepo *repositories.QuotationRepository
	projectRepo   *repositories.ProjectRepository
	project       *ProjectService
}

// NewQuotationService creates a new quotation service instance
func NewQuotationService() *QuotationService {
	return &QuotationService{
		quotationRepo: repositories.NewQuotationRepository(),
		projectRepo:   repositories.NewProjectRepository(),
		project:       NewProjectService(),
	}
}

// CreateQuotation prices a project's scope and stores the quotation with
// computed totals
func (s *QuotationService) CreateQuotation(req dto.CreateQuotationRequest, preparedByID string) (models.Quotation, error) {
	if _, err := s.projectRepo.FindByID(req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Quotation{}, apperrors.NotFoundf("project %s", req.ProjectID)
		}
		return models.Quotation{}, err
	}

	items := make(models.QuotationItems, 0, len(req.Items))
	var subtotal float64
	for _, item := range req.Items {
		lineTotal := item.Quantity * item.UnitPrice
		items = append(items, models.QuotationItem{
			Description: item.Description,
			UOM:         item.UOM,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       lineTotal,
		})
		subtotal += lineTotal
	}

	vatAmount := subtotal * req.VATPercent / 100

	var validUntil *time.Time
	if req.ValidUntil != "" {
		parsed, err := utils.ParseDate(req.ValidUntil)
		if err != nil {
			return models.Quotation{}, apperrors.Validationf("invalid validUntil date %q", req.ValidUntil)
		}
		validUntil = &parsed
	}

	year := time.Now().Year()
	count, err := s.quotationRepo.CountByYear(year)
	if err != nil {
		return models.Quotation{}, err
	}

	quotation := models.Quotation{
		QuotationNumber: utils.SequentialNumber("QTN", year, count+1),
		ProjectID:       req.ProjectID,
		Items:           items,
		Subtotal:        subtotal,
		VATPercent:      req.VATPercent,
		VATAmount:       vatAmount,
		NetAmount:       subtotal + vatAmount,
		ValidUntil:      validUntil,
		ScopeOfWork:     req.ScopeOfWork,
		PreparedByID:    preparedByID,
	}

	return s.quotationRepo.Create(quotation)
}

// GetQuotation retrieves a quotation by ID
func (s *QuotationService) GetQuotation(quotationID string) (models.Quotation, error) {
	quotation, err := s.quotationRepo.FindByID(quotationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Quotation{}, apperrors.NotFoundf("quotation %s", quotationID)
		}
		return models.Quotation{}, err
	}
	return quotation, nil
}

// ListByProject retrieves all quotations for a project
func (s *QuotationService) ListByProject(projectID string) ([]models.Quotation, error) {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("project %s", projectID)
		}
		return nil, err
	}
	return s.quotationRepo.FindByProjectID(projectID)
}

// ApproveQuotation marks a quotation approved and moves its project from
// quotation_sent to quotation_approved through the state machine
func (s *QuotationService) ApproveQuotation(quotationID, actorID string) (models.Quotation, error) {
	quotation, err := s.GetQuotation(quotationID)
	if err != nil {
		return models.Quotation{}, err
	}

	if quotation.Approved {
		return quotation, nil
	}

	if _, err := s.project.TransitionStatus(quotation.ProjectID, models.StatusQuotationApproved,
		"Quotation "+quotation.QuotationNumber+" approved", actorID); err != nil {
		return models.Quotation{}, err
	}

	quotation.Approved = true
	if err := s.quotationRepo.Update(quotation); err != nil {
		return models.Quotation{}, err
	}

	return quotation, nil
}

// DeleteQuotation removes a quotation that has not been approved
func (s *QuotationService) DeleteQuotation(quotationID string) error {
	quotation, err := s.GetQuotation(quotationID)
	if err != nil {
		return err
	}
	if quotation.Approved {
		return apperrors.PreconditionFailedf("approved quotations cannot be deleted")
	}
	return s.quotationRepo.Delete(quotationID)
}
