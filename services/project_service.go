package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/ajshan23/alghazal-b-p/apperrors"
	"github.com/ajshan23/alghazal-b-p/dto"
	"github.com/ajshan23/alghazal-b-p/models"
	"github.com/ajshan23/alghazal-b-p/repositories"
	"github.com/ajshan23/alghazal-b-p/utils"
	"gorm.io/gorm"
)

// notifiableStatuses are the targets whose transitions are announced to
// stakeholders by email
var notifiableStatuses = map[models.ProjectStatus]bool{
	models.StatusQuotationSent:     true,
	models.StatusQuotationApproved: true,
	models.StatusLPOReceived:       true,
	models.StatusWorkStarted:       true,
	models.StatusWorkCompleted:     true,
	models.StatusClientHandover:    true,
	models.StatusFinalInvoiceSent:  true,
	models.StatusPaymentReceived:   true,
	models.StatusProjectClosed:     true,
	models.StatusCancelled:         true,
}

// ProjectService handles business logic for projects, including the
// lifecycle state machine
type ProjectService struct {
	projectRepo  *repositories.ProjectRepository
	userRepo     *repositories.UserRepository
	clientRepo   *repositories.ClientRepository
	commentRepo  *repositories.CommentRepository
	notification *NotificationService
}

// NewProjectService creates a new project service instance
func NewProjectService() *ProjectService {
	return &ProjectService{
		projectRepo:  repositories.NewProjectRepository(),
		userRepo:     repositories.NewUserRepository(),
		clientRepo:   repositories.NewClientRepository(),
		commentRepo:  repositories.NewCommentRepository(),
		notification: NewNotificationService(),
	}
}

// CreateProject creates a new project in draft status with progress 0
func (s *ProjectService) CreateProject(req dto.CreateProjectRequest, createdByID string) (models.Project, error) {
	// Client must exist
	if _, err := s.clientRepo.FindByID(req.ClientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Project{}, apperrors.NotFoundf("client %s", req.ClientID)
		}
		return models.Project{}, err
	}

	// Generate sequential business identifier
	year := time.Now().Year()
	count, err := s.projectRepo.CountByYear(year)
	if err != nil {
		return models.Project{}, err
	}

	project := models.Project{
		ProjectNumber: utils.SequentialNumber("PRJ", year, count+1),
		Name:          req.Name,
		Description:   req.Description,
		ClientID:      req.ClientID,
		Location:      req.Location,
		Building:      req.Building,
		Apartment:     req.Apartment,
		Status:        models.StatusDraft,
		Progress:      0,
		CreatedByID:   createdByID,
	}

	return s.projectRepo.Create(project)
}

// GetProjectDetail retrieves a project by ID with its team resolved
func (s *ProjectService) GetProjectDetail(projectID string) (models.Project, error) {
	project, err := s.projectRepo.WithTeam(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Project{}, apperrors.NotFoundf("project %s", projectID)
		}
		return models.Project{}, err
	}
	return project, nil
}

// ListProjects retrieves projects with pagination, filtering and sorting
func (s *ProjectService) ListProjects(filter dto.ProjectFilter) (dto.ProjectListResponse, error) {
	var response dto.ProjectListResponse

	// Set defaults if not provided
	if filter.Page <= 0 {
		filter.Page = 1
	}

	if filter.PageSize <= 0 {
		filter.PageSize = 10
	}

	if filter.SortBy == "" {
		filter.SortBy = "created_at"
	}

	if filter.SortOrder != "asc" && filter.SortOrder != "desc" {
		filter.SortOrder = "desc"
	}

	// Valid sort columns (whitelist approach for security)
	validSortColumns := map[string]bool{
		"created_at":     true,
		"updated_at":     true,
		"name":           true,
		"project_number": true,
		"status":         true,
		"progress":       true,
	}

	if !validSortColumns[filter.SortBy] {
		filter.SortBy = "created_at"
	}

	if filter.Status != "" && !models.ProjectStatus(filter.Status).IsValid() {
		return response, apperrors.Validationf("unknown status %q", filter.Status)
	}

	projects, totalCount, err := s.projectRepo.FindWithPagination(
		filter.Page,
		filter.PageSize,
		filter.SortBy,
		filter.SortOrder,
		filter.Status,
		filter.ClientID,
		filter.Search,
	)

	if err != nil {
		return response, err
	}

	// Calculate total pages
	totalPages := int(totalCount) / filter.PageSize
	if int(totalCount)%filter.PageSize > 0 {
		totalPages++
	}

	response = dto.ProjectListResponse{
		Projects:   projects,
		TotalCount: totalCount,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}

	return response, nil
}

// UpdateProject applies a generic update. Progress changes run their
// auto-transitions before the explicit status path, matching the
// dedicated endpoints.
func (s *ProjectService) UpdateProject(projectID string, req dto.UpdateProjectRequest, actorID string) (models.Project, error) {
	project, err := s.GetProjectDetail(projectID)
	if err != nil {
		return models.Project{}, err
	}

	fields := map[string]interface{}{}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.Description != "" {
		fields["description"] = req.Description
	}
	if req.Location != "" {
		fields["location"] = req.Location
	}
	if req.Building != "" {
		fields["building"] = req.Building
	}
	if req.Apartment != "" {
		fields["apartment"] = req.Apartment
	}

	if len(fields) > 0 {
		fields["updated_by_id"] = actorID
		if err := s.projectRepo.UpdateFields(projectID, fields); err != nil {
			return models.Project{}, err
		}
	}

	// Progress-driven auto-transitions run before the explicit status path
	if req.Progress != nil {
		if _, err := s.UpdateProgress(projectID, *req.Progress, actorID); err != nil {
			return models.Project{}, err
		}
		project, err = s.GetProjectDetail(projectID)
		if err != nil {
			return models.Project{}, err
		}
	}

	if req.Status != nil && models.ProjectStatus(*req.Status) != project.Status {
		if _, err := s.TransitionStatus(projectID, models.ProjectStatus(*req.Status), "", actorID); err != nil {
			return models.Project{}, err
		}
	}

	return s.GetProjectDetail(projectID)
}

// TransitionStatus applies an explicit status transition, guarded by the
// transition table. The row update is a compare-and-swap on (id, status)
// so two racing requests cannot both win.
func (s *ProjectService) TransitionStatus(projectID string, target models.ProjectStatus, comment string, actorID string) (models.Project, error) {
	if !target.IsValid() {
		return models.Project{}, apperrors.Validationf("unknown status %q", target)
	}

	project, err := s.GetProjectDetail(projectID)
	if err != nil {
		return models.Project{}, err
	}

	if !project.Status.CanTransitionTo(target) {
		return models.Project{}, &apperrors.InvalidTransitionError{
			From: string(project.Status),
			To:   string(target),
		}
	}

	rows, err := s.projectRepo.UpdateStatusIfCurrent(projectID, project.Status, target, actorID)
	if err != nil {
		return models.Project{}, err
	}
	if rows == 0 {
		// Another request moved the project first
		return models.Project{}, fmt.Errorf("%w: project %s status changed concurrently", apperrors.ErrConflict, projectID)
	}

	s.recordTransition(project, project.Status, target, comment, actorID)

	updated, err := s.GetProjectDetail(projectID)
	if err != nil {
		return models.Project{}, err
	}

	if notifiableStatuses[target] {
		s.notification.NotifyStatusChange(updated, project.Status, target)
	}

	return updated, nil
}

// resolveProgressStatus returns the status a project should auto-advance
// to for the given progress value, bypassing the transition table:
//   - progress of exactly 100 forces work_completed from any status
//   - team_assigned advances to work_started on any progress report
//   - work_started advances to in_progress once progress is above zero
func resolveProgressStatus(current models.ProjectStatus, progress int) (models.ProjectStatus, bool) {
	if progress == 100 && current != models.StatusWorkCompleted {
		return models.StatusWorkCompleted, true
	}
	if current == models.StatusTeamAssigned && progress >= 0 && progress < 100 {
		return models.StatusWorkStarted, true
	}
	if current == models.StatusWorkStarted && progress > 0 && progress < 100 {
		return models.StatusInProgress, true
	}
	return current, false
}

// UpdateProgress updates the progress value and applies the
// progress-driven auto-transitions
func (s *ProjectService) UpdateProgress(projectID string, progress int, actorID string) (models.Project, error) {
	if progress < 0 || progress > 100 {
		return models.Project{}, apperrors.Validationf("progress must be between 0 and 100, got %d", progress)
	}

	project, err := s.GetProjectDetail(projectID)
	if err != nil {
		return models.Project{}, err
	}

	fields := map[string]interface{}{
		"progress":      progress,
		"updated_by_id": actorID,
	}

	newStatus, changed := resolveProgressStatus(project.Status, progress)
	if changed {
		fields["status"] = newStatus
	}

	if err := s.projectRepo.UpdateFields(projectID, fields); err != nil {
		return models.Project{}, err
	}

	updated, err := s.GetProjectDetail(projectID)
	if err != nil {
		return models.Project{}, err
	}

	if changed {
		s.recordTransition(project, project.Status, newStatus,
			fmt.Sprintf("Auto-transition at progress %d%%", progress), actorID)
		if notifiableStatuses[newStatus] {
			s.notification.NotifyStatusChange(updated, project.Status, newStatus)
		}
	}

	return updated, nil
}

// AssignTeam assigns workers, and optionally a driver and engineer, to a
// project. Allowed once the LPO is in hand; assigning from lpo_received
// moves the project to team_assigned.
func (s *ProjectService) AssignTeam(projectID string, req dto.AssignTeamRequest, actorID string) (models.Project, error) {
	project, err := s.GetProjectDetail(projectID)
	if err != nil {
		return models.Project{}, err
	}

	if project.Status != models.StatusLPOReceived && project.Status != models.StatusTeamAssigned {
		return models.Project{}, apperrors.PreconditionFailedf(
			"team can only be assigned after LPO is received, current status is %s", project.Status)
	}

	workers, err := s.userRepo.FindByIDs(req.WorkerIDs)
	if err != nil {
		return models.Project{}, err
	}
	if len(workers) != len(req.WorkerIDs) {
		return models.Project{}, apperrors.NotFoundf("one or more workers not found")
	}
	for _, worker := range workers {
		if worker.Role != models.RoleWorker {
			return models.Project{}, apperrors.Validationf("user %s is not a worker", worker.ID)
		}
	}

	if req.DriverID != nil {
		driver, err := s.userRepo.FindByID(*req.DriverID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.Project{}, apperrors.NotFoundf("driver %s", *req.DriverID)
			}
			return models.Project{}, err
		}
		if driver.Role != models.RoleDriver {
			return models.Project{}, apperrors.Validationf("user %s is not a driver", driver.ID)
		}
	}

	if req.EngineerID != nil {
		engineer, err := s.userRepo.FindByID(*req.EngineerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.Project{}, apperrors.NotFoundf("engineer %s", *req.EngineerID)
			}
			return models.Project{}, err
		}
		if engineer.Role != models.RoleEngineer {
			return models.Project{}, apperrors.Validationf("user %s is not an engineer", engineer.ID)
		}
	}

	if err := s.projectRepo.ReplaceWorkers(project, workers); err != nil {
		return models.Project{}, err
	}

	fields := map[string]interface{}{
		"assigned_driver_id": req.DriverID,
		"updated_by_id":      actorID,
	}
	if req.EngineerID != nil {
		fields["assigned_engineer_id"] = req.EngineerID
	}
	if err := s.projectRepo.UpdateFields(projectID, fields); err != nil {
		return models.Project{}, err
	}

	if project.Status == models.StatusLPOReceived {
		return s.TransitionStatus(projectID, models.StatusTeamAssigned, "Team assigned", actorID)
	}

	updated, err := s.GetProjectDetail(projectID)
	if err != nil {
		return models.Project{}, err
	}

	s.notification.NotifyTeamAssigned(updated, workers)

	return updated, nil
}

// DeleteProject permanently removes a project. Only draft projects may be
// deleted; anything further along the lifecycle is retained.
func (s *ProjectService) DeleteProject(projectID string) error {
	project, err := s.GetProjectDetail(projectID)
	if err != nil {
		return err
	}

	if project.Status != models.StatusDraft {
		return apperrors.PreconditionFailedf(
			"only draft projects can be deleted, current status is %s", project.Status)
	}

	return s.projectRepo.HardDelete(projectID)
}

// AddComment records a free-form note on a project
func (s *ProjectService) AddComment(projectID, content, actorID string) (models.Comment, error) {
	if _, err := s.GetProjectDetail(projectID); err != nil {
		return models.Comment{}, err
	}

	return s.commentRepo.Create(models.Comment{
		ProjectID: projectID,
		UserID:    actorID,
		Content:   content,
	})
}

// GetComments retrieves the audit trail and notes for a project
func (s *ProjectService) GetComments(projectID string) ([]models.Comment, error) {
	if _, err := s.GetProjectDetail(projectID); err != nil {
		return nil, err
	}
	return s.commentRepo.FindByProjectID(projectID)
}

// recordTransition writes the audit comment for a status change. Failure
// is logged inside the repository layer's error path but never blocks the
// transition itself.
func (s *ProjectService) recordTransition(project models.Project, from, to models.ProjectStatus, comment, actorID string) {
	content := fmt.Sprintf("Status changed from %s to %s", from, to)
	if comment != "" {
		content = content + ": " + comment
	}
	if _, err := s.commentRepo.Create(models.Comment{
		ProjectID:  project.ID,
		UserID:     actorID,
		Content:    content,
		ActionType: "status_change",
	}); err != nil {
		// Audit comment is a secondary effect; the transition stands
		log.Printf("Warning: failed to record transition comment for project %s: %v", project.ID, err)
	}
}
