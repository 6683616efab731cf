package v1

import (
	"net/http"
	"strconv"

	"github.com/ajshan23/alghazal-b-p/dto"
	"github.com/ajshan23/alghazal-b-p/models"
	"github.com/ajshan23/alghazal-b-p/services"
	"github.com/gin-gonic/gin"
)

var (
	projectService = services.NewProjectService()
	laborService   = services.NewLaborService()
)

// ListProjects godoc
// @Summary List projects with pagination and filtering
// @Description Get projects filtered by status, client or search term
// @Tags projects
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Param status query string false "Filter by lifecycle status"
// @Param clientId query string false "Filter by client"
// @Param search query string false "Search term for name/project number"
// @Param sortBy query string false "Field to sort by (created_at, updated_at, name, project_number, status, progress)"
// @Param sortOrder query string false "Sort order (asc or desc)"
// @Success 200 {object} dto.ProjectListResponse
// @Router /projects [get]
func ListProjects(c *gin.Context) {
	// Parse query parameters
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil || pageSize < 1 {
		pageSize = 10
	}

	// Build filter
	filter := dto.ProjectFilter{
		Status:    c.Query("status"),
		ClientID:  c.Query("clientId"),
		Search:    c.Query("search"),
		SortBy:    c.DefaultQuery("sortBy", "created_at"),
		SortOrder: c.DefaultQuery("sortOrder", "desc"),
		Page:      page,
		PageSize:  pageSize,
	}

	response, err := projectService.ListProjects(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// CreateProject godoc
// @Summary Create a new project
// @Description Creates a project in draft status with a generated project number
// @Tags projects
// @Accept json
// @Produce json
// @Param request body dto.CreateProjectRequest true "Project details"
// @Success 201 {object} models.Project
// @Router /projects [post]
func CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest

	// Parse request body
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	project, err := projectService.CreateProject(req, actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   project,
	})
}

// GetProject retrieves a project with its client and team
func GetProject(c *gin.Context) {
	project, err := projectService.GetProjectDetail(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   project,
	})
}

// UpdateProject godoc
// @Summary Update project fields
// @Description Partial update; status and progress changes go through the same lifecycle rules as the dedicated endpoints
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param request body dto.UpdateProjectRequest true "Fields to update"
// @Success 200 {object} models.Project
// @Router /projects/{id} [patch]
func UpdateProject(c *gin.Context) {
	var req dto.UpdateProjectRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	project, err := projectService.UpdateProject(c.Param("id"), req, actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   project,
	})
}

// UpdateProjectStatus godoc
// @Summary Transition a project to a new lifecycle status
// @Description Applies an explicit status transition guarded by the lifecycle transition table
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param request body dto.UpdateStatusRequest true "Target status and optional comment"
// @Success 200 {object} models.Project
// @Router /projects/{id}/status [patch]
func UpdateProjectStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	project, err := projectService.TransitionStatus(
		c.Param("id"),
		models.ProjectStatus(req.Status),
		req.Comment,
		actorID(c),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   project,
	})
}

// UpdateProjectProgress godoc
// @Summary Report project progress
// @Description Updates the progress percentage; may auto-advance the lifecycle status
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param request body dto.UpdateProgressRequest true "Progress percentage 0-100"
// @Success 200 {object} models.Project
// @Router /projects/{id}/progress [post]
func UpdateProjectProgress(c *gin.Context) {
	var req dto.UpdateProgressRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	project, err := projectService.UpdateProgress(c.Param("id"), req.Progress, actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   project,
	})
}

// AssignProjectTeam godoc
// @Summary Assign the project team
// @Description Replaces the assigned workers and optionally sets the driver and engineer
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param request body dto.AssignTeamRequest true "Worker IDs, optional driver and engineer"
// @Success 200 {object} models.Project
// @Router /projects/{id}/team [post]
func AssignProjectTeam(c *gin.Context) {
	var req dto.AssignTeamRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	project, err := projectService.AssignTeam(c.Param("id"), req, actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   project,
	})
}

// GetProjectLabor godoc
// @Summary Compute labor cost details for a project
// @Description Aggregates attendance into per-person day counts and salary totals
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} models.LaborDetails
// @Router /projects/{id}/labor [get]
func GetProjectLabor(c *gin.Context) {
	labor, err := laborService.GetLaborDetails(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   labor,
	})
}

// AddProjectComment records a free-form note on a project
func AddProjectComment(c *gin.Context) {
	var req dto.AddCommentRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	comment, err := projectService.AddComment(c.Param("id"), req.Content, actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   comment,
	})
}

// GetProjectComments retrieves the notes and status-change audit trail
func GetProjectComments(c *gin.Context) {
	comments, err := projectService.GetComments(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   comments,
	})
}

// DeleteProject godoc
// @Summary Delete a draft project
// @Description Permanently removes a project; only allowed while in draft status
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} map[string]string
// @Router /projects/{id} [delete]
func DeleteProject(c *gin.Context) {
	if err := projectService.DeleteProject(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Project deleted successfully",
	})
}
