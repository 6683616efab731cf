package v1

import (
	"io"
	"net/http"

	"github.com/ajshan23/alghazal-b-p/dto"
	"github.com/ajshan23/alghazal-b-p/lib/objectstore"
	"github.com/ajshan23/alghazal-b-p/services"
	"github.com/gin-gonic/gin"
)

// WorkCompletionController handles work completion records and their
// site photos
type WorkCompletionController struct {
	completionService *services.WorkCompletionService
}

// NewWorkCompletionController creates a new work completion controller
// backed by the given object store
func NewWorkCompletionController(storage *objectstore.Client) *WorkCompletionController {
	return &WorkCompletionController{
		completionService: services.NewWorkCompletionService(storage),
	}
}

// RegisterRoutes registers work completion endpoints on the given router group
func (ctrl *WorkCompletionController) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/projects/:id/completion")
	{
		group.POST("", ctrl.CreateWorkCompletion)
		group.GET("", ctrl.GetWorkCompletion)
		group.POST("/photos", ctrl.AddSitePhoto)
	}
}

// CreateWorkCompletion godoc
// @Summary Record work completion for a project
// @Description Creates the completion record once the project has reached work_completed
// @Tags completion
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param request body dto.CreateWorkCompletionRequest true "Completion details"
// @Success 201 {object} models.WorkCompletion
// @Router /projects/{id}/completion [post]
func (ctrl *WorkCompletionController) CreateWorkCompletion(c *gin.Context) {
	var req dto.CreateWorkCompletionRequest

	// Parse request body
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	completion, err := ctrl.completionService.CreateWorkCompletion(c.Param("id"), req, actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   completion,
	})
}

// GetWorkCompletion retrieves the completion record for a project
func (ctrl *WorkCompletionController) GetWorkCompletion(c *gin.Context) {
	completion, err := ctrl.completionService.GetByProject(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   completion,
	})
}

// AddSitePhoto godoc
// @Summary Attach a site photo to the completion record
// @Description Stores the uploaded photo in object storage with an optional caption
// @Tags completion
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Project ID"
// @Param file formData file true "Site photo"
// @Param caption formData string false "Photo caption"
// @Success 200 {object} models.WorkCompletion
// @Router /projects/{id}/completion/photos [post]
func (ctrl *WorkCompletionController) AddSitePhoto(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "A file is required in the 'file' form field",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(c, err)
		return
	}

	completion, err := ctrl.completionService.AddSitePhoto(
		c.Request.Context(),
		c.Param("id"),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		c.PostForm("caption"),
		data,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   completion,
	})
}
