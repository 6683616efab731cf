package v1

import (
	"io"
	"net/http"

	"github.com/ajshan23/alghazal-b-p/dto"
	"github.com/ajshan23/alghazal-b-p/lib/objectstore"
	"github.com/ajshan23/alghazal-b-p/services"
	"github.com/gin-gonic/gin"
)

// LPOController handles LPO endpoints, including the purchase order
// document upload
type LPOController struct {
	lpoService *services.LPOService
}

// NewLPOController creates a new LPO controller backed by the given
// object store
func NewLPOController(storage *objectstore.Client) *LPOController {
	return &LPOController{
		lpoService: services.NewLPOService(storage),
	}
}

// RegisterRoutes registers LPO endpoints on the given router group
func (ctrl *LPOController) RegisterRoutes(router *gin.RouterGroup) {
	lpoGroup := router.Group("/lpos")
	{
		lpoGroup.POST("", ctrl.CreateLPO)
		lpoGroup.GET("/:id", ctrl.GetLPO)
		lpoGroup.POST("/:id/document", ctrl.UploadDocument)
		lpoGroup.DELETE("/:id/document", ctrl.DeleteDocument)
	}
}

// CreateLPO godoc
// @Summary Record a received LPO
// @Description Registers a client purchase order against a project
// @Tags lpos
// @Accept json
// @Produce json
// @Param request body dto.CreateLPORequest true "LPO details"
// @Success 201 {object} models.LPO
// @Router /lpos [post]
func (ctrl *LPOController) CreateLPO(c *gin.Context) {
	var req dto.CreateLPORequest

	// Parse request body
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	lpo, err := ctrl.lpoService.CreateLPO(req, actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   lpo,
	})
}

// GetLPO retrieves an LPO by ID
func (ctrl *LPOController) GetLPO(c *gin.Context) {
	lpo, err := ctrl.lpoService.GetLPO(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   lpo,
	})
}

// ListProjectLPOs lists the LPOs recorded for a project
func (ctrl *LPOController) ListProjectLPOs(c *gin.Context) {
	lpos, err := ctrl.lpoService.ListByProject(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   lpos,
	})
}

// UploadDocument godoc
// @Summary Upload the scanned LPO document
// @Description Stores the uploaded file in object storage and attaches it to the LPO
// @Tags lpos
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "LPO ID"
// @Param file formData file true "Scanned document"
// @Success 200 {object} models.LPO
// @Router /lpos/{id}/document [post]
func (ctrl *LPOController) UploadDocument(c *gin.Context) {
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

	lpo, err := ctrl.lpoService.UploadDocument(
		c.Request.Context(),
		c.Param("id"),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		data,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   lpo,
	})
}

// DeleteDocument removes the stored document from an LPO
func (ctrl *LPOController) DeleteDocument(c *gin.Context) {
	lpo, err := ctrl.lpoService.DeleteDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   lpo,
	})
}
