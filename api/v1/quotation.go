package v1

import (
	"net/http"

	"github.com/ajshan23/alghazal-b-p/dto"
	"github.com/ajshan23/alghazal-b-p/services"
	"github.com/gin-gonic/gin"
)

var quotationService = services.NewQuotationService()

// CreateQuotation godoc
// @Summary Create a quotation for a project
// @Description Computes line totals, VAT and net amount and assigns a quotation number
// @Tags quotations
// @Accept json
// @Produce json
// @Param request body dto.CreateQuotationRequest true "Quotation details"
// @Success 201 {object} models.Quotation
// @Router /quotations [post]
func CreateQuotation(c *gin.Context) {
	var req dto.CreateQuotationRequest

	// Parse request body
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	quotation, err := quotationService.CreateQuotation(req, actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   quotation,
	})
}

// GetQuotation retrieves a quotation by ID
func GetQuotation(c *gin.Context) {
	quotation, err := quotationService.GetQuotation(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   quotation,
	})
}

// ListProjectQuotations lists all quotations raised for a project
func ListProjectQuotations(c *gin.Context) {
	quotations, err := quotationService.ListByProject(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   quotations,
	})
}

// ApproveQuotation godoc
// @Summary Approve a quotation
// @Description Marks the quotation approved and advances the project to quotation_approved
// @Tags quotations
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {object} models.Quotation
// @Router /quotations/{id}/approve [patch]
func ApproveQuotation(c *gin.Context) {
	quotation, err := quotationService.ApproveQuotation(c.Param("id"), actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   quotation,
	})
}

// DeleteQuotation removes an unapproved quotation
func DeleteQuotation(c *gin.Context) {
	if err := quotationService.DeleteQuotation(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Quotation deleted successfully",
	})
}
