package v1

import (
	"net/http"

	"github.com/ajshan23/alghazal-b-p/services"
	"github.com/gin-gonic/gin"
)

var documentService = services.NewDocumentService()

// GetInvoicePDF godoc
// @Summary Download the project invoice as PDF
// @Description Renders the invoice from the latest quotation
// @Tags documents
// @Produce application/pdf
// @Param id path string true "Project ID"
// @Success 200 {file} binary
// @Router /projects/{id}/invoice.pdf [get]
func GetInvoicePDF(c *gin.Context) {
	pdf, filename, err := documentService.BuildInvoicePDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GetCompletionCertificatePDF godoc
// @Summary Download the work completion certificate as PDF
// @Tags documents
// @Produce application/pdf
// @Param id path string true "Project ID"
// @Success 200 {file} binary
// @Router /projects/{id}/completion-certificate.pdf [get]
func GetCompletionCertificatePDF(c *gin.Context) {
	pdf, filename, err := documentService.BuildCompletionCertificatePDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GetExpenseReportPDF godoc
// @Summary Download an expense report as PDF
// @Tags documents
// @Produce application/pdf
// @Param id path string true "Expense ID"
// @Success 200 {file} binary
// @Router /expenses/{id}/report.pdf [get]
func GetExpenseReportPDF(c *gin.Context) {
	pdf, filename, err := documentService.BuildExpenseReportPDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
