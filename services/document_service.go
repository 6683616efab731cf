package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ajshan23/alghazal-b-p/apperrors"
	"github.com/ajshan23/alghazal-b-p/lib/pdfrender"
	"github.com/ajshan23/alghazal-b-p/models"
	"github.com/ajshan23/alghazal-b-p/repositories"
	"github.com/ajshan23/alghazal-b-p/templates"
	"github.com/ajshan23/alghazal-b-p/utils"
	"gorm.io/gorm"
)

// DocumentService renders the printable documents: tax invoice,
// completion certificate and expense report. Templates are pure
// presentation; figures arrive already computed.
type DocumentService struct {
	projectRepo    *repositories.ProjectRepository
	quotationRepo  *repositories.QuotationRepository
	completionRepo *repositories.WorkCompletionRepository
	expense        *ExpenseService
}

// NewDocumentService creates a new document service instance
func NewDocumentService() *DocumentService {
	return &DocumentService{
		projectRepo:    repositories.NewProjectRepository(),
		quotationRepo:  repositories.NewQuotationRepository(),
		completionRepo: repositories.NewWorkCompletionRepository(),
		expense:        NewExpenseService(),
	}
}

type invoiceData struct {
	InvoiceNumber string
	Date          time.Time
	Project       models.Project
	Client        models.Client
	Items         models.QuotationItems
	Subtotal      float64
	VATPercent    float64
	VATAmount     float64
	NetAmount     float64
}

// BuildInvoicePDF renders the final invoice for a project from its latest
// quotation
func (s *DocumentService) BuildInvoicePDF(ctx context.Context, projectID string) ([]byte, string, error) {
	project, err := s.projectRepo.WithTeam(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.NotFoundf("project %s", projectID)
		}
		return nil, "", err
	}

	quotation, err := s.quotationRepo.LatestByProjectID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.PreconditionFailedf("project %s has no quotation to invoice", projectID)
		}
		return nil, "", err
	}

	data := invoiceData{
		InvoiceNumber: fmt.Sprintf("INV-%s-%s", project.ProjectNumber, utils.GenerateShortID()),
		Date:          time.Now(),
		Project:       project,
		Client:        project.Client,
		Items:         quotation.Items,
		Subtotal:      quotation.Subtotal,
		VATPercent:    quotation.VATPercent,
		VATAmount:     quotation.VATAmount,
		NetAmount:     quotation.NetAmount,
	}

	return s.render(ctx, "invoice.html", data, data.InvoiceNumber+".pdf")
}

type certificateData struct {
	Project    models.Project
	Client     models.Client
	Completion models.WorkCompletion
	PreparedBy models.User
}

// BuildCompletionCertificatePDF renders the work completion certificate
func (s *DocumentService) BuildCompletionCertificatePDF(ctx context.Context, projectID string) ([]byte, string, error) {
	project, err := s.projectRepo.WithTeam(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.NotFoundf("project %s", projectID)
		}
		return nil, "", err
	}

	completion, err := s.completionRepo.FindByProjectID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.PreconditionFailedf("project %s has no work completion record", projectID)
		}
		return nil, "", err
	}

	data := certificateData{
		Project:    project,
		Client:     project.Client,
		Completion: completion,
		PreparedBy: completion.PreparedBy,
	}

	filename := fmt.Sprintf("completion-%s.pdf", project.ProjectNumber)
	return s.render(ctx, "completion_certificate.html", data, filename)
}

type expenseReportData struct {
	Project models.Project
	Client  models.Client
	Expense models.Expense
}

// BuildExpenseReportPDF renders the expense report for one expense record
func (s *DocumentService) BuildExpenseReportPDF(ctx context.Context, expenseID string) ([]byte, string, error) {
	expense, err := s.expense.GetExpense(expenseID)
	if err != nil {
		return nil, "", err
	}

	data := expenseReportData{
		Project: expense.Project,
		Client:  expense.Project.Client,
		Expense: expense,
	}

	filename := fmt.Sprintf("expenses-%s.pdf", expense.Project.ProjectNumber)
	return s.render(ctx, "expense_report.html", data, filename)
}

func (s *DocumentService) render(ctx context.Context, templateName string, data interface{}, filename string) ([]byte, string, error) {
	html, err := templates.Render(templateName, data)
	if err != nil {
		return nil, "", err
	}

	pdf, err := pdfrender.RenderHTML(ctx, html)
	if err != nil {
		return nil, "", apperrors.Upstreamf("PDF rendering failed: %v", err)
	}

	return pdf, filename, nil
}
