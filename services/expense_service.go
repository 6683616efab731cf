package services

import (
	"errors"

	"github.com/ajshan23/alghazal-b-p/apperrors"
	"github.com/ajshan23/alghazal-b-p/dto"
	"github.com/ajshan23/alghazal-b-p/models"
	"github.com/ajshan23/alghazal-b-p/repositories"
	"github.com/ajshan23/alghazal-b-p/utils"
	"gorm.io/gorm"
)

// ExpenseService handles business logic for project expenses. Labor
// figures are computed by the aggregator and frozen into the expense
// row; the snapshot never changes when the team is later reassigned.
type ExpenseService struct {
	expenseRepo *repositories.ExpenseRepository
	projectRepo *repositories.ProjectRepository
	labor       *LaborService
}

// NewExpenseService creates a new expense service instance
func NewExpenseService() *ExpenseService {
	return &ExpenseService{
		expenseRepo: repositories.NewExpenseRepository(),
		projectRepo: repositories.NewProjectRepository(),
		labor:       NewLaborService(),
	}
}

// CreateExpense creates an expense record for a project, freezing a fresh
// labor-cost snapshot at creation time
func (s *ExpenseService) CreateExpense(projectID string, req dto.CreateExpenseRequest, createdByID string) (models.Expense, error) {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Expense{}, apperrors.NotFoundf("project %s", projectID)
		}
		return models.Expense{}, err
	}

	materials, materialTotal, err := buildExpenseItems(req.Materials)
	if err != nil {
		return models.Expense{}, err
	}

	miscellaneous, miscTotal, err := buildExpenseItems(req.Miscellaneous)
	if err != nil {
		return models.Expense{}, err
	}

	labor, err := s.labor.GetLaborDetails(projectID)
	if err != nil {
		return models.Expense{}, err
	}

	expense := models.Expense{
		ProjectID:         projectID,
		Materials:         materials,
		TotalMaterialCost: materialTotal,
		Miscellaneous:     miscellaneous,
		TotalMiscCost:     miscTotal,
		Labor:             labor,
		TotalLaborCost:    labor.TotalLaborCost,
		GrandTotal:        materialTotal + miscTotal + labor.TotalLaborCost,
		CreatedByID:       createdByID,
	}

	return s.expenseRepo.Create(expense)
}

// UpdateExpense replaces the material and miscellaneous lines and
// re-freezes the labor snapshot from the current team and attendance
func (s *ExpenseService) UpdateExpense(expenseID string, req dto.CreateExpenseRequest) (models.Expense, error) {
	expense, err := s.GetExpense(expenseID)
	if err != nil {
		return models.Expense{}, err
	}

	materials, materialTotal, err := buildExpenseItems(req.Materials)
	if err != nil {
		return models.Expense{}, err
	}

	miscellaneous, miscTotal, err := buildExpenseItems(req.Miscellaneous)
	if err != nil {
		return models.Expense{}, err
	}

	labor, err := s.labor.GetLaborDetails(expense.ProjectID)
	if err != nil {
		return models.Expense{}, err
	}

	expense.Materials = materials
	expense.TotalMaterialCost = materialTotal
	expense.Miscellaneous = miscellaneous
	expense.TotalMiscCost = miscTotal
	expense.Labor = labor
	expense.TotalLaborCost = labor.TotalLaborCost
	expense.GrandTotal = materialTotal + miscTotal + labor.TotalLaborCost

	if err := s.expenseRepo.Update(expense); err != nil {
		return models.Expense{}, err
	}

	return expense, nil
}

// GetExpense retrieves an expense by ID
func (s *ExpenseService) GetExpense(expenseID string) (models.Expense, error) {
	expense, err := s.expenseRepo.FindByID(expenseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Expense{}, apperrors.NotFoundf("expense %s", expenseID)
		}
		return models.Expense{}, err
	}
	return expense, nil
}

// ListByProject retrieves all expenses for a project
func (s *ExpenseService) ListByProject(projectID string) ([]models.Expense, error) {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("project %s", projectID)
		}
		return nil, err
	}
	return s.expenseRepo.FindByProjectID(projectID)
}

// DeleteExpense removes an expense record
func (s *ExpenseService) DeleteExpense(expenseID string) error {
	if _, err := s.GetExpense(expenseID); err != nil {
		return err
	}
	return s.expenseRepo.Delete(expenseID)
}

// buildExpenseItems converts request lines into stored items and sums
// their amounts
func buildExpenseItems(items []dto.ExpenseItemRequest) (models.ExpenseItems, float64, error) {
	out := make(models.ExpenseItems, 0, len(items))
	var total float64
	for _, item := range items {
		date, err := utils.ParseDate(item.Date)
		if err != nil {
			return nil, 0, apperrors.Validationf("invalid item date %q, expected YYYY-MM-DD", item.Date)
		}
		out = append(out, models.ExpenseItem{
			Description: item.Description,
			Date:        date,
			Amount:      item.Amount,
		})
		total += item.Amount
	}
	return out, total, nil
}
