package v1

import (
	"net/http"

	"github.com/ajshan23/alghazal-b-p/dto"
	"github.com/ajshan23/alghazal-b-p/services"
	"github.com/gin-gonic/gin"
)

var expenseService = services.NewExpenseService()

// CreateProjectExpense godoc
// @Summary Create an expense record for a project
// @Description Records materials and miscellaneous items and freezes a labor cost snapshot
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param request body dto.CreateExpenseRequest true "Expense items"
// @Success 201 {object} models.Expense
// @Router /projects/{id}/expense [post]
func CreateProjectExpense(c *gin.Context) {
	var req dto.CreateExpenseRequest

	// Parse request body
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	expense, err := expenseService.CreateExpense(c.Param("id"), req, actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   expense,
	})
}

// ListProjectExpenses lists the expense records for a project
func ListProjectExpenses(c *gin.Context) {
	expenses, err := expenseService.ListByProject(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   expenses,
	})
}

// GetExpense retrieves a single expense record
func GetExpense(c *gin.Context) {
	expense, err := expenseService.GetExpense(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   expense,
	})
}

// UpdateExpense godoc
// @Summary Update an expense record
// @Description Replaces the expense items and re-freezes the labor snapshot from current attendance
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path string true "Expense ID"
// @Param request body dto.CreateExpenseRequest true "Expense items"
// @Success 200 {object} models.Expense
// @Router /expenses/{id} [put]
func UpdateExpense(c *gin.Context) {
	var req dto.CreateExpenseRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	expense, err := expenseService.UpdateExpense(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   expense,
	})
}

// DeleteExpense removes an expense record
func DeleteExpense(c *gin.Context) {
	if err := expenseService.DeleteExpense(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Expense deleted successfully",
	})
}
