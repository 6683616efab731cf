package v1

import (
	"net/http"
	"strconv"

	"github.com/ajshan23/alghazal-b-p/dto"
	"github.com/gin-gonic/gin"
)

// ListUsers godoc
// @Summary List staff with pagination and filtering
// @Description Get all users, optionally filtered by role or search term
// @Tags users
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Param role query string false "Filter by role"
// @Param search query string false "Search term for name/email"
// @Success 200 {object} dto.UserListResponse
// @Router /users [get]
func ListUsers(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil || pageSize < 1 {
		pageSize = 10
	}

	response, err := userService.ListUsers(page, pageSize, c.Query("role"), c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// CreateUser godoc
// @Summary Create a staff member
// @Description Creates a user with a role; generates a password and emails credentials when none is supplied
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "User details"
// @Success 201 {object} models.User
// @Router /users [post]
func CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest

	// Parse request body
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user, err := userService.CreateUser(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   user,
	})
}

// GetUser retrieves a single user by ID
func GetUser(c *gin.Context) {
	user, err := userService.GetUser(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   user,
	})
}

// UpdateUser updates a user's profile fields
func UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user, err := userService.UpdateUser(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   user,
	})
}

// DeleteUser removes a user account
func DeleteUser(c *gin.Context) {
	if err := userService.DeleteUser(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User deleted successfully",
	})
}
