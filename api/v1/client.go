package v1

import (
	"net/http"
	"strconv"

	"github.com/ajshan23/alghazal-b-p/dto"
	"github.com/ajshan23/alghazal-b-p/services"
	"github.com/gin-gonic/gin"
)

var clientService = services.NewClientService()

// ListClients godoc
// @Summary List clients with pagination
// @Description Get all clients, optionally filtered by a search term
// @Tags clients
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Param search query string false "Search term for client name"
// @Success 200 {object} dto.ClientListResponse
// @Router /clients [get]
func ListClients(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil || pageSize < 1 {
		pageSize = 10
	}

	response, err := clientService.ListClients(page, pageSize, c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// CreateClient godoc
// @Summary Create a client
// @Tags clients
// @Accept json
// @Produce json
// @Param request body dto.CreateClientRequest true "Client details"
// @Success 201 {object} models.Client
// @Router /clients [post]
func CreateClient(c *gin.Context) {
	var req dto.CreateClientRequest

	// Parse request body
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	client, err := clientService.CreateClient(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   client,
	})
}

// GetClient retrieves a client by ID
func GetClient(c *gin.Context) {
	client, err := clientService.GetClient(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   client,
	})
}

// UpdateClient updates a client's details
func UpdateClient(c *gin.Context) {
	var req dto.UpdateClientRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	client, err := clientService.UpdateClient(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   client,
	})
}

// DeleteClient godoc
// @Summary Delete a client
// @Description Removes a client; refused while any project references it
// @Tags clients
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} map[string]string
// @Router /clients/{id} [delete]
func DeleteClient(c *gin.Context) {
	if err := clientService.DeleteClient(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Client deleted successfully",
	})
}
