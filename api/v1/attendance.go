package v1

import (
	"net/http"
	"strconv"

	"github.com/ajshan23/alghazal-b-p/dto"
	"github.com/ajshan23/alghazal-b-p/services"
	"github.com/gin-gonic/gin"
)

var attendanceService = services.NewAttendanceService()

// MarkAttendance godoc
// @Summary Mark a user's attendance for a date
// @Description Records presence or absence; one record per (project, user, date)
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body dto.MarkAttendanceRequest true "Attendance details"
// @Success 201 {object} models.Attendance
// @Router /attendance [post]
func MarkAttendance(c *gin.Context) {
	var req dto.MarkAttendanceRequest

	// Parse request body
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	record, err := attendanceService.MarkAttendance(req, actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   record,
	})
}

// ListAttendance godoc
// @Summary List attendance records
// @Description Get attendance filtered by project, user, type or date range
// @Tags attendance
// @Produce json
// @Param projectId query string false "Filter by project"
// @Param userId query string false "Filter by user"
// @Param type query string false "Filter by type (project or normal)"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} dto.AttendanceListResponse
// @Router /attendance [get]
func ListAttendance(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "50"))
	if err != nil || pageSize < 1 {
		pageSize = 50
	}

	filter := dto.AttendanceFilter{
		ProjectID: c.Query("projectId"),
		UserID:    c.Query("userId"),
		Type:      c.Query("type"),
		From:      c.Query("from"),
		To:        c.Query("to"),
		Page:      page,
		PageSize:  pageSize,
	}

	response, err := attendanceService.ListAttendance(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}
