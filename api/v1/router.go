package v1

import (
	"github.com/ajshan23/alghazal-b-p/lib/objectstore"
	"github.com/ajshan23/alghazal-b-p/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, storage *objectstore.Client) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", Register)
		authGroup.POST("/login", Login)
		// Use auth middleware here only for the /me endpoint
		authGroup.GET("/me", middleware.AuthMiddleware(), GetCurrentUser)
	}

	// User endpoints - managing staff is admin-only
	userGroup := router.Group("/users")
	userGroup.Use(middleware.AuthMiddleware())
	{
		userGroup.GET("", ListUsers)
		userGroup.GET("/:id", GetUser)
		userGroup.POST("", middleware.AdminMiddleware(), CreateUser)
		userGroup.PUT("/:id", middleware.AdminMiddleware(), UpdateUser)
		userGroup.DELETE("/:id", middleware.AdminMiddleware(), DeleteUser)
	}

	// Client endpoints - protected by AuthMiddleware
	clientGroup := router.Group("/clients")
	clientGroup.Use(middleware.AuthMiddleware())
	{
		clientGroup.GET("", ListClients)
		clientGroup.POST("", CreateClient)
		clientGroup.GET("/:id", GetClient)
		clientGroup.PUT("/:id", UpdateClient)
		clientGroup.DELETE("/:id", DeleteClient)
	}

	lpoController := NewLPOController(storage)

	// Project endpoints - protected by AuthMiddleware
	projectGroup := router.Group("/projects")
	projectGroup.Use(middleware.AuthMiddleware())
	{
		projectGroup.GET("", ListProjects)
		projectGroup.POST("", CreateProject)
		projectGroup.GET("/:id", GetProject)
		projectGroup.PATCH("/:id", UpdateProject)
		projectGroup.DELETE("/:id", DeleteProject)
		projectGroup.PATCH("/:id/status", UpdateProjectStatus)
		projectGroup.POST("/:id/progress", UpdateProjectProgress)
		projectGroup.POST("/:id/team", AssignProjectTeam)
		projectGroup.GET("/:id/labor", GetProjectLabor)
		projectGroup.GET("/:id/comments", GetProjectComments)
		projectGroup.POST("/:id/comments", AddProjectComment)
		projectGroup.GET("/:id/quotations", ListProjectQuotations)
		projectGroup.GET("/:id/lpos", lpoController.ListProjectLPOs)
		projectGroup.POST("/:id/expense", CreateProjectExpense)
		projectGroup.GET("/:id/expenses", ListProjectExpenses)
		projectGroup.GET("/:id/invoice.pdf", GetInvoicePDF)
		projectGroup.GET("/:id/completion-certificate.pdf", GetCompletionCertificatePDF)
	}

	// Quotation endpoints - protected by AuthMiddleware
	quotationGroup := router.Group("/quotations")
	quotationGroup.Use(middleware.AuthMiddleware())
	{
		quotationGroup.POST("", CreateQuotation)
		quotationGroup.GET("/:id", GetQuotation)
		quotationGroup.PATCH("/:id/approve", ApproveQuotation)
		quotationGroup.DELETE("/:id", DeleteQuotation)
	}

	// Expense endpoints - protected by AuthMiddleware
	expenseGroup := router.Group("/expenses")
	expenseGroup.Use(middleware.AuthMiddleware())
	{
		expenseGroup.GET("/:id", GetExpense)
		expenseGroup.PUT("/:id", UpdateExpense)
		expenseGroup.DELETE("/:id", DeleteExpense)
		expenseGroup.GET("/:id/report.pdf", GetExpenseReportPDF)
	}

	// Attendance endpoints - protected by AuthMiddleware
	attendanceGroup := router.Group("/attendance")
	attendanceGroup.Use(middleware.AuthMiddleware())
	{
		attendanceGroup.POST("", MarkAttendance)
		attendanceGroup.GET("", ListAttendance)
	}

	// LPO and work completion endpoints - protected by AuthMiddleware
	authRouter := router.Group("")
	authRouter.Use(middleware.AuthMiddleware())
	lpoController.RegisterRoutes(authRouter)

	completionController := NewWorkCompletionController(storage)
	completionController.RegisterRoutes(authRouter)
}
