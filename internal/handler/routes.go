package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"student-portal-svc/internal/middleware"
	"student-portal-svc/internal/service"
	"student-portal-svc/internal/session"
	"student-portal-svc/pkg/logger"
)

// Routes sets up all API routes
func SetupRoutes(
	router *gin.Engine,
	sessions *session.Manager,
	exportService service.ExportService,
	logger *logger.Logger,
) {
	// Initialize handlers
	authHandler := NewAuthHandler(sessions, logger)
	dashboardHandler := NewDashboardHandler(logger)
	paymentHandler := NewPaymentHandler(logger)
	tuitionHandler := NewTuitionHandler(exportService, logger)
	debtHandler := NewDebtHandler(logger)
	otherFeeHandler := NewOtherFeeHandler(logger)
	depositHandler := NewDepositHandler(logger)
	curriculumHandler := NewCurriculumHandler(logger)
	semesterPlanHandler := NewSemesterPlanHandler(logger)
	notificationHandler := NewNotificationHandler(logger)
	oneStopHandler := NewOneStopHandler(logger)
	deviceReportHandler := NewDeviceReportHandler(logger)
	toastHandler := NewToastHandler(logger)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", HealthCheck)

		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.Auth(sessions), authHandler.Me)
		}

		// Everything below needs a signed-in student
		private := v1.Group("", middleware.Auth(sessions))

		private.GET("/dashboard", dashboardHandler.GetDashboard)

		// Tuition routes
		tuition := private.Group("/tuition")
		{
			tuition.GET("", tuitionHandler.GetTuition)
			tuition.GET("/semesters", tuitionHandler.GetSemesters)
			tuition.POST("/pay", paymentHandler.PayTuition)
			tuition.GET("/receipts/:id", paymentHandler.GetReceipt)
			tuition.POST("/export", tuitionHandler.Export)
		}
		private.GET("/files/:id", tuitionHandler.DownloadFile)

		// Debt routes
		debts := private.Group("/debts")
		{
			debts.GET("", debtHandler.GetDebts)
			debts.POST("/pay", paymentHandler.PayDebt)
			debts.GET("/:id", debtHandler.GetDebt)
		}

		// Other fee routes
		otherFees := private.Group("/other-fees")
		{
			otherFees.GET("", otherFeeHandler.GetOtherFees)
			otherFees.POST("/pay", paymentHandler.PayOtherFee)
		}

		// Deposit routes
		deposits := private.Group("/deposits")
		{
			deposits.GET("", depositHandler.GetDeposits)
			deposits.POST("", depositHandler.CreateDeposit)
		}

		// Curriculum routes
		curriculum := private.Group("/curriculum")
		{
			curriculum.GET("", curriculumHandler.GetCurriculum)
			curriculum.GET("/courses/:id", curriculumHandler.GetCourse)
		}

		// Semester plan routes
		plans := private.Group("/semester-plans")
		{
			plans.GET("", semesterPlanHandler.GetPlans)
			plans.GET("/:semester", semesterPlanHandler.GetPlan)
			plans.POST("/:semester/courses", semesterPlanHandler.AddCourse)
		}

		// Notification routes
		notifications := private.Group("/notifications")
		{
			notifications.GET("", notificationHandler.GetNotifications)
			notifications.GET("/:id", notificationHandler.GetNotification)
		}

		// One-stop routes
		oneStop := private.Group("/one-stop")
		{
			oneStop.GET("/services", oneStopHandler.GetServices)
			oneStop.GET("/services/:id", oneStopHandler.GetService)
			oneStop.GET("/requests", oneStopHandler.GetRequests)
			oneStop.POST("/requests", oneStopHandler.SubmitRequest)
		}

		// Device report routes
		reports := private.Group("/device-reports")
		{
			reports.GET("", deviceReportHandler.GetReports)
			reports.POST("", deviceReportHandler.CreateReport)
		}

		// Toast routes
		toasts := private.Group("/toasts")
		{
			toasts.GET("", toastHandler.GetToasts)
			toasts.DELETE("/:id", toastHandler.HideToast)
		}
	}
}

func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"message": "Server is running",
		"service": "Student Portal Service",
	})
}
