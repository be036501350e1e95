// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"inventory/internal/delivery/api/middleware"
	"inventory/internal/delivery/api/router/handler"
	"inventory/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	StockHandler    *handler.StockHandler
	RecordHandler   *handler.RecordHandler
	StaffHandler    *handler.StaffHandler
	WorkdoneHandler *handler.WorkdoneHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	stockHandler    *handler.StockHandler
	recordHandler   *handler.RecordHandler
	staffHandler    *handler.StaffHandler
	workdoneHandler *handler.WorkdoneHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		stockHandler:    params.StockHandler,
		recordHandler:   params.RecordHandler,
		staffHandler:    params.StaffHandler,
		workdoneHandler: params.WorkdoneHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/logout", r.authHandler.Logout)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.POST("/reset-password/:token", r.authHandler.ResetPassword)

		authGroup.GET("/verify", r.authHandler.Verify, r.authMiddleware.Authenticate)
		authGroup.GET("/user", r.authHandler.CurrentUser, r.authMiddleware.Authenticate)
		authGroup.GET("/users", r.authHandler.ListUsers,
			r.authMiddleware.Authenticate,
			r.authMiddleware.RequireRole(entity.RoleAdmin),
		)
	}

	// Stock routes
	stockGroup := e.Group("/stock")
	stockGroup.Use(r.authMiddleware.ProtectResources)
	{
		stockGroup.POST("/add-stock", r.stockHandler.AddStock)
		stockGroup.GET("/total-stocks", r.stockHandler.TotalStocks)
		stockGroup.GET("/get-stocks", r.stockHandler.GetStocks)
		stockGroup.PUT("/edit-stock/:id", r.stockHandler.EditStock)
		stockGroup.DELETE("/delete-stock/:id", r.stockHandler.DeleteStock)
		stockGroup.GET("/preview-stock/:id", r.stockHandler.PreviewStock)
		stockGroup.GET("/recent-stocks", r.stockHandler.RecentStocks)
		stockGroup.GET("/search-stocks", r.stockHandler.SearchStocks)
		stockGroup.GET("/qr/:id", r.stockHandler.StockLabel)
		stockGroup.POST("/scan-label", r.stockHandler.ScanLabel)
		stockGroup.POST("/upload-image", r.stockHandler.UploadImage)
		stockGroup.GET("/images/:key", r.stockHandler.Image)
		stockGroup.GET("/export", r.stockHandler.ExportStocks)
	}

	// Record routes
	recordGroup := e.Group("/record")
	recordGroup.Use(r.authMiddleware.ProtectResources)
	{
		recordGroup.POST("/add-record", r.recordHandler.AddRecord)
		recordGroup.GET("/search-stocks", r.recordHandler.SearchStocks)
		recordGroup.GET("/total-records", r.recordHandler.TotalRecords)
		recordGroup.GET("/get-records", r.recordHandler.GetRecords)
		recordGroup.PUT("/edit-record/:id", r.recordHandler.EditRecord)
		recordGroup.DELETE("/delete-record/:id", r.recordHandler.DeleteRecord)
		recordGroup.GET("/preview-record/:id", r.recordHandler.PreviewRecord)
		recordGroup.GET("/records/:productName", r.recordHandler.RecordsByProduct)
		recordGroup.GET("/export", r.recordHandler.ExportRecords)
	}

	// Staff routes, including the embedded work log
	staffGroup := e.Group("/staffs")
	staffGroup.Use(r.authMiddleware.ProtectResources)
	{
		staffGroup.POST("/add-staff", r.staffHandler.AddStaff)
		staffGroup.GET("/get-staffs", r.staffHandler.GetStaffs)
		staffGroup.PATCH("/edit-staff/:id", r.staffHandler.EditStaff)
		staffGroup.DELETE("/delete-staff/:id", r.staffHandler.DeleteStaff)
		staffGroup.GET("/preview-staff/:id", r.staffHandler.PreviewStaff)
		staffGroup.PUT("/add-work-done/:id", r.staffHandler.AddWorkDone)
		staffGroup.PATCH("/edit-work-done/:staffId/:workId", r.staffHandler.EditWorkDone)
		staffGroup.DELETE("/delete-work-done/:staffId/:workId", r.staffHandler.DeleteWorkDone)
		staffGroup.DELETE("/delete-workdone/:staffId/:workId", r.staffHandler.PullWorkDone)
	}

	// Standalone work log routes
	workdoneGroup := e.Group("/workdone")
	workdoneGroup.Use(r.authMiddleware.ProtectResources)
	{
		workdoneGroup.POST("/add-workdone", r.workdoneHandler.AddWorkdone)
		workdoneGroup.GET("/get-workdone", r.workdoneHandler.GetWorkdone)
		workdoneGroup.PATCH("/edit-workdone/:id", r.workdoneHandler.EditWorkdone)
		workdoneGroup.DELETE("/delete-workdone/:id", r.workdoneHandler.DeleteWorkdone)
		workdoneGroup.GET("/preview-workdone/:id", r.workdoneHandler.PreviewWorkdone)
	}
}
