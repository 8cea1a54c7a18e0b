// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"canteen/internal/delivery/http/middleware"
	"canteen/internal/delivery/http/router/handler"
	"canteen/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OrderHandler        *handler.OrderHandler
	BundleHandler       *handler.BundleHandler
	InventoryHandler    *handler.InventoryHandler
	CatalogHandler      *handler.CatalogHandler
	ReportHandler       *handler.ReportHandler
	AccountHandler      *handler.AccountHandler
	NotificationHandler *handler.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	orderHandler        *handler.OrderHandler
	bundleHandler       *handler.BundleHandler
	inventoryHandler    *handler.InventoryHandler
	catalogHandler      *handler.CatalogHandler
	reportHandler       *handler.ReportHandler
	accountHandler      *handler.AccountHandler
	notificationHandler *handler.NotificationHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		orderHandler:        params.OrderHandler,
		bundleHandler:       params.BundleHandler,
		inventoryHandler:    params.InventoryHandler,
		catalogHandler:      params.CatalogHandler,
		reportHandler:       params.ReportHandler,
		accountHandler:      params.AccountHandler,
		notificationHandler: params.NotificationHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	staffOrAdmin := r.authMiddleware.RequireRole(entity.RoleStaff, entity.RoleAdmin)
	adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin)
	staffOnly := r.authMiddleware.RequireRole(entity.RoleStaff)

	// Menu routes. Reading the menu is open to any authenticated account,
	// editing it is an admin operation.
	menuGroup := e.Group("/menu")
	menuGroup.Use(r.authMiddleware.Authenticate)
	{
		menuGroup.GET("", r.catalogHandler.GetWeeklyMenu)
		menuGroup.GET("/:day/:meal", r.catalogHandler.GetMeal)
		menuGroup.PUT("/:day/:meal", r.catalogHandler.UpsertMeal, adminOnly)
	}

	ingredientGroup := e.Group("/ingredients")
	ingredientGroup.Use(r.authMiddleware.Authenticate)
	ingredientGroup.Use(staffOrAdmin)
	{
		ingredientGroup.GET("", r.catalogHandler.ListIngredients)
		ingredientGroup.PUT("/:name/price", r.catalogHandler.SetIngredientPrice, adminOnly)
	}

	// Order routes for buyers, plus staff endpoints for the serving line.
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.PurchaseSlot)
		orderGroup.GET("", r.orderHandler.GetAccountOrders)
		orderGroup.GET("/queue", r.orderHandler.GetServingQueue, staffOrAdmin)
		orderGroup.POST("/:orderId/collect", r.orderHandler.MarkCollected, staffOrAdmin)
		orderGroup.POST("/:orderId/confirm", r.orderHandler.ConfirmConsumption)
		orderGroup.DELETE("/:orderId", r.orderHandler.CancelOrder)
	}

	bundleGroup := e.Group("/bundles")
	bundleGroup.Use(r.authMiddleware.Authenticate)
	{
		bundleGroup.POST("/quote", r.bundleHandler.Quote)
		bundleGroup.POST("", r.bundleHandler.Purchase)
		bundleGroup.GET("/active", r.bundleHandler.GetActiveBundle)
		bundleGroup.DELETE("/:bundleId", r.bundleHandler.Cancel, adminOnly)
	}

	inventoryGroup := e.Group("/inventory")
	inventoryGroup.Use(r.authMiddleware.Authenticate)
	inventoryGroup.Use(staffOrAdmin)
	{
		inventoryGroup.GET("/stock", r.inventoryHandler.ListStock)
		inventoryGroup.PUT("/stock", r.inventoryHandler.SetStock, adminOnly)
		inventoryGroup.POST("/write-offs", r.inventoryHandler.WriteOff)
	}

	procurementGroup := e.Group("/procurement/requests")
	procurementGroup.Use(r.authMiddleware.Authenticate)
	{
		procurementGroup.POST("", r.inventoryHandler.RequestPurchase, staffOnly)
		procurementGroup.GET("/pending", r.inventoryHandler.ListPendingRequests, adminOnly)
		procurementGroup.GET("/mine", r.inventoryHandler.ListAccountRequests)
		procurementGroup.POST("/:requestId/decision", r.inventoryHandler.DecideRequest, adminOnly)
	}

	reportGroup := e.Group("/reports")
	reportGroup.Use(r.authMiddleware.Authenticate)
	reportGroup.Use(adminOnly)
	{
		reportGroup.GET("/deficit", r.reportHandler.Deficit)
		reportGroup.GET("/plan-fact", r.reportHandler.PlanVsFact)
		reportGroup.GET("/write-offs", r.reportHandler.WriteOffs)
		reportGroup.GET("/spend", r.reportHandler.Spend)
		reportGroup.GET("/weekly", r.reportHandler.Weekly)
		reportGroup.GET("/dashboard", r.reportHandler.Dashboard)
	}

	accountGroup := e.Group("/accounts")
	accountGroup.Use(r.authMiddleware.Authenticate)
	{
		accountGroup.GET("/me", r.accountHandler.GetProfile)
		accountGroup.POST("/topup", r.accountHandler.Topup)
		accountGroup.GET("", r.accountHandler.ListByRole, adminOnly)
		accountGroup.GET("/archived", r.accountHandler.ListArchived, adminOnly)
		accountGroup.GET("/:accountId", r.accountHandler.GetAccount, adminOnly)
		accountGroup.POST("/:accountId/archive", r.accountHandler.Archive, adminOnly)
	}

	notificationGroup := e.Group("/notifications")
	notificationGroup.Use(r.authMiddleware.Authenticate)
	{
		notificationGroup.GET("", r.notificationHandler.List)
		notificationGroup.GET("/unread-count", r.notificationHandler.UnreadCount)
		notificationGroup.POST("/read-all", r.notificationHandler.MarkAllRead)
		notificationGroup.POST("/:notificationId/read", r.notificationHandler.MarkRead)
		notificationGroup.DELETE("/:notificationId", r.notificationHandler.Delete)
	}
}
