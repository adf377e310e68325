package routes

import (
	"servicevale/internal/adapter/http/handlers"
	"servicevale/internal/adapter/http/middleware"
	"servicevale/internal/auth"
	"servicevale/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth          = "/auth"
	PathEngineers     = "/engineers"
	PathOrders        = "/orders"
	PathBills         = "/bills"
	PathPhotos        = "/photos"
	PathNotifications = "/notifications"
	PathDashboard     = "/dashboard"
)

type apiHandlers struct {
	auth          *handlers.AuthHandler
	engineers     *handlers.EngineerHandler
	orders        *handlers.OrderHandler
	bills         *handlers.BillHandler
	photos        *handlers.PhotoHandler
	notifications *handlers.NotificationHandler
	dashboard     *handlers.DashboardHandler
}

func addServiceRoutes(rg *gin.RouterGroup, tokens *auth.TokenService, api apiHandlers) {
	authed := middleware.RequireAuth(tokens)
	adminOnly := middleware.RequireRole(entities.RoleAdmin)
	engineerOnly := middleware.RequireRole(entities.RoleEngineer)

	authGroup := rg.Group(PathAuth)
	{
		authGroup.POST("/login", api.auth.Login)
		authGroup.POST("/recovery", api.auth.RequestRecovery)
		authGroup.POST("/reset-password", api.auth.ResetPassword)
		authGroup.POST("/register", authed, adminOnly, api.auth.Register)
		authGroup.GET("/profile", authed, api.auth.Profile)
	}

	engineers := rg.Group(PathEngineers, authed, adminOnly)
	{
		engineers.POST("", api.engineers.Create)
		engineers.GET("", api.engineers.List)
		engineers.GET("/:id", api.engineers.GetByID)
		engineers.PUT("/:id", api.engineers.Update)
		engineers.DELETE("/:id", api.engineers.Delete)
	}

	orders := rg.Group(PathOrders, authed)
	{
		orders.POST("", adminOnly, api.orders.Create)
		orders.GET("/pending", api.orders.ListPending)
		orders.GET("/completed", api.orders.ListCompleted)
		orders.GET("/counts", api.orders.PendingCounts)
		orders.GET("/:id", api.orders.GetByID)
		orders.GET("/:id/whatsapp-link", api.orders.WhatsAppLink)
		orders.PATCH("/:id/complete", api.orders.Complete)
		orders.PATCH("/:id/pending", adminOnly, api.orders.MoveToPending)
		orders.DELETE("/:id", adminOnly, api.orders.Delete)
	}

	bills := rg.Group(PathBills, authed)
	{
		bills.POST("", engineerOnly, api.bills.Create)
		bills.GET("", api.bills.List)
		bills.GET("/revenue", api.bills.Revenue)
		bills.GET("/:number", api.bills.GetByNumber)
		bills.GET("/:number/document", api.bills.Document)
	}

	photos := rg.Group(PathPhotos, authed)
	{
		photos.POST("", engineerOnly, api.photos.Upload)
		photos.GET("", api.photos.List)
		photos.DELETE("/:id", api.photos.Delete)
	}

	notifications := rg.Group(PathNotifications, authed)
	{
		notifications.GET("", api.notifications.List)
		notifications.GET("/unread-count", api.notifications.UnreadCount)
		notifications.PATCH("/:id/read", api.notifications.MarkRead)
		notifications.DELETE("", api.notifications.BulkDelete)
	}

	rg.GET(PathDashboard, authed, api.dashboard.Summary)
}
