package routes

import (
	"github.com/AV-automacoes/restaurante-bom-prato/configs"
	"github.com/AV-automacoes/restaurante-bom-prato/controllers"
	"github.com/AV-automacoes/restaurante-bom-prato/middlewares"
	"github.com/AV-automacoes/restaurante-bom-prato/repository"
	"github.com/AV-automacoes/restaurante-bom-prato/services"
	"github.com/AV-automacoes/restaurante-bom-prato/ws"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, log *zap.Logger) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Services
	schedule := services.NewScheduleService()
	menuSvc := services.NewMenuService(log)
	cartSvc := services.NewCartService(log)
	whatsapp := services.NewWhatsAppService(cfg.WhatsAppNumber)
	scheduler := services.NewStatusScheduler(log)
	historyRepo := repository.NewHistoryRepository(db)
	orderSvc := services.NewOrderService(cartSvc, historyRepo, schedule, whatsapp, scheduler, log)
	authSvc := services.NewAuthService(db, cfg.JWTSecret, cfg.JWTTTL)

	// Status feed via WebSocket
	hub := ws.NewOrderHub(orderSvc, log)
	orderSvc.Notifier = hub
	go hub.Run()

	// Controllers
	menuCtrl := controllers.NewMenuController(menuSvc, schedule)
	sessionCtrl := controllers.NewSessionController(authSvc)
	cartCtrl := controllers.NewCartController(cartSvc, menuSvc, schedule)
	orderCtrl := controllers.NewOrderController(orderSvc)
	adminCtrl := controllers.NewAdminController(authSvc, orderSvc)

	// Público
	r.GET("/menu", menuCtrl.List)
	r.GET("/status", menuCtrl.Status)
	r.POST("/session", sessionCtrl.Create)
	r.POST("/admin/login", adminCtrl.Login)
	r.GET("/ws/orders/:id", hub.HandleWebSocket)

	// Cliente (sessão de dispositivo)
	u := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret, "customer"))
	{
		u.GET("/cart", cartCtrl.Get)
		u.POST("/cart/items", cartCtrl.Add)
		u.PUT("/cart/items/:id", cartCtrl.Update)
		u.PATCH("/cart/items/:id/qty", cartCtrl.UpdateQty)
		u.DELETE("/cart/items/:id", cartCtrl.Remove)
		u.DELETE("/cart", cartCtrl.Clear)

		u.POST("/checkout", orderCtrl.Checkout)
		u.GET("/orders", orderCtrl.List)
		u.GET("/orders/lookup", orderCtrl.Lookup)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.POST("/orders/:id/rating", orderCtrl.Rate)
		u.POST("/orders/:id/reorder", orderCtrl.Reorder)
	}

	// Dono do restaurante
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.POST("/orders/:id/accept", adminCtrl.Accept)
		admin.POST("/orders/:id/handoff", adminCtrl.Handoff)
		admin.POST("/orders/:id/complete", adminCtrl.Complete)
	}
}
