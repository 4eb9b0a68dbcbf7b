package routes

import (
	"time"

	"github.com/contrabandkitchen/backend/configs"
	"github.com/contrabandkitchen/backend/controllers"
	"github.com/contrabandkitchen/backend/middlewares"
	"github.com/contrabandkitchen/backend/repository"
	"github.com/contrabandkitchen/backend/services"
	"github.com/contrabandkitchen/backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) error {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	menuRepo := repository.NewMenuRepository(db)
	prefRepo := repository.NewPreferenceRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	// Services. Catalog loading validates the menu; a malformed menu is a
	// deploy-time failure, not something a session should ever see.
	catalogSvc, err := services.NewCatalogService(menuRepo)
	if err != nil {
		return err
	}
	cartSvc := services.NewCartService(catalogSvc.Catalog())
	go cartSvc.RunEviction(30*time.Minute, 24*time.Hour)
	orderSvc := services.NewOrderService(cartSvc, cfg.WhatsAppMain, cfg.WhatsAppAlt)
	themeSvc := services.NewThemeService(prefRepo)
	feedbackSvc := services.NewFeedbackService(feedbackRepo)

	// Cart-change push
	hub := ws.NewCartHub(cartSvc)
	cartSvc.SetNotifier(hub)
	go hub.Run()

	// Controllers
	menuCtrl := controllers.NewMenuController(catalogSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	themeCtrl := controllers.NewThemeController(themeSvc)
	feedbackCtrl := controllers.NewFeedbackController(feedbackSvc)

	// Public
	r.GET("/menu", menuCtrl.List)
	r.GET("/theme", themeCtrl.Get)
	r.PUT("/theme", themeCtrl.Set)
	r.POST("/feedback", feedbackCtrl.Create)

	// Session-scoped
	s := r.Group("/", middlewares.SessionMiddleware())
	{
		s.GET("/cart", cartCtrl.Get)
		s.POST("/cart/items", cartCtrl.Add)
		s.PATCH("/cart/items/qty", cartCtrl.UpdateQty)
		s.DELETE("/cart/items", cartCtrl.RemoveItem)
		s.DELETE("/cart", cartCtrl.Clear)

		s.POST("/checkout", orderCtrl.Checkout)
		s.POST("/checkout/freeform", orderCtrl.CheckoutFreeform)

		s.GET("/ws/cart", hub.HandleWebSocket)
	}

	return nil
}
