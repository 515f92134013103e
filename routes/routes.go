package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shahmilc/LittleLemonAPI/configs"
	"github.com/shahmilc/LittleLemonAPI/controllers"
	"github.com/shahmilc/LittleLemonAPI/middlewares"
	"github.com/shahmilc/LittleLemonAPI/repository"
	"github.com/shahmilc/LittleLemonAPI/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	catRepo := repository.NewCategoryRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	catSvc := services.NewCategoryService(catRepo)
	menuSvc := services.NewMenuService(menuRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, userRepo)
	groupSvc := services.NewGroupService(db, groupRepo, userRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	catCtrl := controllers.NewCategoryController(catSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	groupCtrl := controllers.NewGroupController(groupSvc)

	auth := func(roles ...string) gin.HandlerFunc {
		return middlewares.AuthMiddleware(groupRepo, cfg.JWTSecret, roles...)
	}

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", auth(), authCtrl.Me)
	}

	// Categories (superuser only, reads included)
	cat := r.Group("/categories", auth(middlewares.RoleSuperuser))
	{
		cat.GET("", catCtrl.List)
		cat.POST("", catCtrl.Create)
		cat.GET("/:id", catCtrl.Get)
		cat.PUT("/:id", catCtrl.Update)
		cat.DELETE("/:id", catCtrl.Delete)
	}

	// Menu items: reads are public, writes are Manager (or superuser)
	r.GET("/menu-items", menuCtrl.List)
	r.GET("/menu-items/:id", menuCtrl.Get)
	manage := auth(middlewares.RoleManager, middlewares.RoleSuperuser)
	r.POST("/menu-items", manage, menuCtrl.Create)
	r.PUT("/menu-items/:id", manage, menuCtrl.Update)
	r.PATCH("/menu-items/:id", manage, menuCtrl.Patch)
	r.DELETE("/menu-items/:id", manage, menuCtrl.Delete)

	// Group membership admin. Managers run the delivery crew; only
	// superusers touch the Manager group so a Manager cannot promote anyone.
	mg := r.Group("/groups/manager/users", auth(middlewares.RoleSuperuser))
	{
		mg.GET("", groupCtrl.ListManagers)
		mg.POST("", groupCtrl.AddManager)
		mg.DELETE("/:id", groupCtrl.RemoveManager)
	}
	dc := r.Group("/groups/delivery-crew/users", auth(middlewares.RoleManager))
	{
		dc.GET("", groupCtrl.ListDeliveryCrew)
		dc.POST("", groupCtrl.AddDeliveryCrew)
		dc.DELETE("/:id", groupCtrl.RemoveDeliveryCrew)
	}

	// Cart (any authenticated user, scoped to self)
	cart := r.Group("/cart/menu-items", auth())
	{
		cart.GET("", cartCtrl.List)
		cart.POST("", cartCtrl.Add)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Orders
	r.GET("/orders", auth(), orderCtrl.List)
	r.POST("/orders", auth(), orderCtrl.Checkout)
	r.GET("/orders/:id", auth(), orderCtrl.Detail)
	r.PATCH("/orders/:id", auth(middlewares.RoleManager, middlewares.RoleDeliveryCrew), orderCtrl.UpdateStatus)
	r.PUT("/orders/:id", auth(middlewares.RoleManager), orderCtrl.Replace)
	r.DELETE("/orders/:id", auth(middlewares.RoleManager), orderCtrl.Delete)
}
