package routes

import (
	"hoa_stickers/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathResidents = "/residents"
	PathProducts  = "/products"
	PathPurchases = "/purchases"
	PathReports   = "/reports"
	PathAuth      = "/auth"
)

func addAPIRoutes(rg *gin.RouterGroup, h Handlers) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/sign-in", h.Auth.SignIn)
		auth.POST("/sign-up", h.Auth.SignUp)
		auth.POST("/sign-out", h.Auth.SignOut)
	}

	protected := rg.Group("", middleware.RequireBearer(h.AuthUseCase))

	residents := protected.Group(PathResidents)
	{
		residents.GET("", h.Residents.ListResidents)
		residents.POST("", h.Residents.CreateResident)
		residents.GET("/:id", h.Residents.GetResident)
		residents.PUT("/:id", h.Residents.UpdateResident)
		residents.DELETE("/:id", h.Residents.DeleteResident)
		residents.GET("/:id/purchases", h.Residents.ListResidentPurchases)
		residents.POST("/:id/purchases", h.Purchases.CreatePurchase)
	}

	products := protected.Group(PathProducts)
	{
		products.GET("", h.Products.ListProducts)
		products.POST("", h.Products.CreateProduct)
		products.GET("/active", h.Products.ListActiveProducts)
		products.GET("/:id", h.Products.GetProduct)
		products.PUT("/:id", h.Products.UpdateProduct)
		products.DELETE("/:id", h.Products.DeleteProduct)
	}

	purchases := protected.Group(PathPurchases)
	{
		purchases.GET("", h.Purchases.ListPurchases)
		purchases.GET("/quote", h.Purchases.QuotePurchase)
	}

	protected.GET(PathReports+"/transactions", h.Reports.TransactionReport)
}
