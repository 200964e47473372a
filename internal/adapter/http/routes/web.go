package routes

import (
	"hoa_stickers/internal/adapter/http/middleware"
	"hoa_stickers/internal/domain/guard"

	"github.com/gin-gonic/gin"
)

func addWebRoutes(r *gin.Engine, h Handlers) {
	p := h.Pages
	section := func(s guard.Section) gin.HandlerFunc {
		return middleware.RequireSection(h.AuthUseCase, h.CookieName, s, p.Loading)
	}

	r.GET("/", section(guard.SectionIndex), p.Index)
	r.GET("/about", p.About)

	authPages := r.Group("", section(guard.SectionAuth))
	{
		authPages.GET(guard.SignInPath, p.SignInPage)
		authPages.POST(guard.SignInPath, p.SignIn)
		authPages.GET("/sign-up", p.SignUpPage)
		authPages.POST("/sign-up", p.SignUp)
	}

	app := r.Group("", section(guard.SectionApp))
	{
		app.GET("/dashboard", p.Dashboard)
		app.POST("/sign-out", p.SignOut)

		app.GET("/residents", p.Residents)
		app.POST("/residents", p.CreateResident)
		app.GET("/residents/:id", p.Resident)
		app.GET("/residents/:id/quote", p.QuoteResident)
		app.POST("/residents/:id/edit", p.UpdateResident)
		app.POST("/residents/:id/delete", p.DeleteResident)
		app.POST("/residents/:id/purchases", p.CreatePurchase)

		app.GET("/stickers", p.Stickers)
		app.GET("/transactions", p.Transactions)

		app.GET("/vehicle-sticker-settings", p.Settings)
		app.POST("/vehicle-sticker-settings", p.CreateProduct)
		app.POST("/vehicle-sticker-settings/:id/edit", p.UpdateProduct)
		app.POST("/vehicle-sticker-settings/:id/delete", p.DeleteProduct)
	}
}
