package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/rdeano/dentacare/config"
	"github.com/rdeano/dentacare/controllers"
	"github.com/rdeano/dentacare/security"
)

// Register mounts the full route surface. Everything under /api/admin runs
// behind both the session check and the admin-role check; login, register,
// refresh, and verification stay public.
func Register(r *gin.Engine) {
	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.GET("/health", controllers.HealthCheck)
		auth.POST("/register", controllers.Register)
		auth.GET("/verify", controllers.VerifyEmail)
		auth.POST("/login", controllers.Login)
		auth.POST("/refresh", controllers.Refresh)
		auth.POST("/logout", controllers.Logout)

		protected := auth.Group("")
		protected.Use(security.AuthMiddleware(config.DB))
		{
			protected.GET("/profile", controllers.GetProfile)
		}
	}

	admin := api.Group("/admin")
	admin.Use(security.AuthMiddleware(config.DB))
	admin.Use(security.RequireAdmin(security.SQLRoleSource{DB: config.DB}))
	{
		controllers.PatientResource.Register(admin.Group("/patients"))
		controllers.AppointmentResource.Register(admin.Group("/appointments"))
		controllers.BillingResource.Register(admin.Group("/billing"))
	}
}
