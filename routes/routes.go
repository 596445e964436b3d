package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"property-backend/controllers"
	"property-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controller instances into the route tree.
func SetupRouter(
	tc *controllers.TenantController,
	ac *controllers.ApplicationController,
	mc *controllers.MoveOutController,
	fc *controllers.FormController,
	bc *controllers.BookingController,
	pc *controllers.PaymentController,
	bgc *controllers.BudgetController,
	mtc *controllers.MaintenanceController,
	rc *controllers.ReportController,
	cc *controllers.CalendarController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// Public intake forms
		forms := api.Group("/forms")
		{
			forms.POST("/applications", fc.SubmitApplication)
			forms.POST("/move-outs", fc.SubmitMoveOut)
			forms.POST("/guest-checkins", fc.SubmitGuestCheckin)
		}

		// Application review
		applications := api.Group("/applications")
		{
			applications.GET("", ac.ListPending)
			applications.GET("/lookup", ac.Lookup)
			applications.POST("/:id/approve", ac.Approve)
			applications.POST("/:id/reject", ac.Reject)
		}

		// Move-out review
		moveOuts := api.Group("/move-outs")
		{
			moveOuts.GET("", mc.ListPending)
			moveOuts.POST("/:id/complete", mc.Complete)
		}

		// Tenants
		tenants := api.Group("/tenants")
		{
			tenants.GET("", tc.List)
			tenants.GET("/:id", tc.Get)
			tenants.PATCH("/:id", tc.Update)
		}

		// Bookings
		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.List)
			bookings.POST("", bc.Create)
			bookings.GET("/availability", bc.Availability)
			bookings.GET("/:id", bc.Get)
			bookings.POST("/:id/checkin", bc.CheckIn)
			bookings.POST("/:id/checkout", bc.CheckOut)
			bookings.PATCH("/:id/status", bc.SetStatus)
		}

		// Payments
		api.POST("/payments", pc.Record)

		// Budget
		budget := api.Group("/budget")
		{
			budget.GET("", bgc.List)
			budget.POST("", bgc.Create)
			budget.GET("/summary", bgc.Summary)
		}

		// Maintenance
		maintenance := api.Group("/maintenance")
		{
			maintenance.GET("", mtc.List)
			maintenance.POST("", mtc.Create)
			maintenance.GET("/:id", mtc.Get)
			maintenance.PATCH("/:id", mtc.Update)
		}

		// Reports
		reports := api.Group("/reports")
		{
			reports.GET("/tenants.xlsx", rc.Tenants)
			reports.GET("/budget.xlsx", rc.BudgetReport)
		}

		// Calendar
		calendar := api.Group("/calendar")
		{
			calendar.GET("/upcoming", cc.Upcoming)
			calendar.POST("/regenerate", cc.Regenerate)
		}

		// Rooms
		rooms := api.Group("/rooms")
		{
			rooms.GET("", controllers.GetRooms)
			rooms.GET("/board", bc.Board)
			rooms.POST("", controllers.CreateRoom)
			rooms.PATCH("/:id", controllers.UpdateRoom)
			rooms.PUT("/:id", controllers.UpdateRoom)
			rooms.DELETE("/:id", controllers.DeleteRoom)
		}

		// Settings
		settings := api.Group("/settings")
		{
			settings.GET("/property", controllers.GetPropertySettings)
			settings.PUT("/property", controllers.UpdatePropertySettings)
		}

		// Auth + admins
		auth := api.Group("/auth")
		{
			auth.POST("/login", controllers.Login)
			auth.POST("/forgot", controllers.ForgotPassword)
		}
		admins := api.Group("/admins")
		{
			admins.GET("", controllers.GetAdmins)
			admins.POST("", controllers.CreateAdmin)
			admins.POST("/invite", controllers.InviteAdmin)
			admins.POST("/activate", controllers.ActivateAdmin)
			admins.DELETE("/:id", controllers.DeleteAdmin)
		}
	}

	return r
}
