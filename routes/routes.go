package routes

import (
	"net/http"
	"time"

	"pawplan/handlers"
	"pawplan/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint of the backend.
func RegisterRoutes(
	r *gin.Engine,
	planning *handlers.PlanningHandler,
	absences *handlers.AbsenceHandler,
	invoicing *handlers.InvoicingHandler,
) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r)
	RegisterPlanningRoutes(r, planning)
	RegisterAbsenceRoutes(r, absences)
	RegisterInvoicingRoutes(r, invoicing)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm PawPlan"})
	})
}

// RegisterAuthRoutes registers the owner login endpoint.
func RegisterAuthRoutes(r *gin.Engine) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", handlers.LoginHandler)
	}
}

// RegisterPlanningRoutes registers the planning engine endpoints.
func RegisterPlanningRoutes(r *gin.Engine, h *handlers.PlanningHandler) {
	api := r.Group("/api/planning")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/validate", h.ValidateAssignment)
		api.GET("/load/:year/:week", h.WeeklyLoad)
		api.POST("/suggest", h.Suggest)
		api.POST("/compliance", h.Compliance)
		api.POST("/assign", h.Assign)
		api.DELETE("/assign/:id", h.Unassign)
	}
}

// RegisterAbsenceRoutes registers the cancellation endpoints.
func RegisterAbsenceRoutes(r *gin.Engine, h *handlers.AbsenceHandler) {
	api := r.Group("/api/absences")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", h.Create)
		api.POST("/vacation", h.Vacation)
		api.GET("/stats", h.Stats)
		api.POST("/:id/reschedule", h.RescheduleSuggestions)
		api.PUT("/:id/confirm", h.ConfirmReschedule)
	}
}

// RegisterInvoicingRoutes registers invoicing and reporting endpoints.
func RegisterInvoicingRoutes(r *gin.Engine, h *handlers.InvoicingHandler) {
	api := r.Group("/api/invoicing")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/preview", h.Preview)
		api.POST("/monthly", h.GenerateMonthly)
		api.GET("/reminders/due", h.DueReminders)
		api.GET("/reports/:year/:month", h.MonthlyReport)
		api.GET("/volume-discount", h.VolumeDiscount)
		api.GET("/revenue-estimate", h.RevenueEstimate)
	}
}
