package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gauravfit/coach-app/internal/coach"
	"gauravfit/coach-app/internal/service"
	"gauravfit/coach-app/internal/session"
	"gauravfit/coach-app/internal/storage"
)

// SetupRoutes wires the full HTTP surface. fileStorage may be nil
// (export upload disabled); the coach provider degrades on its own
// when no API key is configured.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	sessions *session.Manager,
	provider coach.Provider,
	fileStorage storage.FileStorage,
) {
	authHandler := NewAuthHandler(authService)
	catalogHandler := NewCatalogHandler()
	planHandler := NewPlanHandler(sessions)
	sessionHandler := NewSessionHandler(sessions)
	coachHandler := NewCoachHandler(provider, sessions)
	exportHandler := NewExportHandler(sessions, fileStorage)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		// --- Catalog Routes (immutable reference data) ---
		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.GET("", catalogHandler.ListExercises)
			exerciseGroup.GET("/:id", catalogHandler.GetExercise)
			exerciseGroup.GET("/:id/alternatives", catalogHandler.ListAlternatives)
		}
		protected.GET("/meals", catalogHandler.GetMeals)

		// --- Plan Routes ---
		planGroup := protected.Group("/plan")
		{
			planGroup.GET("/today", planHandler.GetToday)
			planGroup.GET("/week", planHandler.GetWeek)
		}

		// --- Session Routes ---
		sessionGroup := protected.Group("/session")
		{
			sessionGroup.GET("", sessionHandler.GetSession)
			sessionGroup.POST("/reset", sessionHandler.ResetSession)
			sessionGroup.POST("/tasks/:id/toggle", sessionHandler.ToggleTask)
			sessionGroup.POST("/log/protein", sessionHandler.LogProtein)
			sessionGroup.POST("/log/water", sessionHandler.LogWater)
			sessionGroup.POST("/log/steps", sessionHandler.LogSteps)
			sessionGroup.POST("/log/soreness", sessionHandler.LogSoreness)
			sessionGroup.POST("/history", sessionHandler.AppendHistory)
			sessionGroup.PATCH("/profile", sessionHandler.UpdateProfile)
		}

		// --- Coach Routes ---
		coachGroup := protected.Group("/coach")
		{
			coachGroup.POST("/chat", coachHandler.Chat)
			coachGroup.POST("/reset", coachHandler.ResetChat)
			coachGroup.GET("/tip", coachHandler.GetTip)
		}

		// --- Export Routes ---
		exportGroup := protected.Group("/export")
		{
			exportGroup.GET("/plan", exportHandler.ExportPlan)
			exportGroup.DELETE("/plan", exportHandler.DeleteExportedPlan)
			exportGroup.GET("/state", exportHandler.ExportState)
		}
	}
}
