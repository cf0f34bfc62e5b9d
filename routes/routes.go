package routes

import (
	"carecompanion/controllers"
	"carecompanion/middlewares"
	"carecompanion/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(
	sessions *services.SessionManager,
	confirm *services.ConfirmBus,
	hub *services.RealtimeHub,
	push *services.PushService,
	pictures *services.PictureService,
) *gin.Engine {
	r := gin.Default()

	dash := controllers.NewDashboardController(sessions, confirm)
	pics := controllers.NewPictureController(pictures)
	rt := controllers.NewRealtimeController(hub)
	dev := controllers.NewDeviceController(push)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.POST("/devices", dev.Register)
		user.POST("/notifications/toggle", dev.ToggleNotifications)
	}

	// The dashboard: one session per user, widgets behind the mode gate
	d := r.Group("/dashboard")
	d.Use(middlewares.AuthMiddleware())
	{
		d.GET("/mode", dash.GetMode)
		d.PUT("/mode", dash.SetMode)
		d.POST("/close", dash.CloseSession)
		d.GET("/confirmations", dash.RecentConfirmations)

		d.GET("/notes", dash.ListNotes)
		d.POST("/notes", dash.CreateNote)
		d.PUT("/notes/:id", dash.UpdateNote)
		d.DELETE("/notes/:id", dash.DeleteNote)

		d.GET("/todos", dash.ListTodos)
		d.POST("/todos", dash.CreateTodo)
		d.POST("/todos/:id/toggle", dash.ToggleTodo)
		d.DELETE("/todos/:id", dash.DeleteTodo)

		d.GET("/journal", dash.ListJournal)
		d.POST("/journal", dash.CreateJournalEntry)
		d.PUT("/journal/:id", dash.UpdateJournalEntry)
		d.DELETE("/journal/:id", dash.DeleteJournalEntry)

		d.GET("/events", dash.ListEvents)
		d.POST("/events", dash.CreateEvent)
		d.PUT("/events/:id", dash.UpdateEvent)
		d.DELETE("/events/:id", dash.DeleteEvent)

		d.GET("/medications", dash.ListMedications)
		d.POST("/medications", dash.CreateMedication)
		d.PUT("/medications/:id", dash.UpdateMedication)
		d.POST("/medications/:id/toggle", dash.ToggleMedicationTaken)
		d.DELETE("/medications/:id", dash.DeleteMedication)

		d.GET("/recordings", dash.ListRecordings)
		d.POST("/recordings", dash.UploadRecording)
		d.POST("/recordings/:id/play", dash.PlayRecording)
		d.GET("/playback", dash.PlaybackStatus)
		d.DELETE("/playback", dash.PausePlayback)
	}

	// Pictures live only in the document store (no widget session)
	p := r.Group("/pictures")
	p.Use(middlewares.AuthMiddleware())
	{
		p.GET("", pics.List)
		p.POST("", pics.Upload)
		p.PUT("/:id", pics.Update)
		p.DELETE("/:id", pics.Delete)
	}

	// Realtime confirmations
	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/confirmations", rt.ConfirmationsWS)
	}

	return r
}
