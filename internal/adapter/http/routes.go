package http

import (
	"creatingtasks/internal/adapter/http/handlers"
	"creatingtasks/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health        *handlers.HealthHandler
	Auth          *handlers.AuthHandler
	TaskLists     *handlers.TaskListHandler
	Tasks         *handlers.TaskHandler
	Comments      *handlers.CommentHandler
	Notifications *handlers.NotificationHandler
	WebSocket     *handlers.WebSocketHandler
}

type AuthDeps struct {
	Users             middleware.Authenticator
	Sessions          middleware.SessionValidator
	SessionCookieName string
}

func RegisterRoutes(r *gin.Engine, h Handlers, deps AuthDeps) {
	requireAuth := middleware.AuthMiddleware(deps.Users, deps.Sessions, middleware.AuthConfig{
		SessionCookieName: deps.SessionCookieName,
	})

	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		api.POST("/auth/register", h.Auth.Register)
		api.POST("/auth/login", h.Auth.Login)
		api.POST("/auth/telegram-login", h.Auth.TelegramLogin)
	}

	private := api.Group("")
	private.Use(requireAuth)
	{
		private.POST("/auth/logout", h.Auth.Logout)
		private.GET("/auth/me", h.Auth.Me)
		private.PATCH("/auth/me/profile", h.Auth.UpdateProfile)
		private.GET("/auth/users", h.Auth.ListUsers)

		private.GET("/lists", h.TaskLists.ListTaskLists)
		private.POST("/lists", h.TaskLists.CreateTaskList)
		private.GET("/lists/:id", h.TaskLists.GetTaskList)
		private.PATCH("/lists/:id", h.TaskLists.UpdateTaskList)
		private.DELETE("/lists/:id", h.TaskLists.DeleteTaskList)
		private.POST("/lists/:id/members", h.TaskLists.AddMember)
		private.DELETE("/lists/:id/members/:userId", h.TaskLists.RemoveMember)

		private.GET("/tasks", h.Tasks.ListTasks)
		private.POST("/tasks", h.Tasks.CreateTask)
		private.GET("/tasks/my", h.Tasks.ListMyTasks)
		private.GET("/tasks/:id", h.Tasks.GetTask)
		private.PATCH("/tasks/:id", h.Tasks.UpdateTask)
		private.DELETE("/tasks/:id", h.Tasks.DeleteTask)
		private.POST("/tasks/:id/complete", h.Tasks.CompleteTask)

		private.GET("/comments", h.Comments.ListComments)
		private.POST("/comments", h.Comments.CreateComment)
		private.GET("/comments/:id", h.Comments.GetComment)
		private.PATCH("/comments/:id", h.Comments.UpdateComment)
		private.DELETE("/comments/:id", h.Comments.DeleteComment)

		private.GET("/notifications", h.Notifications.ListNotifications)
		private.GET("/notifications/unread-count", h.Notifications.UnreadCount)
		private.POST("/notifications/read-all", h.Notifications.MarkAllRead)
		private.POST("/notifications/:id/read", h.Notifications.MarkRead)
	}

	ws := r.Group("/ws")
	ws.Use(middleware.LanguageMiddleware(), middleware.AuthMiddleware(deps.Users, deps.Sessions, middleware.AuthConfig{
		SessionCookieName: deps.SessionCookieName,
		AllowQueryToken:   true,
	}))
	{
		ws.GET("/tasks/:taskListId/", h.WebSocket.TaskListStream)
		ws.GET("/notifications/", h.WebSocket.NotificationStream)
	}
}
