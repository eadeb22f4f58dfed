package v1

import "github.com/gin-gonic/gin"

func RegisterRoutes(router gin.IRouter, h Handler) {
	router.GET("/", h.HandleRoot)

	tasksRouter := router.Group("/tasks")
	tasksRouter.GET("", h.HandleListTasks)
	tasksRouter.POST("", h.HandleCreateTask)
	tasksRouter.GET("/:email", h.HandleListTasksByAssignee)
	tasksRouter.PATCH("/:id", h.HandleUpdateTask)
	tasksRouter.DELETE("/:id", h.HandleDeleteTask)

	usersRouter := router.Group("/users")
	usersRouter.GET("", h.HandleListUsers)
	usersRouter.POST("", h.HandleCreateUser)
}
