package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/taskmaster/taskmaster-server/internal/metrics"
	"github.com/taskmaster/taskmaster-server/internal/services"
)

const rootBanner = "Task Master Server"

type Handler interface {
	HandleRoot(c *gin.Context)

	HandleListTasks(c *gin.Context)
	HandleListTasksByAssignee(c *gin.Context)
	HandleCreateTask(c *gin.Context)
	HandleUpdateTask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)

	HandleCreateUser(c *gin.Context)
	HandleListUsers(c *gin.Context)

	HandleRequestID(c *gin.Context)
	HandleRequestLogger(c *gin.Context)
	HandleMetrics(c *gin.Context)
}

type handlerImpl struct {
	logger  zerolog.Logger
	tasks   services.TaskService
	users   services.UserService
	metrics *metrics.Metrics
}

// New returns the v1 handler. A nil metrics disables request instrumentation.
func New(
	logger zerolog.Logger,
	taskService services.TaskService,
	userService services.UserService,
	m *metrics.Metrics,
) Handler {
	return &handlerImpl{
		logger:  logger,
		tasks:   taskService,
		users:   userService,
		metrics: m,
	}
}

func (h *handlerImpl) HandleRoot(c *gin.Context) {
	c.String(http.StatusOK, rootBanner)
}
