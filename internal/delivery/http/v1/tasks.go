package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskmaster/taskmaster-server/internal/models"
	"github.com/taskmaster/taskmaster-server/internal/services"
)

type messageResponse struct {
	Message string `json:"message"`
}

func (h *handlerImpl) HandleListTasks(c *gin.Context) {
	logger := h.requestLogger(c)

	tasks, err := h.tasks.ListTasks(c.Request.Context())
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to fetch tasks")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	logger.Debug().
		Int("count", len(tasks)).
		Msg("fetched tasks")
	c.JSON(http.StatusOK, tasks)
}

func (h *handlerImpl) HandleListTasksByAssignee(c *gin.Context) {
	logger := h.requestLogger(c)
	email := c.Param("email")

	tasks, err := h.tasks.ListTasksByAssignee(c.Request.Context(), email)
	if err != nil {
		logger.Error().
			Err(err).
			Str("assigned_to", email).
			Msg("failed to fetch tasks by email")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	logger.Debug().
		Int("count", len(tasks)).
		Str("assigned_to", email).
		Msg("fetched tasks by email")
	c.JSON(http.StatusOK, tasks)
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	logger := h.requestLogger(c)

	doc, err := bindDocument(c)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(msgInvalidRequestBody))
		return
	}

	ack, err := h.tasks.CreateTask(c.Request.Context(), models.Task(doc))
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to create task")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	logger.Info().
		Interface("task_id", ack.InsertedID).
		Msg("created task")
	c.JSON(http.StatusCreated, ack)
}

func (h *handlerImpl) HandleUpdateTask(c *gin.Context) {
	logger := h.requestLogger(c)
	taskID := c.Param("id")

	doc, err := bindDocument(c)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(msgInvalidRequestBody))
		return
	}

	_, err = h.tasks.UpdateTask(c.Request.Context(), taskID, models.Task(doc))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidTaskID):
			logger.Warn().
				Str("task_id", taskID).
				Msg("invalid task id")
			abort(c, newBadRequestError(msgInvalidTaskID))
		case errors.Is(err, services.ErrTaskNotFound):
			logger.Warn().
				Str("task_id", taskID).
				Msg("task not found")
			abort(c, newNotFoundError(msgTaskNotFound))
		default:
			logger.Error().
				Err(err).
				Str("task_id", taskID).
				Msg("failed to update task")
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	logger.Info().
		Str("task_id", taskID).
		Msg("updated task")
	c.JSON(http.StatusOK, messageResponse{Message: msgTaskUpdated})
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	logger := h.requestLogger(c)
	taskID := c.Param("id")

	ack, err := h.tasks.DeleteTask(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, services.ErrInvalidTaskID) {
			logger.Warn().
				Str("task_id", taskID).
				Msg("invalid task id")
			abort(c, newBadRequestError(msgInvalidTaskID))
			return
		}

		logger.Error().
			Err(err).
			Str("task_id", taskID).
			Msg("failed to delete task")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	logger.Info().
		Str("task_id", taskID).
		Int64("deleted", ack.DeletedCount).
		Msg("deleted task")
	c.JSON(http.StatusOK, ack)
}
