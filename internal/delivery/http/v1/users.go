package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskmaster/taskmaster-server/internal/models"
)

func (h *handlerImpl) HandleCreateUser(c *gin.Context) {
	logger := h.requestLogger(c)

	doc, err := bindDocument(c)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(msgInvalidRequestBody))
		return
	}

	ack, err := h.users.CreateUser(c.Request.Context(), models.User(doc))
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to create user")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	logger.Info().
		Interface("user_id", ack.InsertedID).
		Msg("created user")
	c.JSON(http.StatusCreated, ack)
}

func (h *handlerImpl) HandleListUsers(c *gin.Context) {
	logger := h.requestLogger(c)

	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to fetch users")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	logger.Debug().
		Int("count", len(users)).
		Msg("fetched users")
	c.JSON(http.StatusOK, users)
}
