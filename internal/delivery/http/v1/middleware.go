package v1

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDCtxKey = "request_id"

	// Longest form uuid.Parse accepts: "urn:uuid:" followed by 36 chars.
	maxRequestIDLength = 45

	unmatchedRoute = "unmatched"
)

// HandleRequestID tags the request with an ID. An inbound X-Request-ID is
// kept only if it is a UUID, and is echoed back in canonical form.
func (h *handlerImpl) HandleRequestID(c *gin.Context) {
	requestID, ok := parseRequestID(c.GetHeader(requestIDHeader))
	if !ok {
		requestID = h.newRequestID()
	}

	c.Set(requestIDCtxKey, requestID)
	c.Header(requestIDHeader, requestID)
	c.Next()
}

func parseRequestID(header string) (string, bool) {
	if header == "" || len(header) > maxRequestIDLength {
		return "", false
	}
	id, err := uuid.Parse(header)
	if err != nil {
		return "", false
	}
	return id.String(), true
}

func (h *handlerImpl) newRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to generate request id")
		id = uuid.New()
	}
	return id.String()
}

func (h *handlerImpl) HandleRequestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()

	logger := h.requestLogger(c)
	event := logger.Info()
	if c.Writer.Status() >= 500 {
		event = logger.Error()
	}
	event.
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Int("status", c.Writer.Status()).
		Dur("latency", time.Since(start)).
		Str("client_ip", c.ClientIP()).
		Msg("handled request")
}

func (h *handlerImpl) HandleMetrics(c *gin.Context) {
	if h.metrics == nil {
		c.Next()
		return
	}

	start := time.Now()
	c.Next()

	route := c.FullPath()
	if route == "" {
		route = unmatchedRoute
	}
	h.metrics.RequestsTotal.
		WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
		Inc()
	h.metrics.RequestDuration.
		WithLabelValues(c.Request.Method, route).
		Observe(time.Since(start).Seconds())
}

// requestLogger returns the handler logger annotated with the request ID
// set by HandleRequestID, if any.
func (h *handlerImpl) requestLogger(c *gin.Context) zerolog.Logger {
	requestID := c.GetString(requestIDCtxKey)
	if requestID == "" {
		return h.logger
	}
	return h.logger.With().
		Str("request_id", requestID).
		Logger()
}
