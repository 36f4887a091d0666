package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"car-shop-relay/internal/domain"
	"car-shop-relay/internal/service"
)

const readyMessage = "Car Shop Assistant API - Ready for ElevenLabs integration"

// RelayHandler expone el asistente del taller por HTTP.
type RelayHandler struct {
	logger   *zap.Logger
	relaySvc *service.RelayService
}

// NewRelayHandler crea una instancia de RelayHandler con dependencias necesarias.
func NewRelayHandler(logger *zap.Logger, relaySvc *service.RelayService) *RelayHandler {
	return &RelayHandler{
		logger:   logger,
		relaySvc: relaySvc,
	}
}

// Root maneja GET /.
func (h *RelayHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": readyMessage})
}

// Health maneja GET /health.
func (h *RelayHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// Chat maneja POST /chat y POST /webhook.
func (h *RelayHandler) Chat(c *gin.Context) {
	var req domain.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid chat request",
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.Error(err),
		)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "invalid request"})
		return
	}

	resp, err := h.relaySvc.Reply(c.Request.Context(), req)
	if err != nil {
		var upErr *service.UpstreamError
		switch {
		case errors.Is(err, service.ErrServiceMisconfigured):
			h.logger.Error("openai api key not configured",
				zap.String("request_id", c.GetString(requestIDKey)),
			)
		case errors.As(err, &upErr):
			h.logger.Error("upstream completion failed",
				zap.String("request_id", c.GetString(requestIDKey)),
				zap.Error(upErr.Err),
			)
		default:
			h.logger.Error("chat reply failed",
				zap.String("request_id", c.GetString(requestIDKey)),
				zap.Error(err),
			)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
