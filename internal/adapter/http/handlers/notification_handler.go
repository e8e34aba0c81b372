package handlers

import (
	"net/http"

	"payler_gateway/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxNotificationBodyBytes = 64 << 10

// NotificationHandler receives Payler callbacks. It never retries and answers
// with a redirect or a plain-text error.
type NotificationHandler struct {
	usecase usecase.INotificationUseCase
	log     *zap.Logger
}

func NewNotificationHandler(uc usecase.INotificationUseCase, log *zap.Logger) *NotificationHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &NotificationHandler{usecase: uc, log: log}
}

// Handle answers Payler with the order redirect, or a plain-text error body.
func (h *NotificationHandler) Handle(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxNotificationBodyBytes)
	body, err := c.GetRawData()
	if err != nil {
		h.log.Warn("notification body read failed", zap.Error(err))
		c.String(http.StatusBadRequest, "Invalid JSON format")
		return
	}

	res := h.usecase.HandleNotification(c.Request.Context(), body)
	if res.IsRedirect() {
		c.Redirect(res.StatusCode, res.RedirectURL)
		return
	}
	c.String(res.StatusCode, res.Body)
}
