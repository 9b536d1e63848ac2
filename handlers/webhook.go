package handlers

import (
	"net/http"

	"screenline/models"
	"screenline/services/conversation"
	"screenline/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WebhookHandler terminates the conversational platform's fulfillment
// calls. Every business outcome is a 200; only an unparseable envelope is
// error-shaped.
type WebhookHandler struct {
	Service conversation.Service
	Logger  *zap.Logger
}

func NewWebhookHandler(svc conversation.Service, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{Service: svc, Logger: logger}
}

// HandleFulfillment parses the envelope and hands the turn to the
// conversation service.
func (h *WebhookHandler) HandleFulfillment(c *gin.Context) {
	var req models.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid webhook payload", err.Error())
		return
	}

	h.Logger.Debug("fulfillment request",
		zap.String("tag", req.FulfillmentInfo.Tag),
		zap.String("session", req.SessionInfo.Session))

	resp := h.Service.Handle(c.Request.Context(), &req)
	c.JSON(http.StatusOK, resp)
}

// HealthHandler reports the latest health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
