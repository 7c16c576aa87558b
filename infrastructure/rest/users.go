package rest

import (
	"crew-dispatch/domain"
	apperrors "crew-dispatch/errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type testNotificationRequest struct {
	Type    string            `json:"type"`
	Title   string            `json:"title"`
	Message string            `json:"message"`
	Data    map[string]string `json:"data"`
}

// sendTestNotification pushes a notification to the caller through the regular gate.
// A null notification means the caller's settings suppressed it.
func (h *handlers) sendTestNotification(c *gin.Context) {
	body := testNotificationRequest{
		Type:    string(domain.CategoryGlobal),
		Title:   "Test Notification",
		Message: "This is a test notification",
	}
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			h.fail(c, invalid(err))
			return
		}
	}
	category, err := domain.ParseCategory(body.Type)
	if err != nil {
		h.fail(c, fmt.Errorf("%w: %v", apperrors.ErrInvalidCategory, err))
		return
	}
	notification := h.Notifications.SendToUser(c.Request.Context(), caller(c).ID, category,
		body.Title, body.Message, body.Data)
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Test notification sent",
		"notification": notification,
	})
}
