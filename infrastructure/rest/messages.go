package rest

import (
	"crew-dispatch/domain"
	"net/http"

	"github.com/gin-gonic/gin"
)

type contentRequest struct {
	Content string `json:"content" binding:"required"`
}

type createChatRequest struct {
	RecipientID string `json:"recipientId" binding:"required"`
}

func (h *handlers) sendGlobalMessage(c *gin.Context) {
	var body contentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.fail(c, invalid(err))
		return
	}
	message, err := h.Chat.SendGlobalMessage(c.Request.Context(), caller(c), body.Content)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": message})
}

func (h *handlers) getGlobalMessages(c *gin.Context) {
	page, limit := pagination(c)
	result, err := h.Chat.GetGlobalMessages(c.Request.Context(), caller(c).ID, page, limit)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "messages": result.Messages, "pagination": result.Pagination})
}

func (h *handlers) sendPrivateMessage(c *gin.Context) {
	var body contentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.fail(c, invalid(err))
		return
	}
	recipient := domain.UserID(c.Param("recipientId"))
	message, chat, err := h.Chat.SendPrivateMessage(c.Request.Context(), caller(c), recipient, body.Content)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": message, "chat": chat})
}

func (h *handlers) getPrivateMessages(c *gin.Context) {
	page, limit := pagination(c)
	other := domain.UserID(c.Param("userId"))
	result, err := h.Chat.GetPrivateMessages(c.Request.Context(), caller(c).ID, other, page, limit)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"messages":   result.Messages,
		"otherUser":  result.OtherUser,
		"pagination": result.Pagination,
	})
}

func (h *handlers) getPrivateChats(c *gin.Context) {
	chats, err := h.Chat.GetPrivateChats(c.Request.Context(), caller(c).ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "chats": chats})
}

func (h *handlers) sendEventMessage(c *gin.Context) {
	var body contentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.fail(c, invalid(err))
		return
	}
	message, err := h.Chat.SendEventMessage(c.Request.Context(), caller(c), c.Param("eventId"), body.Content)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": message})
}

func (h *handlers) getEventMessages(c *gin.Context) {
	page, limit := pagination(c)
	result, err := h.Chat.GetEventMessages(c.Request.Context(), caller(c), c.Param("eventId"), page, limit)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"messages":   result.Messages,
		"event":      result.Event,
		"pagination": result.Pagination,
	})
}

func (h *handlers) getUnreadCounts(c *gin.Context) {
	counts, err := h.Chat.GetUnreadCounts(c.Request.Context(), caller(c).ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "unreadCounts": counts})
}

func (h *handlers) createPrivateChat(c *gin.Context) {
	var body createChatRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.fail(c, invalid(err))
		return
	}
	chat, err := h.Chat.CreatePrivateChat(c.Request.Context(), caller(c), domain.UserID(body.RecipientID))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Chat created successfully", "chat": chat})
}
