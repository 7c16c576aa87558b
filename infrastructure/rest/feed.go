package rest

import (
	"crew-dispatch/domain"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

type markReadRequest struct {
	ActivityIDs []string `json:"activityIds"`
}

func (h *handlers) getFeed(c *gin.Context) {
	user := caller(c)
	page, limit := pagination(c)

	entries, err := h.Feed.GetUserFeed(c.Request.Context(), user.ID, limit, (page-1)*limit)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"activities": lo.Map(entries, func(e domain.FeedEntry, _ int) domain.FormattedActivity { return domain.FormatActivity(e) }),
		"pagination": gin.H{"page": page, "limit": limit, "hasMore": len(entries) == limit},
	})
}

// markFeedRead marks the listed activities, or the whole feed when none are listed.
func (h *handlers) markFeedRead(c *gin.Context) {
	var body markReadRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			h.fail(c, invalid(err))
			return
		}
	}
	ids := make([]uuid.UUID, 0, len(body.ActivityIDs))
	for _, raw := range body.ActivityIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.fail(c, invalid(err))
			return
		}
		ids = append(ids, id)
	}

	count, err := h.Feed.MarkActivitiesAsRead(c.Request.Context(), caller(c).ID, ids)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Activities marked as read", "count": count})
}
