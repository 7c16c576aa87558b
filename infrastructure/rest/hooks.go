package rest

import (
	"crew-dispatch/auth"
	"crew-dispatch/domain"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

// Hooks are called by the platform core, which owns users, opportunities and events.
// They only carry what the delivery side needs.

type userRequest struct {
	Name                 string                       `json:"name" binding:"required"`
	Email                string                       `json:"email"`
	Role                 domain.Role                  `json:"role" binding:"omitempty,oneof=user admin"`
	IsApproved           bool                         `json:"isApproved"`
	NotificationSettings *domain.NotificationSettings `json:"notificationSettings"`
}

type opportunityRequest struct {
	ID    string `json:"_id" binding:"required"`
	Title string `json:"title" binding:"required"`
}

type reviewRequest struct {
	Selected bool `json:"selected"`
}

type closeRequest struct {
	Event struct {
		ID           string   `json:"_id" binding:"required"`
		Title        string   `json:"title" binding:"required"`
		Participants []string `json:"participants"`
	} `json:"event" binding:"required"`
	PassedOver []string `json:"passedOver"`
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

func toUserIDs(ids []string) []domain.UserID {
	return lo.Map(ids, func(id string, _ int) domain.UserID { return domain.UserID(id) })
}

func (h *handlers) saveUser(c *gin.Context) {
	var body userRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.fail(c, invalid(err))
		return
	}
	settings := domain.DefaultNotificationSettings()
	if body.NotificationSettings != nil {
		settings = *body.NotificationSettings
	}
	user := domain.User{
		ID:                   domain.UserID(c.Param("userId")),
		Name:                 body.Name,
		Email:                body.Email,
		Role:                 body.Role,
		IsApproved:           body.IsApproved,
		NotificationSettings: settings,
	}
	if err := h.Users.SaveUser(user); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *handlers) issueToken(c *gin.Context) {
	token, err := h.Auth.IssueToken(domain.UserID(c.Param("userId")))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "token": token.String()})
}

// opportunityPosted is called by the creator's own request, hence the token owner is the creator.
func (h *handlers) opportunityPosted(c *gin.Context) {
	var body opportunityRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.fail(c, invalid(err))
		return
	}
	creatorID, _ := auth.UserID(c)
	creator, err := h.Users.GetUser(creatorID)
	if err != nil {
		h.fail(c, err)
		return
	}
	opportunity := domain.Opportunity{ID: body.ID, Title: body.Title, CreatedBy: creator.ID}
	if err = h.Opportunities.SaveOpportunity(opportunity); err != nil {
		h.fail(c, err)
		return
	}
	announcement, err := h.Hooks.OpportunityPosted(c.Request.Context(), creator, opportunity)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": announcement})
}

func (h *handlers) applicantReviewed(c *gin.Context) {
	var body reviewRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.fail(c, invalid(err))
		return
	}
	opportunity, err := h.Opportunities.GetOpportunity(c.Param("opportunityId"))
	if err != nil {
		h.fail(c, err)
		return
	}
	applicant := domain.UserID(c.Param("userId"))
	if err = h.Hooks.ApplicantReviewed(c.Request.Context(), opportunity, applicant, body.Selected); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *handlers) opportunityClosed(c *gin.Context) {
	var body closeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.fail(c, invalid(err))
		return
	}
	opportunity, err := h.Opportunities.GetOpportunity(c.Param("opportunityId"))
	if err != nil {
		h.fail(c, err)
		return
	}
	event := domain.Event{
		ID:           body.Event.ID,
		Title:        body.Event.Title,
		Status:       domain.EventActive,
		Participants: toUserIDs(body.Event.Participants),
	}
	if err = h.Hooks.OpportunityClosed(c.Request.Context(), opportunity, event, toUserIDs(body.PassedOver)); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true})
}

func (h *handlers) eventCompleted(c *gin.Context) {
	if err := h.Hooks.EventCompleted(c.Request.Context(), c.Param("eventId")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *handlers) eventCancelled(c *gin.Context) {
	var body cancelRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			h.fail(c, invalid(err))
			return
		}
	}
	if err := h.Hooks.EventCancelled(c.Request.Context(), c.Param("eventId"), body.Reason); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
