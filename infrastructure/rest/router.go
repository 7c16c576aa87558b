// Package rest exposes the delivery subsystem over HTTP: feed, message history,
// unread counts, test notifications and the lifecycle hooks called by the platform core.
package rest

import (
	"crew-dispatch/auth"
	"crew-dispatch/contract"
	"crew-dispatch/repositories"
	"crew-dispatch/services"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Deps are the collaborators of the router. Socket and Health are optional.
type Deps struct {
	Tokens         *auth.Tokens
	Auth           services.IAuthService
	Users          repositories.IUserRepository
	Opportunities  repositories.IOpportunityRepository
	Chat           services.IChatService
	Feed           contract.IActivityFeed
	Notifications  contract.INotificationGate
	Hooks          services.IOpportunityNotifier
	Socket         gin.HandlerFunc
	Health         func() (serving bool, stats map[string]any)
	AllowedOrigins []string
}

type handlers struct {
	log *slog.Logger
	Deps
}

func NewRouter(log *slog.Logger, deps Deps) *gin.Engine {
	h := &handlers{log: log, Deps: deps}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log), cors(deps.AllowedOrigins))

	r.GET("/api/health", h.health)
	if deps.Socket != nil {
		r.GET("/ws", deps.Socket)
	}

	api := r.Group("/api", auth.Middleware(deps.Tokens))

	hooks := api.Group("/hooks", requireAdmin)
	hooks.PUT("/users/:userId", h.saveUser)
	hooks.POST("/users/:userId/token", h.issueToken)
	hooks.POST("/opportunities", h.opportunityPosted)
	hooks.POST("/opportunities/:opportunityId/applicants/:userId", h.applicantReviewed)
	hooks.POST("/opportunities/:opportunityId/close", h.opportunityClosed)
	hooks.POST("/events/:eventId/complete", h.eventCompleted)
	hooks.POST("/events/:eventId/cancel", h.eventCancelled)

	member := api.Group("", h.currentUser)

	feed := member.Group("/feed")
	feed.GET("", h.getFeed)
	feed.PUT("/read", h.markFeedRead)

	messages := member.Group("/messages")
	messages.POST("/global", h.sendGlobalMessage)
	messages.GET("/global", h.getGlobalMessages)
	messages.POST("/private/:recipientId", h.sendPrivateMessage)
	messages.GET("/private/:userId", h.getPrivateMessages)
	messages.GET("/chats", h.getPrivateChats)
	messages.POST("/event/:eventId", h.sendEventMessage)
	messages.GET("/event/:eventId", h.getEventMessages)
	messages.GET("/unread", h.getUnreadCounts)

	member.POST("/chat/create-chat", h.createPrivateChat)
	member.POST("/users/notifications/test", h.sendTestNotification)

	return r
}

func (h *handlers) health(c *gin.Context) {
	body := gin.H{"status": "ok"}
	if h.Health != nil {
		serving, stats := h.Health()
		if !serving {
			body["status"] = "degraded"
		}
		for k, v := range stats {
			body[k] = v
		}
	}
	c.JSON(http.StatusOK, body)
}

func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		status := c.Writer.Status()
		level := slog.LevelDebug
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		log.Log(c.Request.Context(), level, "HTTP request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"latency", time.Since(start))
	}
}

// cors allows the configured client origins. An empty list allows any origin.
func cors(allowed []string) gin.HandlerFunc {
	origins := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		origins[o] = struct{}{}
	}
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			if _, ok := origins[origin]; ok || len(origins) == 0 {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
				c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
			}
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
