package rest

import (
	"crew-dispatch/auth"
	"crew-dispatch/domain"
	apperrors "crew-dispatch/errors"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	userKey      = "current_user"
	defaultLimit = 20
	maxLimit     = 100
)

// currentUser loads the caller behind the bearer token.
func (h *handlers) currentUser(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		h.abort(c, apperrors.ErrMissingToken)
		return
	}
	user, err := h.Users.GetUser(userID)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		h.abort(c, apperrors.ErrInvalidCredentials)
		return
	}
	if err != nil {
		h.abort(c, err)
		return
	}
	c.Set(userKey, user)
	c.Next()
}

func caller(c *gin.Context) domain.User {
	return c.MustGet(userKey).(domain.User)
}

func requireAdmin(c *gin.Context) {
	if !auth.IsAdmin(c) {
		appErr := apperrors.MapToHTTPStatus(apperrors.ErrAdminRequired)
		c.AbortWithStatusJSON(appErr.Status, appErr)
		return
	}
	c.Next()
}

func invalid(err error) error {
	return fmt.Errorf("%w: %v", apperrors.ErrInvalidRequest, err)
}

// fail renders err with the status the domain error maps to.
func (h *handlers) fail(c *gin.Context, err error) {
	appErr := apperrors.MapToHTTPStatus(err)
	if appErr.Status >= http.StatusInternalServerError {
		h.log.Error("Request failed", "path", c.FullPath(), "error", err)
	}
	c.JSON(appErr.Status, appErr)
}

func (h *handlers) abort(c *gin.Context, err error) {
	h.fail(c, err)
	c.Abort()
}

// pagination reads page and limit the lenient way: anything unparsable falls back to defaults.
func pagination(c *gin.Context) (page, limit int) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err = strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}
