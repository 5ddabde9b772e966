package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pridehub/services"
)

// actingUserID reads the identity RequireAuth placed on the context.
func actingUserID(c *gin.Context) primitive.ObjectID {
	return c.MustGet("userID").(primitive.ObjectID)
}

func pathObjectID(c *gin.Context, param string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid " + param})
		return primitive.ObjectID{}, false
	}
	return id, true
}

func feedOptions(c *gin.Context) services.FeedOptions {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return services.FeedOptions{
		Page:  page,
		Limit: limit,
		Sort:  c.DefaultQuery("sort", services.SortPopular),
	}
}

// respondErr maps core error kinds to HTTP statuses. Anything unmapped,
// including StoreError, is a 500.
func respondErr(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrBadCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, services.ErrAlreadyInState),
		errors.Is(err, services.ErrNotInState),
		errors.Is(err, services.ErrAlreadyFollowing),
		errors.Is(err, services.ErrNotFollowing),
		errors.Is(err, services.ErrSelfReference),
		errors.Is(err, services.ErrInvalidRange),
		errors.Is(err, services.ErrDuplicate):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"status": "error", "message": err.Error()})
}
