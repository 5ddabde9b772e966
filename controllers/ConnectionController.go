package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pridehub/models"
	"pridehub/services"
)

type ConnectionController struct {
	connections *services.ConnectionService
}

func NewConnectionController(connections *services.ConnectionService) *ConnectionController {
	return &ConnectionController{connections: connections}
}

func (cc *ConnectionController) Follow(c *gin.Context) {
	targetID, ok := pathObjectID(c, "user_id")
	if !ok {
		return
	}
	if err := cc.connections.Follow(c.Request.Context(), actingUserID(c), targetID); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "user followed successfully"})
}

func (cc *ConnectionController) Unfollow(c *gin.Context) {
	targetID, ok := pathObjectID(c, "user_id")
	if !ok {
		return
	}
	if err := cc.connections.Unfollow(c.Request.Context(), actingUserID(c), targetID); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "user unfollowed successfully"})
}

func (cc *ConnectionController) Followers(c *gin.Context) {
	userID, ok := pathObjectID(c, "user_id")
	if !ok {
		return
	}
	followers, err := cc.connections.Followers(c.Request.Context(), userID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "followers found", "data": stripPasswords(followers)})
}

func (cc *ConnectionController) Following(c *gin.Context) {
	userID, ok := pathObjectID(c, "user_id")
	if !ok {
		return
	}
	following, err := cc.connections.Following(c.Request.Context(), userID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "following found", "data": stripPasswords(following)})
}

func stripPasswords(users []models.User) []models.User {
	for i := range users {
		users[i].Password = ""
	}
	return users
}
