package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pridehub/services"
)

// FeedController serves the paginated site-wide listings.
type FeedController struct {
	feed *services.FeedService
}

func NewFeedController(feed *services.FeedService) *FeedController {
	return &FeedController{feed: feed}
}

func (fc *FeedController) Posts(c *gin.Context) {
	posts, err := fc.feed.ListPosts(c.Request.Context(), feedOptions(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "posts found", "data": posts})
}

func (fc *FeedController) Blogs(c *gin.Context) {
	blogs, err := fc.feed.ListBlogs(c.Request.Context(), feedOptions(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "blogs found", "data": blogs})
}

func (fc *FeedController) Events(c *gin.Context) {
	events, err := fc.feed.ListEvents(c.Request.Context(), feedOptions(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "events found", "data": events})
}

func (fc *FeedController) Users(c *gin.Context) {
	users, err := fc.feed.ListUsers(c.Request.Context(), feedOptions(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "users found", "data": stripPasswords(users)})
}
