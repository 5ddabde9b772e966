package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pridehub/services"
)

type PostController struct {
	posts *services.PostService
}

func NewPostController(posts *services.PostService) *PostController {
	return &PostController{posts: posts}
}

func (pc *PostController) Create(c *gin.Context) {
	var body struct {
		Text     string `json:"text" binding:"required"`
		ImageURL string `json:"imageURL"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}
	post, err := pc.posts.Create(c.Request.Context(), actingUserID(c), body.Text, body.ImageURL)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "message": "post created successfully", "data": post})
}

// MyPosts lists the acting user's posts, newest first.
func (pc *PostController) MyPosts(c *gin.Context) {
	posts, err := pc.posts.ByUser(c.Request.Context(), actingUserID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "posts fetched successfully", "data": posts})
}

func (pc *PostController) ByUser(c *gin.Context) {
	userID, ok := pathObjectID(c, "user_id")
	if !ok {
		return
	}
	posts, err := pc.posts.ByUser(c.Request.Context(), userID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "posts found", "data": posts})
}

func (pc *PostController) Get(c *gin.Context) {
	postID, ok := pathObjectID(c, "post_id")
	if !ok {
		return
	}
	post, err := pc.posts.Get(c.Request.Context(), postID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "post found", "data": post})
}

func (pc *PostController) Update(c *gin.Context) {
	postID, ok := pathObjectID(c, "post_id")
	if !ok {
		return
	}
	var body struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}
	post, err := pc.posts.UpdateText(c.Request.Context(), actingUserID(c), postID, body.Text)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "post updated successfully", "data": post})
}

func (pc *PostController) Delete(c *gin.Context) {
	postID, ok := pathObjectID(c, "post_id")
	if !ok {
		return
	}
	if err := pc.posts.Delete(c.Request.Context(), actingUserID(c), postID); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "post deleted successfully"})
}

func (pc *PostController) Like(c *gin.Context) {
	postID, ok := pathObjectID(c, "post_id")
	if !ok {
		return
	}
	likes, err := pc.posts.Like(c.Request.Context(), postID, actingUserID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "post liked successfully", "likes": likes})
}

func (pc *PostController) Unlike(c *gin.Context) {
	postID, ok := pathObjectID(c, "post_id")
	if !ok {
		return
	}
	likes, err := pc.posts.Unlike(c.Request.Context(), postID, actingUserID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "post unliked successfully", "likes": likes})
}
