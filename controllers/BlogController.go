package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pridehub/services"
)

type BlogController struct {
	blogs *services.BlogService
}

func NewBlogController(blogs *services.BlogService) *BlogController {
	return &BlogController{blogs: blogs}
}

func (bc *BlogController) Create(c *gin.Context) {
	var body struct {
		Title    string `json:"title" binding:"required,min=5"`
		Content  string `json:"content" binding:"required,min=10"`
		ImageURL string `json:"imageURL"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}
	blog, err := bc.blogs.Create(c.Request.Context(), actingUserID(c), body.Title, body.Content, body.ImageURL)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "message": "blog created successfully", "blog": blog})
}

func (bc *BlogController) Get(c *gin.Context) {
	blogID, ok := pathObjectID(c, "blog_id")
	if !ok {
		return
	}
	blog, err := bc.blogs.Get(c.Request.Context(), blogID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "blog fetched successfully", "blog": blog})
}

func (bc *BlogController) Update(c *gin.Context) {
	blogID, ok := pathObjectID(c, "blog_id")
	if !ok {
		return
	}
	var body struct {
		Title    *string `json:"title"`
		Content  *string `json:"content"`
		ImageURL *string `json:"imageURL"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}
	update := services.BlogUpdate{Title: body.Title, Content: body.Content, ImageURL: body.ImageURL}
	blog, err := bc.blogs.Update(c.Request.Context(), actingUserID(c), blogID, update)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "blog updated successfully", "blog": blog})
}

func (bc *BlogController) Delete(c *gin.Context) {
	blogID, ok := pathObjectID(c, "blog_id")
	if !ok {
		return
	}
	if err := bc.blogs.Delete(c.Request.Context(), actingUserID(c), blogID); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "blog deleted successfully"})
}

// MyBlogs lists blogs written by the acting user.
func (bc *BlogController) MyBlogs(c *gin.Context) {
	blogs, err := bc.blogs.ByAuthor(c.Request.Context(), actingUserID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "blogs fetched successfully", "blogs": blogs})
}

func (bc *BlogController) Upvote(c *gin.Context) {
	bc.vote(c, bc.blogs.Upvote, "blog upvoted successfully", "upvotes")
}

func (bc *BlogController) RemoveUpvote(c *gin.Context) {
	bc.vote(c, bc.blogs.RemoveUpvote, "blog upvote removed", "upvotes")
}

func (bc *BlogController) Downvote(c *gin.Context) {
	bc.vote(c, bc.blogs.Downvote, "blog downvoted successfully", "downvotes")
}

func (bc *BlogController) RemoveDownvote(c *gin.Context) {
	bc.vote(c, bc.blogs.RemoveDownvote, "blog downvote removed", "downvotes")
}

func (bc *BlogController) vote(c *gin.Context, op func(ctx context.Context, blogID, actorID primitive.ObjectID) (int, error), message, field string) {
	blogID, ok := pathObjectID(c, "blog_id")
	if !ok {
		return
	}
	count, err := op(c.Request.Context(), blogID, actingUserID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": message, field: count})
}
