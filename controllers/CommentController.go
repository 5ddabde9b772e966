package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pridehub/services"
)

type CommentController struct {
	comments *services.CommentService
}

func NewCommentController(comments *services.CommentService) *CommentController {
	return &CommentController{comments: comments}
}

func (cc *CommentController) Create(c *gin.Context) {
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
	comment, err := cc.comments.Create(c.Request.Context(), actingUserID(c), postID, body.Text)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "commented on the post successfully", "commentId": comment.ID})
}

func (cc *CommentController) ByPost(c *gin.Context) {
	postID, ok := pathObjectID(c, "post_id")
	if !ok {
		return
	}
	comments, err := cc.comments.ByPost(c.Request.Context(), postID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "comments fetched successfully", "data": comments})
}

func (cc *CommentController) Delete(c *gin.Context) {
	commentID, ok := pathObjectID(c, "comment_id")
	if !ok {
		return
	}
	if err := cc.comments.Delete(c.Request.Context(), actingUserID(c), commentID); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "comment deleted successfully"})
}

func (cc *CommentController) Like(c *gin.Context) {
	cc.toggle(c, cc.comments.Like, "comment liked successfully", "likes")
}

func (cc *CommentController) Unlike(c *gin.Context) {
	cc.toggle(c, cc.comments.Unlike, "comment unliked successfully", "likes")
}

func (cc *CommentController) Dislike(c *gin.Context) {
	cc.toggle(c, cc.comments.Dislike, "comment disliked successfully", "dislikes")
}

func (cc *CommentController) Undislike(c *gin.Context) {
	cc.toggle(c, cc.comments.Undislike, "comment undisliked successfully", "dislikes")
}

func (cc *CommentController) toggle(c *gin.Context, op func(ctx context.Context, commentID, actorID primitive.ObjectID) (int, error), message, field string) {
	commentID, ok := pathObjectID(c, "comment_id")
	if !ok {
		return
	}
	count, err := op(c.Request.Context(), commentID, actingUserID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": message, field: count})
}
