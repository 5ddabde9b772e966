package routes

import (
	"github.com/gin-gonic/gin"

	"pridehub/controllers"
)

func PostRouter(api *gin.RouterGroup, requireAuth gin.HandlerFunc, posts *controllers.PostController, comments *controllers.CommentController) {
	authed := api.Group("/", requireAuth)

	authed.POST("/posts", posts.Create)
	authed.GET("/posts/mine", posts.MyPosts)
	authed.GET("/posts/user/:user_id", posts.ByUser)
	authed.GET("/posts/:post_id", posts.Get)
	authed.PUT("/posts/:post_id", posts.Update)
	authed.DELETE("/posts/:post_id", posts.Delete)
	authed.PUT("/posts/:post_id/like", posts.Like)
	authed.PUT("/posts/:post_id/unlike", posts.Unlike)

	authed.POST("/posts/:post_id/comments", comments.Create)
	authed.GET("/posts/:post_id/comments", comments.ByPost)
	authed.DELETE("/comments/:comment_id", comments.Delete)
	authed.PUT("/comments/:comment_id/like", comments.Like)
	authed.PUT("/comments/:comment_id/unlike", comments.Unlike)
	authed.PUT("/comments/:comment_id/dislike", comments.Dislike)
	authed.PUT("/comments/:comment_id/undislike", comments.Undislike)
}
