package routes

import (
	"github.com/gin-gonic/gin"

	"pridehub/controllers"
)

func BlogRouter(api *gin.RouterGroup, requireAuth gin.HandlerFunc, blogs *controllers.BlogController) {
	authed := api.Group("/", requireAuth)

	authed.POST("/blogs", blogs.Create)
	authed.GET("/blogs/mine", blogs.MyBlogs)
	authed.GET("/blogs/:blog_id", blogs.Get)
	authed.PUT("/blogs/:blog_id", blogs.Update)
	authed.DELETE("/blogs/:blog_id", blogs.Delete)
	authed.PUT("/blogs/:blog_id/upvote", blogs.Upvote)
	authed.PUT("/blogs/:blog_id/remove-upvote", blogs.RemoveUpvote)
	authed.PUT("/blogs/:blog_id/downvote", blogs.Downvote)
	authed.PUT("/blogs/:blog_id/remove-downvote", blogs.RemoveDownvote)
}
