package routes

import (
	"github.com/gin-gonic/gin"

	"pridehub/controllers"
)

func FeedRouter(api *gin.RouterGroup, requireAuth gin.HandlerFunc, feed *controllers.FeedController) {
	authed := api.Group("/", requireAuth)

	authed.GET("/feed/posts", feed.Posts)
	authed.GET("/feed/blogs", feed.Blogs)
	authed.GET("/feed/events", feed.Events)
	authed.GET("/feed/users", feed.Users)
}
