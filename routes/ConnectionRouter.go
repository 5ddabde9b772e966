package routes

import (
	"github.com/gin-gonic/gin"

	"pridehub/controllers"
)

func ConnectionRouter(api *gin.RouterGroup, requireAuth gin.HandlerFunc, connections *controllers.ConnectionController) {
	authed := api.Group("/", requireAuth)

	authed.POST("/follow/:user_id", connections.Follow)
	authed.DELETE("/unfollow/:user_id", connections.Unfollow)
	authed.GET("/followers/:user_id", connections.Followers)
	authed.GET("/following/:user_id", connections.Following)
}
