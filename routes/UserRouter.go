package routes

import (
	"github.com/gin-gonic/gin"

	"pridehub/controllers"
)

func UserRouter(api *gin.RouterGroup, requireAuth gin.HandlerFunc, users *controllers.UserController) {
	authed := api.Group("/", requireAuth)

	authed.GET("/profile", users.Profile)
	authed.PUT("/profile", users.UpdateProfile)
	authed.GET("/users/search/:username", users.Search)
	authed.GET("/users/:user_id", users.GetByID)
}
