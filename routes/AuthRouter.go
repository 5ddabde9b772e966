package routes

import (
	"github.com/gin-gonic/gin"

	"pridehub/controllers"
)

func AuthRouter(api *gin.RouterGroup, auth *controllers.AuthController) {
	api.POST("/signup", auth.Signup)
	api.POST("/login", auth.Login)
	api.POST("/logout", auth.Logout)
	api.GET("/verify-email/:token", auth.VerifyEmail)
}
