package routes

import (
	"github.com/gin-gonic/gin"

	"pridehub/controllers"
)

func MediaRouter(api *gin.RouterGroup, requireAuth gin.HandlerFunc, media *controllers.MediaController, toxicity *controllers.ToxicityController) {
	// Downloads stay public so <img> tags work without a cookie.
	api.GET("/media/:media_id", media.Serve)

	authed := api.Group("/", requireAuth)
	authed.POST("/media", media.Upload)
	authed.POST("/check-toxicity", toxicity.Check)
}
