package routes

import (
	"github.com/gin-gonic/gin"

	"pridehub/controllers"
)

func EventRouter(api *gin.RouterGroup, requireAuth gin.HandlerFunc, events *controllers.EventController) {
	authed := api.Group("/", requireAuth)

	authed.POST("/events", events.Create)
	authed.GET("/events/mine", events.MyEvents)
	authed.GET("/events/upcoming", events.Upcoming)
	authed.GET("/events/ongoing", events.Ongoing)
	authed.GET("/events/past", events.Past)
	authed.GET("/events/:event_id", events.Get)
	authed.PUT("/events/:event_id", events.Update)
	authed.DELETE("/events/:event_id", events.Delete)
	authed.PUT("/events/:event_id/register", events.Register)
	authed.PUT("/events/:event_id/unregister", events.Unregister)
}
