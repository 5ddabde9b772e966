package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"pridehub/controllers"
	"pridehub/database"
	"pridehub/helper"
	"pridehub/initializers"
	"pridehub/middlewares"
	"pridehub/routes"
	"pridehub/services"
	"pridehub/store"
)

func init() {
	initializers.LoadEnvVariables()
}

func main() {
	client, err := database.Connect(context.Background(), os.Getenv("MONGO_URI"))
	if err != nil {
		log.Fatal(err)
	}
	defer database.Disconnect(client)

	db := client.Database(os.Getenv("DB_NAME"))
	bucket, err := database.OpenBucket(db)
	if err != nil {
		log.Fatal(err)
	}

	users := store.NewUsers(db)
	posts := store.NewPosts(db)
	comments := store.NewComments(db)
	blogs := store.NewBlogs(db)
	events := store.NewEvents(db)
	repairs := store.NewRepairs(db)

	mailer := helper.NewMailerFromEnv()

	userService := services.NewUserService(users, mailer)
	connectionService := services.NewConnectionService(users, repairs)
	postService := services.NewPostService(posts, comments, users, repairs)
	commentService := services.NewCommentService(comments, posts, repairs)
	blogService := services.NewBlogService(blogs)
	eventService := services.NewEventService(events)
	feedService := services.NewFeedService(posts, blogs, events, users)

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://127.0.0.1:5500", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	requireAuth := middlewares.RequireAuth(users)
	api := router.Group("/api")

	routes.AuthRouter(api, controllers.NewAuthController(userService))
	routes.UserRouter(api, requireAuth, controllers.NewUserController(userService))
	routes.ConnectionRouter(api, requireAuth, controllers.NewConnectionController(connectionService))
	routes.PostRouter(api, requireAuth, controllers.NewPostController(postService), controllers.NewCommentController(commentService))
	routes.BlogRouter(api, requireAuth, controllers.NewBlogController(blogService))
	routes.EventRouter(api, requireAuth, controllers.NewEventController(eventService))
	routes.FeedRouter(api, requireAuth, controllers.NewFeedController(feedService))
	routes.MediaRouter(api, requireAuth,
		controllers.NewMediaController(bucket),
		controllers.NewToxicityController(helper.NewToxicityClient(os.Getenv("PERSPECTIVE_API_KEY"))))

	PORT := os.Getenv("PORT")

	if err := router.Run(":" + PORT); err != nil {
		log.Fatal(err)
	}
}
