package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/rishabh-bijalwan12/vibe-share/auth"
	"github.com/rishabh-bijalwan12/vibe-share/config"
	"github.com/rishabh-bijalwan12/vibe-share/controllers"
	"github.com/rishabh-bijalwan12/vibe-share/database"
	"github.com/rishabh-bijalwan12/vibe-share/middlewares"
	"github.com/rishabh-bijalwan12/vibe-share/routes"
	"github.com/rishabh-bijalwan12/vibe-share/store"
)

func main() {
	cfg := config.Load()

	client := database.Connect(cfg.MongoURI)
	users := store.NewMongoUserStore(database.OpenCollection(client, cfg.DBName, "users"))
	posts := store.NewMongoPostStore(database.OpenCollection(client, cfg.DBName, "posts"))
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://127.0.0.1:5500", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	requireAuth := middlewares.RequireAuth(tokens, users)

	routes.AuthRouter(router, controllers.NewUserController(users, tokens))
	routes.PostRouter(router, requireAuth, controllers.NewPostController(posts, users))
	routes.ConnectionRouter(router, requireAuth, controllers.NewConnectionController(users, posts))

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
