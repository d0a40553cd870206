package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"userbase/internal/auth"
	"userbase/internal/config"
	"userbase/internal/database"
	"userbase/internal/handlers"
	"userbase/internal/middleware"
	"userbase/internal/store"
	"userbase/internal/validation"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureUserIndexes(db); err != nil {
		log.Printf("⚠️ user index warning: %v", err)
	}

	users := store.NewMongoStore(db)
	tokens := auth.NewTokenIssuer(
		config.AppEnv.JWTSecret,
		config.AppEnv.AccessTokenTTL,
		config.AppEnv.RefreshTokenTTL,
	)
	authService := auth.NewService(users, tokens)

	r := gin.Default()

	r.POST("/users", validation.CreateUser(), handlers.CreateUser(authService))
	r.POST("/users/login", validation.Login(), handlers.Login(authService))
	r.POST("/users/logout", validation.Logout(), handlers.Logout(authService))
	r.POST("/users/token/refresh", validation.RefreshToken(), handlers.RefreshToken(authService))

	r.GET("/users", handlers.GetUsers(users))
	r.PUT("/users", validation.UpdateUser(), handlers.UpdateUser(users))
	r.DELETE("/users", validation.DeleteUser(), handlers.DeleteUser(users))

	r.GET("/users/me", middleware.UserAuth(config.AppEnv.JWTSecret), handlers.GetMe(users))

	r.Run(":" + config.AppEnv.Port)
}
