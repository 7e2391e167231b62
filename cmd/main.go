package main

import (
	"log"

	_ "productivity-service/docs"
	"productivity-service/internal/app"
)

// @title Productivity Service API
// @version 1.0
// @description Tasks, reminders, pomodoro sessions, goals and habits.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.

func main() {
	application, err := app.New()
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Failed to run application: %v", err)
	}
}
