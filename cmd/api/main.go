package main

import (
	"context"
	_ "fieldservice/docs"
	"fieldservice/internal/adapter/http/routes"
	"fieldservice/internal/config"
	"log"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Field Service API
// @version         1.0
// @description     Field service back office: clients, users, products, service orders, quotes and quote payments.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := routes.Run(context.Background(), cfg); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}
