package main

import (
	"log"

	_ "github.com/joho/godotenv/autoload"

	_ "github.com/tapsilat/tapsilat-go/docs"
	"github.com/tapsilat/tapsilat-go/internal/adapter/http/routes"
	"github.com/tapsilat/tapsilat-go/internal/config"
	"github.com/tapsilat/tapsilat-go/internal/logger"
)

// @title           Tapsilat Checkout API
// @version         1.0
// @description     Hosted checkout, refunds, subscriptions and webhooks on top of the Tapsilat payment API.
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
		log.Fatalf("load config: %v", err)
	}

	sugar := logger.New(cfg.Env)
	defer func() { _ = sugar.Sync() }()

	if err := routes.Run(cfg, sugar); err != nil {
		sugar.Fatalf("http server stopped: %v", err)
	}
}
