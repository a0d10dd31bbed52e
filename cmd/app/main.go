package main

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"agencysim/cmd"
	agencyhttp "agencysim/internal/adapters/in/http"
	"agencysim/internal/adapters/out/webhook"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()

	app := cmd.NewCompositionRoot(configs)
	defer app.Close()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// A .env file is optional; real environment variables win either way.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:          envOrDefault("HTTP_PORT", "8080"),
		WebhookTimeout:    envDuration("WEBHOOK_TIMEOUT", webhook.DefaultTimeout),
		NotifierWorkers:   envInt("NOTIFIER_WORKERS", 4),
		NotifierQueueSize: envInt("NOTIFIER_QUEUE_SIZE", 64),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("invalid %s value %q: %v", key, value, err)
	}
	return parsed
}

func envDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("invalid %s value %q: %v", key, value, err)
	}
	return parsed
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := agencyhttp.NewServer(
		app.CreateCreateParcelCommandHandler(),
		app.CreateUpdateParcelStatusCommandHandler(),
		app.CreateStartSimulationCommandHandler(),
		app.CreateGetParcelQueryHandler(),
		app.CreateListParcelsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
