package main

import (
	"fmt"
	"log/slog"
	"os"

	"parceltrack/cmd"
	internalhttp "parceltrack/internal/adapters/in/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	logger := newLogger(configs.LogLevel)

	app := cmd.NewCompositionRoot(configs, logger)

	jobManager := app.CreateJobManager(configs.MonitorCronSpec)
	if err := jobManager.StartAll(); err != nil {
		logger.Error("Failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		MonitorCronSpec: goDotEnvVariable("MONITOR_CRON_SPEC"),
		LogLevel:        goDotEnvVariable("LOG_LEVEL"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := internalhttp.NewServer(
		app.CreateShipmentHistoryQueryHandler(),
		app.CreateCurrentStatusQueryHandler(),
		app.CreateSearchTrackingEventsQueryHandler(),
		app.CreateLedgerHealthQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
