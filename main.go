package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"storefront/internal/catalog"
	"storefront/internal/handlers"
	"storefront/internal/repositories"
	"storefront/internal/services"
	"storefront/pkg/rabbitmq"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("RABBITMQ_URL", "") // empty disables event publishing
	viper.SetDefault("CONFIRMATION_TTL", "3s")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	rabbitMQURL := viper.GetString("RABBITMQ_URL")
	confirmWindow := viper.GetDuration("CONFIRMATION_TTL")

	// --- RabbitMQ (optional) ---
	// The storefront is fully functional without a broker; when one is
	// configured, placed orders are published as order.placed events.
	var publisher services.EventPublisher
	if rabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Warn().Err(err).Msg("RabbitMQ unavailable, continuing without event publishing")
		} else {
			defer mqClient.Close()
			publisher = mqClient
		}
	}

	// --- Repositories ---
	catalogRepo := repositories.NewStaticCatalogRepository(catalog.Products())
	orderRepo := repositories.NewMemoryOrderRepository()

	// --- Services ---
	// The cart is a single explicitly-owned state object; handlers get it by
	// reference, nothing hides behind a package-level singleton.
	cartService := services.NewCartService()
	orderService := services.NewOrderService(orderRepo, cartService, publisher)
	checkoutValidator := services.NewCheckoutValidator()

	// --- Handlers ---
	productHandler := handlers.NewProductHandler(catalogRepo)
	cartHandler := handlers.NewCartHandler(cartService, catalogRepo)
	checkoutHandler := handlers.NewCheckoutHandler(cartService, orderService, checkoutValidator, confirmWindow)
	orderHandler := handlers.NewOrderHandler(orderService)

	// --- Fiber app ---
	app := fiber.New()
	app.Use(fiberlogger.New())

	apiV1 := app.Group("/api/v1")
	productHandler.RegisterRoutes(apiV1)
	cartHandler.RegisterRoutes(apiV1)
	checkoutHandler.RegisterRoutes(apiV1)
	orderHandler.RegisterRoutes(apiV1)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start HTTP server ---
	log.Info().Str("port", appPort).Msg("starting server")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	<-quit
	log.Info().Msg("shutting down server")

	// Cancel the pending confirmation timer before tearing down the app.
	checkoutHandler.Close()

	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("error during shutdown")
	}
	log.Info().Msg("server gracefully stopped")
}
