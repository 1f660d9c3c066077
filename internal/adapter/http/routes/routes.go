package routes

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"fieldservice/internal/adapter/http/handlers"
	"fieldservice/internal/bootstrap"
	"fieldservice/internal/config"
	"fieldservice/internal/infrastructure/telemetry"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Run will start the server and block until it fails or a shutdown signal arrives.
func Run(ctx context.Context, cfg config.Config) error {
	_, teardown, err := telemetry.InitTracing(ctx, telemetry.Config{
		ServiceName: cfg.ServiceName,
		Endpoint:    cfg.OTLPEndpoint,
		Probability: cfg.TraceSampleRatio,
	})
	if err != nil {
		return fmt.Errorf("starting tracing: %w", err)
	}
	defer func() {
		if err := teardown(context.Background()); err != nil {
			log.Printf("[routes] tracing teardown failed: %v", err)
		}
	}()

	container, err := bootstrap.Build(ctx, cfg)
	if err != nil {
		return err
	}

	api := http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      otelhttp.NewHandler(NewRouter(container, cfg), cfg.ServiceName),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		log.Printf("[routes] api listening addr=%s", api.Addr)
		serverErrors <- api.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.Printf("[routes] shutdown started signal=%s", sig)
		ctx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
		defer cancel()

		if err := api.Shutdown(ctx); err != nil {
			_ = api.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		log.Printf("[routes] shutdown complete")
	}
	return nil
}

// NewRouter builds the gin engine with swagger and every /v1 route registered.
func NewRouter(c *bootstrap.Container, cfg config.Config) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(router, c, cfg)
	return router
}

func getRoutes(router *gin.Engine, c *bootstrap.Container, cfg config.Config) {
	h := fieldServiceHandlers{
		auth:          handlers.NewAuthHandler(c.Users),
		clients:       handlers.NewClientHandler(c.Clients),
		users:         handlers.NewUserHandler(c.Users),
		products:      handlers.NewProductHandler(c.Products),
		serviceOrders: handlers.NewServiceOrderHandler(c.ServiceOrders),
		quotes:        handlers.NewQuoteHandler(c.Quotes),
		quotePayments: handlers.NewQuotePaymentHandler(c.QuotePayments, cfg.PaymentGatewayMock),
		postalCodes:   handlers.NewPostalCodeHandler(c.PostalCodes),
	}

	v1 := router.Group("/v1")
	v1.GET(PathPing, handlers.Ping)
	addFieldServiceRoutes(v1, h)
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
