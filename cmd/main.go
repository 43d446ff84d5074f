package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/franciscosanchezn/pizza-shop-api/docs" // Import generated docs
	"github.com/franciscosanchezn/pizza-shop-api/internal/config"
	"github.com/franciscosanchezn/pizza-shop-api/internal/controllers"
	"github.com/franciscosanchezn/pizza-shop-api/internal/database"
	"github.com/franciscosanchezn/pizza-shop-api/internal/logging"
	"github.com/franciscosanchezn/pizza-shop-api/internal/metrics"
	"github.com/franciscosanchezn/pizza-shop-api/internal/middleware"
	"github.com/franciscosanchezn/pizza-shop-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// @title Pizza Shop API
// @version 1.0
// @description Buy, list, update and delete pizzas
// @host localhost:8080
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Load configuration
	configuration, err := config.LoadConfig()
	checkPanicErr(err)

	// Initialize logger
	log, logCloser := logging.New(configuration)
	defer func() {
		if err := logCloser.Close(); err != nil {
			logrus.WithError(err).Error("Failed to close log file")
		}
	}()
	database.SetLogger(log)

	// Initialize database connection
	db := setupDatabase(configuration)
	defer func() {
		if err := database.Close(db); err != nil {
			log.WithError(err).Error("Failed to close database")
		}
	}()

	// Initialize services and controllers
	var m *metrics.Metrics
	var recorder controllers.OperationRecorder
	if configuration.MetricsEnabled {
		m = metrics.New()
		recorder = m
	}
	pizzaService := services.NewPizzaService(db)
	pizzaController := controllers.NewPizzaController(pizzaService, log, recorder)

	// Initialize Gin router
	router := setupRouter(configuration, log, pizzaController, m)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, log, &http.Server{
		Addr:              configuration.Address(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}); err != nil {
		log.WithError(err).Error("Server stopped with error")
	}
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, using system environment variables")
	}
}

// setupDatabase opens the configured database and migrates the schema
func setupDatabase(conf *config.Config) *gorm.DB {
	db, err := database.InitDatabase(conf.Database)
	checkPanicErr(err)
	checkPanicErr(database.Migrate(db))
	return db
}

// setupRouter initializes the Gin router and sets up the routes.
// m may be nil when metrics are disabled.
func setupRouter(conf *config.Config, log logrus.FieldLogger, pizzaController controllers.PizzaController, m *metrics.Metrics) *gin.Engine {
	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(log))
	if m != nil {
		router.Use(middleware.Metrics(m))
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}

	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	// Pizza routes
	controllers.RegisterPizzaRoutes(router, pizzaController)

	// Swagger documentation
	if conf.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return router
}

// serve runs the server until ctx is cancelled, then shuts it down gracefully
func serve(ctx context.Context, log logrus.FieldLogger, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "pizza-shop-api",
	})
}
