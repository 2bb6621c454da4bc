package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/imagineapp/imagine-server/internal/facades"
	"github.com/imagineapp/imagine-server/internal/handlers"
	appjwt "github.com/imagineapp/imagine-server/internal/jwt"
	"github.com/imagineapp/imagine-server/internal/logger"
	"github.com/imagineapp/imagine-server/internal/middlewares"
	"github.com/imagineapp/imagine-server/internal/password"
	"github.com/imagineapp/imagine-server/internal/repositories"
	"github.com/imagineapp/imagine-server/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title imagine-server API
// @version 1.0.0
// @description Image storage with capacity-limited anonymous share links
// @host localhost:8080
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

type config struct {
	appHost  string
	appPort  string
	logLevel string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	redisHost         string
	redisPort         int
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int
	clientIDCacheTTL  time.Duration

	kafkaAddr  string
	kafkaTopic string

	vtAPIKey      string
	scanWorkers   int
	scanQueueSize int

	jwtSecretKey string
}

// parseConfig loads environment variables from a file and returns the
// application, database, Redis, Kafka, scanner, and JWT configuration.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getEnvInt := func(key string, defaultValue int) (int, error) {
		return strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
	}

	cfg := &config{
		appHost:       getEnv("APP_HOST", "localhost"),
		appPort:       getEnv("APP_PORT", "8080"),
		logLevel:      getEnv("APP_LOG_LEVEL", "info"),
		pgHost:        getEnv("POSTGRES_HOST", "localhost"),
		pgUser:        getEnv("POSTGRES_USER", "user"),
		pgPassword:    getEnv("POSTGRES_PASSWORD", "password"),
		pgDB:          getEnv("POSTGRES_DB", "database"),
		redisHost:     getEnv("REDIS_HOST", "localhost"),
		redisPassword: getEnv("REDIS_PASSWORD", ""),
		kafkaAddr:     getEnv("KAFKA_ADDR", ""),
		kafkaTopic:    getEnv("KAFKA_TOPIC", "share-redemptions"),
		vtAPIKey:      getEnv("VIRUSTOTAL_API_KEY", ""),
		jwtSecretKey:  getEnv("JWT_SECRET_KEY", "my_super_secret_key"),
	}

	var err error
	if cfg.pgPort, err = getEnvInt("POSTGRES_PORT", 5432); err != nil {
		return nil, err
	}
	if cfg.pgMaxOpenConns, err = getEnvInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return nil, err
	}
	if cfg.pgMaxIdleConns, err = getEnvInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return nil, err
	}
	if cfg.redisPort, err = getEnvInt("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	if cfg.redisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.redisPoolSize, err = getEnvInt("REDIS_POOL_SIZE", 10); err != nil {
		return nil, err
	}
	if cfg.redisMinIdleConns, err = getEnvInt("REDIS_MIN_IDLE_CONNS", 2); err != nil {
		return nil, err
	}
	cacheTTLSecond, err := getEnvInt("CLIENT_ID_CACHE_TTL_SECOND", 3600)
	if err != nil {
		return nil, err
	}
	cfg.clientIDCacheTTL = time.Duration(cacheTTLSecond) * time.Second
	if cfg.scanWorkers, err = getEnvInt("SCAN_WORKERS", 4); err != nil {
		return nil, err
	}
	if cfg.scanQueueSize, err = getEnvInt("SCAN_QUEUE_SIZE", 256); err != nil {
		return nil, err
	}

	return cfg, nil
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config) error {
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", cfg.pgHost, cfg.pgPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password:     cfg.redisPassword,
		DB:           cfg.redisDB,
		PoolSize:     cfg.redisPoolSize,
		MinIdleConns: cfg.redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for redemption audit events (optional)
	var kafkaWriter services.KafkaWriter
	if cfg.kafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(cfg.kafkaAddr),
			Topic:    cfg.kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	}

	// Initialize token issuer and password hasher
	tokenIssuer := appjwt.New(cfg.jwtSecretKey, appjwt.DefaultExpiration)
	hasher := password.New()

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	clientIDCache := repositories.NewClientIDCacheRepository(rdb, cfg.clientIDCacheTTL)
	imageReadRepo := repositories.NewImageReadRepository(db)
	imageWriteRepo := repositories.NewImageWriteRepository(db)
	shareReadRepo := repositories.NewShareLinkReadRepository(db)
	shareWriteRepo := repositories.NewShareLinkWriteRepository(db)

	// Initialize scan coordinator
	scanner := facades.New(cfg.vtAPIKey)
	scanCoordinator := services.NewScanCoordinator(scanner, imageWriteRepo, cfg.scanWorkers, cfg.scanQueueSize)
	defer scanCoordinator.Stop()

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, clientIDCache, hasher, tokenIssuer)
	imageService := services.NewImageService(imageWriteRepo, imageReadRepo, scanCoordinator)
	shareService := services.NewShareService(shareWriteRepo, shareReadRepo, imageReadRepo, kafkaWriter)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Post("/users", handlers.NewRegisterHandler(authService))
	r.Post("/users/login", handlers.NewLoginHandler(authService))
	r.Post("/user-images/share-link/{token}", handlers.NewShareRedeemHandler(shareService))
	r.Get("/health-check", handlers.NewHealthHandler())

	// Protected routes
	authMiddleware := middlewares.AuthMiddleware(tokenIssuer)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/users/login", handlers.NewLoginCheckHandler())
		r.Get("/user-images", handlers.NewImageListHandler(authService, imageService))
		r.Post("/user-images", handlers.NewUploadHandler(authService, imageService))
		r.Get("/user-images/{id}", handlers.NewImageGetHandler(authService, imageService))
		r.Patch("/user-images/{id}", handlers.NewImageRenameHandler(authService, imageService))
		r.Delete("/user-images/{id}", handlers.NewImageDeleteHandler(authService, imageService))
		r.Post("/user-images/{id}/share-link", handlers.NewShareCreateHandler(authService, shareService))
		r.Get("/user-images/{id}/share-links", handlers.NewShareListHandler(authService, shareService))
		r.Delete("/user-images/share-link/{token}", handlers.NewShareDeleteHandler(authService, shareService))
		r.Get("/user-images/share-link/{token}/visits", handlers.NewShareVisitsHandler(authService, shareService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
