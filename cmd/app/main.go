package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"maintenance/cmd"
	inhttp "maintenance/internal/adapters/in/http"
	"maintenance/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	goredis "github.com/redis/go-redis/v9"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := connectDB(configs)
	if err := postgres.AutoMigrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	var redisClient goredis.UniversalClient
	if configs.RedisAddr != "" {
		redisClient = goredis.NewClient(&goredis.Options{Addr: configs.RedisAddr})
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	root, err := cmd.NewCompositionRoot(configs, gormDB, redisClient, logger)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	jobManager := root.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(root, configs.HTTPPort)
}

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func getConfigs() cmd.Config {
	// .env is optional; a containerized deployment sets the environment
	// directly.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:            envOr("HTTP_PORT", "8080"),
		DBHost:              requireEnv("DB_HOST"),
		DBPort:              envOr("DB_PORT", "5432"),
		DBUser:              requireEnv("DB_USER"),
		DBPassword:          requireEnv("DB_PASSWORD"),
		DBName:              requireEnv("DB_NAME"),
		DBSslMode:           envOr("DB_SSLMODE", "disable"),
		RedisAddr:           os.Getenv("REDIS_ADDR"),
		LaborRate:           envOr("LABOR_RATE", "85"),
		Supervisors:         splitEnv("SUPERVISORS"),
		Technicians:         splitEnv("TECHNICIANS"),
		MaterialsCacheTTL:   durationEnv("MATERIALS_CACHE_TTL", 5*time.Minute),
		TechniciansCacheTTL: durationEnv("TECHNICIANS_CACHE_TTL", 10*time.Minute),
	}
}

func requireEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Missing required environment variable %s", key)
	}
	return value
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitEnv(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}

	var values []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	return values
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid duration in %s: %v", key, err)
	}
	return value
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	server := inhttp.NewServer(
		root.CreateCreateOrderCommandHandler(),
		root.CreateTransitionOrderCommandHandler(),
		root.CreateAddOperationCommandHandler(),
		root.CreateAddComponentCommandHandler(),
		root.CreateAssignTechnicianCommandHandler(),
		root.CreateAttachPurchaseOrderCommandHandler(),
		root.CreatePostGoodsReceiptCommandHandler(),
		root.CreatePostGoodsIssueCommandHandler(),
		root.CreatePostConfirmationCommandHandler(),
		root.CreateReportMalfunctionCommandHandler(),
		root.CreateSettleOrderCommandHandler(),
		root.CreateGetReadinessChecklistQueryHandler(),
		root.CreateGetCostSummaryQueryHandler(),
		root.CreateGetDocumentFlowQueryHandler(),
	)

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
