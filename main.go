package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"

	"github.com/devfolio/dashboard-backend/api"
	"github.com/devfolio/dashboard-backend/auth"
	"github.com/devfolio/dashboard-backend/config"
	"github.com/devfolio/dashboard-backend/database"
	"github.com/devfolio/dashboard-backend/models"
	"github.com/devfolio/dashboard-backend/storage"
)

func main() {
	fmt.Println("Initializing app...")

	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	cfg := config.New()

	db, err := openDatabase(cfg)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	if err := database.AutoMigrate(db); err != nil {
		fmt.Printf("Error migrating schema: %v\n", err)
		os.Exit(1)
	}

	// If generating query helpers, run generation and exit
	if strings.ToLower(config.GetString(cfg, "GENERATE_MODELS", "")) == "true" {
		fmt.Println("Generating query helpers...")
		models.GenerateQueryHelpers(db)
		return
	}

	currentDB := database.New(db)

	tokens, err := auth.NewTokenService(
		config.GetString(cfg, "AUTH_SECRET", ""),
		config.GetSeconds(cfg, "AUTH_TOKEN_TTL_SECONDS", 24*time.Hour),
	)
	if err != nil {
		fmt.Printf("Error initializing token service: %v\n", err)
		os.Exit(1)
	}

	callbackBase := config.GetString(cfg, "PUBLIC_BASE_URL", "http://localhost:8080")
	providers := auth.NewProviders(cfg, callbackBase)

	uploader, err := newUploader(cfg)
	if err != nil {
		fmt.Printf("Error initializing uploader: %v\n", err)
		os.Exit(1)
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB, api.Deps{
		Tokens:    tokens,
		Providers: providers,
		Uploader:  uploader,
	})
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// openDatabase connects to the datastore picked by DB_TYPE. One strategy per
// deployment; there is no runtime fallback between them.
func openDatabase(cfg map[string]string) (*gorm.DB, error) {
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	dbType := config.GetString(cfg, "DB_TYPE", "postgres")
	fmt.Printf("DB_TYPE: %s\n", dbType)

	var db *gorm.DB
	var err error

	switch dbType {
	case "postgres":
		connStr := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			config.GetString(cfg, "DB_HOST", "localhost"),
			config.GetString(cfg, "DB_USER", "postgres"),
			config.GetString(cfg, "DB_PASSWORD", ""),
			config.GetString(cfg, "DB_NAME", "portfolio"),
			config.GetString(cfg, "DB_PORT", "5432"),
			config.GetString(cfg, "DB_SSLMODE", "require"),
		)
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  connStr,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
			Logger:      gormLogger,
		})
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(config.GetString(cfg, "DB_PATH", "portfolio.db")), &gorm.Config{
			Logger: gormLogger,
		})
	default:
		return nil, fmt.Errorf("unsupported DB_TYPE: %s", dbType)
	}
	if err != nil {
		return nil, err
	}

	// Optional read replica
	if replicaDSN := config.GetString(cfg, "DB_REPLICA_DSN", ""); replicaDSN != "" && dbType == "postgres" {
		if err := db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: []gorm.Dialector{postgres.Open(replicaDSN)},
		})); err != nil {
			return nil, fmt.Errorf("registering read replica: %w", err)
		}
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		return nil, err
	}

	return db, nil
}

// newUploader builds the upload backend picked by UPLOAD_DRIVER.
func newUploader(cfg map[string]string) (storage.Uploader, error) {
	switch driver := config.GetString(cfg, "UPLOAD_DRIVER", "disk"); driver {
	case "s3":
		return storage.NewS3Uploader(
			context.Background(),
			config.GetString(cfg, "UPLOAD_BUCKET", ""),
			config.GetString(cfg, "UPLOAD_PUBLIC_URL", ""),
		)
	case "disk":
		return storage.NewDiskUploader(config.GetString(cfg, "UPLOAD_DIR", ""))
	default:
		return nil, fmt.Errorf("unsupported UPLOAD_DRIVER: %s", driver)
	}
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
