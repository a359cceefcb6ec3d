package config

import (
	"fmt"
	"os"

	"nutritrack/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config is built once in main and passed down explicitly; nothing in
// the tree reads the environment after Load returns.
type Config struct {
	Environment string
	HTTPAddr    string

	DBDriver   string // "postgres" or "sqlite"
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	JWTSecret string
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getenv("APP_ENV", "development"),
		HTTPAddr:    ":" + getenv("PORT", "8080"),
		DBDriver:    getenv("DB_DRIVER", "postgres"),
		DBHost:      getenv("DB_HOST", "localhost"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      getenv("DB_NAME", "nutritrack"),
		DBPort:      getenv("DB_PORT", "5432"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
	}

	if cfg.JWTSecret == "" && cfg.Environment != "development" {
		return nil, fmt.Errorf("JWT_SECRET must be set outside development")
	}
	return cfg, nil
}

func (c *Config) IsDevelopment() bool { return c.Environment == "development" }

// Open connects to the configured database. The sqlite driver is
// pure Go and backs local development and tests; postgres is the
// deployment target.
func Open(cfg *Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}

	switch cfg.DBDriver {
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.DBName), gormCfg)
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
		return gorm.Open(postgres.Open(dsn), gormCfg)
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Food{},
		&models.FoodSource{},
		&models.Micronutrient{},
		&models.FoodMicronutrient{},
		&models.MacroLog{},
		&models.MicroLog{},
	)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
