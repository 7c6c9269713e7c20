package utils

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Storage StorageConfig
	Redis   RedisConfig
	Admin   AdminConfig
	Booking BookingConfig
}

type AppConfig struct {
	Name        string
	Port        string
	Debug       bool
	LogPath     string
	CORSOrigins []string
}

// StorageConfig selects the key-value backend behind the storage adapter.
type StorageConfig struct {
	Driver     string // memory | sqlite | postgres | redis
	SQLitePath string
	Database   DatabaseConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type AdminConfig struct {
	Email    string
	Password string
}

type BookingConfig struct {
	TaxRate    float64
	BcryptCost int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "hotel-reservation")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("CORS_ORIGINS", "*")
	viper.SetDefault("STORAGE_DRIVER", "sqlite")
	viper.SetDefault("SQLITE_PATH", "data/hotel.db")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("ADMIN_EMAIL", "admin@hotel.com")
	viper.SetDefault("ADMIN_PASSWORD", "admin123")
	viper.SetDefault("TAX_RATE", 0.10)
	viper.SetDefault("BCRYPT_COST", 10)

	// .env is optional, the environment alone is enough
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:        viper.GetString("APP_NAME"),
			Port:        viper.GetString("PORT"),
			Debug:       viper.GetBool("DEBUG"),
			LogPath:     viper.GetString("LOG_PATH"),
			CORSOrigins: splitList(viper.GetString("CORS_ORIGINS")),
		},
		Storage: StorageConfig{
			Driver:     strings.ToLower(viper.GetString("STORAGE_DRIVER")),
			SQLitePath: viper.GetString("SQLITE_PATH"),
			Database: DatabaseConfig{
				Host:     viper.GetString("DB_HOST"),
				Port:     viper.GetString("DB_PORT"),
				Name:     viper.GetString("DB_NAME"),
				User:     viper.GetString("DB_USER"),
				Password: viper.GetString("DB_PASS"),
				MaxConns: viper.GetInt32("DB_MAX_CONNS"),
			},
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Admin: AdminConfig{
			Email:    viper.GetString("ADMIN_EMAIL"),
			Password: viper.GetString("ADMIN_PASSWORD"),
		},
		Booking: BookingConfig{
			TaxRate:    viper.GetFloat64("TAX_RATE"),
			BcryptCost: viper.GetInt("BCRYPT_COST"),
		},
	}

	return config, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
