package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config representa la configuración del servidor
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Inngest  InngestConfig
	JWT      JWTConfig
	Logging  LoggingConfig
	Actions  ActionsConfig
}

// ServerConfig representa la configuración del servidor HTTP
type ServerConfig struct {
	Port           string
	Host           string
	Env            string
	BaseURL        string
	AllowedOrigins []string
}

// DatabaseConfig representa la configuración de la base de datos
type DatabaseConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	AutoMigrate bool
}

// RedisConfig representa la configuración de Redis
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// InngestConfig representa la configuración de Inngest
type InngestConfig struct {
	EventKey   string
	SigningKey string
	AppID      string
	Dev        bool
}

// JWTConfig representa la configuración de las sesiones
type JWTConfig struct {
	Secret     string
	Expiry     time.Duration
	CookieName string
}

// LoggingConfig representa la configuración de logging
type LoggingConfig struct {
	Level  string
	Format string
}

// ActionsConfig agrupa el comportamiento de las acciones de facturas
type ActionsConfig struct {
	// ListingPath es la vista que se invalida y a la que se redirige tras mutar
	ListingPath string
	// DeleteDisabled hace fallar el borrado antes de tocar la base de datos,
	// para poder mostrar el estado de error del dashboard
	DeleteDisabled bool
	ViewCacheTTL   time.Duration
}

const defaultJWTSecret = "your_jwt_secret_key_here"

// Load carga la configuración desde variables de entorno
func Load() (*Config, error) {
	// No es crítico si no existe el archivo .env
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", "8081"),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			Env:            getEnv("SERVER_ENV", "development"),
			BaseURL:        getEnv("SERVER_BASE_URL", "http://localhost:8081"),
			AllowedOrigins: getEnvAsList("SERVER_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		},
		Database: DatabaseConfig{
			Host:        getEnv("PGHOST", "localhost"),
			Port:        getEnv("PGPORT", "5432"),
			User:        getEnv("PGUSER", "postgres"),
			Password:    getEnv("PGPASSWORD", "postgres"),
			Name:        getEnv("PGDATABASE", "invoices"),
			SSLMode:     getEnv("DB_SSLMODE", "disable"),
			AutoMigrate: getEnvAsBool("DB_AUTO_MIGRATE", false),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Inngest: InngestConfig{
			EventKey:   getEnv("INNGEST_EVENT_KEY", ""),
			SigningKey: getEnv("INNGEST_SIGNING_KEY", ""),
			AppID:      getEnv("INNGEST_APP_ID", "invoice-actions"),
			Dev:        getEnvAsBool("INNGEST_DEV", true),
		},
		JWT: JWTConfig{
			Secret:     getEnv("JWT_SECRET", defaultJWTSecret),
			Expiry:     getEnvAsDuration("JWT_EXPIRY", 24*time.Hour),
			CookieName: getEnv("SESSION_COOKIE_NAME", "session"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Actions: ActionsConfig{
			ListingPath:    getEnv("ACTIONS_LISTING_PATH", "/dashboard/invoices"),
			DeleteDisabled: getEnvAsBool("ACTIONS_DELETE_DISABLED", false),
			ViewCacheTTL:   getEnvAsDuration("ACTIONS_VIEW_CACHE_TTL", 10*time.Minute),
		},
	}

	if !config.IsDevelopment() && config.JWT.Secret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set when SERVER_ENV=%s", config.Server.Env)
	}

	return config, nil
}

// getEnv obtiene una variable de entorno o retorna un valor por defecto
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt obtiene una variable de entorno como entero
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool obtiene una variable de entorno como booleano
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration obtiene una variable de entorno como duración
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getEnvAsList obtiene una lista separada por comas
func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// IsDevelopment retorna true si el entorno es de desarrollo
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// IsProduction retorna true si el entorno es de producción
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// GetDSN retorna la cadena de conexión a la base de datos
func (c *Config) GetDSN() string {
	return "host=" + c.Database.Host +
		" port=" + c.Database.Port +
		" user=" + c.Database.User +
		" password=" + c.Database.Password +
		" dbname=" + c.Database.Name +
		" sslmode=" + c.Database.SSLMode
}

// GetRedisAddr retorna la dirección de Redis
func (c *Config) GetRedisAddr() string {
	return c.Redis.Host + ":" + c.Redis.Port
}
