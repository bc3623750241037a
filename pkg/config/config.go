package config

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	Log     LogConfig
	HTTP    HTTPConfig
	JWT     JWTConfig
	Auth    AuthConfig
	Scraper ScraperConfig
	DB      DBConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nivel del logger (trace, debug, info, warn, error).
type LogConfig struct {
	Level string `env:"LOG_LEVEL" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int `env:"HTTP_PORT" validate:"gt=0,lte=65535"`
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string `env:"JWT_SECRET" validate:"required"`
	Expiration int    `env:"JWT_EXPIRATION_MINUTES" validate:"gt=0"` // minutos
	Issuer     string
}

// TTL duración de validez del token.
func (c JWTConfig) TTL() time.Duration {
	return time.Duration(c.Expiration) * time.Minute
}

// AuthConfig endurecimiento opcional de POST /token.
// Si ClientSecretHash (bcrypt) está vacío, el endpoint emite tokens sin credenciales.
type AuthConfig struct {
	ClientID         string
	ClientSecretHash string
}

// ScraperConfig configuración del cliente de la fuente Vitibrasil.
type ScraperConfig struct {
	BaseURL     string        `env:"SCRAPER_BASE_URL" validate:"required,url"`
	Timeout     time.Duration `env:"SCRAPER_TIMEOUT_SECONDS" validate:"gte=0"`
	Concurrency int
	MaxYears    int `env:"SCRAPER_MAX_YEARS" validate:"gte=0"`
	UserAgent   string
}

// DBConfig configuración de PostgreSQL para la auditoría de consultas (opcional).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	AuditEnabled bool
	DatabaseURL  string
	Host         string
	Port         int
	User         string
	Password     string
	DBName       string
	SSLMode      string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, JWT_SECRET, SCRAPER_BASE_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo .env o config.env; se ignora si no existe
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return FromViper(v)
}

// FromViper construye la configuración a partir de una instancia de Viper ya cargada.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "vitivinicultura-api"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 5000),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 15),
			Issuer:     getString(v, "JWT_ISSUER", "vitivinicultura-api"),
		},
		Auth: AuthConfig{
			ClientID:         getString(v, "AUTH_CLIENT_ID", "user"),
			ClientSecretHash: getString(v, "AUTH_CLIENT_SECRET_HASH", ""),
		},
		Scraper: ScraperConfig{
			BaseURL:     strings.TrimRight(getString(v, "SCRAPER_BASE_URL", "http://vitibrasil.cnpuv.embrapa.br"), "/"),
			Timeout:     time.Duration(getInt(v, "SCRAPER_TIMEOUT_SECONDS", 30)) * time.Second,
			Concurrency: getInt(v, "SCRAPER_CONCURRENCY", 4),
			MaxYears:    getInt(v, "SCRAPER_MAX_YEARS", 100),
			UserAgent:   getString(v, "SCRAPER_USER_AGENT", "vitivinicultura-api/1.0"),
		},
		DB: DBConfig{
			AuditEnabled: getBool(v, "AUDIT_ENABLED", false),
			DatabaseURL:  getString(v, "DATABASE_URL", ""),
			Host:         getString(v, "DB_HOST", "localhost"),
			Port:         getInt(v, "DB_PORT", 5432),
			User:         getString(v, "DB_USER", "postgres"),
			Password:     getString(v, "DB_PASSWORD", ""),
			DBName:       getString(v, "DB_NAME", "vitivinicultura"),
			SSLMode:      getString(v, "DB_SSLMODE", "disable"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = newValidator()

// newValidator reporta los errores con el nombre de la variable de entorno (tag env).
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("env"); name != "" {
			return name
		}
		return f.Name
	})
	return v
}

func (c *Config) validate() error {
	if c.Scraper.Concurrency <= 0 {
		c.Scraper.Concurrency = 1
	}
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s inválido (%s)", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("config: %s", strings.Join(msgs, "; "))
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if !v.IsSet(key) {
		return def
	}
	switch v.Get(key).(type) {
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return n
	default:
		return v.GetInt(key)
	}
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
