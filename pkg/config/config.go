package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Valores válidos para APP_STORAGE.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	Log     LogConfig
	DB      DBConfig
	JWT     JWTConfig
	HTTP    HTTPConfig
	GraphQL GraphQLConfig
	Events  EventsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env     string // development, staging, production
	Name    string
	Storage string // postgres | memory
}

// LogConfig nivel de log (trace, debug, info, warn, error).
type LogConfig struct {
	Level string
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
	AutoMigrate bool
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

// JWTConfig secreto compartido para firmar y verificar tokens (HS256).
// Los tokens no llevan expiración.
type JWTConfig struct {
	Secret []byte
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host           string
	Port           int
	LoginRateRPS   float64
	LoginRateBurst int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// GraphQLConfig ajustes de ejecución de consultas.
type GraphQLConfig struct {
	MaxParallelism int
	LoaderWait     time.Duration
}

// EventsConfig publicación de eventos de empleos. URL vacía = deshabilitado.
type EventsConfig struct {
	AMQPURL  string
	Exchange string
}

// Enabled informa si hay broker configurado.
func (c EventsConfig) Enabled() bool {
	return c.AMQPURL != ""
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad; .env se carga al entorno del proceso si existe.
func Load() (*Config, error) {
	_ = godotenv.Load() // ignoramos error si no existe

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:     getString(v, "APP_ENV", "development"),
			Name:    getString(v, "APP_NAME", "jobboard-api"),
			Storage: getString(v, "APP_STORAGE", StoragePostgres),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "jobboard"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			MaxConns:    getInt(v, "DB_MAX_CONNS", 25),
			AutoMigrate: getBool(v, "DB_AUTO_MIGRATE", true),
		},
		HTTP: HTTPConfig{
			Host:           getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:           getInt(v, "HTTP_PORT", 9000),
			LoginRateRPS:   getFloat(v, "LOGIN_RATE_RPS", 5),
			LoginRateBurst: getInt(v, "LOGIN_RATE_BURST", 10),
		},
		GraphQL: GraphQLConfig{
			MaxParallelism: getInt(v, "GRAPHQL_MAX_PARALLELISM", 50),
			LoaderWait:     time.Duration(getInt(v, "LOADER_WAIT_MS", 16)) * time.Millisecond,
		},
		Events: EventsConfig{
			AMQPURL:  getString(v, "AMQP_URL", ""),
			Exchange: getString(v, "AMQP_EXCHANGE", "jobboard.events"),
		},
	}

	secret, err := decodeSecret(getString(v, "JWT_SECRET", ""))
	if err != nil {
		return nil, err
	}
	cfg.JWT.Secret = secret

	switch cfg.App.Storage {
	case StoragePostgres, StorageMemory:
	default:
		return nil, fmt.Errorf("config: APP_STORAGE inválido %q", cfg.App.Storage)
	}
	return cfg, nil
}

// decodeSecret interpreta JWT_SECRET como base64 estándar.
func decodeSecret(s string) ([]byte, error) {
	if s == "" {
		return nil, errors.New("config: JWT_SECRET es obligatorio")
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("config: JWT_SECRET no es base64 válido: %w", err)
	}
	return b, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if v.IsSet(key) {
		return v.GetFloat64(key)
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
