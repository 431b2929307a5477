package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

const (
	HasherSHA256 = "sha256"
	HasherBCrypt = "bcrypt"
)

type Config struct {
	Server   ServerConfig   `env:",prefix=SERVER_"`
	Postgres PostgresConfig `env:",prefix=POSTGRES_"`
	Redis    RedisConfig    `env:",prefix=REDIS_"`
	Google   GoogleConfig   `env:",prefix=GOOGLE_"`
	Gemini   GeminiConfig   `env:",prefix=GEMINI_"`
	Session  SessionConfig  `env:",prefix=SESSION_"`
	Security SecurityConfig `env:",prefix=SECURITY_"`
	Cache    CacheConfig    `env:",prefix=CACHE_"`
	CORS     CORSConfig     `env:",prefix=CORS_"`
	Env      string         `env:"ENV,default=development"`
}

type ServerConfig struct {
	Port         string   `env:"PORT,default=8000"`
	Host         string   `env:"HOST,default=0.0.0.0"`
	ReadTimeout  Duration `env:"READ_TIMEOUT,default=15s"`
	WriteTimeout Duration `env:"WRITE_TIMEOUT,default=75s"`
}

type PostgresConfig struct {
	Host     string `env:"HOST,default=localhost"`
	Port     string `env:"PORT,default=5432"`
	User     string `env:"USER,default=localmaps"`
	Password string `env:"PASSWORD,default=localmaps_password"`
	DBName   string `env:"DB,default=localmaps_db"`
	SSLMode  string `env:"SSLMODE,default=disable"`
}

type RedisConfig struct {
	Host         string   `env:"HOST,default=localhost"`
	Port         string   `env:"PORT,default=6379"`
	Password     string   `env:"PASSWORD,default="`
	DB           int      `env:"DB,default=0"`
	PoolSize     int      `env:"POOL_SIZE,default=10"`
	DialTimeout  Duration `env:"DIAL_TIMEOUT,default=5s"`
	ReadTimeout  Duration `env:"READ_TIMEOUT,default=500ms"`
	WriteTimeout Duration `env:"WRITE_TIMEOUT,default=500ms"`
}

// GoogleConfig holds the Places API settings. The key is read from
// GOOGLE_MAPS_API_KEY to stay compatible with existing deployments.
type GoogleConfig struct {
	MapsAPIKey      string   `env:"MAPS_API_KEY,default="`
	TextSearchURL   string   `env:"PLACES_TEXT_SEARCH_URL,default=https://maps.googleapis.com/maps/api/place/textsearch/json"`
	PlaceDetailsURL string   `env:"PLACES_DETAILS_URL,default=https://maps.googleapis.com/maps/api/place/details/json"`
	SearchRadius    int      `env:"PLACES_SEARCH_RADIUS,default=5000"`
	Timeout         Duration `env:"PLACES_TIMEOUT,default=30s"`
}

type GeminiConfig struct {
	APIKey   string   `env:"API_KEY,default="`
	Endpoint string   `env:"ENDPOINT,default=https://generativelanguage.googleapis.com/"`
	Model    string   `env:"MODEL,default=gemini-pro"`
	Timeout  Duration `env:"TIMEOUT,default=30s"`
}

type SessionConfig struct {
	TTL Duration `env:"TTL,default=7d"`
}

type SecurityConfig struct {
	PasswordHasher string `env:"PASSWORD_HASHER,default=sha256"`
	BCryptCost     int    `env:"BCRYPT_COST,default=12"`
}

type CacheConfig struct {
	PlaceDetailsTTL Duration `env:"PLACE_DETAILS_TTL,default=10m"`
}

type CORSConfig struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS,default=http://localhost:3000"`
	AllowedMethods []string `env:"ALLOWED_METHODS,default=GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders []string `env:"ALLOWED_HEADERS,default=Content-Type,Authorization"`
}

// DSN returns PostgreSQL connection string
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DBName, p.SSLMode)
}

// Address returns Redis connection address
func (r RedisConfig) Address() string {
	return fmt.Sprintf("%s:%s", r.Host, r.Port)
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := envconfig.Process(ctx, &config); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	config.Security.PasswordHasher = strings.ToLower(strings.TrimSpace(config.Security.PasswordHasher))
	switch config.Security.PasswordHasher {
	case HasherSHA256, HasherBCrypt:
	default:
		return nil, fmt.Errorf("SECURITY_PASSWORD_HASHER must be %q or %q, got %q",
			HasherSHA256, HasherBCrypt, config.Security.PasswordHasher)
	}

	if config.Session.TTL.Duration <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive")
	}

	return &config, nil
}

// MissingAPIKeys lists the provider keys that are not configured.
func (c *Config) MissingAPIKeys() []string {
	var missing []string
	if c.Google.MapsAPIKey == "" {
		missing = append(missing, "GOOGLE_MAPS_API_KEY")
	}
	if c.Gemini.APIKey == "" {
		missing = append(missing, "GEMINI_API_KEY")
	}
	return missing
}
