package config

import (
	"log"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	LogLevel       string
	MigrationsPath string

	// JWTSecret enables bearer authentication when set. Without it the actor is read from the request body.
	JWTSecret          string
	CORSAllowedOrigins []string
	RateLimit          string
	RedisURL           string

	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration

	TxIsolation           pgx.TxIsoLevel
	CurrencyPlaces        int32
	RevenueAccountPrefix  string
	ExpenseAccountPrefix  string
	ClosureChecklistSteps []string
}

var isolationLevels = map[string]pgx.TxIsoLevel{
	"SERIALIZABLE":     pgx.Serializable,
	"REPEATABLE READ":  pgx.RepeatableRead,
	"READ COMMITTED":   pgx.ReadCommitted,
	"READ UNCOMMITTED": pgx.ReadUncommitted,
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("SERVER_READ_TIMEOUT", "15s")
	viper.SetDefault("SERVER_WRITE_TIMEOUT", "30s")
	viper.SetDefault("TX_ISOLATION", "REPEATABLE READ")
	viper.SetDefault("CURRENCY_PLACES", 2)
	viper.SetDefault("REVENUE_ACCOUNT_PREFIX", "4")
	viper.SetDefault("EXPENSE_ACCOUNT_PREFIX", "5")
	viper.SetDefault("CLOSURE_CHECKLIST_STEPS", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.LogLevel = strings.ToLower(viper.GetString("LOG_LEVEL"))
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET not set. Bearer authentication is disabled and actor_id is taken from request bodies.")
	}
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.RedisURL = viper.GetString("REDIS_URL")

	cfg.ServerReadTimeout = durationOrDefault("SERVER_READ_TIMEOUT", 15*time.Second)
	cfg.ServerWriteTimeout = durationOrDefault("SERVER_WRITE_TIMEOUT", 30*time.Second)

	isoName := strings.ToUpper(strings.TrimSpace(viper.GetString("TX_ISOLATION")))
	iso, ok := isolationLevels[isoName]
	if !ok {
		iso = pgx.RepeatableRead
		log.Printf("Warning: Invalid value for TX_ISOLATION ('%s'). Defaulting to %s.\n", isoName, iso)
	}
	cfg.TxIsolation = iso

	places := viper.GetInt("CURRENCY_PLACES")
	if places < 0 || places > 8 {
		log.Printf("Warning: Invalid value for CURRENCY_PLACES (%d). Defaulting to 2.\n", places)
		places = 2
	}
	cfg.CurrencyPlaces = int32(places)

	cfg.RevenueAccountPrefix = viper.GetString("REVENUE_ACCOUNT_PREFIX")
	cfg.ExpenseAccountPrefix = viper.GetString("EXPENSE_ACCOUNT_PREFIX")
	if cfg.RevenueAccountPrefix == "" || cfg.ExpenseAccountPrefix == "" {
		log.Println("Warning: empty account prefix configured. Falling back to 4 (revenue) and 5 (expense).")
		cfg.RevenueAccountPrefix, cfg.ExpenseAccountPrefix = "4", "5"
	}

	// Semicolon separated, since step names may contain commas.
	cfg.ClosureChecklistSteps = splitSteps(viper.GetString("CLOSURE_CHECKLIST_STEPS"))

	return cfg, nil
}

func durationOrDefault(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def)
		}
		return def
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func splitSteps(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ";") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
