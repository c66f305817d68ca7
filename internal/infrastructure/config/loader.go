package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is prepended to every environment override, e.g. FT_DATABASE_HOST
const EnvPrefix = "FT"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
}

// LoadConfig loads .env files, then the yaml of the FT_ENV environment, then env overrides
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}
	return Load(getEnvironment(), ConfigPaths...)
}

// Load reads configs/<env>.yaml from the first matching path. A missing file is
// not an error; defaults and FT_ variables still apply.
func Load(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// Validate checks the values the API cannot start without
func (c *Config) Validate() error {
	var missing []string
	if c.Database.Host == "" {
		missing = append(missing, "database.host")
	}
	if c.Database.Database == "" {
		missing = append(missing, "database.database")
	}
	if c.Database.Username == "" {
		missing = append(missing, "database.username")
	}
	if c.IsProduction() && c.Auth.JWTSecret == "" {
		missing = append(missing, "auth.jwtSecret")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	switch c.Database.Driver {
	case "postgres", "mysql":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	return nil
}

// loadDotEnvFile loads the first .env file found in the search paths
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults registers every key so FT_ variables can override it
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 0)       // seconds, 0 keeps event streams open
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.corsOrigins", []string{"http://localhost:5173"})
	v.SetDefault("server.timezone", "UTC")

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.host", "")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.username", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1)            // seconds
	v.SetDefault("database.slowQueryThreshold", 200) // milliseconds
	v.SetDefault("database.autoMigrate", true)
	v.SetDefault("database.seedDemo", false)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.production", false)

	v.SetDefault("auth.jwtSecret", "")
	v.SetDefault("auth.tokenTTL", 24) // hours
	v.SetDefault("auth.bcryptCost", 10)
	v.SetDefault("auth.emailVerification", false)
	v.SetDefault("auth.codeTTL", 15) // minutes

	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.addr", "localhost:6379")
	v.SetDefault("cache.password", "")
	v.SetDefault("cache.db", 0)
	v.SetDefault("cache.ttl", 300) // seconds

	v.SetDefault("messaging.amqpURL", "")
	v.SetDefault("messaging.exchange", "fintrack.events")

	v.SetDefault("mail.host", "")
	v.SetDefault("mail.port", 587)
	v.SetDefault("mail.username", "")
	v.SetDefault("mail.password", "")
	v.SetDefault("mail.from", "FinTrack <no-reply@fintrack.local>")

	v.SetDefault("rollover.enabled", true)
	v.SetDefault("rollover.checkInterval", 60) // minutes
}

// getEnvironment determines the environment to use based on FT_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processDurations converts the integer units used in yaml to durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = config.Server.ReadTimeout * time.Second
	config.Server.WriteTimeout = config.Server.WriteTimeout * time.Second
	config.Server.IdleTimeout = config.Server.IdleTimeout * time.Second
	config.Server.ReadHeaderTimeout = config.Server.ReadHeaderTimeout * time.Second
	config.Server.ShutdownTimeout = config.Server.ShutdownTimeout * time.Second

	config.Database.ConnMaxLifetime = config.Database.ConnMaxLifetime * time.Minute
	config.Database.ConnMaxIdleTime = config.Database.ConnMaxIdleTime * time.Minute
	config.Database.QueryTimeout = config.Database.QueryTimeout * time.Second
	config.Database.RetryDelay = config.Database.RetryDelay * time.Second
	config.Database.SlowQueryThreshold = config.Database.SlowQueryThreshold * time.Millisecond

	config.Auth.TokenTTL = config.Auth.TokenTTL * time.Hour
	config.Auth.CodeTTL = config.Auth.CodeTTL * time.Minute

	config.Cache.TTL = config.Cache.TTL * time.Second
	config.Rollover.CheckInterval = config.Rollover.CheckInterval * time.Minute
}
