package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string          `mapstructure:"environment"`
	Server      ServerConfig    `mapstructure:"server"`
	Database    DatabaseConfig  `mapstructure:"database"`
	Logger      LoggerConfig    `mapstructure:"logger"`
	Auth        AuthConfig      `mapstructure:"auth"`
	Cache       CacheConfig     `mapstructure:"cache"`
	Messaging   MessagingConfig `mapstructure:"messaging"`
	Mail        MailConfig      `mapstructure:"mail"`
	Rollover    RolloverConfig  `mapstructure:"rollover"`
}

// IsDevelopment reports whether internal error details may be exposed
func (c *Config) IsDevelopment() bool {
	return c.Environment == Development
}

// IsProduction reports whether the production environment is active
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	CORSOrigins       []string      `mapstructure:"corsOrigins"`
	Timezone          string        `mapstructure:"timezone"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver             string        `mapstructure:"driver"`
	Host               string        `mapstructure:"host"`
	Port               string        `mapstructure:"port"`
	Username           string        `mapstructure:"username"`
	Password           string        `mapstructure:"password"`
	Database           string        `mapstructure:"database"`
	SSLMode            string        `mapstructure:"sslMode"`
	MaxOpenConns       int           `mapstructure:"maxOpenConns"`
	MaxIdleConns       int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime    time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime    time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout       time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts      int           `mapstructure:"retryAttempts"`
	RetryDelay         time.Duration `mapstructure:"retryDelay"`         // seconds
	SlowQueryThreshold time.Duration `mapstructure:"slowQueryThreshold"` // milliseconds
	AutoMigrate        bool          `mapstructure:"autoMigrate"`
	SeedDemo           bool          `mapstructure:"seedDemo"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Production bool   `mapstructure:"production"`
}

// AuthConfig contains token, hashing and email verification settings
type AuthConfig struct {
	JWTSecret         string        `mapstructure:"jwtSecret"`
	TokenTTL          time.Duration `mapstructure:"tokenTTL"` // hours
	BcryptCost        int           `mapstructure:"bcryptCost"`
	EmailVerification bool          `mapstructure:"emailVerification"`
	CodeTTL           time.Duration `mapstructure:"codeTTL"` // minutes
}

// CacheConfig contains the redis report cache settings
type CacheConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"` // seconds
}

// MessagingConfig contains the broker settings. An empty URL disables publishing.
type MessagingConfig struct {
	AMQPURL  string `mapstructure:"amqpURL"`
	Exchange string `mapstructure:"exchange"`
}

// MailConfig contains SMTP settings. An empty host logs codes instead of sending them.
type MailConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// RolloverConfig contains the month-end scheduler settings
type RolloverConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	CheckInterval time.Duration `mapstructure:"checkInterval"` // minutes
}
