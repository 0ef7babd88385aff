package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	Identity IdentityConfig
	Payment  PaymentConfig
	Razorpay RazorpayConfig
	Stripe   StripeConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// IdentityConfig contains identity-provider webhook configuration
type IdentityConfig struct {
	WebhookSecret string
}

// PaymentConfig contains settings shared by all payment gateways
type PaymentConfig struct {
	Currency string
}

// RazorpayConfig contains Razorpay API credentials.
// An empty KeyID disables the gateway.
type RazorpayConfig struct {
	KeyID     string
	KeySecret string
	BaseURL   string
}

// StripeConfig contains Stripe API credentials.
// An empty SecretKey disables the gateway.
type StripeConfig struct {
	SecretKey string
	BaseURL   string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
