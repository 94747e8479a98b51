package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, TTLs, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Search   SearchConfig
	Payment  PaymentConfig
	Provider ProviderConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Ho_Chi_Minh"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Ho_Chi_Minh"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"25200"` // 7*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type SearchConfig struct {
	ProviderTimeout time.Duration `envconfig:"SEARCH_PROVIDER_TIMEOUT" default:"15s"`
	ResultTTL       time.Duration `envconfig:"SEARCH_RESULT_TTL" default:"5m"`
	GeocodeTTL      time.Duration `envconfig:"SEARCH_GEOCODE_TTL" default:"24h"`
	ScanTTL         time.Duration `envconfig:"SEARCH_SCAN_TTL" default:"10m"`
	ScanDelay       time.Duration `envconfig:"SEARCH_SCAN_DELAY" default:"2s"`
	ScanWindowDays  int           `envconfig:"SEARCH_SCAN_WINDOW_DAYS" default:"7"`
	ScanResultCap   int           `envconfig:"SEARCH_SCAN_RESULT_CAP" default:"10"`
}

type PaymentConfig struct {
	DisplayCurrency   string `envconfig:"PAYMENT_DISPLAY_CURRENCY" default:"VND"`
	WalletCheckoutURL string `envconfig:"PAYMENT_WALLET_CHECKOUT_URL" default:"https://pay.example.com/checkout"`
	BankAccountName   string `envconfig:"PAYMENT_BANK_ACCOUNT_NAME" required:"true"`
	BankAccountNumber string `envconfig:"PAYMENT_BANK_ACCOUNT_NUMBER" required:"true"`
	GatewayURL        string `envconfig:"PAYMENT_GATEWAY_URL" required:"true"`
	GatewayAPIKey     string `envconfig:"PAYMENT_GATEWAY_API_KEY" required:"true"`
}

type ProviderConfig struct {
	BaseURL string `envconfig:"PROVIDER_BASE_URL" required:"true"`
	APIKey  string `envconfig:"PROVIDER_API_KEY" required:"true"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Ho_Chi_Minh",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Ho_Chi_Minh",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 25200,
		},
		Search: SearchConfig{
			ProviderTimeout: 15 * time.Second,
			ResultTTL:       5 * time.Minute,
			GeocodeTTL:      24 * time.Hour,
			ScanTTL:         10 * time.Minute,
			ScanDelay:       0, // No throttling in tests
			ScanWindowDays:  7,
			ScanResultCap:   10,
		},
		Payment: PaymentConfig{
			DisplayCurrency:   "VND",
			WalletCheckoutURL: "https://pay.example.com/checkout",
			BankAccountName:   "TRAVEL CORE JSC",
			BankAccountNumber: "0071000123456",
			GatewayURL:        "http://localhost:18080/gateway",
			GatewayAPIKey:     "test-gateway-key",
		},
		Provider: ProviderConfig{
			BaseURL: "http://localhost:18081/inventory",
			APIKey:  "test-provider-key",
		},
	}
}
