package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Admin login credentials; there is a single operator account.
	AdminUser     string
	AdminPassword string

	// StorageRoot is the directory holding generated documents and
	// uploaded invoices.
	StorageRoot string

	// FinanceEmail is the fallback recipient of invoice-request emails
	// when no settings row overrides it.
	FinanceEmail   string
	EmailFrom      string
	EmailFromName  string
	SendGridAPIKey string

	// LoginRateLimit is a ulule/limiter formatted rate (e.g. "5-M").
	LoginRateLimit string

	// Company identity fallbacks for document generation.
	CompanyLegalName string
	CompanyAddress   string
	SignatoryName    string
	SignatoryTitle   string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "nest-backend")
	viper.SetDefault("ADMIN_USER", "admin")
	viper.SetDefault("ADMIN_PASSWORD", "")
	viper.SetDefault("STORAGE_ROOT", "storage")
	viper.SetDefault("FINANCE_EMAIL", "")
	viper.SetDefault("EMAIL_FROM", "noreply@nestapt.example")
	viper.SetDefault("EMAIL_FROM_NAME", "NEST Serviced Apartment")
	viper.SetDefault("SENDGRID_API_KEY", "")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("COMPANY_LEGAL_NAME", "NEST Serviced Apartment")
	viper.SetDefault("COMPANY_ADDRESS", "")
	viper.SetDefault("SIGNATORY_NAME", "")
	viper.SetDefault("SIGNATORY_TITLE", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 12 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.AdminUser = viper.GetString("ADMIN_USER")
	cfg.AdminPassword = viper.GetString("ADMIN_PASSWORD")
	if cfg.AdminPassword == "" {
		log.Println("Warning: ADMIN_PASSWORD environment variable not set. Login is disabled until it is configured.")
	}

	cfg.StorageRoot = viper.GetString("STORAGE_ROOT")
	cfg.FinanceEmail = viper.GetString("FINANCE_EMAIL")
	cfg.EmailFrom = viper.GetString("EMAIL_FROM")
	cfg.EmailFromName = viper.GetString("EMAIL_FROM_NAME")
	cfg.SendGridAPIKey = viper.GetString("SENDGRID_API_KEY")
	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")

	cfg.CompanyLegalName = viper.GetString("COMPANY_LEGAL_NAME")
	cfg.CompanyAddress = viper.GetString("COMPANY_ADDRESS")
	cfg.SignatoryName = viper.GetString("SIGNATORY_NAME")
	cfg.SignatoryTitle = viper.GetString("SIGNATORY_TITLE")

	return cfg, nil
}
