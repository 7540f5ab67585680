package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	SQLitePath   string

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	// Refresh Token Config
	RefreshTokenExpiryDuration time.Duration
	RefreshTokenCookieName     string
	RefreshTokenCookiePath     string

	// Mock OTP login
	OTPExpiryDuration time.Duration
	MockOTPCode       string // static dev bypass, ignored in production

	// Advisor (LLM collaborator)
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	// Projection policy constants
	SIPAnnualRate        float64
	SIPHorizonYears      int
	SIPContributionRatio float64
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("SQLITE_PATH", "data/fintracker.db")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "fin-tracker-app")
	viper.SetDefault("REFRESH_TOKEN_EXPIRY_DURATION", "168h")
	viper.SetDefault("REFRESH_TOKEN_COOKIE_NAME", "rtid")
	viper.SetDefault("REFRESH_TOKEN_COOKIE_PATH", "/api/v1/auth")
	viper.SetDefault("OTP_EXPIRY_DURATION", "5m")
	viper.SetDefault("MOCK_OTP_CODE", "123456")
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("OPENAI_BASE_URL", "")
	viper.SetDefault("SIP_ANNUAL_RATE", 0.12)
	viper.SetDefault("SIP_HORIZON_YEARS", 10)
	viper.SetDefault("SIP_CONTRIBUTION_RATIO", 0.5)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.SQLitePath = viper.GetString("SQLITE_PATH")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" && cfg.IsProduction {
		log.Println("Warning: JWT_SECRET not set in production. Using default insecure key.")
	}

	jwtExpiry, err := time.ParseDuration(viper.GetString("JWT_EXPIRY_DURATION"))
	if err != nil {
		log.Printf("Warning: invalid JWT_EXPIRY_DURATION, defaulting to 1h: %v\n", err)
		jwtExpiry = time.Hour
	}
	cfg.JWTExpiryDuration = jwtExpiry
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	refreshExpiry, err := time.ParseDuration(viper.GetString("REFRESH_TOKEN_EXPIRY_DURATION"))
	if err != nil {
		log.Printf("Warning: invalid REFRESH_TOKEN_EXPIRY_DURATION, defaulting to 168h: %v\n", err)
		refreshExpiry = 168 * time.Hour
	}
	cfg.RefreshTokenExpiryDuration = refreshExpiry
	cfg.RefreshTokenCookieName = viper.GetString("REFRESH_TOKEN_COOKIE_NAME")
	cfg.RefreshTokenCookiePath = viper.GetString("REFRESH_TOKEN_COOKIE_PATH")

	otpExpiry, err := time.ParseDuration(viper.GetString("OTP_EXPIRY_DURATION"))
	if err != nil {
		log.Printf("Warning: invalid OTP_EXPIRY_DURATION, defaulting to 5m: %v\n", err)
		otpExpiry = 5 * time.Minute
	}
	cfg.OTPExpiryDuration = otpExpiry
	cfg.MockOTPCode = viper.GetString("MOCK_OTP_CODE")

	cfg.OpenAIAPIKey = viper.GetString("OPENAI_API_KEY")
	cfg.OpenAIModel = viper.GetString("OPENAI_MODEL")
	cfg.OpenAIBaseURL = viper.GetString("OPENAI_BASE_URL")
	if cfg.OpenAIAPIKey == "" {
		log.Println("Warning: OPENAI_API_KEY not set. Advice generation will return the fallback message.")
	}

	cfg.SIPAnnualRate = viper.GetFloat64("SIP_ANNUAL_RATE")
	cfg.SIPHorizonYears = viper.GetInt("SIP_HORIZON_YEARS")
	cfg.SIPContributionRatio = viper.GetFloat64("SIP_CONTRIBUTION_RATIO")

	return cfg, nil
}
