package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"payslipgen/internal/domain/payslip"
)

type Config struct {
	Addr                 string
	Environment          string
	AssetsDir            string
	LogoURL              string
	EmployerName         string
	EmployerAddress      string
	EmployerPhone        string
	Currency             string
	JWTSecret            string
	TokenTTL             time.Duration
	OperatorEmail        string
	OperatorPasswordHash string
	MaxBodyBytes         int64
}

func Load() Config {
	return Config{
		Addr:                 getEnv("APP_ADDR", ":8080"),
		Environment:          getEnv("APP_ENV", "development"),
		AssetsDir:            getEnv("ASSETS_DIR", "assets"),
		LogoURL:              getEnv("LOGO_URL", "assets/Logo.jpg"),
		EmployerName:         getEnv("EMPLOYER_NAME", payslip.DefaultEmployerName),
		EmployerAddress:      getEnv("EMPLOYER_ADDRESS", payslip.DefaultEmployerAddress),
		EmployerPhone:        getEnv("EMPLOYER_PHONE", payslip.DefaultEmployerPhone),
		Currency:             getEnv("CURRENCY", payslip.DefaultCurrency),
		JWTSecret:            getEnv("JWT_SECRET", ""),
		TokenTTL:             getEnvDuration("TOKEN_TTL", 12*time.Hour),
		OperatorEmail:        getEnv("OPERATOR_EMAIL", ""),
		OperatorPasswordHash: getEnv("OPERATOR_PASSWORD_HASH", ""),
		MaxBodyBytes:         int64(getEnvInt("MAX_BODY_BYTES", 10485760)),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if c.Environment == "production" {
		if strings.TrimSpace(c.JWTSecret) == "" {
			return fmt.Errorf("JWT_SECRET must be set to a strong value in production")
		}
		if strings.TrimSpace(c.OperatorEmail) == "" || strings.TrimSpace(c.OperatorPasswordHash) == "" {
			return fmt.Errorf("OPERATOR_EMAIL and OPERATOR_PASSWORD_HASH must be set in production")
		}
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if strings.TrimSpace(c.Currency) == "" {
		return fmt.Errorf("CURRENCY must not be blank")
	}
	return nil
}
