package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Payroll    PayrollConfig
	Compliance ComplianceConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// PayrollConfig holds every pay rate and statutory deduction parameter.
// Defaults are the documented ones; any of them can be overridden through
// the environment so nothing is hardcoded inside the calculators.
type PayrollConfig struct {
	DefaultHourlyRate decimal.Decimal
	OvertimeRate      decimal.Decimal
	NightRate         decimal.Decimal
	HolidayRate       decimal.Decimal

	// Progressive income tax: each marginal rate applies to the slice of
	// gross pay above the previous boundary. The last bracket is open-ended.
	TaxBrackets []TaxBracket

	NationalPensionRate     decimal.Decimal
	NationalPensionCap      decimal.Decimal // caps the pensionable base, not the deduction
	HealthInsuranceRate     decimal.Decimal
	EmploymentInsuranceRate decimal.Decimal
}

type TaxBracket struct {
	UpTo decimal.Decimal // zero value means open-ended
	Rate decimal.Decimal
}

// ComplianceConfig holds the working-hour limits evaluated per employee week.
type ComplianceConfig struct {
	RegularDailyMinutes   int
	RegularWeeklyHours    float64
	MaxWeeklyOvertime     float64
	MaxContinuousWorkDays int
	// NightWorkStartTime is a zero-padded "HH:MM" clock compared
	// lexicographically against same-day check-out times.
	NightWorkStartTime string
}

func Load() (*Config, error) {
	// Missing .env is fine in deployed environments; values come from the
	// process environment there.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "commute"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	payroll, err := loadPayrollConfig()
	if err != nil {
		return nil, err
	}
	config.Payroll = payroll

	compliance, err := loadComplianceConfig()
	if err != nil {
		return nil, err
	}
	config.Compliance = compliance

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadPayrollConfig() (PayrollConfig, error) {
	cfg := DefaultPayrollConfig()

	var err error
	if cfg.DefaultHourlyRate, err = getEnvDecimal("PAYROLL_DEFAULT_HOURLY_RATE", cfg.DefaultHourlyRate); err != nil {
		return PayrollConfig{}, err
	}
	if cfg.OvertimeRate, err = getEnvDecimal("PAYROLL_OVERTIME_RATE", cfg.OvertimeRate); err != nil {
		return PayrollConfig{}, err
	}
	if cfg.NightRate, err = getEnvDecimal("PAYROLL_NIGHT_RATE", cfg.NightRate); err != nil {
		return PayrollConfig{}, err
	}
	if cfg.HolidayRate, err = getEnvDecimal("PAYROLL_HOLIDAY_RATE", cfg.HolidayRate); err != nil {
		return PayrollConfig{}, err
	}
	if cfg.NationalPensionRate, err = getEnvDecimal("PAYROLL_PENSION_RATE", cfg.NationalPensionRate); err != nil {
		return PayrollConfig{}, err
	}
	if cfg.NationalPensionCap, err = getEnvDecimal("PAYROLL_PENSION_CAP", cfg.NationalPensionCap); err != nil {
		return PayrollConfig{}, err
	}
	if cfg.HealthInsuranceRate, err = getEnvDecimal("PAYROLL_HEALTH_RATE", cfg.HealthInsuranceRate); err != nil {
		return PayrollConfig{}, err
	}
	if cfg.EmploymentInsuranceRate, err = getEnvDecimal("PAYROLL_EMPLOYMENT_RATE", cfg.EmploymentInsuranceRate); err != nil {
		return PayrollConfig{}, err
	}

	return cfg, nil
}

func loadComplianceConfig() (ComplianceConfig, error) {
	cfg := DefaultComplianceConfig()

	regularWeekly, err := strconv.ParseFloat(getEnv("COMPLIANCE_REGULAR_WEEKLY_HOURS", "40"), 64)
	if err != nil {
		return ComplianceConfig{}, fmt.Errorf("invalid COMPLIANCE_REGULAR_WEEKLY_HOURS: %w", err)
	}
	maxOvertime, err := strconv.ParseFloat(getEnv("COMPLIANCE_MAX_WEEKLY_OVERTIME", "12"), 64)
	if err != nil {
		return ComplianceConfig{}, fmt.Errorf("invalid COMPLIANCE_MAX_WEEKLY_OVERTIME: %w", err)
	}

	maxContinuous, err := strconv.Atoi(getEnv("COMPLIANCE_MAX_CONTINUOUS_DAYS", "6"))
	if err != nil {
		return ComplianceConfig{}, fmt.Errorf("invalid COMPLIANCE_MAX_CONTINUOUS_DAYS: %w", err)
	}

	cfg.RegularWeeklyHours = regularWeekly
	cfg.MaxWeeklyOvertime = maxOvertime
	cfg.MaxContinuousWorkDays = maxContinuous
	cfg.NightWorkStartTime = getEnv("COMPLIANCE_NIGHT_WORK_START", cfg.NightWorkStartTime)

	return cfg, nil
}

// DefaultPayrollConfig returns the documented default rates.
func DefaultPayrollConfig() PayrollConfig {
	return PayrollConfig{
		DefaultHourlyRate: decimal.NewFromInt(9860),
		OvertimeRate:      decimal.NewFromFloat(1.5),
		NightRate:         decimal.NewFromFloat(1.5),
		HolidayRate:       decimal.NewFromFloat(2.0),
		TaxBrackets: []TaxBracket{
			{UpTo: decimal.NewFromInt(1060000), Rate: decimal.Zero},
			{UpTo: decimal.NewFromInt(3000000), Rate: decimal.NewFromFloat(0.027)},
			{UpTo: decimal.NewFromInt(6000000), Rate: decimal.NewFromFloat(0.05)},
			{UpTo: decimal.Decimal{}, Rate: decimal.NewFromFloat(0.08)},
		},
		NationalPensionRate:     decimal.NewFromFloat(0.045),
		NationalPensionCap:      decimal.NewFromInt(5900000),
		HealthInsuranceRate:     decimal.NewFromFloat(0.03545),
		EmploymentInsuranceRate: decimal.NewFromFloat(0.009),
	}
}

// DefaultComplianceConfig returns the documented default limits
// (8h regular day, 40h week, 12h overtime cap, night work from 22:00).
func DefaultComplianceConfig() ComplianceConfig {
	return ComplianceConfig{
		RegularDailyMinutes:   480,
		RegularWeeklyHours:    40,
		MaxWeeklyOvertime:     12,
		MaxContinuousWorkDays: 6,
		NightWorkStartTime:    "22:00",
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if !c.Payroll.DefaultHourlyRate.IsPositive() {
		return fmt.Errorf("PAYROLL_DEFAULT_HOURLY_RATE must be positive")
	}
	if !c.Payroll.OvertimeRate.IsPositive() || !c.Payroll.NightRate.IsPositive() || !c.Payroll.HolidayRate.IsPositive() {
		return fmt.Errorf("payroll rate multipliers must be positive")
	}
	if c.Compliance.RegularWeeklyHours <= 0 || c.Compliance.MaxWeeklyOvertime < 0 {
		return fmt.Errorf("compliance weekly limits must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDecimal(key string, fallback decimal.Decimal) (decimal.Decimal, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
