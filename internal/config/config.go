package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	Attendance AttendanceConfig
	Payroll    PayrollConfig
	Leave      LeaveConfig
	Geocode    GeocodeConfig
	Storage    StorageConfig
}

type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
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
	Secret            string
	AccessExpiration  string
	RefreshExpiration string
}

// AttendanceConfig carries the punch business rules. The values ship as
// fixed policy; they are env-tunable only so staging can exercise edge
// cases without a rebuild.
type AttendanceConfig struct {
	LateCutoffHour   int // local wall clock, default 9
	LateCutoffMinute int // default 15
	FullDayHours     int // worked hours below this count as half day, default 9
}

// PayrollConfig carries the report salary arithmetic constants.
type PayrollConfig struct {
	DaysPerMonth   int // fixed 30-day divisor for salary-per-day
	AbsencePenalty int // flat deduction added once per report row
}

type LeaveConfig struct {
	AnnualAllotment float64 // default yearly balance granted per user
}

type GeocodeConfig struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

type StorageConfig struct {
	Type     string
	BasePath string
	BaseURL  string
}

func Load() (*Config, error) {
	// Missing .env is fine in containerized deployments; env vars win.
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}
	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: strings.Split(getEnv("APP_ALLOWED_ORIGINS", "http://localhost:3000"), ","),
	}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "staffhub_hrms"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
	}

	cutoffHour, err := strconv.Atoi(getEnv("ATTENDANCE_LATE_CUTOFF_HOUR", "9"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_LATE_CUTOFF_HOUR: %w", err)
	}
	cutoffMinute, err := strconv.Atoi(getEnv("ATTENDANCE_LATE_CUTOFF_MINUTE", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_LATE_CUTOFF_MINUTE: %w", err)
	}
	fullDayHours, err := strconv.Atoi(getEnv("ATTENDANCE_FULL_DAY_HOURS", "9"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_FULL_DAY_HOURS: %w", err)
	}
	config.Attendance = AttendanceConfig{
		LateCutoffHour:   cutoffHour,
		LateCutoffMinute: cutoffMinute,
		FullDayHours:     fullDayHours,
	}

	daysPerMonth, err := strconv.Atoi(getEnv("PAYROLL_DAYS_PER_MONTH", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_DAYS_PER_MONTH: %w", err)
	}
	absencePenalty, err := strconv.Atoi(getEnv("PAYROLL_ABSENCE_PENALTY", "200"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_ABSENCE_PENALTY: %w", err)
	}
	config.Payroll = PayrollConfig{
		DaysPerMonth:   daysPerMonth,
		AbsencePenalty: absencePenalty,
	}

	annualAllotment, err := strconv.ParseFloat(getEnv("LEAVE_ANNUAL_ALLOTMENT", "20"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid LEAVE_ANNUAL_ALLOTMENT: %w", err)
	}
	config.Leave = LeaveConfig{AnnualAllotment: annualAllotment}

	geocodeTimeout, err := time.ParseDuration(getEnv("GEOCODE_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid GEOCODE_TIMEOUT: %w", err)
	}
	config.Geocode = GeocodeConfig{
		BaseURL:   getEnv("GEOCODE_BASE_URL", "https://nominatim.openstreetmap.org"),
		UserAgent: getEnv("GEOCODE_USER_AGENT", "staffhub-hrms/1.0"),
		Timeout:   geocodeTimeout,
	}

	config.Storage = StorageConfig{
		Type:     getEnv("STORAGE_TYPE", "local"),
		BasePath: getEnv("STORAGE_BASE_PATH", "./uploads"),
		BaseURL:  getEnv("STORAGE_BASE_URL", "http://localhost:8080/uploads"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Attendance.LateCutoffHour < 0 || c.Attendance.LateCutoffHour > 23 {
		return fmt.Errorf("ATTENDANCE_LATE_CUTOFF_HOUR must be 0-23")
	}
	if c.Attendance.LateCutoffMinute < 0 || c.Attendance.LateCutoffMinute > 59 {
		return fmt.Errorf("ATTENDANCE_LATE_CUTOFF_MINUTE must be 0-59")
	}
	if c.Payroll.DaysPerMonth <= 0 {
		return fmt.Errorf("PAYROLL_DAYS_PER_MONTH must be positive")
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
