package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Business scheduling policy.
	BusinessTimezone string `mapstructure:"BUSINESS_TIMEZONE"`
	DayStartHour     int    `mapstructure:"DAY_START_HOUR"`
	DayEndHour       int    `mapstructure:"DAY_END_HOUR"`
	BaseSlotMinutes  int    `mapstructure:"BASE_SLOT_MINUTES"`
	PerScreenMinutes int    `mapstructure:"PER_SCREEN_MINUTES"`

	// Multi-day search windows.
	DateSearchDays    int `mapstructure:"DATE_SEARCH_DAYS"`
	NextAvailableDays int `mapstructure:"NEXT_AVAILABLE_DAYS"`
	MaxSlotsWanted    int `mapstructure:"MAX_SLOTS_WANTED"`

	// Calendar source configuration. Mode is "google" or "ics".
	CalendarMode           string `mapstructure:"CALENDAR_MODE"`
	GoogleCalendarID       string `mapstructure:"GOOGLE_CALENDAR_ID"`
	GoogleCredentialsFile  string `mapstructure:"GOOGLE_CREDENTIALS_FILE"`
	ICSFeedURL             string `mapstructure:"ICS_FEED_URL"`
	CalendarTimeoutSeconds int    `mapstructure:"CALENDAR_TIMEOUT_SECONDS"`

	// Conversational surface.
	BookingLink   string `mapstructure:"BOOKING_LINK"`
	BusinessPhone string `mapstructure:"BUSINESS_PHONE"`

	// Downstream CRM/automation sink.
	CRMWebhookURL     string `mapstructure:"CRM_WEBHOOK_URL"`
	CRMTimeoutSeconds int    `mapstructure:"CRM_TIMEOUT_SECONDS"`

	// Mongo lead records.
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Redis configuration (lead delivery queue).
	RedisAddr        string `mapstructure:"REDIS_ADDR"`
	RedisPassword    string `mapstructure:"REDIS_PASSWORD"`
	RedisLeadQueueDB int    `mapstructure:"REDIS_LEAD_QUEUE_DB"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)

	viper.SetDefault("BUSINESS_TIMEZONE", "America/New_York")
	viper.SetDefault("DAY_START_HOUR", 8)
	viper.SetDefault("DAY_END_HOUR", 17)
	viper.SetDefault("BASE_SLOT_MINUTES", 60)
	viper.SetDefault("PER_SCREEN_MINUTES", 20)

	viper.SetDefault("DATE_SEARCH_DAYS", 7)
	viper.SetDefault("NEXT_AVAILABLE_DAYS", 14)
	viper.SetDefault("MAX_SLOTS_WANTED", 4)

	viper.SetDefault("CALENDAR_MODE", "google")
	viper.SetDefault("GOOGLE_CALENDAR_ID", "primary")
	viper.SetDefault("GOOGLE_CREDENTIALS_FILE", "")
	viper.SetDefault("ICS_FEED_URL", "")
	viper.SetDefault("CALENDAR_TIMEOUT_SECONDS", 5)

	viper.SetDefault("BOOKING_LINK", "")
	viper.SetDefault("BUSINESS_PHONE", "")
	viper.SetDefault("CRM_WEBHOOK_URL", "")
	viper.SetDefault("CRM_TIMEOUT_SECONDS", 10)

	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_LEAD_QUEUE_DB", 3)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
