// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"

	"examrisk/internal/model"
)

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type JWTConfig struct {
	SecretKey string `mapstructure:"secret_key"`
}

// AppConfig はリスク算出・計画生成のアプリケーション設定
type AppConfig struct {
	// リスク区分のしきい値 (機関ごとに設定可能、狭義単調増加)
	RiskThresholdLow    float64 `mapstructure:"risk_threshold_low"`
	RiskThresholdMedium float64 `mapstructure:"risk_threshold_medium"`
	RiskThresholdHigh   float64 `mapstructure:"risk_threshold_high"`

	DefaultWeeklyHours  float64 `mapstructure:"default_weekly_hours"`
	DefaultDailyHourCap float64 `mapstructure:"default_daily_hour_cap"`
	HistoryPageSize     int     `mapstructure:"history_page_size"`
}

// Thresholds は model.RiskThresholds 形式でしきい値を返します
func (a AppConfig) Thresholds() model.RiskThresholds {
	return model.RiskThresholds{
		Low:    a.RiskThresholdLow,
		Medium: a.RiskThresholdMedium,
		High:   a.RiskThresholdHigh,
	}
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	CORS     CORSConfig     `mapstructure:"cors"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	App      AppConfig      `mapstructure:"app"`
	Log      LogConfig      `mapstructure:"log"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.Server.Port == "" {
		log.Println("Server port not set, using default ':8080'")
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.App.RiskThresholdLow == 0 && Cfg.App.RiskThresholdMedium == 0 && Cfg.App.RiskThresholdHigh == 0 {
		log.Println("Risk thresholds not set, using defaults 25/50/75")
		Cfg.App.RiskThresholdLow = DefaultRiskThresholdLow
		Cfg.App.RiskThresholdMedium = DefaultRiskThresholdMedium
		Cfg.App.RiskThresholdHigh = DefaultRiskThresholdHigh
	}
	if Cfg.App.DefaultWeeklyHours <= 0 {
		log.Println("Default weekly hours not set or invalid, using default '20'")
		Cfg.App.DefaultWeeklyHours = DefaultWeeklyHours
	}
	if Cfg.App.DefaultDailyHourCap <= 0 {
		log.Println("Default daily hour cap not set or invalid, using default '4.0'")
		Cfg.App.DefaultDailyHourCap = DefaultDailyHourCap
	}
	if Cfg.App.HistoryPageSize <= 0 {
		Cfg.App.HistoryPageSize = DefaultHistoryPageSize
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}

	// しきい値の検証はここ（呼び出し側）の責務。scoringパッケージは検証済みを前提とする。
	if err := Cfg.App.Thresholds().Validate(); err != nil {
		log.Printf("Invalid risk thresholds in config: low=%.1f medium=%.1f high=%.1f",
			Cfg.App.RiskThresholdLow, Cfg.App.RiskThresholdMedium, Cfg.App.RiskThresholdHigh)
		return err
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Risk Thresholds: %.1f/%.1f/%.1f",
		Cfg.App.RiskThresholdLow, Cfg.App.RiskThresholdMedium, Cfg.App.RiskThresholdHigh)

	return nil
}
