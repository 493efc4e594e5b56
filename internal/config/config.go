// internal/config/config.go
package config

import (
	"errors"
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log  LogConfig  `mapstructure:"log"`
	CORS CORSConfig `mapstructure:"cors"`
	App  AppConfig  `mapstructure:"app"`
	Auth struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"auth"`
	JWT    JWTConfig    `mapstructure:"jwt"`
	Mailer MailerConfig `mapstructure:"mailer"`
	SES    SESConfig    `mapstructure:"ses"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

// AppConfig は学習ロジックに関する設定
type AppConfig struct {
	RecommendationLimit int           `mapstructure:"recommendation_limit"`
	SessionSize         int           `mapstructure:"session_size"`
	PointMultiplier     int           `mapstructure:"point_multiplier"`
	SessionTTL          time.Duration `mapstructure:"session_ttl"`
}

type JWTConfig struct {
	SecretKey       string `mapstructure:"secret_key"`
	ExpirationHours int    `mapstructure:"expiration_hours"`
}

// MailerConfig の Type は "log" か "ses"
type MailerConfig struct {
	Type string `mapstructure:"type"`
}

// SESConfig の AuthType は "static_credentials" か "iam_role"
type SESConfig struct {
	Region          string `mapstructure:"region"`
	AuthType        string `mapstructure:"auth_type"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	From            string `mapstructure:"from"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP") // 例: APP_DATABASE_URL
	viper.AutomaticEnv()
	viper.BindEnv("auth.enabled", "AUTH_ENABLED")
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
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

	applyDefaults(&Cfg, viper.IsSet("auth.enabled"))

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Session Size: %d, Recommendation Limit: %d", Cfg.App.SessionSize, Cfg.App.RecommendationLimit)
	log.Printf("Auth Enabled: %t", Cfg.Auth.Enabled)

	return nil
}

// applyDefaults は未設定・不正な値をデフォルト値で埋めます。
func applyDefaults(c *Config, authSet bool) {
	if c.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		c.Server.Port = DefaultServerPort
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.App.RecommendationLimit <= 0 || c.App.RecommendationLimit > DefaultRecommendationLimit {
		log.Printf("App recommendation limit not set or invalid, using default '%d'", DefaultRecommendationLimit)
		c.App.RecommendationLimit = DefaultRecommendationLimit
	}
	if c.App.SessionSize <= 0 {
		c.App.SessionSize = DefaultSessionSize
	}
	if c.App.PointMultiplier <= 0 {
		c.App.PointMultiplier = DefaultPointMultiplier
	}
	if c.App.SessionTTL <= 0 {
		c.App.SessionTTL = DefaultSessionTTL
	}
	if c.JWT.ExpirationHours <= 0 {
		c.JWT.ExpirationHours = DefaultJWTExpirationHours
	}
	if c.Mailer.Type == "" {
		c.Mailer.Type = DefaultMailerType
	}
	if c.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}

	// 明示的に設定されていなければ認証は有効
	if !authSet {
		log.Println("Auth enabled flag not set, defaulting to true (enabled)")
		c.Auth.Enabled = true
	}
	if c.Auth.Enabled && c.JWT.SecretKey == "" {
		log.Println("Warning: JWT secret key is not set while auth is enabled.")
	}
}
