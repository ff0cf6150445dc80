package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	S3       S3Config       `mapstructure:"s3"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Gemini   GeminiConfig   `mapstructure:"gemini"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// DatabaseConfig points at the MongoDB used for session snapshots.
// An empty URI runs the dashboard memory-only.
type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// JWTConfig defines JWT specific configuration.
type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

// AuthConfig holds the single dashboard user's bcrypt password hash.
type AuthConfig struct {
	PasswordHash string `mapstructure:"password_hash"`
}

// GeminiConfig configures the hosted-model coach. An empty APIKey
// disables the coaching feature but not the rest of the dashboard.
type GeminiConfig struct {
	APIKey         string        `mapstructure:"api_key"`
	BaseURL        string        `mapstructure:"base_url"`
	StandardModel  string        `mapstructure:"standard_model"`
	ExpertModel    string        `mapstructure:"expert_model"`
	TipModel       string        `mapstructure:"tip_model"`
	Temperature    float64       `mapstructure:"temperature"`
	ThinkingBudget int           `mapstructure:"thinking_budget"`
	Timeout        time.Duration `mapstructure:"timeout"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Environment variables override the file, with nested keys
	// flattened: gemini.api_key -> GEMINI_API_KEY.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("database.uri", "")
	viper.SetDefault("database.name", "fitcoach")
	viper.SetDefault("s3.use_ssl", true)
	viper.SetDefault("jwt.expiration", "24h")
	viper.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com/v1beta")
	viper.SetDefault("gemini.standard_model", "gemini-3-flash-preview")
	viper.SetDefault("gemini.expert_model", "gemini-3-pro-preview")
	viper.SetDefault("gemini.tip_model", "gemini-2.5-flash-lite-latest")
	viper.SetDefault("gemini.temperature", 0.7)
	viper.SetDefault("gemini.thinking_budget", 32768)
	viper.SetDefault("gemini.timeout", "2m")

	err = viper.ReadInConfig()
	// A missing config file is fine: defaults plus env vars carry a
	// full configuration.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return config, nil
}
