package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// Server
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"ENV"`

	// CORS
	CorsOrigins []string `mapstructure:"CORS_ORIGINS"`

	// AI Integration
	AnthropicAPIKey  string        `mapstructure:"ANTHROPIC_API_KEY"`
	OpenAIAPIKey     string        `mapstructure:"OPENAI_API_KEY"`
	AIRequestTimeout time.Duration `mapstructure:"AI_REQUEST_TIMEOUT"`
	AIMaxTokens      int           `mapstructure:"AI_MAX_TOKENS"`

	// Live data
	LiveCacheTTL time.Duration `mapstructure:"LIVE_CACHE_TTL"`

	// Logging
	LogLevel string `mapstructure:"LOG_LEVEL"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	// Set defaults
	viper.SetDefault("PORT", "5000")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")
	viper.SetDefault("ANTHROPIC_API_KEY", "")
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("AI_REQUEST_TIMEOUT", "30s")
	viper.SetDefault("AI_MAX_TOKENS", 500)
	viper.SetDefault("LIVE_CACHE_TTL", "30s")
	viper.SetDefault("LOG_LEVEL", "info")

	viper.AutomaticEnv()

	// Missing .env file is fine, env vars and defaults still apply
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Viper's default decode hooks split the comma-separated CORS list
	// and parse the duration strings.
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// IsDevelopment returns true when running in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
