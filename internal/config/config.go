package config

import (
	"errors"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingCredentials is returned by Validate when a required API key is
// absent. Callers must treat this as fatal before any pipeline stage runs.
var ErrMissingCredentials = errors.New("missing required credentials")

type Config struct {
	AI          AIConfig          `mapstructure:"ai"`
	Search      SearchConfig      `mapstructure:"search"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Application ApplicationConfig `mapstructure:"application"`
	Watcher     WatcherConfig     `mapstructure:"watcher"`
}

type AIConfig struct {
	GeminiKey string `mapstructure:"gemini_key"`
	Model     string `mapstructure:"model"`
}

type SearchConfig struct {
	SerpAPIKey string `mapstructure:"serpapi_key"`
}

type DatabaseConfig struct {
	// URL is optional; when empty the generation history store is disabled.
	URL string `mapstructure:"url"`
}

type ApplicationConfig struct {
	Name      string `mapstructure:"name"`
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	OutputDir string `mapstructure:"output_dir"`
}

type WatcherConfig struct {
	// Inbox is optional; when empty the topic inbox watcher is disabled.
	Inbox string `mapstructure:"inbox"`
}

func (a *ApplicationConfig) Addr() string {
	return fmt.Sprintf("%s:%d", a.Host, a.Port)
}

// Validate fails fast on the two required secrets. Everything else has a
// default or is an optional feature toggle.
func (c *Config) Validate() error {
	if c.AI.GeminiKey == "" {
		return fmt.Errorf("%w: GEMINI_API_KEY is not set", ErrMissingCredentials)
	}
	if c.Search.SerpAPIKey == "" {
		return fmt.Errorf("%w: SERPAPI_API_KEY is not set", ErrMissingCredentials)
	}
	return nil
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not found, using system environment variables")
	}

	viper.SetConfigFile("config.yaml") // Support optional config.yaml
	viper.AutomaticEnv()

	// Environment variable mappings
	mappings := []struct {
		key, env string
	}{
		{"ai.gemini_key", "GEMINI_API_KEY"},
		{"ai.model", "GEMINI_MODEL"},
		{"search.serpapi_key", "SERPAPI_API_KEY"},
		{"database.url", "DB_URL"},
		{"application.host", "HOST"},
		{"application.port", "PORT"},
		{"application.output_dir", "OUTPUT_DIR"},
		{"watcher.inbox", "TOPIC_INBOX"},
	}

	for _, m := range mappings {
		viper.BindEnv(m.key, m.env)
	}
	viper.BindEnv("ai.gemini_key", "GEMINI_KEY")

	// Defaults
	viper.SetDefault("application.name", "deckgen")
	viper.SetDefault("application.host", "")
	viper.SetDefault("application.port", 8080)
	viper.SetDefault("application.output_dir", ".")
	viper.SetDefault("ai.model", "gemini-2.5-flash")

	if err := viper.ReadInConfig(); err != nil {
		// Ignore if config.yaml is missing
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
