package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds the process-level settings loaded once at startup.
type Config struct {
	AppPort         int    `mapstructure:"APP_PORT"`
	MongoURL        string `mapstructure:"MONGO_URL"`
	DBName          string `mapstructure:"DB_NAME"`
	DatabasePath    string `mapstructure:"DATABASE_PATH"`
	LogLevel        string `mapstructure:"LOG_LEVEL"`
	ProviderTimeout int    `mapstructure:"PROVIDER_TIMEOUT"`
}

// ProviderSnapshot is a point-in-time read of the provider-related
// configuration. It is rebuilt for every chat request (see NewProviderSnapshot)
// so that changing AI_PROVIDER or a credential at runtime takes effect on the
// next call, and so that selection logic can be tested against a plain value
// instead of process environment.
type ProviderSnapshot struct {
	Override       string
	OpenAIKey      string
	AnthropicKey   string
	GoogleKey      string
	OpenAIModel    string
	AnthropicModel string
	GeminiModel    string
}

// LoadConfig reads the optional .env file and the process environment into a
// Config, establishing defaults for everything including the per-provider
// model names consumed later by NewProviderSnapshot.
func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 8000)
	viper.SetDefault("MONGO_URL", "")
	viper.SetDefault("DB_NAME", "inner_story")
	viper.SetDefault("DATABASE_PATH", "/data/innerstory.db")
	viper.SetDefault("LOG_LEVEL", "INFO")
	viper.SetDefault("PROVIDER_TIMEOUT", 60)

	viper.SetDefault("AI_PROVIDER", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o")
	viper.SetDefault("ANTHROPIC_MODEL", "claude-3.5-sonnet")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./backend")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// NewProviderSnapshot re-reads the provider configuration. Deliberately not
// cached: the original deployment flips providers by editing the environment,
// and each request should observe the current values.
func NewProviderSnapshot() ProviderSnapshot {
	return ProviderSnapshot{
		Override:       viper.GetString("AI_PROVIDER"),
		OpenAIKey:      viper.GetString("OPENAI_API_KEY"),
		AnthropicKey:   viper.GetString("ANTHROPIC_API_KEY"),
		GoogleKey:      viper.GetString("GOOGLE_API_KEY"),
		OpenAIModel:    viper.GetString("OPENAI_MODEL"),
		AnthropicModel: viper.GetString("ANTHROPIC_MODEL"),
		GeminiModel:    viper.GetString("GEMINI_MODEL"),
	}
}
