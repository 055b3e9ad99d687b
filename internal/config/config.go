package config

import (
	"errors"
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOpenAI Provider = "openai"
)

var defaultModels = map[Provider]string{
	ProviderGemini: "gemini-2.5-flash",
	ProviderOpenAI: "gpt-4o-mini",
}

type Config struct {
	Generation GenerationConfig `mapstructure:"generation"`
	Anki       AnkiConfig       `mapstructure:"anki"`
	Session    SessionConfig    `mapstructure:"session"`
}

type GenerationConfig struct {
	Provider      Provider `mapstructure:"provider" validate:"oneof=gemini openai"`
	Model         string   `mapstructure:"model"`
	ExampleDomain string   `mapstructure:"example_domain" validate:"required"`
	RetryAttempts uint     `mapstructure:"retry_attempts" validate:"lte=5"`
	GeminiAPIKey  string   `mapstructure:"gemini_api_key" validate:"required_if=Provider gemini"`
	OpenAIAPIKey  string   `mapstructure:"openai_api_key" validate:"required_if=Provider openai"`
}

// APIKey returns the secret of the selected provider.
func (c GenerationConfig) APIKey() string {
	if c.Provider == ProviderOpenAI {
		return c.OpenAIAPIKey
	}
	return c.GeminiAPIKey
}

type AnkiConfig struct {
	URL  string `mapstructure:"url" validate:"required,http_url"`
	Deck string `mapstructure:"deck" validate:"required"`
}

type SessionConfig struct {
	ExitKeyword string `mapstructure:"exit_keyword" validate:"required,single_word"`
}

// ConfigurationError is returned by Load for every configuration problem.
// It is fatal: the caller must not start the session.
type ConfigurationError struct {
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err == nil {
		return e.Reason
	}
	return fmt.Sprintf("%s: %v", e.Reason, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/ankigen")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("generation.provider", string(ProviderGemini))
	v.SetDefault("generation.model", "")
	v.SetDefault("generation.example_domain", "médico")
	v.SetDefault("generation.retry_attempts", 0)
	v.SetDefault("anki.url", "http://localhost:8765")
	v.SetDefault("anki.deck", "Prueba")
	v.SetDefault("session.exit_keyword", "salir")

	// Secrets are bound to environment variables only
	bindings := []struct {
		key string
		env string
	}{
		{key: "generation.gemini_api_key", env: "GOOGLE_API_KEY"},
		{key: "generation.openai_api_key", env: "OPENAI_API_KEY"},
		{key: "generation.model", env: "ANKIGEN_MODEL"},
		{key: "anki.url", env: "ANKI_CONNECT_URL"},
	}
	for _, binding := range bindings {
		if err := v.BindEnv(binding.key, binding.env); err != nil {
			return nil, &ConfigurationError{
				Reason: fmt.Sprintf("failed to bind %s environment variable", binding.env),
				Err:    err,
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, &ConfigurationError{
				Reason: "configuration file found but could not be read. Please check the file format and permissions",
				Err:    err,
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &ConfigurationError{Reason: "invalid configuration format", Err: err}
	}
	if cfg.Generation.Model == "" {
		cfg.Generation.Model = defaultModels[cfg.Generation.Provider]
	}

	if err := loader.validator.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, &ConfigurationError{Reason: "failed to validate configuration", Err: err}
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, &ConfigurationError{
			Reason: fmt.Sprintf("invalid configuration: %s", strings.Join(errorMsgs, ", ")),
		}
	}

	return &cfg, nil
}

// Load reads the configuration from configFile, or from the default search paths when it is empty.
func Load(configFile string) (*Config, error) {
	loader, err := NewConfigLoader(configFile)
	if err != nil {
		return nil, &ConfigurationError{Reason: "failed to create config loader", Err: err}
	}
	return loader.Load()
}
