// Package config loads process configuration from the environment.
//
// All settings are plain environment variables read through viper so that
// defaults live in one place. The two provider credentials are required and
// validated at startup: the process refuses to boot without them rather than
// failing on the first request.
package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Required credentials. Missing values abort startup.
var (
	ErrNoAssemblyKey = errors.New("config: ASSEMBLY_API_KEY not set")
	ErrNoOpenAIKey   = errors.New("config: OPENAI_API_KEY not set")
)

// Config holds all runtime settings for the voice agent.
type Config struct {
	// Provider credentials
	AssemblyAPIKey string
	OpenAIAPIKey   string

	// Reply generation
	ChatModel   string // hosted chat-completion model
	OllamaURL   string // OpenAI-compatible base URL of the local backend, empty disables the tier
	OllamaModel string

	// Speech synthesis
	TTSModel string
	TTSVoice string

	// Conversation
	HistoryWindow int // turns of stored history sent per request

	// HTTP host
	Port        string
	FrontendURL string // CORS allow-origin, "*" for development
	StaticDir   string

	// Logging
	LogLevel string
}

// Load reads configuration from the environment and validates required keys.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("CHAT_MODEL", "gpt-4o-mini")
	v.SetDefault("OLLAMA_URL", "http://localhost:11434/v1")
	v.SetDefault("OLLAMA_MODEL", "llama3.2")
	v.SetDefault("TTS_MODEL", "tts-1")
	v.SetDefault("TTS_VOICE", "alloy")
	v.SetDefault("HISTORY_WINDOW", 10)
	v.SetDefault("PORT", "8000")
	v.SetDefault("FRONTEND_URL", "*")
	v.SetDefault("STATIC_DIR", "./frontend")
	v.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		AssemblyAPIKey: v.GetString("ASSEMBLY_API_KEY"),
		OpenAIAPIKey:   v.GetString("OPENAI_API_KEY"),
		ChatModel:      v.GetString("CHAT_MODEL"),
		OllamaURL:      v.GetString("OLLAMA_URL"),
		OllamaModel:    v.GetString("OLLAMA_MODEL"),
		TTSModel:       v.GetString("TTS_MODEL"),
		TTSVoice:       v.GetString("TTS_VOICE"),
		HistoryWindow:  v.GetInt("HISTORY_WINDOW"),
		Port:           v.GetString("PORT"),
		FrontendURL:    v.GetString("FRONTEND_URL"),
		StaticDir:      v.GetString("STATIC_DIR"),
		LogLevel:       v.GetString("LOG_LEVEL"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that required credentials are present.
func (c *Config) Validate() error {
	if c.AssemblyAPIKey == "" {
		return ErrNoAssemblyKey
	}
	if c.OpenAIAPIKey == "" {
		return ErrNoOpenAIKey
	}
	if c.HistoryWindow <= 0 {
		c.HistoryWindow = 10
	}
	return nil
}
