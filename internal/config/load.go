package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed sample_config.yaml
var sampleConfig string

// SampleConfig returns the annotated sample configuration.
func SampleConfig() string {
	return sampleConfig
}

// Load reads a YAML or TOML configuration file (chosen by extension),
// applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse toml config: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse yaml config: %w", err)
		}
	}

	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// LoadOptional behaves like Load but returns the defaults when path does
// not exist and missingOK is set.
func LoadOptional(path string, missingOK bool) (*Config, error) {
	if _, err := os.Stat(path); err != nil && os.IsNotExist(err) && missingOK {
		cfg := &Config{}
		cfg.ApplyEnv()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("validate config: %w", err)
		}
		return cfg, nil
	}
	return Load(path)
}

// LoadDotEnv loads variables from a .env file into the process environment.
// A missing file is not an error; existing variables are not overridden.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv fills empty LLM credentials from the environment.
func (c *Config) ApplyEnv() {
	if len(c.LLM.APIKeys) == 0 {
		provider := strings.ToLower(strings.TrimSpace(c.LLM.Provider))
		if provider == ProviderOpenAI {
			c.LLM.APIKeys = splitKeys(os.Getenv("OPENAI_API_KEY"))
		} else {
			c.LLM.APIKeys = splitKeys(os.Getenv("GEMINI_API_KEYS"))
			if len(c.LLM.APIKeys) == 0 {
				c.LLM.APIKeys = splitKeys(os.Getenv("GEMINI_API_KEY"))
			}
		}
	}
	if c.LLM.BaseURL == "" && strings.EqualFold(strings.TrimSpace(c.LLM.Provider), ProviderOpenAI) {
		c.LLM.BaseURL = strings.TrimSpace(os.Getenv("OPENAI_BASE_URL"))
	}
}

func splitKeys(raw string) []string {
	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
