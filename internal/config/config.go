package config

import (
	"fmt"
	"strings"
)

// LLM providers
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// What to do when the completion call fails
const (
	FailureAbort       = "abort"
	FailurePlaceholder = "placeholder"
)

// Config holds every setting of a run.
type Config struct {
	Paths      PathsConfig      `yaml:"paths" toml:"paths"`
	Downloader DownloaderConfig `yaml:"downloader" toml:"downloader"`
	LLM        LLMConfig        `yaml:"llm" toml:"llm"`
	Notes      NotesConfig      `yaml:"notes" toml:"notes"`
	Logging    LoggingConfig    `yaml:"logging" toml:"logging"`
}

// PathsConfig locates the downloads and notes directories.
type PathsConfig struct {
	Output           string `yaml:"output" toml:"output"`
	Notes            string `yaml:"notes" toml:"notes"`
	CleanupDownloads bool   `yaml:"cleanup_downloads" toml:"cleanup_downloads"`
}

// DownloaderConfig describes the external downloader and how its output is read.
type DownloaderConfig struct {
	BinaryPath         string   `yaml:"binary_path" toml:"binary_path"`
	OutputFlag         string   `yaml:"output_flag" toml:"output_flag"`
	ExtraArgs          []string `yaml:"extra_args" toml:"extra_args"`
	Markers            []string `yaml:"markers" toml:"markers"`
	VideoExtensions    []string `yaml:"video_extensions" toml:"video_extensions"`
	SubtitleExtensions []string `yaml:"subtitle_extensions" toml:"subtitle_extensions"`
	Watch              bool     `yaml:"watch" toml:"watch"`
}

// LLMConfig selects the completion backend and its request settings.
type LLMConfig struct {
	Provider       string   `yaml:"provider" toml:"provider"`
	Model          string   `yaml:"model" toml:"model"`
	APIKeys        []string `yaml:"api_keys" toml:"api_keys"`
	BaseURL        string   `yaml:"base_url" toml:"base_url"`
	MaxTokens      int      `yaml:"max_tokens" toml:"max_tokens"`
	Temperature    *float32 `yaml:"temperature" toml:"temperature"`
	MaxInputChars  int      `yaml:"max_input_chars" toml:"max_input_chars"`
	SystemPrompt   string   `yaml:"system_prompt" toml:"system_prompt"`
	TimeoutSeconds int      `yaml:"timeout_seconds" toml:"timeout_seconds"`
	FailurePolicy  string   `yaml:"failure_policy" toml:"failure_policy"`
}

// NotesConfig controls the notes file name, title and DOCX export.
type NotesConfig struct {
	Title      string `yaml:"title" toml:"title"`
	FilePrefix string `yaml:"file_prefix" toml:"file_prefix"`
	DOCX       bool   `yaml:"docx" toml:"docx"`
}

// LoggingConfig sets the log level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

const (
	defaultSystemPrompt  = "You are an assistant that creates well-structured, comprehensive notes from video subtitles."
	defaultTemperature   = float32(0.3)
	defaultGeminiModel   = "gemini-2.5-flash"
	defaultOpenAIModel   = "gpt-4o-mini"
	defaultMaxTokens     = 4000
	defaultMaxInputChars = 15000
	defaultTimeout       = 120
)

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	// Defaults never fail validation.
	_ = cfg.Validate()
	return cfg
}

// Validate fills unset fields with defaults and rejects invalid values.
func (c *Config) Validate() error {
	if c.Paths.Output == "" {
		c.Paths.Output = "downloads"
	}
	if c.Paths.Notes == "" {
		c.Paths.Notes = "notes"
	}

	if c.Downloader.BinaryPath == "" {
		c.Downloader.BinaryPath = "you-get"
	}
	if c.Downloader.OutputFlag == "" {
		c.Downloader.OutputFlag = "--output-dir"
	}
	if c.Downloader.ExtraArgs == nil {
		c.Downloader.ExtraArgs = []string{"--debug"}
	}
	if len(c.Downloader.Markers) == 0 {
		c.Downloader.Markers = []string{"Saving to:"}
	}
	if len(c.Downloader.VideoExtensions) == 0 {
		c.Downloader.VideoExtensions = []string{".mp4", ".flv", ".avi", ".mkv", ".webm"}
	}
	if len(c.Downloader.SubtitleExtensions) == 0 {
		c.Downloader.SubtitleExtensions = []string{".srt", ".ass", ".vtt"}
	}
	for _, m := range c.Downloader.Markers {
		if strings.TrimSpace(m) == "" {
			return fmt.Errorf("downloader.markers must not contain empty entries")
		}
	}

	c.LLM.Provider = strings.ToLower(strings.TrimSpace(c.LLM.Provider))
	switch c.LLM.Provider {
	case "":
		c.LLM.Provider = ProviderGemini
	case ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("llm.provider %q is not supported (want %s or %s)", c.LLM.Provider, ProviderGemini, ProviderOpenAI)
	}
	if c.LLM.Model == "" {
		if c.LLM.Provider == ProviderOpenAI {
			c.LLM.Model = defaultOpenAIModel
		} else {
			c.LLM.Model = defaultGeminiModel
		}
	}
	if c.LLM.MaxTokens < 0 {
		return fmt.Errorf("llm.max_tokens must not be negative")
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = defaultMaxTokens
	}
	if c.LLM.Temperature == nil {
		t := defaultTemperature
		c.LLM.Temperature = &t
	}
	if *c.LLM.Temperature < 0 || *c.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}
	if c.LLM.MaxInputChars < 0 {
		return fmt.Errorf("llm.max_input_chars must not be negative")
	}
	if c.LLM.MaxInputChars == 0 {
		c.LLM.MaxInputChars = defaultMaxInputChars
	}
	if c.LLM.SystemPrompt == "" {
		c.LLM.SystemPrompt = defaultSystemPrompt
	}
	if c.LLM.TimeoutSeconds == 0 {
		c.LLM.TimeoutSeconds = defaultTimeout
	}
	c.LLM.FailurePolicy = strings.ToLower(strings.TrimSpace(c.LLM.FailurePolicy))
	switch c.LLM.FailurePolicy {
	case "":
		c.LLM.FailurePolicy = FailureAbort
	case FailureAbort, FailurePlaceholder:
	default:
		return fmt.Errorf("llm.failure_policy %q is not supported (want %s or %s)", c.LLM.FailurePolicy, FailureAbort, FailurePlaceholder)
	}

	if c.Notes.Title == "" {
		c.Notes.Title = "Notes for Bilibili Video"
	}
	if c.Notes.FilePrefix == "" {
		c.Notes.FilePrefix = "notes_"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
