// Package config loads the pipeline configuration from YAML or TOML files,
// fills defaults and pulls LLM credentials from the environment.
package config
