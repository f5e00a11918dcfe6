package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the application configuration
type Config struct {
	Fonts    FontConfig     `json:"fonts"`
	Video    VideoConfig    `json:"video"`
	Annotate AnnotateConfig `json:"annotate"`
}

// FontConfig holds configuration for the annotation fonts
type FontConfig struct {
	Dir string `json:"dir"`
}

// VideoConfig holds configuration for video output
type VideoConfig struct {
	OutputPath string `json:"output_path"`
	Codec      string `json:"codec"`
}

// AnnotateConfig holds configuration for the annotation overlays
type AnnotateConfig struct {
	EmojiDir     string `json:"emoji_dir"`
	DefaultLabel string `json:"default_label"`
}

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		Fonts: FontConfig{
			Dir: "data",
		},
		Video: VideoConfig{
			OutputPath: "data/output.mp4",
			Codec:      "mp4v",
		},
		Annotate: AnnotateConfig{
			EmojiDir:     "data/emoji",
			DefaultLabel: "face",
		},
	}
}

// LoadFromFile loads configuration from a JSON file
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveToFile saves configuration to a JSON file
func (c *Config) SaveToFile(filename string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Fonts.Dir == "" {
		return fmt.Errorf("fonts.dir cannot be empty")
	}

	if c.Video.OutputPath == "" {
		return fmt.Errorf("video.output_path cannot be empty")
	}

	if len(c.Video.Codec) != 4 {
		return fmt.Errorf("video.codec must be a four-character fourcc tag")
	}

	return nil
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}
	return filepath.Join(home, ".config", "emotion-ai", "config.json")
}
