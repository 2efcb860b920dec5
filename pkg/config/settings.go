// Package config provides configuration management for the dragonbones CLI.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kverran/dragonbones-go/pkg/infrastructure/logger"
)

// Settings holds the configuration options for the dragonbones CLI.
type Settings struct {
	// settingsFilePath is the OS path to the settings file.
	settingsFilePath string

	// logger is the logger reference for debug output.
	logger logger.Logger

	// ExportDirectory is the folder exported assets are written to.
	ExportDirectory string `yaml:"exportDirectory"`

	// ExportFormat selects the pose export format: "gltf", "glb", or
	// "text".
	ExportFormat string `yaml:"exportFormat"`

	// Frame is the default frame number to evaluate.
	Frame int `yaml:"frame"`

	// Speed is the default keyframe-duration multiplier.
	Speed int `yaml:"speed"`

	// SpriteScale resizes extracted sprites; 1 keeps the atlas size.
	SpriteScale float64 `yaml:"spriteScale"`

	// LoggerVerbosity sets the verbosity level of the logger.
	LoggerVerbosity int `yaml:"loggerVerbosity"`
}

// NewSettings creates a new Settings instance with default values.
func NewSettings(settingsFilePath string, log logger.Logger) *Settings {
	return &Settings{
		settingsFilePath: settingsFilePath,
		logger:           log,
		ExportDirectory:  "Exports/",
		ExportFormat:     "gltf",
		Frame:            0,
		Speed:            1,
		SpriteScale:      1,
		LoggerVerbosity:  0,
	}
}

// Initialize loads settings from the settings file. A missing file keeps
// the defaults and is reported to the caller.
func (s *Settings) Initialize() error {
	data, err := os.ReadFile(s.settingsFilePath)
	if err != nil {
		s.logger.LogError("Error loading settings file: " + err.Error())
		return err
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		s.logger.LogError("Error parsing settings file: " + err.Error())
		return fmt.Errorf("failed to parse settings: %w", err)
	}

	return nil
}
