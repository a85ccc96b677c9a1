package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"pomotray/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	WorkMinutes            int  `yaml:"work_minutes"`
	ShortBreakMinutes      int  `yaml:"short_break_minutes"`
	LongBreakMinutes       int  `yaml:"long_break_minutes"`
	SessionsUntilLongBreak int  `yaml:"sessions_until_long_break"`
	AutoStartBreaks        bool `yaml:"auto_start_breaks"`
	AutoStartFocus         bool `yaml:"auto_start_focus"`
	NotificationsEnabled   bool `yaml:"notifications_enabled"`
	SoundEnabled           bool `yaml:"sound_enabled"`
	LaunchAtLogin          bool `yaml:"launch_at_login"`
}

// LoadSettings reads user preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return loadFromFile(configPath)
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return err
	}
	return saveToFile(configPath, settings)
}

func loadFromFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

func saveToFile(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		WorkMinutes:            int(settings.WorkDuration / time.Minute),
		ShortBreakMinutes:      int(settings.ShortBreakDuration / time.Minute),
		LongBreakMinutes:       int(settings.LongBreakDuration / time.Minute),
		SessionsUntilLongBreak: settings.SessionsUntilLongBreak,
		AutoStartBreaks:        settings.AutoStartBreaks,
		AutoStartFocus:         settings.AutoStartFocus,
		NotificationsEnabled:   settings.NotificationsEnabled,
		SoundEnabled:           settings.SoundEnabled,
		LaunchAtLogin:          settings.LaunchAtLogin,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func resolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.WorkMinutes > 0 {
		settings.WorkDuration = time.Duration(fileData.WorkMinutes) * time.Minute
	}
	if fileData.ShortBreakMinutes > 0 {
		settings.ShortBreakDuration = time.Duration(fileData.ShortBreakMinutes) * time.Minute
	}
	if fileData.LongBreakMinutes > 0 {
		settings.LongBreakDuration = time.Duration(fileData.LongBreakMinutes) * time.Minute
	}
	if fileData.SessionsUntilLongBreak >= 2 {
		settings.SessionsUntilLongBreak = fileData.SessionsUntilLongBreak
	}

	settings.AutoStartBreaks = fileData.AutoStartBreaks
	settings.AutoStartFocus = fileData.AutoStartFocus
	settings.NotificationsEnabled = fileData.NotificationsEnabled
	settings.SoundEnabled = fileData.SoundEnabled
	settings.LaunchAtLogin = fileData.LaunchAtLogin
}
