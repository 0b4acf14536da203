package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const appName = "othello-engine"

var cfgFile = filepath.Join(appName, "config.json")

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigSymbols struct {
	Black string `json:"black"`
	White string `json:"white"`
	Hint  string `json:"hint"`
}

type Config struct {
	// Strict rejects out-of-range or illegal opponent moves instead of trusting them.
	Strict         bool          `json:"strict"`
	LogFile        string        `json:"log_file"`
	ShowValidMoves bool          `json:"show_valid_moves"`
	Symbols        ConfigSymbols `json:"symbols"`
}

var DefaultConfig = Config{
	ShowValidMoves: true,
	Symbols: ConfigSymbols{
		Black: "⚫",
		White: "⚪",
		Hint:  "·",
	},
}

// InitConfig loads the user's config file if there is one, on top of DefaultConfig.
func InitConfig() (*Config, error) {
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		config := DefaultConfig
		return &config, nil
	}

	return LoadConfigFile(absPath)
}

// LoadConfigFile reads the JSON config at path over DefaultConfig and validates it.
func LoadConfigFile(path string) (*Config, error) {
	config := DefaultConfig

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, &InvalidConfig{fmt.Sprintf("%s: %v", path, err)}
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	for _, s := range []string{c.Symbols.Black, c.Symbols.White, c.Symbols.Hint} {
		if s == "" {
			return &InvalidConfig{"symbols must not be empty"}
		}
	}
	if c.Symbols.Black == c.Symbols.White {
		return &InvalidConfig{"black and white symbols must differ"}
	}

	return nil
}

// Save writes the config to the user's XDG config directory and returns the path.
func (c *Config) Save() (string, error) {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return "", err
	}

	return absPath, c.SaveFile(absPath, 0664)
}

func (c *Config) SaveFile(path string, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, jsonData, perm)
}
