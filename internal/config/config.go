package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	ServerHost   string `yaml:"server_host"`
	ServerPort   string `yaml:"server_port"`
	DataPath     string `yaml:"data_path"`
	SuggestLimit int    `yaml:"suggest_limit"`
}

var AppConfig Config

const defaultConfigPath = "geolingo.yaml"

// Load fills AppConfig from an optional yaml file overridden by
// environment variables. A .env file is honored if present.
func Load() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found")
	}

	AppConfig = Config{
		ServerHost:   "",
		ServerPort:   "8080",
		DataPath:     "data/world_data.json",
		SuggestLimit: 10,
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, &AppConfig); err != nil {
			return fmt.Errorf("failed to parse config file %s: %w", configPath, err)
		}
	} else if os.Getenv("CONFIG_PATH") != "" {
		// An explicitly requested config file must exist.
		return fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if v := os.Getenv("SERVER_HOST"); v != "" {
		AppConfig.ServerHost = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		AppConfig.ServerPort = v
	}
	if v := os.Getenv("DATA_PATH"); v != "" {
		AppConfig.DataPath = v
	}
	if v := os.Getenv("SUGGEST_LIMIT"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 {
			return fmt.Errorf("SUGGEST_LIMIT must be a positive integer, got %q", v)
		}
		AppConfig.SuggestLimit = limit
	}

	if AppConfig.SuggestLimit <= 0 {
		return fmt.Errorf("suggest_limit must be positive, got %d", AppConfig.SuggestLimit)
	}

	fmt.Println("Configuration loaded successfully")
	return nil
}
