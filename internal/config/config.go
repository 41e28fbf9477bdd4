package config

import (
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public Public
}

type Public struct {
	BackendOrigin string `yaml:"backend_origin"` // e.g. http://api:8000
	Port          string `yaml:"port"`
	SecureCookies bool   `yaml:"secure_cookies"`
	LogLevel      string `yaml:"log_level"`
	LogJSON       bool   `yaml:"log_json"`
}

// APIBase builds the REST base path from the backend origin.
func (p Public) APIBase() string {
	return strings.TrimRight(p.BackendOrigin, "/") + "/api"
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)

	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	applyEnv(&public)
	return &Config{public}
}

// applyEnv lets the environment override the yaml values. The backend
// origin is the only externally-required setting.
func applyEnv(p *Public) {
	if v := os.Getenv("BACKEND_URL"); v != "" {
		p.BackendOrigin = v
	}
	if v := os.Getenv("PORT"); v != "" {
		p.Port = v
	}
}
