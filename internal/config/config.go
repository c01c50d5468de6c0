package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/nmakarov/levelup/internal/models"
	"gopkg.in/yaml.v3"
)

// TemplateTask declares one default task. Target == 0 means a plain
// checkbox task, anything above zero a counted task.
type TemplateTask struct {
	Name   string `yaml:"name"`
	Target int    `yaml:"target"`
}

type Config struct {
	Port            string         `yaml:"port"`
	DBPath          string         `yaml:"db_path"`
	Timezone        string         `yaml:"timezone"`
	HistoryKeepDays int            `yaml:"history_keep_days"`
	Template        []TemplateTask `yaml:"template"`
}

func Default() *Config {
	return &Config{
		Port:     "8080",
		DBPath:   "data/levelup.db",
		Timezone: "America/Los_Angeles",
	}
}

// Load reads the YAML config at path, interpolates ${ENV} placeholders
// and applies environment overrides. A missing file is not an error:
// the built-in defaults are used.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		content := string(data)
		for _, env := range os.Environ() {
			pair := strings.SplitN(env, "=", 2)
			if len(pair) != 2 {
				continue
			}
			content = strings.ReplaceAll(content, "${"+pair[0]+"}", pair[1])
		}
		if err := yaml.Unmarshal([]byte(content), cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.DBPath = getEnv("DB_PATH", cfg.DBPath)
	cfg.Timezone = getEnv("TZ", cfg.Timezone)
	if raw := os.Getenv("HISTORY_KEEP_DAYS"); raw != "" {
		keep, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid HISTORY_KEEP_DAYS value: %w", err)
		}
		cfg.HistoryKeepDays = keep
	}

	return cfg, nil
}

// TemplateTasks converts the configured template into task states.
// Returns nil when the config does not declare a template.
func (cfg *Config) TemplateTasks() map[string]models.TaskState {
	if len(cfg.Template) == 0 {
		return nil
	}
	template := make(map[string]models.TaskState, len(cfg.Template))
	for _, task := range cfg.Template {
		name := strings.TrimSpace(task.Name)
		if name == "" {
			continue
		}
		if task.Target > 0 {
			template[name] = models.CountedTask(0, task.Target)
		} else {
			template[name] = models.BooleanTask(false)
		}
	}
	return template
}

func (cfg *Config) Location() (*time.Location, error) {
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}
	return location, nil
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
