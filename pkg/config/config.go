package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ruslano69/dbal/pkg/backends"
)

// Config содержит именованные подключения слоя доступа к данным
type Config struct {
	Databases map[string]Database `yaml:"databases"`
}

// Database определяет параметры одного подключения
type Database struct {
	Type        string `yaml:"type"`         // Тип: sqlite, mysql, mssql, postgres
	DSN         string `yaml:"dsn"`          // Строка подключения
	Timeout     int    `yaml:"timeout"`      // Таймаут команды в секундах (<= 0 = по умолчанию движка)
	ParamPrefix string `yaml:"param_prefix"` // Префикс имени параметра (по умолчанию "@")
	ParamStart  int    `yaml:"param_start"`  // Стартовый индекс параметров (по умолчанию 0)
}

// Load загружает конфигурацию из YAML файла
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse разбирает конфигурацию из YAML
func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	if len(c.Databases) == 0 {
		return fmt.Errorf("at least one database is required")
	}

	for name, db := range c.Databases {
		if err := db.Validate(); err != nil {
			return fmt.Errorf("database %q: %w", name, err)
		}
	}

	return nil
}

// Validate проверяет корректность Database
func (d *Database) Validate() error {
	if d.Type == "" {
		return fmt.Errorf("type is required")
	}
	if d.DSN == "" {
		return fmt.Errorf("dsn is required")
	}
	return nil
}

// Backend возвращает подключение именованной БД как backends.Config
// со значениями по умолчанию
func (c *Config) Backend(name string) (backends.Config, error) {
	db, ok := c.Databases[name]
	if !ok {
		return backends.Config{}, fmt.Errorf("unknown database: %q", name)
	}

	cfg := backends.Config{
		Type:        db.Type,
		DSN:         db.DSN,
		Timeout:     db.Timeout,
		ParamPrefix: db.ParamPrefix,
		ParamStart:  db.ParamStart,
	}
	cfg.ApplyDefaults()
	return cfg, nil
}
