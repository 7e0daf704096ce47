// Package config предоставляет управление конфигурацией приложения
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Paths содержит пути входных и выходных файлов
type Paths struct {
	InputRoot  string `json:"input_root" yaml:"input_root" validate:"required"`
	UserFile   string `json:"user_file" yaml:"user_file" validate:"required"`
	OutputFile string `json:"output_file" yaml:"output_file"`
}

// Input содержит настройки обхода директории экспорта
type Input struct {
	Extensions []string `json:"extensions" yaml:"extensions" validate:"min=1,dive,required,startswith=."`
}

// Output содержит настройки отчета
type Output struct {
	Format     string `json:"format" yaml:"format" validate:"omitempty,oneof=csv xlsx table"`
	UseCRLF    bool   `json:"use_crlf" yaml:"use_crlf"`
	SheetName  string `json:"sheet_name" yaml:"sheet_name" validate:"required,max=31"` // ограничение Excel
	TableWidth int    `json:"table_width" yaml:"table_width" validate:"gt=0"`
}

// Logging содержит конфигурацию логирования
type Logging struct {
	Level  string `json:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Format string `json:"format" yaml:"format" validate:"oneof=text json"`
}

// Config содержит конфигурацию приложения
type Config struct {
	Paths   Paths   `json:"paths" yaml:"paths"`
	Input   Input   `json:"input" yaml:"input"`
	Output  Output  `json:"output" yaml:"output"`
	Logging Logging `json:"logging" yaml:"logging"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadConfig загружает конфигурацию: значения по умолчанию, затем YAML-файл,
// затем .env и переменные окружения SLACK_EXPORT_*.
// Отсутствие YAML-файла и .env не является ошибкой.
func LoadConfig(filename string) (*Config, error) {
	cfg := defaultConfig()

	if err := loadFromYAML(filename, cfg); err != nil {
		return nil, err
	}

	// Загрузка переменных окружения из .env файла, если он существует
	_ = godotenv.Load()

	if err := applyEnv(cfg); err != nil {
		return nil, fmt.Errorf("не удалось загрузить конфигурацию из env: %w", err)
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Paths: Paths{
			InputRoot:  DefaultInputRoot,
			UserFile:   DefaultUserFile,
			OutputFile: DefaultOutputFile,
		},
		Input: Input{
			Extensions: []string{DefaultInputExtension},
		},
		Output: Output{
			Format:     DefaultOutputFormat,
			UseCRLF:    DefaultUseCRLF,
			SheetName:  DefaultSheetName,
			TableWidth: DefaultTableWidth,
		},
		Logging: Logging{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// loadFromYAML накладывает значения из YAML-файла поверх cfg
func loadFromYAML(filename string, cfg *Config) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("не удалось прочитать файл конфигурации %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("не удалось разобрать YAML конфигурацию: %w", err)
	}

	return nil
}

// applyEnv накладывает переменные окружения поверх cfg
func applyEnv(cfg *Config) error {
	cfg.Paths.InputRoot = getEnv("SLACK_EXPORT_INPUT_ROOT", cfg.Paths.InputRoot)
	cfg.Paths.UserFile = getEnv("SLACK_EXPORT_USER_FILE", cfg.Paths.UserFile)
	cfg.Paths.OutputFile = getEnv("SLACK_EXPORT_OUTPUT_FILE", cfg.Paths.OutputFile)
	cfg.Output.Format = getEnv("SLACK_EXPORT_OUTPUT_FORMAT", cfg.Output.Format)
	cfg.Output.SheetName = getEnv("SLACK_EXPORT_SHEET_NAME", cfg.Output.SheetName)
	cfg.Logging.Level = getEnv("SLACK_EXPORT_LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = getEnv("SLACK_EXPORT_LOG_FORMAT", cfg.Logging.Format)

	if exts := getEnv("SLACK_EXPORT_EXTENSIONS", ""); exts != "" {
		cfg.Input.Extensions = splitList(exts)
	}

	if crlf := getEnv("SLACK_EXPORT_USE_CRLF", ""); crlf != "" {
		useCRLF, err := strconv.ParseBool(crlf)
		if err != nil {
			return fmt.Errorf("недопустимый SLACK_EXPORT_USE_CRLF: %w", err)
		}
		cfg.Output.UseCRLF = useCRLF
	}

	return nil
}

// Validate проверяет, являются ли значения конфигурации допустимыми
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if c.Output.Format != "table" && c.Paths.OutputFile == "" {
		return fmt.Errorf("paths.output_file не может быть пустым для формата %q", c.Output.Format)
	}

	return nil
}

// getEnv извлекает значение переменной окружения или возвращает значение по умолчанию, если она не установлена
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
