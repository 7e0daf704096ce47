package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"slack-export-parser/internal/adapters/exporter"
	"slack-export-parser/internal/adapters/parser"
	"slack-export-parser/internal/adapters/source"
	"slack-export-parser/internal/core/services"
	"slack-export-parser/internal/log"
	"slack-export-parser/internal/pkg/config"
	"slack-export-parser/internal/ports"
	"slack-export-parser/internal/usecase"
)

var (
	configPath string
	inputRoot  string
	userFile   string
	outputFile string
	format     string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "slack-export",
	Short: "Convert a Slack export directory into a single CSV report",
	Long: `slack-export walks a Slack export directory (one subdirectory per channel),
resolves user IDs through users.json and writes every message as one row:

  canal,fecha,hora,mensaje,adjunto,autor

Paths come from config.yml, SLACK_EXPORT_* environment variables or flags.

Examples:
  slack-export
  slack-export --input data --users data/users.json --output slack_messages.csv
  slack-export --output report.xlsx
  slack-export --format table`,
	SilenceUsage: true,
	RunE:         runExport,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&configPath, "config", "c", config.DefaultConfigFile, "path to the YAML config file")
	flags.StringVarP(&inputRoot, "input", "i", "", "root directory of the Slack export")
	flags.StringVarP(&userFile, "users", "u", "", "path to users.json")
	flags.StringVarP(&outputFile, "output", "o", "", "path to the output report")
	flags.StringVarP(&format, "format", "f", "", "output format: csv, xlsx or table")
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
}

func runExport(cmd *cobra.Command, args []string) error {
	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlags(cmd, cfg)

	// 2. Инициализация логгера. Логи идут в stderr, чтобы не смешиваться с форматом table.
	logger := newLogger(cmd.ErrOrStderr(), cfg.Logging)
	slog.SetDefault(logger)

	// 3. Валидация конфигурации (после инициализации логгера)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	logger = logger.With(slog.String("run_id", uuid.NewString()))

	// 4. Инициализация зависимостей
	fs := afero.NewOsFs()
	walker := source.NewWalker(fs, cfg.Input.Extensions)
	parserSvc := parser.NewJsonParser()
	extractorSvc := services.NewExtractionService(services.NewTextNormalizer())
	openSink := func() (ports.Exporter, error) {
		return exporter.New(fs, exporter.Options{
			Format:     cfg.Output.Format,
			Path:       cfg.Paths.OutputFile,
			SheetName:  cfg.Output.SheetName,
			UseCRLF:    cfg.Output.UseCRLF,
			TableWidth: cfg.Output.TableWidth,
			Stdout:     cmd.OutOrStdout(),
		})
	}
	exportUC := usecase.NewExportMessagesUseCase(cfg, fs, walker, parserSvc, extractorSvc, openSink, logger)

	// 5. Запуск экспорта с отменой по сигналу
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting export",
		"input_root", cfg.Paths.InputRoot,
		"user_file", cfg.Paths.UserFile,
		"output", cfg.Paths.OutputFile,
		"format", exporter.ResolveFormat(cfg.Output.Format, cfg.Paths.OutputFile),
	)
	if _, err := exportUC.Run(ctx); err != nil {
		logger.Error("export failed", "error", err)
		return err
	}
	return nil
}

// applyFlags переносит явно заданные флаги поверх конфигурации
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Paths.InputRoot = inputRoot
	}
	if flags.Changed("users") {
		cfg.Paths.UserFile = userFile
	}
	if flags.Changed("output") {
		cfg.Paths.OutputFile = outputFile
	}
	if flags.Changed("format") {
		cfg.Output.Format = format
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
}

func newLogger(w io.Writer, cfg config.Logging) *slog.Logger {
	opts := &slog.HandlerOptions{Level: log.ParseLevel(cfg.Level)}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return log.NewMaskedLogger(handler)
}
