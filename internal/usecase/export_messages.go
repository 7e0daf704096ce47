package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/afero"

	"slack-export-parser/internal/adapters/source"
	"slack-export-parser/internal/domain"
	"slack-export-parser/internal/pkg/config"
	"slack-export-parser/internal/ports"
)

// SinkFactory открывает выходной отчет. Вызывается один раз за запуск.
type SinkFactory func() (ports.Exporter, error)

// Stats содержит счетчики одного запуска экспорта.
type Stats struct {
	FilesSeen         int
	FilesFailed       int
	ItemsSeen         int
	ItemsSkipped      int
	InvalidTimestamps int
	RowsWritten       int
}

// ExportMessagesUseCase инкапсулирует обработку дерева экспорта Slack в один отчет.
type ExportMessagesUseCase struct {
	cfg       *config.Config
	fs        afero.Fs
	discovery ports.FileDiscovery
	parser    ports.Parser
	extractor ports.ExtractionService
	openSink  SinkFactory
	logger    *slog.Logger
}

// NewExportMessagesUseCase создает новый экземпляр ExportMessagesUseCase.
func NewExportMessagesUseCase(
	cfg *config.Config,
	fs afero.Fs,
	discovery ports.FileDiscovery,
	parser ports.Parser,
	extractor ports.ExtractionService,
	openSink SinkFactory,
	logger *slog.Logger,
) *ExportMessagesUseCase {
	return &ExportMessagesUseCase{
		cfg:       cfg,
		fs:        fs,
		discovery: discovery,
		parser:    parser,
		extractor: extractor,
		openSink:  openSink,
		logger:    logger,
	}
}

// LoadDirectory читает файл пользователей и строит справочник имен.
// Любая ошибка чтения или разбора файла оборачивается в ErrUserFileUnreadable.
func (uc *ExportMessagesUseCase) LoadDirectory(path string) (*domain.UserDirectory, error) {
	data, err := source.NewFileSource(uc.fs, path).Fetch()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUserFileUnreadable, err)
	}

	users, skipped, err := uc.parser.ParseUsers(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	for _, skipErr := range skipped {
		uc.logger.Warn("Пропущена некорректная запись пользователя", "path", path, "error", skipErr)
	}

	directory := domain.NewUserDirectory(users)
	uc.logger.Info("Загружен справочник пользователей", "path", path, "users", directory.Len(), "skipped", len(skipped))
	return directory, nil
}

// Run выполняет полный экспорт: справочник, обход файлов, запись строк.
// Фатальна только ошибка загрузки справочника (и ошибки самого вывода);
// сбои отдельных файлов и элементов логируются и пропускаются.
func (uc *ExportMessagesUseCase) Run(ctx context.Context) (stats Stats, err error) {
	directory, err := uc.LoadDirectory(uc.cfg.Paths.UserFile)
	if err != nil {
		return stats, err
	}

	files, discoverErr := uc.discovery.Discover(uc.cfg.Paths.InputRoot)
	if discoverErr != nil {
		// Без входных файлов отчет все равно создается с одним заголовком.
		uc.logger.Error("Не удалось обойти директорию экспорта", "root", uc.cfg.Paths.InputRoot, "error", discoverErr)
	}
	uc.logger.Info("Найдены файлы каналов", "root", uc.cfg.Paths.InputRoot, "count", len(files))

	sink, err := uc.openSink()
	if err != nil {
		return stats, fmt.Errorf("failed to open output: %w", err)
	}
	defer func() {
		if closeErr := sink.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if err := sink.WriteHeader(domain.Header); err != nil {
		return stats, err
	}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			uc.logger.Warn("Экспорт прерван", "processed_files", stats.FilesSeen, "error", err)
			return stats, err
		}
		if err := uc.processFile(file, directory, sink, &stats); err != nil {
			return stats, err
		}
	}

	uc.logger.Info("Экспорт успешно завершен",
		"files", stats.FilesSeen,
		"failed_files", stats.FilesFailed,
		"items", stats.ItemsSeen,
		"skipped_items", stats.ItemsSkipped,
		"invalid_timestamps", stats.InvalidTimestamps,
		"rows", stats.RowsWritten,
	)
	return stats, nil
}

// processFile обрабатывает один файл канала. Возвращает ошибку только при сбое записи.
func (uc *ExportMessagesUseCase) processFile(
	file domain.DiscoveredFile,
	directory *domain.UserDirectory,
	sink ports.Exporter,
	stats *Stats,
) error {
	stats.FilesSeen++
	logger := uc.logger.With("path", file.Path, "channel", file.Channel)

	data, err := source.NewFileSource(uc.fs, file.Path).Fetch()
	if err != nil {
		stats.FilesFailed++
		logger.Error("Не удалось прочитать файл", "error", err)
		return nil
	}

	items, err := uc.parser.ParseMessages(data)
	if err != nil {
		stats.FilesFailed++
		logger.Error("Error decoding JSON file", "error", err)
		return nil
	}

	written := 0
	for i, item := range items {
		stats.ItemsSeen++

		row, err := uc.extractor.Extract(item, file.Channel, directory)
		if err != nil {
			stats.ItemsSkipped++
			if errors.Is(err, domain.ErrInvalidTimestamp) {
				stats.InvalidTimestamps++
			}
			logger.Debug("Пропущен элемент", "index", i, "error", err)
			continue
		}
		if row == nil {
			stats.ItemsSkipped++
			continue
		}

		if err := sink.WriteRow(*row); err != nil {
			return fmt.Errorf("failed to write row from %s: %w", file.Path, err)
		}
		stats.RowsWritten++
		written++
	}

	logger.Debug("Обработан файл", "items", len(items), "rows", written)
	return nil
}
