package ports

import (
	"slack-export-parser/internal/domain"
)

// DataSource определяет интерфейс для получения исходных данных файла.
type DataSource interface {
	// Fetch загружает данные из источника и возвращает их в виде байтового среза.
	Fetch() ([]byte, error)
}

// FileDiscovery перечисляет файлы каналов в корневой директории экспорта.
type FileDiscovery interface {
	Discover(root string) ([]domain.DiscoveredFile, error)
}

// Parser определяет интерфейс для разбора файлов экспорта.
type Parser interface {
	// ParseUsers преобразует содержимое users.json в список записей.
	// Некорректные записи пропускаются и возвращаются вторым значением.
	ParseUsers(data []byte) ([]domain.UserRecord, []error, error)
	// ParseMessages преобразует содержимое файла канала в список элементов.
	ParseMessages(data []byte) ([]domain.MessageItem, error)
}

// Normalizer преобразует текст сообщения в читаемый вид.
type Normalizer interface {
	Normalize(text string, directory *domain.UserDirectory) string
}

// ExtractionService строит строку отчета из одного элемента.
type ExtractionService interface {
	// Extract возвращает nil без ошибки, если элемент не является сообщением.
	Extract(item domain.MessageItem, channel string, directory *domain.UserDirectory) (*domain.OutputRow, error)
}

// Exporter определяет интерфейс для вывода результата.
type Exporter interface {
	// WriteHeader записывает строку заголовка. Вызывается один раз до строк данных.
	WriteHeader(header []string) error
	// WriteRow записывает одну строку отчета.
	WriteRow(row domain.OutputRow) error
	// Close сбрасывает буферы и освобождает ресурсы.
	Close() error
}
