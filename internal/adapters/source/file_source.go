package source

import (
	"fmt"

	"github.com/spf13/afero"

	"slack-export-parser/internal/ports"
)

// FileSource реализует интерфейс DataSource для чтения одного файла через afero.Fs.
type FileSource struct {
	fs       afero.Fs
	filePath string
}

// NewFileSource создает новый экземпляр FileSource.
func NewFileSource(fs afero.Fs, filePath string) ports.DataSource {
	return &FileSource{fs: fs, filePath: filePath}
}

// Fetch читает файл по указанному пути и возвращает его содержимое.
func (s *FileSource) Fetch() ([]byte, error) {
	if s.filePath == "" {
		return nil, fmt.Errorf("не указан путь к файлу")
	}

	data, err := afero.ReadFile(s.fs, s.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", s.filePath, err)
	}

	return data, nil
}
