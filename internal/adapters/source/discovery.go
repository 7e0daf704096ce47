package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"slack-export-parser/internal/domain"
	"slack-export-parser/internal/ports"
)

// Walker рекурсивно ищет файлы каналов с заданными расширениями.
type Walker struct {
	fs         afero.Fs
	extensions []string
}

// NewWalker создает новый экземпляр Walker.
func NewWalker(fs afero.Fs, extensions []string) ports.FileDiscovery {
	return &Walker{fs: fs, extensions: extensions}
}

// Discover возвращает файлы под root, отсортированные по пути.
// Канал файла - имя его непосредственной родительской директории.
// Нечитаемые поддиректории пропускаются.
func (w *Walker) Discover(root string) ([]domain.DiscoveredFile, error) {
	info, err := w.fs.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat input root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("input root %s is not a directory", root)
	}

	var files []domain.DiscoveredFile
	err = afero.Walk(w.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() || !w.recognized(info.Name()) {
			return nil
		}
		files = append(files, domain.DiscoveredFile{
			Path:    path,
			Channel: filepath.Base(filepath.Dir(path)),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})
	return files, nil
}

func (w *Walker) recognized(name string) bool {
	for _, ext := range w.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
