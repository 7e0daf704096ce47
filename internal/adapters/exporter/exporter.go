package exporter

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"slack-export-parser/internal/ports"
)

// Поддерживаемые форматы вывода.
const (
	FormatCSV   = "csv"
	FormatXLSX  = "xlsx"
	FormatTable = "table"
)

// Options описывает, куда и в каком формате писать отчет.
type Options struct {
	Format     string // пустое значение - формат по расширению Path
	Path       string
	SheetName  string
	UseCRLF    bool
	TableWidth int
	Stdout     io.Writer // вывод для формата table
}

// ResolveFormat возвращает итоговый формат: явный или по расширению файла.
func ResolveFormat(format, path string) string {
	if format != "" {
		return strings.ToLower(format)
	}
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return FormatXLSX
	}
	return FormatCSV
}

// New открывает выходной файл (для csv и xlsx) и возвращает экспортер нужного формата.
func New(fs afero.Fs, opts Options) (ports.Exporter, error) {
	format := ResolveFormat(opts.Format, opts.Path)

	switch format {
	case FormatTable:
		if opts.Stdout == nil {
			return nil, fmt.Errorf("table format requires an output stream")
		}
		return NewConsoleExporter(opts.Stdout, opts.TableWidth), nil
	case FormatCSV, FormatXLSX:
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}

	file, err := fs.Create(opts.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %s: %w", opts.Path, err)
	}

	if format == FormatCSV {
		return NewCSVExporter(file, opts.UseCRLF), nil
	}

	exp, err := NewXLSXExporter(file, opts.SheetName)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	return exp, nil
}
