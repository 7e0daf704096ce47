package exporter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"slack-export-parser/internal/domain"
)

// CSVExporter записывает строки отчета в CSV: разделитель запятая,
// кавычки только там, где они нужны.
type CSVExporter struct {
	out    io.WriteCloser
	writer *csv.Writer
}

// NewCSVExporter создает новый экземпляр CSVExporter поверх out.
// Экспортер владеет out и закрывает его в Close.
func NewCSVExporter(out io.WriteCloser, useCRLF bool) *CSVExporter {
	w := csv.NewWriter(out)
	w.UseCRLF = useCRLF
	return &CSVExporter{out: out, writer: w}
}

// WriteHeader записывает строку заголовка.
func (e *CSVExporter) WriteHeader(header []string) error {
	if err := e.writer.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	return nil
}

// WriteRow записывает одну строку отчета.
func (e *CSVExporter) WriteRow(row domain.OutputRow) error {
	if err := e.writer.Write(row.Record()); err != nil {
		return fmt.Errorf("failed to write csv row: %w", err)
	}
	return nil
}

// Close сбрасывает буфер и закрывает файл.
func (e *CSVExporter) Close() error {
	e.writer.Flush()
	flushErr := e.writer.Error()
	closeErr := e.out.Close()
	if err := errors.Join(flushErr, closeErr); err != nil {
		return fmt.Errorf("failed to close csv output: %w", err)
	}
	return nil
}
