package exporter

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"slack-export-parser/internal/domain"
)

// XLSXExporter записывает строки отчета на один лист Excel.
// Строки пишутся потоково, книга сериализуется в out при Close.
type XLSXExporter struct {
	out    io.WriteCloser
	file   *excelize.File
	stream *excelize.StreamWriter
	row    int
}

// NewXLSXExporter создает книгу с единственным листом sheetName.
func NewXLSXExporter(out io.WriteCloser, sheetName string) (*XLSXExporter, error) {
	f := excelize.NewFile()

	defaultSheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	stream, err := f.NewStreamWriter(sheetName)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to create stream writer: %w", err)
	}

	return &XLSXExporter{out: out, file: f, stream: stream}, nil
}

// WriteHeader записывает строку заголовка.
func (e *XLSXExporter) WriteHeader(header []string) error {
	values := make([]interface{}, len(header))
	for i, h := range header {
		values[i] = h
	}
	return e.writeValues(values)
}

// WriteRow записывает одну строку отчета.
func (e *XLSXExporter) WriteRow(row domain.OutputRow) error {
	record := row.Record()
	values := make([]interface{}, len(record))
	for i, v := range record {
		values[i] = v
	}
	return e.writeValues(values)
}

func (e *XLSXExporter) writeValues(values []interface{}) error {
	e.row++
	cell, err := excelize.CoordinatesToCellName(1, e.row)
	if err != nil {
		return fmt.Errorf("failed to build cell name for row %d: %w", e.row, err)
	}
	if err := e.stream.SetRow(cell, values); err != nil {
		return fmt.Errorf("failed to write xlsx row %d: %w", e.row, err)
	}
	return nil
}

// Close сохраняет книгу в out и освобождает ресурсы.
func (e *XLSXExporter) Close() error {
	var errs []error
	if err := e.stream.Flush(); err != nil {
		errs = append(errs, fmt.Errorf("failed to flush xlsx stream: %w", err))
	} else if err := e.file.Write(e.out); err != nil {
		errs = append(errs, fmt.Errorf("failed to write xlsx: %w", err))
	}
	if err := e.file.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close xlsx workbook: %w", err))
	}
	if err := e.out.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close xlsx output: %w", err))
	}
	return errors.Join(errs...)
}
