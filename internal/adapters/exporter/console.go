package exporter

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"slack-export-parser/internal/domain"
)

const ellipsis = "…"

// Ширина колонок канала, даты, времени, вложения и автора. Ширина сообщения настраивается.
var fixedColumnWidths = [...]int{18, 10, 8, 20, 20}

// ConsoleExporter выводит строки отчета в виде выровненной таблицы.
// Используется для быстрого просмотра экспорта без создания файла.
type ConsoleExporter struct {
	out    *bufio.Writer
	widths []int
}

// NewConsoleExporter создает новый экземпляр ConsoleExporter.
func NewConsoleExporter(out io.Writer, messageWidth int) *ConsoleExporter {
	widths := []int{
		fixedColumnWidths[0],
		fixedColumnWidths[1],
		fixedColumnWidths[2],
		messageWidth,
		fixedColumnWidths[3],
		fixedColumnWidths[4],
	}
	return &ConsoleExporter{out: bufio.NewWriter(out), widths: widths}
}

// WriteHeader выводит заголовок и разделитель.
func (e *ConsoleExporter) WriteHeader(header []string) error {
	if err := e.writeLine(header); err != nil {
		return err
	}

	var sb strings.Builder
	for _, w := range e.widths {
		sb.WriteString("|")
		sb.WriteString(strings.Repeat("-", w+2))
	}
	sb.WriteString("|\n")
	_, err := e.out.WriteString(sb.String())
	return err
}

// WriteRow выводит одну строку отчета.
func (e *ConsoleExporter) WriteRow(row domain.OutputRow) error {
	return e.writeLine(row.Record())
}

// Close сбрасывает буфер. Сам поток вывода не закрывается.
func (e *ConsoleExporter) Close() error {
	return e.out.Flush()
}

func (e *ConsoleExporter) writeLine(cells []string) error {
	var sb strings.Builder
	for i, cell := range cells {
		width := e.widths[i]
		text := fitCell(cell, width)
		sb.WriteString("| ")
		sb.WriteString(text)
		sb.WriteString(generatePadding(text, width))
		sb.WriteString(" ")
	}
	sb.WriteString("|\n")
	if _, err := e.out.WriteString(sb.String()); err != nil {
		return fmt.Errorf("failed to write table line: %w", err)
	}
	return nil
}

// fitCell убирает переносы строк и обрезает текст по ширине колонки.
func fitCell(s string, width int) string {
	s = strings.ToValidUTF8(s, "")
	s = strings.Join(strings.Fields(s), " ")
	return runewidth.Truncate(s, width, ellipsis)
}

// generatePadding вычисляет отступ до ширины колонки с учетом широких символов.
func generatePadding(s string, colWidth int) string {
	paddingNeeded := colWidth - runewidth.StringWidth(s)
	if paddingNeeded > 0 {
		return strings.Repeat(" ", paddingNeeded)
	}
	return ""
}
