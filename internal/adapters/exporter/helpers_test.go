package exporter

import (
	"bytes"

	"slack-export-parser/internal/domain"
)

// closingBuffer - bytes.Buffer, запоминающий вызов Close.
type closingBuffer struct {
	bytes.Buffer
	closed bool
}

func (b *closingBuffer) Close() error {
	b.closed = true
	return nil
}

func sampleRow() domain.OutputRow {
	return domain.OutputRow{
		Channel:         "general",
		Date:            "2023-11-14",
		Time:            "22:13:20",
		Message:         "hi @Alice",
		AttachmentTitle: "report.pdf",
		Author:          "Bob",
	}
}
