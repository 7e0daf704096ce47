package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"slack-export-parser/internal/domain"
	"slack-export-parser/internal/ports"
)

const (
	messageType = "message"
	dateLayout  = "2006-01-02"
	timeLayout  = "15:04:05"

	// Допустимый диапазон: 0001-01-01T00:00:00Z .. 9999-12-31T23:59:59Z
	minUnixSeconds = -62135596800
	maxUnixSeconds = 253402300799
)

// ExtractionServiceImpl реализует интерфейс ExtractionService.
type ExtractionServiceImpl struct {
	normalizer ports.Normalizer
}

// NewExtractionService создает новый экземпляр ExtractionServiceImpl.
func NewExtractionService(normalizer ports.Normalizer) ports.ExtractionService {
	return &ExtractionServiceImpl{normalizer: normalizer}
}

// Extract строит строку отчета из элемента файла канала.
// Элементы, не являющиеся сообщениями с текстом, пропускаются (nil, nil).
// Ошибка ErrInvalidTimestamp относится только к этому элементу.
func (s *ExtractionServiceImpl) Extract(
	item domain.MessageItem,
	channel string,
	directory *domain.UserDirectory,
) (*domain.OutputRow, error) {
	if !item.IsObject || item.Type != messageType || item.Text == nil {
		return nil, nil
	}

	ts, err := ParseTimestamp(item.TS)
	if err != nil {
		return nil, err
	}

	author := domain.UnknownUser
	if item.User != nil {
		author = directory.Resolve(*item.User)
	}

	return &domain.OutputRow{
		Channel:         channel,
		Date:            ts.Format(dateLayout),
		Time:            ts.Format(timeLayout),
		Message:         s.normalizer.Normalize(*item.Text, directory),
		AttachmentTitle: attachmentTitle(item.Files),
		Author:          author,
	}, nil
}

// ParseTimestamp разбирает ts Slack ("1700000000.500000") как дробные секунды Unix в UTC.
func ParseTimestamp(raw *string) (time.Time, error) {
	if raw == nil {
		return time.Time{}, fmt.Errorf("%w: ts is missing", domain.ErrInvalidTimestamp)
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(*raw), 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidTimestamp, *raw)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return time.Time{}, fmt.Errorf("%w: %q is not finite", domain.ErrInvalidTimestamp, *raw)
	}

	seconds := math.Floor(value)
	if seconds < minUnixSeconds || seconds > maxUnixSeconds {
		return time.Time{}, fmt.Errorf("%w: %q is out of range", domain.ErrInvalidTimestamp, *raw)
	}
	nanos := int64((value - seconds) * float64(time.Second))

	return time.Unix(int64(seconds), nanos).UTC(), nil
}

func attachmentTitle(files []domain.Attachment) string {
	if len(files) == 0 || files[0].Title == nil {
		return ""
	}
	return *files[0].Title
}
