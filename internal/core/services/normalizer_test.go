package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"slack-export-parser/internal/domain"
)

func newDirectory(names map[string]string) *domain.UserDirectory {
	records := make([]domain.UserRecord, 0, len(names))
	for id, name := range names {
		records = append(records, domain.UserRecord{ID: id, Name: name})
	}
	return domain.NewUserDirectory(records)
}

func TestTextNormalizer_Normalize(t *testing.T) {
	normalizer := NewTextNormalizer()
	directory := newDirectory(map[string]string{"U1": "Alice", "U2X9": "bob"})

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"упоминание канала и HTML-сущности", "<!channel> hi &gt;&amp;", "@channel hi >&"},
		{"простое упоминание известного пользователя", "hello <@U1>", "hello @Alice"},
		{"простое упоминание неизвестного пользователя", "hello <@U3>", "hello @Unknown User"},
		{"упоминание с подписью", "see <@U1|Bob>", "see @Bob"},
		{"подпись с точкой, дефисом и подчеркиванием", "cc <@U77|john.doe-2_x>", "cc @john.doe-2_x"},
		{"несколько упоминаний подряд", "<@U1> and <@U9|Carl> and <@U2X9>", "@Alice and @Carl and @bob"},
		{"сущности заменяются по порядку", "&amp;gt;", "&gt;"},
		{"незакрытое упоминание не трогается", "hi <@U1", "hi <@U1"},
		{"ID не с U не трогается", "hi <@W123>", "hi <@W123>"},
		{"пустая подпись не трогается", "hi <@U1|>", "hi <@U1|>"},
		{"подпись с пробелом не трогается", "hi <@U1|Bob Smith>", "hi <@U1|Bob Smith>"},
		{"другие сущности не трогаются", "a &lt; b", "a &lt; b"},
		{"пустая строка", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizer.Normalize(tt.input, directory))
		})
	}
}

func TestTextNormalizer_AnnotatedMentionIgnoresDirectory(t *testing.T) {
	normalizer := NewTextNormalizer()

	withUser := newDirectory(map[string]string{"U1": "Alice"})
	empty := newDirectory(nil)

	assert.Equal(t, "see @Bob", normalizer.Normalize("see <@U1|Bob>", withUser))
	assert.Equal(t, "see @Bob", normalizer.Normalize("see <@U1|Bob>", empty))
	assert.Equal(t, "see @Bob", normalizer.Normalize("see <@U1|Bob>", nil))
}

func TestTextNormalizer_IdempotentOnCleanText(t *testing.T) {
	normalizer := NewTextNormalizer()
	directory := newDirectory(map[string]string{"U1": "Alice"})

	inputs := []string{
		"plain text",
		"a > b & c",
		"@channel ping",
		"<@W123> is a workspace id",
		"email: a@b.c <not a mention>",
		"многоязычный текст 日本語",
	}

	for _, input := range inputs {
		once := normalizer.Normalize(input, directory)
		twice := normalizer.Normalize(once, directory)
		assert.Equal(t, once, twice, "input %q", input)
	}
}
