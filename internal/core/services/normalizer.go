package services

import (
	"regexp"
	"strings"

	"slack-export-parser/internal/domain"
	"slack-export-parser/internal/ports"
)

var (
	// <@U123ABC|john.doe> - упоминание с уже подписанным именем
	annotatedMentionRegex = regexp.MustCompile(`<@U\w+\|([A-Za-z0-9._-]+)>`)
	// <@U123ABC> - упоминание, имя берется из справочника
	plainMentionRegex = regexp.MustCompile(`<@U\w+>`)
)

// TextNormalizer реализует интерфейс Normalizer.
type TextNormalizer struct{}

// NewTextNormalizer создает новый экземпляр TextNormalizer.
func NewTextNormalizer() ports.Normalizer {
	return &TextNormalizer{}
}

// Normalize заменяет служебную разметку Slack на читаемый текст.
// Упоминания с подписью обрабатываются раньше простых.
func (n *TextNormalizer) Normalize(text string, directory *domain.UserDirectory) string {
	text = strings.ReplaceAll(text, "<!channel>", "@channel")
	text = strings.ReplaceAll(text, "&gt;", ">")
	text = strings.ReplaceAll(text, "&amp;", "&")
	text = annotatedMentionRegex.ReplaceAllString(text, "@${1}")
	text = plainMentionRegex.ReplaceAllStringFunc(text, func(mention string) string {
		id := mention[2 : len(mention)-1]
		return "@" + directory.Resolve(id)
	})
	return text
}
