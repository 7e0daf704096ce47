package parser

import (
	"fmt"

	"github.com/tidwall/gjson"

	"slack-export-parser/internal/domain"
	"slack-export-parser/internal/ports"
)

// JsonParser реализует интерфейс Parser для разбора JSON данных экспорта Slack.
// Элементы массивов разнородны, поэтому поля читаются через gjson, а не через
// жесткую структуру.
type JsonParser struct{}

// NewJsonParser создает новый экземпляр JsonParser.
func NewJsonParser() ports.Parser {
	return &JsonParser{}
}

// ParseUsers разбирает массив пользователей.
func (p *JsonParser) ParseUsers(data []byte) ([]domain.UserRecord, []error, error) {
	if !gjson.ValidBytes(data) {
		return nil, nil, fmt.Errorf("%w: invalid json", domain.ErrUserFileUnreadable)
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, nil, fmt.Errorf("%w: expected a json array of users", domain.ErrUserFileUnreadable)
	}

	var (
		users   []domain.UserRecord
		skipped []error
	)
	root.ForEach(func(key, value gjson.Result) bool {
		user, err := parseUser(value)
		if err != nil {
			skipped = append(skipped, fmt.Errorf("user at index %d: %w", key.Int(), err))
			return true
		}
		users = append(users, user)
		return true
	})

	return users, skipped, nil
}

func parseUser(value gjson.Result) (domain.UserRecord, error) {
	if !value.IsObject() {
		return domain.UserRecord{}, fmt.Errorf("%w: not an object", domain.ErrMalformedUserRecord)
	}

	id := value.Get("id")
	if !isScalar(id) || id.String() == "" {
		return domain.UserRecord{}, fmt.Errorf("%w: missing id", domain.ErrMalformedUserRecord)
	}

	name := value.Get("name")
	if name.Type != gjson.String {
		return domain.UserRecord{}, fmt.Errorf("%w: missing name for %s", domain.ErrMalformedUserRecord, id.String())
	}

	user := domain.UserRecord{
		ID:   id.String(),
		Name: name.Str,
	}
	if realName := value.Get("real_name"); realName.Type == gjson.String {
		user.RealName = stringPtr(realName.Str)
	}
	return user, nil
}

// ParseMessages разбирает массив элементов файла канала.
func (p *JsonParser) ParseMessages(data []byte) ([]domain.MessageItem, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid json", domain.ErrMalformedInputFile)
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("%w: expected a json array", domain.ErrMalformedInputFile)
	}

	values := root.Array()
	items := make([]domain.MessageItem, 0, len(values))
	for _, value := range values {
		items = append(items, parseMessage(value))
	}
	return items, nil
}

func parseMessage(value gjson.Result) domain.MessageItem {
	item := domain.MessageItem{IsObject: value.IsObject()}
	if !item.IsObject {
		return item
	}

	item.Type = value.Get("type").Str

	if text := value.Get("text"); text.Type == gjson.String {
		item.Text = stringPtr(text.Str)
	}

	// ts встречается и строкой ("1700000000.500000"), и числом
	switch ts := value.Get("ts"); ts.Type {
	case gjson.String:
		item.TS = stringPtr(ts.Str)
	case gjson.Number:
		item.TS = stringPtr(ts.Raw)
	}

	if user := value.Get("user"); user.Type == gjson.String {
		item.User = stringPtr(user.Str)
	}

	if files := value.Get("files"); files.IsArray() {
		for _, f := range files.Array() {
			var att domain.Attachment
			if title := f.Get("title"); f.IsObject() && title.Type == gjson.String {
				att.Title = stringPtr(title.Str)
			}
			item.Files = append(item.Files, att)
		}
	}

	return item
}

func isScalar(r gjson.Result) bool {
	return r.Type == gjson.String || r.Type == gjson.Number
}

func stringPtr(s string) *string {
	return &s
}
