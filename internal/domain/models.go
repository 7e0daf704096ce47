package domain

import "regexp"

// UnknownUser подставляется вместо автора или упоминания, если ID не найден в справочнике.
const UnknownUser = "Unknown User"

// Header - фиксированная строка заголовка отчета.
var Header = []string{"canal", "fecha", "hora", "mensaje", "adjunto", "autor"}

// UserRecord представляет одного пользователя из файла users.json.
type UserRecord struct {
	ID       string
	Name     string
	RealName *string // nil, если поле отсутствует или не является строкой
}

var hasLetter = regexp.MustCompile(`[a-zA-Z]`)

// DisplayName возвращает отображаемое имя пользователя.
// real_name используется, только если он непустой и содержит хотя бы одну латинскую букву.
func (u UserRecord) DisplayName() string {
	name := u.Name
	if u.RealName != nil && *u.RealName != "" {
		name = *u.RealName
	}
	if !hasLetter.MatchString(name) {
		return u.Name
	}
	return name
}

// UserDirectory отображает ID пользователя в отображаемое имя.
// После создания справочник только читается.
type UserDirectory struct {
	names map[string]string
}

// NewUserDirectory строит справочник из набора записей.
// При повторном ID побеждает последняя запись.
func NewUserDirectory(records []UserRecord) *UserDirectory {
	names := make(map[string]string, len(records))
	for _, r := range records {
		names[r.ID] = r.DisplayName()
	}
	return &UserDirectory{names: names}
}

// Lookup возвращает имя пользователя и признак того, что ID известен.
func (d *UserDirectory) Lookup(id string) (string, bool) {
	if d == nil {
		return "", false
	}
	name, ok := d.names[id]
	return name, ok
}

// Resolve возвращает имя пользователя или UnknownUser.
func (d *UserDirectory) Resolve(id string) string {
	if name, ok := d.Lookup(id); ok {
		return name
	}
	return UnknownUser
}

// Len возвращает количество пользователей в справочнике.
func (d *UserDirectory) Len() int {
	if d == nil {
		return 0
	}
	return len(d.names)
}

// Attachment - вложение сообщения (элемент массива files).
type Attachment struct {
	Title *string
}

// MessageItem - один элемент массива из файла канала.
// Необязательные поля представлены указателями: nil означает, что поле отсутствует.
type MessageItem struct {
	IsObject bool
	Type     string
	Text     *string
	TS       *string // исходное значение ts: строка или число в текстовом виде
	User     *string
	Files    []Attachment
}

// OutputRow - одна строка итогового отчета.
type OutputRow struct {
	Channel         string
	Date            string
	Time            string
	Message         string
	AttachmentTitle string
	Author          string
}

// Record возвращает строку в порядке колонок Header.
func (r OutputRow) Record() []string {
	return []string{r.Channel, r.Date, r.Time, r.Message, r.AttachmentTitle, r.Author}
}

// DiscoveredFile - найденный файл канала.
type DiscoveredFile struct {
	Path    string
	Channel string // имя родительской директории
}
