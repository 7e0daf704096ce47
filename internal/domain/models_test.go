package domain

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestUserRecord_DisplayName(t *testing.T) {
	tests := []struct {
		name     string
		user     UserRecord
		expected string
	}{
		{"real_name предпочтительнее name", UserRecord{ID: "U1", Name: "alice", RealName: strPtr("Alice Smith")}, "Alice Smith"},
		{"нет real_name", UserRecord{ID: "U1", Name: "alice"}, "alice"},
		{"пустой real_name", UserRecord{ID: "U1", Name: "alice", RealName: strPtr("")}, "alice"},
		{"real_name без букв", UserRecord{ID: "U1", Name: "bob", RealName: strPtr("12345")}, "bob"},
		{"real_name только не-латиница", UserRecord{ID: "U1", Name: "taro", RealName: strPtr("山田太郎")}, "taro"},
		{"real_name с одной латинской буквой", UserRecord{ID: "U1", Name: "x", RealName: strPtr("José 2")}, "José 2"},
		{"name без букв остается как есть", UserRecord{ID: "U1", Name: "42"}, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.user.DisplayName())
		})
	}
}

func TestUserRecord_DisplayNameHasLetterWhenNameHasLetter(t *testing.T) {
	letter := regexp.MustCompile(`[a-zA-Z]`)
	realNames := []*string{nil, strPtr(""), strPtr("   "), strPtr("123"), strPtr("—"), strPtr("Ann"), strPtr("ÄÖÜ"), strPtr("a")}

	for _, rn := range realNames {
		user := UserRecord{ID: "U1", Name: "user.name", RealName: rn}
		assert.Regexp(t, letter, user.DisplayName())
	}
}

func TestUserDirectory(t *testing.T) {
	t.Run("Resolve возвращает имя известного пользователя", func(t *testing.T) {
		dir := NewUserDirectory([]UserRecord{
			{ID: "U1", Name: "alice", RealName: strPtr("Alice")},
			{ID: "U2", Name: "bob"},
		})

		assert.Equal(t, 2, dir.Len())
		assert.Equal(t, "Alice", dir.Resolve("U1"))
		assert.Equal(t, "bob", dir.Resolve("U2"))
	})

	t.Run("Resolve возвращает UnknownUser для неизвестного ID", func(t *testing.T) {
		dir := NewUserDirectory(nil)

		assert.Equal(t, UnknownUser, dir.Resolve("U404"))
		_, ok := dir.Lookup("U404")
		assert.False(t, ok)
	})

	t.Run("nil справочник безопасен", func(t *testing.T) {
		var dir *UserDirectory

		assert.Equal(t, 0, dir.Len())
		assert.Equal(t, UnknownUser, dir.Resolve("U1"))
	})

	t.Run("повторный ID перезаписывает имя", func(t *testing.T) {
		dir := NewUserDirectory([]UserRecord{
			{ID: "U1", Name: "first"},
			{ID: "U1", Name: "second"},
		})

		assert.Equal(t, 1, dir.Len())
		assert.Equal(t, "second", dir.Resolve("U1"))
	})
}

func TestOutputRow_Record(t *testing.T) {
	row := OutputRow{
		Channel:         "general",
		Date:            "2023-11-14",
		Time:            "22:13:20",
		Message:         "hello",
		AttachmentTitle: "doc.pdf",
		Author:          "Alice",
	}

	assert.Equal(t, []string{"general", "2023-11-14", "22:13:20", "hello", "doc.pdf", "Alice"}, row.Record())
	assert.Len(t, Header, len(row.Record()))
}
