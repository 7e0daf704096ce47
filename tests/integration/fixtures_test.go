package integration

import (
	"os"
	"path/filepath"
	"testing"
)

const expectedCSV = "canal,fecha,hora,mensaje,adjunto,autor\r\n" +
	"general,2023-11-14,22:13:20,\"Hello @bob, see \"\"doc\"\"\",report.pdf,Alice Smith\r\n" +
	"general,2023-11-14,22:14:21,ping @channel > all,,Unknown User\r\n" +
	"random,2023-11-15,22:13:20,@carol joined,,Unknown User\r\n"

// writeExportTree создает в dir дерево экспорта Slack и возвращает корень data.
func writeExportTree(t *testing.T, dir string) string {
	t.Helper()

	files := map[string]string{
		"data/users.json": `[
			{"id": "U1", "name": "alice", "real_name": "Alice Smith"},
			{"id": "U2", "name": "bob"}
		]`,
		"data/general/2023-11-14.json": `[
			{"type": "message", "text": "Hello <@U2>, see \"doc\"", "ts": "1700000000.500000", "user": "U1",
			 "files": [{"title": "report.pdf"}]},
			{"type": "message", "subtype": "bot_message", "text": "ping <!channel> &gt; all", "ts": "1700000061.000200"}
		]`,
		"data/random/2023-11-15.json": `[
			{"type": "message", "text": "<@U3|carol> joined", "ts": 1700086400, "user": "U3"}
		]`,
		"data/random/broken.json": `[{`,
	}

	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Не удалось создать директорию: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Не удалось записать тестовый файл: %v", err)
		}
	}

	return filepath.Join(dir, "data")
}
