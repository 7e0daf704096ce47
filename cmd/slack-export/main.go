package main

import "slack-export-parser/cmd/slack-export/cmd"

func main() {
	cmd.Execute()
}
