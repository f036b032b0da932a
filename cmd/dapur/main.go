package main

import "github.com/pageza/dapur-ai/backend/internal/cli"

func main() {
	cli.Execute()
}
