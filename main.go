package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/soorajms0707/soorajms/cmd"
)

func main() {
	cmd.Execute()
}
