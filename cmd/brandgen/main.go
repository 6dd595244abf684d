// Where: cmd/brandgen/main.go
// What: CLI entrypoint.
// Why: Execute brandgen commands with configured dependencies.
package main

import (
	"os"

	"github.com/poruru-code/brandgen/internal/commands"
)

func main() {
	os.Exit(commands.Run(os.Args[1:], buildDependencies()))
}
