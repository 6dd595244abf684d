// Where: internal/infra/ui/adapter.go
// What: ports.UserInterface backed by a Console.
// Why: Keep workflows on the port while the CLI decides about emoji and writers.
package ui

import (
	"io"

	"github.com/poruru-code/brandgen/internal/ports"
)

// NewUserInterface returns a UserInterface writing to out.
func NewUserInterface(out io.Writer, emojiEnabled bool) ports.UserInterface {
	return consoleUI{console: NewWithEmoji(out, emojiEnabled)}
}

type consoleUI struct {
	console *Console
}

func (c consoleUI) Info(msg string) {
	c.console.Info(msg)
}

func (c consoleUI) Warn(msg string) {
	c.console.Warn(msg)
}

func (c consoleUI) Success(msg string) {
	c.console.Success(msg)
}

func (c consoleUI) Error(msg string) {
	c.console.Error(msg)
}

func (c consoleUI) Item(msg string) {
	c.console.ItemPlain(msg)
}

func (c consoleUI) Block(emoji, title string, rows []ports.KeyValue) {
	c.console.BlockStart(emoji, title)
	for _, kv := range rows {
		c.console.Item(kv.Key, kv.Value)
	}
	c.console.BlockEnd()
}
