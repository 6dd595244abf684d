// Where: internal/infra/ui/console.go
// What: Line-oriented console writer for brandgen output.
// Why: Keep status prefixes and summary layout identical across commands.
package ui

import (
	"fmt"
	"io"
	"strings"
)

// keyWidth aligns summary values; wide enough for the longest type name.
const keyWidth = 16

const indent = "   "

type status struct {
	emoji string
	plain string
}

var (
	statusOK    = status{emoji: "✅", plain: "[ok]"}
	statusWarn  = status{emoji: "⚠️", plain: "[warn]"}
	statusError = status{emoji: "❌", plain: "[error]"}
)

// Console writes status lines and summary blocks. EmojiEnabled=false swaps
// emojis for bracketed tags so logs stay greppable.
type Console struct {
	Out          io.Writer
	EmojiEnabled bool
}

func New(out io.Writer) *Console {
	return NewWithEmoji(out, true)
}

func NewWithEmoji(out io.Writer, enabled bool) *Console {
	return &Console{Out: out, EmojiEnabled: enabled}
}

// Header prints a title line, decorated only when emojis are on.
func (c *Console) Header(emoji, title string) {
	c.line(c.decorate(emoji) + title)
}

// BlockStart and BlockEnd frame a summary block with blank lines.
func (c *Console) BlockStart(emoji, title string) {
	c.line("")
	c.Header(emoji, title)
}

func (c *Console) BlockEnd() {
	c.line("")
}

// Item prints an aligned `key: value` row inside a block.
func (c *Console) Item(key string, value any) {
	c.line(fmt.Sprintf("%s%-*s %v", indent, keyWidth, key+":", value))
}

func (c *Console) ItemPlain(msg string) {
	c.line(indent + msg)
}

func (c *Console) Info(msg string) {
	c.line(msg)
}

func (c *Console) Success(msg string) { c.status(statusOK, msg) }

func (c *Console) Warn(msg string) { c.status(statusWarn, msg) }

func (c *Console) Error(msg string) { c.status(statusError, msg) }

func (c *Console) status(s status, msg string) {
	prefix := c.decorate(s.emoji)
	if prefix == "" {
		prefix = s.plain + " "
	}
	c.line(prefix + msg)
}

func (c *Console) decorate(emoji string) string {
	emoji = strings.TrimSpace(emoji)
	if !c.EmojiEnabled || emoji == "" {
		return ""
	}
	return emoji + " "
}

func (c *Console) line(s string) {
	fmt.Fprintln(c.Out, s)
}
