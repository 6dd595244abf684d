package ui

import (
	"bytes"
	"testing"

	"github.com/poruru-code/brandgen/internal/ports"
)

func TestConsoleEmojiToggle(t *testing.T) {
	tests := []struct {
		name  string
		emoji bool
		call  func(c *Console)
		want  string
	}{
		{"success emoji", true, func(c *Console) { c.Success("done") }, "✅ done\n"},
		{"success plain", false, func(c *Console) { c.Success("done") }, "[ok] done\n"},
		{"warn plain", false, func(c *Console) { c.Warn("careful") }, "[warn] careful\n"},
		{"error emoji", true, func(c *Console) { c.Error("boom") }, "❌ boom\n"},
		{"error plain", false, func(c *Console) { c.Error("boom") }, "[error] boom\n"},
		{"header plain", false, func(c *Console) { c.Header("🎨", "Assets") }, "Assets\n"},
		{"item", true, func(c *Console) { c.ItemPlain("x") }, "   x\n"},
		{"header emoji", true, func(c *Console) { c.Header("🎨", "Assets") }, "🎨 Assets\n"},
		{"warn emoji", true, func(c *Console) { c.Warn("x") }, "⚠️ x\n"},
		{"blank emoji", true, func(c *Console) { c.Header(" ", "Assets") }, "Assets\n"},
		{"aligned row", false, func(c *Console) { c.Item("assets-car", "actool") }, "   assets-car:      actool\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.call(NewWithEmoji(&buf, tt.emoji))
			if got := buf.String(); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUserInterfaceBlock(t *testing.T) {
	var buf bytes.Buffer
	ui := NewUserInterface(&buf, true)
	ui.Block("📦", "Summary", []ports.KeyValue{{Key: "Succeeded", Value: 3}})
	want := "\n📦 Summary\n   Succeeded:       3\n\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
