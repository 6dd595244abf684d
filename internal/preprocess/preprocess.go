// Where: internal/preprocess/preprocess.go
// What: Line-oriented conditional blocks and `{{#str key}}` substitution.
// Why: Produce brand-specific text files from one shared template.
package preprocess

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/poruru-code/brandgen/internal/domain/brand"
)

var (
	blockIf     = regexp.MustCompile(`^\s*\{\{#if\s+(.*?)\s*\}\}\s*$`)
	blockElseIf = regexp.MustCompile(`^\s*\{\{#elseif\s+(.*?)\s*\}\}\s*$`)
	blockElse   = regexp.MustCompile(`^\s*\{\{#else\}\}\s*$`)
	blockEndIf  = regexp.MustCompile(`^\s*\{\{#endif\}\}\s*$`)
	strToken    = regexp.MustCompile(`\{\{#str\s+([^\s\}]+)\}\}`)
)

// WarnFunc receives malformed condition expressions.
type WarnFunc func(expr string, err error)

// LogWarn reports malformed conditions through the package logger.
func LogWarn(expr string, err error) {
	log.Warn("invalid condition expression", "expr", expr, "err", err)
}

// Processor runs both passes against one brand.
type Processor struct {
	Brand brand.BrandConfig
	Warn  WarnFunc
}

// New returns a Processor that logs condition warnings.
func New(b brand.BrandConfig) *Processor {
	return &Processor{Brand: b.Normalize(), Warn: LogWarn}
}

// Process applies the block pass and then the substitution pass.
func (p *Processor) Process(content string) string {
	return Substitute(p.ProcessBlocks(content), p.Brand.Strings)
}

// ProcessFile reads input, processes it, and writes output, creating parent dirs.
func (p *Processor) ProcessFile(input, output string) error {
	data, err := os.ReadFile(input)
	if err != nil {
		if os.IsNotExist(err) {
			return &brand.FileNotFoundError{Path: input}
		}
		return fmt.Errorf("read template %s: %w", input, err)
	}
	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(output, []byte(p.Process(string(data))), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	return nil
}

type frame struct {
	satisfied bool
	active    bool
	parentOn  bool
}

// ProcessBlocks evaluates `{{#if}}` / `{{#elseif}}` / `{{#else}}` / `{{#endif}}`
// lines. Directives only count when they occupy a whole line; directives with
// no open block pass through as text. Blocks nest.
func (p *Processor) ProcessBlocks(content string) string {
	lines := splitLines(content)
	out := make([]string, 0, len(lines))
	var stack []*frame

	emitting := func() bool {
		if len(stack) == 0 {
			return true
		}
		top := stack[len(stack)-1]
		return top.parentOn && top.active
	}

	for _, line := range lines {
		if m := blockIf.FindStringSubmatch(line); m != nil {
			on := emitting()
			f := &frame{parentOn: on}
			if on {
				f.active = p.eval(m[1])
				f.satisfied = f.active
			} else {
				f.satisfied = true
			}
			stack = append(stack, f)
			continue
		}
		if len(stack) == 0 {
			out = append(out, line)
			continue
		}
		top := stack[len(stack)-1]
		switch {
		case blockElseIf.MatchString(line):
			if top.satisfied {
				top.active = false
				continue
			}
			top.active = p.eval(blockElseIf.FindStringSubmatch(line)[1])
			top.satisfied = top.active
		case blockElse.MatchString(line):
			top.active = !top.satisfied
			top.satisfied = true
		case blockEndIf.MatchString(line):
			stack = stack[:len(stack)-1]
		default:
			if emitting() {
				out = append(out, line)
			}
		}
	}
	return strings.Join(out, "\n")
}

func (p *Processor) eval(expr string) bool {
	return Evaluate(expr, p.Brand.Env, p.Warn)
}

// Substitute replaces `{{#str key}}` with strings[key]. Unknown keys stay verbatim,
// so applying it twice gives the same text.
func Substitute(content string, values map[string]string) string {
	return strToken.ReplaceAllStringFunc(content, func(match string) string {
		key := strToken.FindStringSubmatch(match)[1]
		if value, ok := values[key]; ok {
			return value
		}
		return match
	})
}

// MissingKeys lists `{{#str}}` keys in content that values cannot resolve.
func MissingKeys(content string, values map[string]string) []string {
	var missing []string
	seen := map[string]bool{}
	for _, m := range strToken.FindAllStringSubmatch(content, -1) {
		key := m[1]
		if _, ok := values[key]; ok || seen[key] {
			continue
		}
		seen[key] = true
		missing = append(missing, key)
	}
	return missing
}

// splitLines splits on "\n", strips one trailing "\r" per line, and ignores a
// final trailing newline.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
