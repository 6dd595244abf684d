// Where: internal/commands/command_context.go
// What: Shared error exits for CLI commands.
// Why: Keep failure output and next-step hints consistent across commands.
package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/poruru-code/brandgen/internal/domain/brand"
	"github.com/poruru-code/brandgen/internal/infra/ui"
	"github.com/poruru-code/brandgen/internal/meta"
)

// exitWithError prints err plus any hint for its category and returns 1.
func exitWithError(out io.Writer, err error) int {
	if hints := suggestionsFor(err); len(hints) > 0 {
		return exitWithSuggestion(out, fmt.Sprintf("✗ %v", err), hints)
	}
	writeLine(out, fmt.Sprintf("✗ %v", err))
	return 1
}

// exitWithSuggestion prints an error with suggested next steps.
func exitWithSuggestion(out io.Writer, message string, suggestions []string) int {
	console := ui.New(out)
	writeLine(out, message)
	if len(suggestions) > 0 {
		console.Info("")
		console.Info("💡 Next steps:")
		for _, s := range suggestions {
			console.ItemPlain("- " + s)
		}
	}
	return 1
}

func suggestionsFor(err error) []string {
	switch {
	case errors.Is(err, brand.ErrConfig):
		return []string{"Check the config against the schema and the type names from `" + meta.AppName + " types`"}
	case errors.Is(err, brand.ErrFileNotFound):
		return []string{"Paths in the config resolve against the source or static directory named by fileType"}
	case errors.Is(err, brand.ErrRunFailed):
		return []string{"Re-run with --verbose to see tool invocations"}
	}
	return nil
}
