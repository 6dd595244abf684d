// Where: internal/commands/mock_prompter_test.go
// What: Test helper prompter for interaction-dependent command tests.
// Why: Provide deterministic select behavior without TTY.
package commands

import "github.com/poruru-code/brandgen/internal/infra/interaction"

type mockPrompter struct {
	selectValueFn func(title string, options []interaction.SelectOption) (string, error)

	selectedValue string
	lastTitle     string
	lastOptions   []interaction.SelectOption
	calls         int
}

func (m *mockPrompter) SelectValue(title string, options []interaction.SelectOption) (string, error) {
	m.calls++
	m.lastTitle = title
	m.lastOptions = options
	if m.selectValueFn != nil {
		return m.selectValueFn(title, options)
	}
	return m.selectedValue, nil
}
