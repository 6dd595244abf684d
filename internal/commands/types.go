// Where: internal/commands/types.go
// What: Rows for the `types` command.
// Why: Document which transformations need macOS tooling without reading source.
package commands

import (
	"strings"

	"github.com/samber/lo"

	"github.com/poruru-code/brandgen/internal/domain/brand"
	"github.com/poruru-code/brandgen/internal/ports"
)

func typeRows() []ports.KeyValue {
	return lo.Map(brand.AllTypes, func(t brand.TypeName, _ int) ports.KeyValue {
		tools := brand.RequiredTools(t)
		value := "portable"
		if len(tools) > 0 {
			value = "needs " + strings.Join(tools, ", ")
		}
		return ports.KeyValue{Key: string(t), Value: value}
	})
}
