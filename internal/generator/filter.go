// Where: internal/generator/filter.go
// What: Mode, allow-list, and capability gating of the transformation list.
// Why: Decide up front what runs, what is dropped, and what is reported as skipped.
package generator

import (
	"github.com/samber/lo"

	"github.com/poruru-code/brandgen/internal/domain/brand"
)

// Filtered is a transformation that survived the mode and allow-list gates.
// ShouldWarn marks items whose platform tools are missing; they are reported
// as skipped instead of executed.
type Filtered struct {
	Transformation brand.Transformation
	ShouldWarn     bool
	MissingTools   []string
}

// Filter applies opts and caps to ts, keeping the original order.
// A non-nil allow-list replaces the mode gate entirely.
func Filter(ts []brand.Transformation, opts brand.FilterOptions, caps brand.Capabilities) []Filtered {
	kept := lo.Filter(ts, func(t brand.Transformation, _ int) bool {
		if opts.OnlyTypes != nil {
			_, ok := opts.OnlyTypes[t.Type()]
			return ok
		}
		return opts.Mode.Allows(t.Type())
	})
	return lo.Map(kept, func(t brand.Transformation, _ int) Filtered {
		if caps.Supports(t.Type()) {
			return Filtered{Transformation: t}
		}
		return Filtered{
			Transformation: t,
			ShouldWarn:     true,
			MissingTools:   caps.MissingTools(t.Type()),
		}
	})
}
