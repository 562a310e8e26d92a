package slabcopy

import "github.com/wippyai/slabcopy/internal/layout"

// LayoutCalculator computes Canonical ABI layouts for WIT types, for use with
// CopyEncodedTo. Results are cached per calculator, which is not safe for
// concurrent use.
type LayoutCalculator = layout.Calculator

// LayoutInfo is a WIT type's layout plus the offsets of record fields.
type LayoutInfo = layout.Info

// NewLayoutCalculator returns an empty calculator.
func NewLayoutCalculator() *LayoutCalculator {
	return layout.NewCalculator()
}
