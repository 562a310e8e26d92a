package layout

import (
	"fmt"

	"github.com/wippyai/slabcopy/errors"
)

// Placement is a validated byte range relative to a region's base.
// Start <= End <= EndPadded <= region size.
type Placement struct {
	Start     uintptr
	End       uintptr
	EndPadded uintptr
}

// Place computes where a payload with layout l may start at or after offset
// inside the region [base, base+size). See the package documentation for the
// algorithm. Returned errors carry PhaseLayout; callers restamp them with
// their own phase.
func Place(base, size, offset uintptr, l Layout, minAlign uintptr, exact bool) (Placement, error) {
	floor, ok := NextPow2(minAlign)
	if !ok {
		return Placement{}, errors.InvalidLayout(errors.PhaseLayout,
			fmt.Sprintf("minimum alignment %d has no power-of-two ceiling", minAlign))
	}
	if err := l.Validate(); err != nil {
		return Placement{}, err
	}

	eff := l
	if floor > eff.Align {
		eff.Align = floor
	}
	if err := eff.Validate(); err != nil {
		return Placement{}, err
	}

	start, ok := alignOffsetUp(base, offset, eff.Align)
	if !ok {
		return Placement{}, errors.InvalidLayout(errors.PhaseLayout,
			fmt.Sprintf("offset %d cannot be aligned to %d", offset, eff.Align))
	}
	if exact && start != offset {
		return Placement{}, errors.Unaligned(errors.PhaseLayout, offset, start, eff.Align)
	}

	end, ok := SafeAdd(start, eff.Size)
	if !ok {
		return Placement{}, errors.InvalidLayout(errors.PhaseLayout,
			fmt.Sprintf("end of %d bytes at %d overflows", eff.Size, start))
	}
	endPadded, ok := SafeAdd(start, eff.Padded())
	if !ok {
		return Placement{}, errors.InvalidLayout(errors.PhaseLayout,
			fmt.Sprintf("padded end of %d bytes at %d overflows", eff.Padded(), start))
	}

	// a zero-sized payload may sit exactly at the end
	if start > size {
		return Placement{}, errors.OffsetOutOfBounds(errors.PhaseLayout, start, size)
	}
	if endPadded > size {
		return Placement{}, errors.OutOfMemory(errors.PhaseLayout, endPadded, size)
	}

	return Placement{Start: start, End: end, EndPadded: endPadded}, nil
}

// alignOffsetUp aligns the absolute address base+offset, not the offset
// itself, since base need not be aligned.
func alignOffsetUp(base, offset, align uintptr) (uintptr, bool) {
	addr, ok := SafeAdd(base, offset)
	if !ok {
		return 0, false
	}
	aligned, ok := AlignUp(addr, align)
	if !ok {
		return 0, false
	}
	return aligned - base, true
}
