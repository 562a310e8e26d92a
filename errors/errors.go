package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which operation produced the error
type Phase string

const (
	PhaseLayout   Phase = "layout"   // layout construction
	PhaseCopy     Phase = "copy"     // value or slice into a region
	PhaseRead     Phase = "read"     // typed view out of a region
	PhaseReadback Phase = "readback" // external routine writing into a region
	PhaseAlloc    Phase = "alloc"    // region provider construction
	PhaseWasm     Phase = "wasm"     // linear memory integration
)

// Kind categorizes the error
type Kind string

const (
	KindOutOfMemory              Kind = "out_of_memory"
	KindOffsetOutOfBounds        Kind = "offset_out_of_bounds"
	KindInvalidLayout            Kind = "invalid_layout"
	KindRequestedOffsetUnaligned Kind = "requested_offset_unaligned"
	KindInvalidInput             Kind = "invalid_input"
	KindAllocation               Kind = "allocation"
	KindExternal                 Kind = "external"
)

var kindText = map[Kind]string{
	KindOutOfMemory:              "end of copy or read would exceed the end of the allocation",
	KindOffsetOutOfBounds:        "copy or read would start outside the allocation",
	KindInvalidLayout:            "invalid layout, probably caused by very large size, offset, or alignment",
	KindRequestedOffsetUnaligned: "requested offset does not satisfy the computed alignment",
}

// Describe returns a human-readable sentence for the placement kinds and ""
// for everything else.
func (k Kind) Describe() string {
	return kindText[k]
}

// Error is the structured error type used throughout slabcopy
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	GoType string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	if e.Phase != "" {
		b.WriteByte('[')
		b.WriteString(string(e.Phase))
		b.WriteString("] ")
	}
	b.WriteString(string(e.Kind))

	if e.GoType != "" {
		b.WriteString(": Go type ")
		b.WriteString(e.GoType)
	}

	detail := e.Detail
	if detail == "" {
		detail = e.Kind.Describe()
	}
	if detail != "" {
		if e.GoType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. A target without a phase
// matches on kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Phase == "" || t.Phase == e.Phase
}

// Sentinel returns a phase-less error usable as an errors.Is target.
func Sentinel(kind Kind) *Error {
	return &Error{Kind: kind}
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for the placement kinds

// OutOfMemory creates an error for a padded end past the region
func OutOfMemory(phase Phase, end, size uintptr) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfMemory,
		Detail: fmt.Sprintf("padded end %d exceeds region size %d", end, size),
		Value:  end,
	}
}

// OffsetOutOfBounds creates an error for a placement starting past the region
func OffsetOutOfBounds(phase Phase, start, size uintptr) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOffsetOutOfBounds,
		Detail: fmt.Sprintf("start offset %d outside region of size %d", start, size),
		Value:  start,
	}
}

// InvalidLayout creates a layout overflow error
func InvalidLayout(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidLayout,
		Detail: detail,
	}
}

// Unaligned creates an error for an exact request the alignment rules moved
func Unaligned(phase Phase, requested, computed, align uintptr) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindRequestedOffsetUnaligned,
		Detail: fmt.Sprintf("offset %d is not aligned to %d (nearest placement %d)", requested, align, computed),
		Value:  requested,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// AllocationFailed creates an allocation failure error
func AllocationFailed(phase Phase, size, align uintptr, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindAllocation,
		Detail: fmt.Sprintf("failed to allocate %d bytes (align %d)", size, align),
		Cause:  cause,
	}
}

// External wraps a failure reported by a routine outside slabcopy
func External(phase Phase, what string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindExternal,
		Detail: what,
		Cause:  cause,
	}
}

// WithPhase returns a copy of err stamped with phase. Non-*Error values are
// returned unchanged.
func WithPhase(err error, phase Phase) error {
	e, ok := err.(*Error)
	if !ok {
		return err
	}
	c := *e
	c.Phase = phase
	return &c
}
