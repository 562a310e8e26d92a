// Package errors provides structured error types for slabcopy.
//
// Errors are categorized by Phase (which operation failed) and Kind (why it
// failed). The four placement kinds are the only outcomes the core copy and
// read operations ever report:
//
//   - KindOutOfMemory: the padded end of the payload lies past the region
//   - KindOffsetOutOfBounds: the placement starts past the region
//   - KindInvalidLayout: size/alignment/offset arithmetic overflowed
//   - KindRequestedOffsetUnaligned: exact mode could not honor the offset
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseCopy, errors.KindOutOfMemory).
//		GoType("main.Vertex").
//		Detail("padded end %d exceeds region size %d", 24, 16).
//		Build()
//
// Or the convenience constructors for common patterns:
//
//	err := errors.OutOfMemory(errors.PhaseRead, 24, 16)
//
// Targets built with Sentinel carry no phase and match any error of the same
// kind, which is how the root package sentinels work with errors.Is.
package errors
