package slabcopy

import (
	"iter"

	"github.com/wippyai/slabcopy/internal/layout"
)

// CopySeqWithAlign copies each value of src into dst, starting at offset.
// Every element is placed independently against minAlign, so gaps appear
// when minAlign exceeds T's alignment. The next element is searched for from
// the previous element's EndOffset.
//
// An empty sequence returns an empty, non-nil slice. On failure the elements
// already copied stay written and no records are returned.
func CopySeqWithAlign[T any](src iter.Seq[T], dst MutRegion, offset, minAlign uintptr) ([]CopyRecord, error) {
	layout.MustPlain[T]()

	records := []CopyRecord{}
	for v := range src {
		rec, err := CopyToWithAlign(&v, dst, offset, minAlign)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
		offset = rec.EndOffset
	}
	return records, nil
}

// CopySeqPacked copies the values of src back to back. The first element is
// placed floating against minAlign. Each following element starts at the
// first offset after its predecessor's end that satisfies T's own alignment.
//
// The returned record spans from the first start to the last end. It is nil
// for an empty sequence.
func CopySeqPacked[T any](src iter.Seq[T], dst MutRegion, offset, minAlign uintptr) (*CopyRecord, error) {
	return copySeqPacked(src, dst, offset, minAlign, false)
}

// CopySeqExactPacked is CopySeqPacked with the first element placed at
// exactly offset.
func CopySeqExactPacked[T any](src iter.Seq[T], dst MutRegion, offset, minAlign uintptr) (*CopyRecord, error) {
	return copySeqPacked(src, dst, offset, minAlign, true)
}

func copySeqPacked[T any](src iter.Seq[T], dst MutRegion, offset, minAlign uintptr, exact bool) (*CopyRecord, error) {
	layout.MustPlain[T]()

	var agg *CopyRecord
	for v := range src {
		if agg == nil {
			var (
				rec CopyRecord
				err error
			)
			if exact {
				rec, err = CopyToWithAlignExact(&v, dst, offset, minAlign)
			} else {
				rec, err = CopyToWithAlign(&v, dst, offset, minAlign)
			}
			if err != nil {
				return nil, err
			}
			agg = &rec
			continue
		}

		rec, err := CopyTo(&v, dst, agg.EndOffset)
		if err != nil {
			return nil, err
		}
		agg.EndOffset = rec.EndOffset
		agg.EndOffsetPadded = rec.EndOffsetPadded
	}
	return agg, nil
}
