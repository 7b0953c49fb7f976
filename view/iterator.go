package view

import "iter"

// FileIterator walks the concatenated v2 records of a mapped region,
// advancing by each record's true header+body length rather than trusting
// the header's reserved data_size slot — mebo's own iterator position
// bookkeeping trusts a similar reserved field and is deliberately not
// mirrored here.
type FileIterator struct {
	buf []byte
}

// All returns a range-over-func iterator yielding (index, *Accessor) for
// each record, in file order, grounded on blob/blob_set.go's
// iter.Seq2-based multi-record iteration generalized from "next blob in a
// set" to "next record in a mapped file."
func (it *FileIterator) All() iter.Seq2[int, *Accessor] {
	return func(yield func(int, *Accessor) bool) {
		pos := 0
		index := 0

		for pos < len(it.buf) {
			acc, err := NewAccessor(it.buf[pos:])
			if err != nil {
				return
			}

			if !yield(index, acc) {
				return
			}

			n, err := acc.BytesConsumed()
			if err != nil || n <= 0 {
				return
			}
			pos += n
			index++
		}
	}
}
