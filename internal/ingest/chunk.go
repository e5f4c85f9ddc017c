package ingest

import "iter"

// FlushChunks buffers rows into slices of at most size and writes each
// through sink, returning the total written. A sink or stream error stops
// the pass; rows flushed before the error stay written.
func FlushChunks[T any](rows iter.Seq2[T, error], size int, sink func([]T) (int, error)) (int, error) {
	total := 0
	buf := make([]T, 0, size)

	flush := func() error {
		if len(buf) == 0 {
			return nil
		}
		n, err := sink(buf)
		total += n
		buf = buf[:0]
		return err
	}

	for row, err := range rows {
		if err != nil {
			return total, err
		}
		buf = append(buf, row)
		if len(buf) >= size {
			if err := flush(); err != nil {
				return total, err
			}
		}
	}

	if err := flush(); err != nil {
		return total, err
	}
	return total, nil
}
