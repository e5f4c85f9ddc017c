package ingest

import (
	"encoding/json"
	"errors"
	"fmt"
	"iter"
)

// ErrTooManyInvalid aborts a dataset once rejected rows exceed the configured
// threshold. Chunks flushed before the abort stay persisted.
var ErrTooManyInvalid = errors.New("too many invalid rows")

// ValidationOutcome counts what a validation pass saw
type ValidationOutcome struct {
	Accepted int
	Rejected int
	Aborted  bool
}

// ValidRows filters a row stream, dropping rows that fail valid. When more
// than abortThreshold rows have been dropped the stream ends with
// ErrTooManyInvalid. Upstream errors pass through and end the stream.
func ValidRows[T any](rows iter.Seq2[T, error], valid func(T) bool, abortThreshold int, outcome *ValidationOutcome) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		for row, err := range rows {
			if err != nil {
				yield(zero, err)
				return
			}
			if !valid(row) {
				outcome.Rejected++
				if outcome.Rejected > abortThreshold {
					outcome.Aborted = true
					yield(zero, fmt.Errorf("%w: rejected %d rows", ErrTooManyInvalid, outcome.Rejected))
					return
				}
				continue
			}
			outcome.Accepted++
			if !yield(row, nil) {
				return
			}
		}
	}
}

// mapRecords decodes raw feed records into T and converts each through fn.
// The raw payload is passed alongside the decoded value for mappers that
// persist it. A record that fails to decode ends the stream.
func mapRecords[T, R any](raw iter.Seq2[json.RawMessage, error], fn func(json.RawMessage, *T) R) iter.Seq2[R, error] {
	return func(yield func(R, error) bool) {
		var zero R
		for rec, err := range raw {
			if err != nil {
				yield(zero, err)
				return
			}
			var in T
			if err := json.Unmarshal(rec, &in); err != nil {
				yield(zero, fmt.Errorf("failed to decode record: %w", err))
				return
			}
			if !yield(fn(rec, &in), nil) {
				return
			}
		}
	}
}
