package eventlog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// Log is an append-only event stream owned by one game. Rollout clones
// set Suppress so simulated actions never pollute the real record.
type Log struct {
	Records  []Event
	Suppress bool
}

func New() *Log {
	return &Log{}
}

func (l *Log) Emit(e Event) {
	if l.Suppress {
		return
	}
	l.Records = append(l.Records, e)
}

// OfKind returns all records with the given kind, mainly for tests and
// telemetry aggregation.
func (l *Log) OfKind(kind string) []Event {
	var out []Event
	for _, e := range l.Records {
		if e.A == kind {
			out = append(out, e)
		}
	}
	return out
}

// WriteJSONL writes one JSON object per record, the on-disk log format
// consumed by the analysis tooling.
func WriteJSONL(w io.Writer, records []Event) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for i, e := range records {
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("failed to encode event %d: %w", i, err)
		}
	}
	return bw.Flush()
}
