// Package records models the flat row-record sequence an extraction run
// emits and its JSON wire encoding.
package records

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// Field is a single labeled cell within a record. Value is one of:
// int64, float64, bool, string, or nil for a missing cell.
type Field struct {
	Label string
	Value any
}

// Record is one table row keyed by column label. Fields follow the
// table's column order; a Go map would lose that order on encoding.
type Record []Field

// MarshalJSON encodes the record as a JSON object with keys in field
// order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		label, err := json.Marshal(f.Label)
		if err != nil {
			return nil, fmt.Errorf("failed to encode column label %q: %w", f.Label, err)
		}
		buf.Write(label)
		buf.WriteByte(':')
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode cell %q: %w", f.Label, err)
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Records is the flattened sequence of rows from every detected table,
// in page and table discovery order.
type Records []Record

// Marshal encodes the sequence as a single JSON array. An empty or nil
// sequence encodes as [] rather than null, since the consuming process
// expects an array in every success case.
func Marshal(recs Records) ([]byte, error) {
	if len(recs) == 0 {
		return []byte("[]"), nil
	}
	data, err := json.Marshal(recs)
	if err != nil {
		return nil, fmt.Errorf("failed to encode extraction result: %w", err)
	}
	return data, nil
}

// Normalize rewrites every NaN cell to nil in place so the sequence
// encodes as standard JSON. encoding/json rejects NaN outright, so an
// unnormalized sequence would fail to serialize at all.
func Normalize(recs Records) {
	for _, rec := range recs {
		for i, f := range rec {
			if v, ok := f.Value.(float64); ok && math.IsNaN(v) {
				rec[i].Value = nil
			}
		}
	}
}
