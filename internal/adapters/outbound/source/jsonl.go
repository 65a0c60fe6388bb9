// Package source reads profile snapshots from JSON Lines files, one profile
// record per line.
package source

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/authentiq/authentiq/internal/domain"
)

// JSONL implements domain.ProfileSource over a JSON Lines file.
type JSONL struct {
	f       *os.File
	scanner *bufio.Scanner
	line    int
}

// OpenJSONL opens the file at path for streaming.
func OpenJSONL(path string) (*JSONL, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening profiles file: %w", err)
	}

	scanner := bufio.NewScanner(f)
	// Profile records are small, but leave headroom for pretty-printed
	// exports that were collapsed onto single lines.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	return &JSONL{f: f, scanner: scanner}, nil
}

// Next returns the next record, skipping blank lines. It returns io.EOF when
// the file is exhausted and a line-numbered error on malformed input.
func (s *JSONL) Next() (domain.ProfileRecord, error) {
	for s.scanner.Scan() {
		s.line++
		raw := bytes.TrimSpace(s.scanner.Bytes())
		if len(raw) == 0 {
			continue
		}

		var rec domain.ProfileRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return domain.ProfileRecord{}, fmt.Errorf("line %d: %w", s.line, err)
		}
		return rec, nil
	}

	if err := s.scanner.Err(); err != nil {
		return domain.ProfileRecord{}, fmt.Errorf("reading profiles file: %w", err)
	}
	return domain.ProfileRecord{}, io.EOF
}

func (s *JSONL) Close() error { return s.f.Close() }
