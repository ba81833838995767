// core/seqio/stream.go
package seqio

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Record is one input sequence with its identifier. Seq is the raw record
// content; normalization and alphabet validation happen downstream.
type Record struct {
	ID  string
	Seq string
}

// StreamCtx parses sequence records from r and calls emit for each one.
//
// The format is auto-detected from the first non-blank byte: '>' selects
// FASTA (header lines name records, sequence lines concatenate), anything
// else selects line-per-sequence (every non-blank line is its own record,
// with IDs synthesized as seq1, seq2, ...). It is cancelable between lines.
func StreamCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		started bool
		isFasta bool
		id      string
		seq     bytes.Buffer
		lineNo  int
	)

	flush := func() error {
		if id == "" && seq.Len() == 0 {
			return nil
		}
		err := emit(Record{ID: id, Seq: seq.String()})
		id = ""
		seq.Reset()
		return err
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if !started {
			started = true
			isFasta = line[0] == '>'
		}

		if isFasta {
			if line[0] == '>' {
				if err := flush(); err != nil {
					return err
				}
				id = parseHeaderID(line[1:])
				continue
			}
			seq.Write(line)
			continue
		}

		lineNo++
		if err := emit(Record{ID: fmt.Sprintf("seq%d", lineNo), Seq: string(line)}); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("sequence scan: %w", err)
	}
	if isFasta {
		return flush()
	}
	return nil
}

// StreamPathCtx opens path (see openReader) and streams its records.
func StreamPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()
	return StreamCtx(ctx, rc, emit)
}

// parseHeaderID extracts the record ID from a FASTA header: everything up to
// the first whitespace.
func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
