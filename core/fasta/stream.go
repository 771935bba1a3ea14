// core/fasta/stream.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
)

const (
	readBufSize = 4 << 20 // bufio.Reader size; lines longer than this arrive in fragments
	space       = " \t\r\n\v\f"
)

type lineKind int

const (
	lineBlank lineKind = iota // only whitespace seen so far
	lineHeader
	lineSeq
)

// StreamCtx parses FASTA from r and calls emit once per record. Lines may be
// of any length; a whole unwrapped chromosome on one line is fine.
//
// Record.Seq aliases a buffer reused for the next record and is only valid
// until emit returns; copy it to keep it.
//
// Malformed records are handed to report (when non-nil) and skipped; parsing
// continues with the next header. A non-nil error from emit stops the stream
// and is returned. Cancellation is checked between lines.
func StreamCtx(ctx context.Context, r io.Reader, emit func(Record) error, report func(*RecordError)) error {
	br := bufio.NewReaderSize(r, readBufSize)

	var (
		id      string
		inRec   bool // a valid header is open
		skip    bool // discarding lines of a malformed record
		orphans bool // sequence lines before the first header already reported
		seq     = make([]byte, 0, 1<<20)
		hdr     []byte
		lineNo  int
		kind    = lineBlank
		mark    int // len(seq) when the current sequence line started
		newLine = true
	)

	flush := func() error {
		if !inRec {
			return nil
		}
		inRec = false
		return emit(Record{ID: id, Seq: seq})
	}

	endLine := func() error {
		switch kind {
		case lineHeader:
			if err := flush(); err != nil {
				return err
			}
			seq = seq[:0]
			id = parseHeaderID(hdr[1:])
			if id == "" {
				skip = true
				if report != nil {
					report(&RecordError{Line: lineNo, Err: ErrEmptyID})
				}
			} else {
				inRec, skip = true, false
			}
		case lineSeq:
			switch {
			case inRec:
				seq = seq[:mark+len(bytes.TrimRight(seq[mark:], space))]
			case skip:
			default:
				if !orphans && report != nil {
					report(&RecordError{Line: lineNo, Err: ErrNoHeader})
				}
				orphans = true
			}
		}
		kind = lineBlank
		hdr = hdr[:0]
		return nil
	}

	for {
		if newLine {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			lineNo++
			newLine = false
		}

		frag, err := br.ReadSlice('\n')
		if err != nil && !errors.Is(err, bufio.ErrBufferFull) && !errors.Is(err, io.EOF) {
			return fmt.Errorf("fasta read: %w", err)
		}

		if kind == lineBlank {
			frag = bytes.TrimLeft(frag, space)
			if len(frag) > 0 {
				if frag[0] == '>' {
					kind = lineHeader
				} else {
					kind = lineSeq
					mark = len(seq)
				}
			}
		}
		switch kind {
		case lineHeader:
			hdr = append(hdr, frag...)
		case lineSeq:
			if inRec {
				seq = append(seq, frag...)
			}
		}

		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if e := endLine(); e != nil {
			return e
		}
		if err != nil { // io.EOF
			return flush()
		}
		newLine = true
	}
}

// StreamFromReader is StreamCtx with a background context and no reporting.
func StreamFromReader(r io.Reader, emit func(Record) error) error {
	return StreamCtx(context.Background(), r, emit, nil)
}

// parseHeaderID returns the first whitespace-delimited token of a header line
// (without the leading '>').
func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
