// Package tailer reads newly appended bytes from append-only log files on
// demand. It is stateless: each read takes a cursor and returns the next
// one, so any number of pollers can tail the same file independently.
package tailer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/plexnotify/logtail-api-server/internal/models"
)

// Result is the outcome of one incremental read.
type Result struct {
	// Lines holds the text appended since the cursor, split on newlines
	// with terminators stripped. The last element is an in-progress partial
	// record when EndsWithNewline is false.
	Lines []string
	// NextCursor is the position to resume from on the next read.
	NextCursor int64
	// FileSize is the file's total size at read time.
	FileSize int64
	// EndsWithNewline is false when the read ended mid-record.
	EndsWithNewline bool
}

// ReadSince returns everything appended to the file at path since cursor.
//
// The bootstrap sentinel cursor attaches at the current end of file without
// replaying history: no lines, NextCursor at the current size. A cursor
// beyond the current size (the writer truncated or rotated the file) restarts
// the read at offset zero; the regressing NextCursor in the result is what
// lets a polling client detect the rotation.
//
// Reads are side-effect free and idempotent: the same cursor against an
// unchanged file yields the same result. Bytes appended between the size
// check and the read are left for the next poll.
func ReadSince(path string, cursor int64) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return Result{}, fmt.Errorf("stat log file: %w", err)
	}
	size := fi.Size()

	if cursor == models.BootstrapCursor || cursor < 0 {
		return Result{Lines: []string{}, NextCursor: size, FileSize: size, EndsWithNewline: true}, nil
	}

	start := cursor
	if start > size {
		// The file shrank underneath the cursor; start over from the top.
		start = 0
	}
	if start == size {
		return Result{Lines: []string{}, NextCursor: size, FileSize: size, EndsWithNewline: true}, nil
	}

	if _, err := f.Seek(start, io.SeekStart); err != nil {
		return Result{}, fmt.Errorf("seek log file: %w", err)
	}
	data, err := io.ReadAll(io.LimitReader(f, size-start))
	if err != nil {
		return Result{}, fmt.Errorf("read log file: %w", err)
	}

	next := start + int64(len(data))
	endsWithNewline := len(data) > 0 && data[len(data)-1] == '\n'

	text := string(data)
	if endsWithNewline {
		text = text[:len(text)-1]
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return Result{
		Lines:           lines,
		NextCursor:      next,
		FileSize:        size,
		EndsWithNewline: endsWithNewline,
	}, nil
}

// Size returns the current size of the file at path, or -1 when it cannot
// be statted.
func Size(path string) int64 {
	fi, err := os.Stat(path)
	if err != nil {
		return -1
	}
	return fi.Size()
}
