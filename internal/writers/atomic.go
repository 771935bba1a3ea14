// internal/writers/atomic.go
package writers

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
)

// AtomicFile buffers writes into a temp file next to the destination and
// renames it into place on Commit. Abort (or a failed Commit) removes it.
type AtomicFile struct {
	dest string
	tmp  *os.File
	bw   *bufio.Writer
	done bool
}

// CreateAtomic prepares an AtomicFile for dest, creating parent directories.
func CreateAtomic(dest string) (*AtomicFile, error) {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	tmp, err := os.CreateTemp(dir, ".hpscan-*")
	if err != nil {
		return nil, err
	}
	_ = os.Chmod(tmp.Name(), 0o644)
	return &AtomicFile{dest: dest, tmp: tmp, bw: bufio.NewWriterSize(tmp, 64<<10)}, nil
}

func (f *AtomicFile) Write(p []byte) (int, error) { return f.bw.Write(p) }

// Commit flushes, syncs and renames the temp file onto the destination.
func (f *AtomicFile) Commit() error {
	if f.done {
		return errors.New("atomic file already closed")
	}
	f.done = true
	err := f.bw.Flush()
	if err == nil {
		err = f.tmp.Sync()
	}
	if cerr := f.tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(f.tmp.Name(), f.dest)
	}
	if err != nil {
		_ = os.Remove(f.tmp.Name())
	}
	return err
}

// Abort discards the temp file. Safe to call after Commit.
func (f *AtomicFile) Abort() {
	if f.done {
		return
	}
	f.done = true
	_ = f.tmp.Close()
	_ = os.Remove(f.tmp.Name())
}
