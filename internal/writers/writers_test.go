package writers

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hpscan-core/homopolymer"
	"hpscan/internal/engine"
	"hpscan/internal/output"
	"hpscan/pkg/api"
)

func sample() []engine.Hit {
	return []engine.Hit{
		{Contig: "chr1", Run: homopolymer.Run{Start: 2, End: 5, Symbol: 'T'}},
		{Contig: "chr1", Run: homopolymer.Run{Start: 5, End: 9, Symbol: 'C'}},
	}
}

func run(t *testing.T, format string, opt Options, hits []engine.Hit) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	in, done := StartRunWriter(&buf, format, opt, 1)
	for _, h := range hits {
		in <- h
	}
	close(in)
	err := <-done
	return buf.String(), err
}

func TestUnknownRunFormatError(t *testing.T) {
	_, err := run(t, "nope-format", Options{}, sample())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown run format")
}

func TestRegisteredFormatsMatchOutput(t *testing.T) {
	assert.ElementsMatch(t, output.Formats, RegisteredFormats())
}

func TestTSVWriter(t *testing.T) {
	out, err := run(t, "tsv", Options{Header: true}, sample())
	require.NoError(t, err)
	assert.Equal(t, "contig\tstart\tend\tlen\tnt\nchr1\t2\t5\t3\tT\nchr1\t5\t9\t4\tC\n", out)
}

func TestJSONLWriter(t *testing.T) {
	out, err := run(t, "jsonl", Options{}, sample())
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	var r api.RunV1
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &r))
	assert.Equal(t, api.RunV1{Contig: "chr1", Start: 5, End: 9, Length: 4, Symbol: "C"}, r)
}

func TestTableWriter(t *testing.T) {
	out, err := run(t, "table", Options{Header: true}, sample())
	require.NoError(t, err)
	assert.Contains(t, out, "CONTIG")
	assert.Contains(t, out, "chr1")
	assert.Contains(t, out, "(2 runs)")

	out, err = run(t, "table", Options{Header: true}, nil)
	require.NoError(t, err)
	assert.Equal(t, "(0 runs)\n", out)
}

type pipeWriter struct{}

func (pipeWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestBrokenPipeIsSuccess(t *testing.T) {
	in, done := StartRunWriter(pipeWriter{}, "tsv", Options{Header: true}, 1)
	for _, h := range sample() {
		in <- h
	}
	close(in)
	require.NoError(t, <-done)
}

func TestAtomicFileCommit(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "sub", "runs.tsv")
	f, err := CreateAtomic(dest)
	require.NoError(t, err)
	_, err = f.Write([]byte("hello\n"))
	require.NoError(t, err)

	_, statErr := os.Stat(dest)
	require.True(t, os.IsNotExist(statErr), "destination must not exist before commit")

	require.NoError(t, f.Commit())
	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
	f.Abort() // no-op after commit
}

func TestAtomicFileAbort(t *testing.T) {
	dir := t.TempDir()
	f, err := CreateAtomic(filepath.Join(dir, "runs.tsv"))
	require.NoError(t, err)
	_, _ = f.Write([]byte("partial"))
	f.Abort()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHighByteSymbolInEveryFormat(t *testing.T) {
	hits := []engine.Hit{{Contig: "x", Run: homopolymer.Run{Start: 0, End: 5, Symbol: 0xff}}}
	for _, format := range RegisteredFormats() {
		t.Run(format, func(t *testing.T) {
			out, err := run(t, format, Options{Header: true}, hits)
			require.NoError(t, err)
			assert.Contains(t, out, "ÿ")
			assert.NotContains(t, out, "�")
			assert.NotContains(t, out, `\ufffd`)
		})
	}
}
