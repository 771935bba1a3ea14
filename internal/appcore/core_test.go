package appcore

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hpscan/internal/config"
	"hpscan/internal/engine"
	"hpscan/internal/testutil"

	_ "modernc.org/sqlite"
)

const sample = ">chr1 test\nACGTTTTTTGCA\n>chr2\nggggggCC\n"

func testConfig() *config.Config {
	return &config.Config{
		MinRunLength: 5,
		Output:       "tsv",
		Header:       true,
		LogLevel:     "info",
		LogFormat:    "text",
		DBBatchSize:  2,
	}
}

func TestRunTSV(t *testing.T) {
	fa := testutil.WriteFASTA(t, "in.fa", sample)
	var out bytes.Buffer

	code := Run(t.Context(), &out, testConfig(), []string{fa}, testutil.NewTestLogger(t))
	require.Equal(t, ExitOK, code)
	assert.Equal(t, "contig\tstart\tend\tlen\tnt\nchr1\t3\t9\t6\tT\nchr2\t0\t6\t6\tg\n", out.String())
}

func TestRunFoldCaseAndStrict(t *testing.T) {
	fa := testutil.WriteFASTA(t, "in.fa", ">x\nNNNNNNaaaaa\n")
	cfg := testConfig()
	cfg.FoldCase = true
	cfg.Header = false
	var out bytes.Buffer
	require.Equal(t, ExitOK, Run(t.Context(), &out, cfg, []string{fa}, nil))
	assert.Equal(t, "x\t0\t6\t6\tN\nx\t6\t11\t5\tA\n", out.String())

	cfg.Strict = true
	out.Reset()
	require.Equal(t, ExitOK, Run(t.Context(), &out, cfg, []string{fa}, nil))
	assert.Equal(t, "x\t6\t11\t5\tA\n", out.String())
}

func TestRunNoMatchExitCode(t *testing.T) {
	fa := testutil.WriteFASTA(t, "in.fa", ">x\nACGTACGT\n")
	cfg := testConfig()
	cfg.NoMatchExitCode = 1
	var out bytes.Buffer
	assert.Equal(t, 1, Run(t.Context(), &out, cfg, []string{fa}, nil))
	assert.Equal(t, "contig\tstart\tend\tlen\tnt\n", out.String())
}

func TestRunInvalidMinRunLength(t *testing.T) {
	cfg := testConfig()
	cfg.MinRunLength = 0
	assert.Equal(t, ExitUsage, Run(t.Context(), io.Discard, cfg, nil, nil))
}

func TestRunMissingFileContinues(t *testing.T) {
	fa := testutil.WriteFASTA(t, "in.fa", sample)
	missing := filepath.Join(t.TempDir(), "missing.fa")
	logger, logs := testutil.NewBufferLogger()
	var out bytes.Buffer

	code := Run(t.Context(), &out, testConfig(), []string{missing, fa}, logger)
	assert.Equal(t, ExitIO, code)
	assert.Contains(t, out.String(), "chr2\t0\t6\t6\tg")
	assert.Contains(t, logs.String(), "cannot scan file")
}

func TestRunOutFileAtomic(t *testing.T) {
	fa := testutil.WriteFASTA(t, "in.fa", sample)
	dest := filepath.Join(t.TempDir(), "sub", "runs.bed")
	cfg := testConfig()
	cfg.Output = "bed"
	cfg.Out = dest
	var stdout bytes.Buffer

	require.Equal(t, ExitOK, Run(t.Context(), &stdout, cfg, []string{fa}, nil))
	assert.Empty(t, stdout.String())
	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "chr1\t3\t9\tT:6\nchr2\t0\t6\tg:6\n", string(got))
}

func TestRunOutFileRemovedOnFailure(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "runs.tsv")
	cfg := testConfig()
	cfg.Out = dest

	code := Run(t.Context(), io.Discard, cfg, []string{filepath.Join(dir, "missing.fa")}, nil)
	assert.Equal(t, ExitIO, code)
	_, err := os.Stat(dest)
	assert.True(t, os.IsNotExist(err))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "temp file left behind")
}

func TestRunCanceled(t *testing.T) {
	fa := testutil.WriteFASTA(t, "in.fa", sample)
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	assert.Equal(t, ExitInterrupted, Run(ctx, io.Discard, testConfig(), []string{fa}, nil))
}

func TestRunSQLiteSink(t *testing.T) {
	fa := testutil.WriteFASTA(t, "in.fa", sample+">chr3\nAAAAAAACCCCCCC\n")
	dsn := filepath.Join(t.TempDir(), "runs.db")
	cfg := testConfig()
	cfg.DBDriver = "sqlite"
	cfg.DBDSN = dsn
	var out bytes.Buffer

	require.Equal(t, ExitOK, Run(t.Context(), &out, cfg, []string{fa}, nil))

	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var scans, runs int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM scans`).Scan(&scans))
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM homopolymer_runs`).Scan(&runs))
	assert.Equal(t, 1, scans)
	assert.Equal(t, 4, runs)

	var contig, nt string
	var start, end int
	require.NoError(t, db.QueryRow(
		`SELECT contig, start_pos, end_pos, nt FROM homopolymer_runs WHERE contig = 'chr3' ORDER BY start_pos LIMIT 1`,
	).Scan(&contig, &start, &end, &nt))
	assert.Equal(t, []any{"chr3", 0, 7, "A"}, []any{contig, start, end, nt})
}

type failingSink struct{}

func (failingSink) Name() string { return "failing" }

func (failingSink) Consume(_ context.Context, in <-chan engine.Hit) error {
	for range in {
	}
	return errors.New("disk full")
}

func TestFanOutSinkError(t *testing.T) {
	fa := testutil.WriteFASTA(t, "in.fa", sample)
	eng, err := engine.New(testConfig().Scan())
	require.NoError(t, err)

	var out bytes.Buffer
	sinks := []Sink{TextSink{W: &out, Format: "tsv"}, failingSink{}}
	_, _, scanErr, sinkErr := fanOut(t.Context(), testConfig(), []string{fa}, eng, nil, sinks)
	require.NoError(t, scanErr)
	require.Error(t, sinkErr)
	assert.Contains(t, sinkErr.Error(), "failing: disk full")
}
