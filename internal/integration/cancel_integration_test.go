package integration

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"hpscan/internal/app"
	"hpscan/internal/testutil"
)

func TestCtrlC_MidScan_Exit130(t *testing.T) {
	const Mb = 1 << 20
	var b strings.Builder
	for i := range 16 {
		b.WriteString(">chr")
		b.WriteString(string(rune('a' + i%26)))
		b.WriteString("\n")
		b.WriteString(strings.Repeat("AAAAACCCCCGGGGGTTTTT", Mb/20))
		b.WriteString("\n")
	}
	fn := testutil.WriteFASTA(t, "cancel_big.fa", b.String())

	ctx, cancel := context.WithCancel(t.Context())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	code := app.RunContext(ctx, []string{"scan", "-q", fn}, io.Discard, io.Discard)
	if code != 130 {
		t.Fatalf("expected exit 130 on cancel, got %d", code)
	}
}
