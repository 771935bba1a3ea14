package jsonlutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func never(error) bool { return false }

func TestWriteEncodesLines(t *testing.T) {
	var buf bytes.Buffer
	in := make(chan int, 2)
	in <- 1
	in <- 2
	close(in)
	require.NoError(t, Write[int](&buf, in, func(enc *json.Encoder, v int) error { return enc.Encode(map[string]int{"v": v}) }, never))
	assert.Equal(t, "{\"v\":1}\n{\"v\":2}\n", buf.String())
}

func TestWriteDrainsOnError(t *testing.T) {
	boom := errors.New("boom")
	in := make(chan int, 3)
	in <- 1
	in <- 2
	in <- 3
	close(in)
	err := Write[int](&bytes.Buffer{}, in, func(*json.Encoder, int) error { return boom }, never)
	require.ErrorIs(t, err, boom)
	assert.Len(t, in, 0)
}
