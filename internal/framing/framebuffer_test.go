package framing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain pops all complete records currently in the buffer.
func drain(fb *FrameBuffer) []string {
	var records []string
	for {
		rec, ok := fb.Next()
		if !ok {
			return records
		}
		records = append(records, string(rec))
	}
}

func TestFrameBuffer_SingleCompleteRecord(t *testing.T) {
	fb := NewFrameBuffer()
	require.NoError(t, fb.Append([]byte("hello\n")))

	assert.Equal(t, []string{"hello"}, drain(fb))
	assert.Zero(t, fb.Len())
}

func TestFrameBuffer_RecordSplitAcrossChunks(t *testing.T) {
	fb := NewFrameBuffer()
	require.NoError(t, fb.Append([]byte(`{"reasons":["CL`)))

	_, ok := fb.Next()
	assert.False(t, ok, "partial record must not be extracted")

	require.NoError(t, fb.Append([]byte("OSE\"]}\n")))
	assert.Equal(t, []string{`{"reasons":["CLOSE"]}`}, drain(fb))
}

func TestFrameBuffer_MultipleRecordsInOneChunk(t *testing.T) {
	fb := NewFrameBuffer()
	require.NoError(t, fb.Append([]byte("a\nb\nc\n")))

	assert.Equal(t, []string{"a", "b", "c"}, drain(fb))
}

func TestFrameBuffer_TrailingPartialRetained(t *testing.T) {
	fb := NewFrameBuffer()
	require.NoError(t, fb.Append([]byte("complete\npart")))

	assert.Equal(t, []string{"complete"}, drain(fb))
	assert.Equal(t, "part", string(fb.Pending()))
}

func TestFrameBuffer_EmptyRecords(t *testing.T) {
	fb := NewFrameBuffer()
	require.NoError(t, fb.Append([]byte("\n\nx\n")))

	assert.Equal(t, []string{"", "", "x"}, drain(fb))
}

// Every chunking of the same byte sequence must yield the same records, in
// order, with the same trailing remainder.
func TestFrameBuffer_ChunkingInvariance(t *testing.T) {
	input := "{\"a\":1}\nnot json\n{\"b\":2}\ntail"
	wantRecords := []string{`{"a":1}`, "not json", `{"b":2}`}

	for size := 1; size <= len(input); size++ {
		fb := NewFrameBuffer()
		var got []string
		for off := 0; off < len(input); off += size {
			end := off + size
			if end > len(input) {
				end = len(input)
			}
			require.NoError(t, fb.Append([]byte(input[off:end])))
			got = append(got, drain(fb)...)
		}

		assert.Equal(t, wantRecords, got, "chunk size %d", size)
		assert.Equal(t, "tail", string(fb.Pending()), "chunk size %d", size)
	}
}

func TestFrameBuffer_MaxSize(t *testing.T) {
	fb := NewFrameBuffer(WithMaxSize(8))

	require.NoError(t, fb.Append([]byte("1234")))
	err := fb.Append([]byte("56789"))
	assert.ErrorIs(t, err, ErrFrameTooLarge)
}

func TestFrameBuffer_MaxSizeAllowsDelimitedData(t *testing.T) {
	fb := NewFrameBuffer(WithMaxSize(8))

	// More than 8 bytes total, but a delimiter is present so records can
	// still be drained.
	require.NoError(t, fb.Append([]byte("12345\n6789")))
	assert.Equal(t, []string{"12345"}, drain(fb))
}
