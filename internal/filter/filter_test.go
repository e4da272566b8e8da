package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usn_tail/internal/event"
	"usn_tail/internal/eventstream"
)

func TestCompile_InvalidExpression(t *testing.T) {
	_, err := Compile(`reasons +`)
	assert.Error(t, err)
}

func TestCompile_MustYieldBool(t *testing.T) {
	_, err := Compile(`fullPath`)
	assert.Error(t, err)
}

func TestFilter_Match(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		event      event.Event
		want       bool
	}{
		{
			name:       "reason membership",
			expression: `"CLOSE" in reasons`,
			event:      event.Event{Reasons: []string{"DATA_EXTEND", "CLOSE"}},
			want:       true,
		},
		{
			name:       "directory excluded",
			expression: `"CLOSE" in reasons && !isDirectory`,
			event:      event.Event{Reasons: []string{"CLOSE"}, IsDirectory: true},
			want:       false,
		},
		{
			name:       "extension match",
			expression: `ext == "txt"`,
			event:      event.Event{FullPath: `C:\a.txt`},
			want:       true,
		},
		{
			name:       "path fallback to fileName",
			expression: `path == "b.log"`,
			event:      event.Event{FileName: "b.log"},
			want:       true,
		},
		{
			name:       "empty reasons",
			expression: `"CLOSE" in reasons`,
			event:      event.Event{Reasons: []string{}},
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Match(&tt.event))
		})
	}
}

func TestFilter_Wrap(t *testing.T) {
	f, err := Compile(`!isDirectory`)
	require.NoError(t, err)

	var forwarded []string
	inner := eventstream.HandlerFunc(func(e *event.Event) error {
		forwarded = append(forwarded, e.FileName)
		return nil
	})
	h := f.Wrap(inner)

	require.NoError(t, h.HandleEvent(&event.Event{FileName: "file", IsDirectory: false}))
	require.NoError(t, h.HandleEvent(&event.Event{FileName: "dir", IsDirectory: true}))

	assert.Equal(t, []string{"file"}, forwarded)
}
