package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"lower y", "y\n", true},
		{"upper Y", "Y\n", true},
		{"crlf", "y\r\n", true},
		{"no newline", "y", true},
		{"empty line", "\n", false},
		{"end of input", "", false},
		{"n", "n\n", false},
		{"yes spelled out", "yes\n", false},
		{"padded", " y\n", false},
		{"only first line counts", "n\ny\n", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			got, err := Confirm(strings.NewReader(tt.input), &out, "Apply? [y/N]: ")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Apply? [y/N]: ", out.String())
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestConfirm_ReadError(t *testing.T) {
	t.Parallel()

	ok, err := Confirm(failingReader{}, &bytes.Buffer{}, "? ")
	require.Error(t, err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "reading answer")
}
