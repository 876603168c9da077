package trace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Op
		ok   bool
	}{
		{name: "read", line: "read 1", want: Read(1), ok: true},
		{name: "write", line: "write 0 42", want: Write(0, 42), ok: true},
		{name: "string", line: "string", want: Snapshot(), ok: true},
		{name: "negative operands", line: "write -1 -7", want: Write(-1, -7), ok: true},
		{name: "surrounding whitespace", line: "  read\t2  ", want: Read(2), ok: true},
		{name: "trailing tokens ignored", line: "write 2 1 extra", want: Write(2, 1), ok: true},
		{name: "out of range index is still an op", line: "read 9", want: Read(9), ok: true},
		{name: "empty", line: "", ok: false},
		{name: "blank", line: "   ", ok: false},
		{name: "unknown op", line: "delete 1", ok: false},
		{name: "read without index", line: "read", ok: false},
		{name: "write without value", line: "write 1", ok: false},
		{name: "non integer index", line: "read x", ok: false},
		{name: "case sensitive", line: "READ 1", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLine(tt.line)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParse(t *testing.T) {
	t.Run("skips unrecognized lines", func(t *testing.T) {
		input := "read 1\nbogus line\nwrite 0 42\n\nstring\n"
		w, err := Parse(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, Workload{Read(1), Write(0, 42), Snapshot()}, w)
	})

	t.Run("empty input", func(t *testing.T) {
		w, err := Parse(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, w)
	})
}

func TestLoadFromFile(t *testing.T) {
	t.Run("missing file yields empty workload and error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "does_not_exist.txt")
		w, err := LoadFromFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does_not_exist.txt")
		assert.NotNil(t, w)
		assert.Empty(t, w)
	})

	t.Run("round trips op strings", func(t *testing.T) {
		ops := Workload{Read(0), Write(2, 1), Snapshot(), Read(2)}
		var b strings.Builder
		for _, op := range ops {
			b.WriteString(op.String())
			b.WriteByte('\n')
		}
		path := writeFile(t, b.String())

		w, err := LoadFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, ops, w)
	})
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trace.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
