package generator

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/fieldbench/internal/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLine(t *testing.T) {
	assert.Equal(t, "write 2 1", Line("write 2"))
	assert.Equal(t, "read 0", Line("read 0"))
	assert.Equal(t, "string", Line("string"))
}

func TestGenerate(t *testing.T) {
	c, err := NewChooser(map[string]float64{"write 0": 1, "read 1": 1, "string": 1}, rand.New(rand.NewSource(9)))
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, Generate(&b, 50, c))

	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	require.Len(t, lines, 50)
	for _, l := range lines {
		assert.Contains(t, []string{"write 0 1", "read 1", "string"}, l)
	}
}

func TestGenerateFile(t *testing.T) {
	t.Run("output parses back", func(t *testing.T) {
		c, err := NewChooser(map[string]float64{
			"read 0": 0.1, "write 0": 0.1, "read 1": 0.1, "write 1": 0.1,
			"read 2": 0.4, "write 2": 0.05, "string": 0.15,
		}, rand.New(rand.NewSource(11)))
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "nested", "a_1.txt")
		require.NoError(t, GenerateFile(path, 1000, c))

		w, err := trace.LoadFromFile(path)
		require.NoError(t, err)
		require.Len(t, w, 1000)
		for _, op := range w {
			if op.Kind == trace.KindWrite {
				assert.Equal(t, WriteValue, op.Value)
			}
			if op.Kind != trace.KindSnapshot {
				assert.True(t, op.Index >= 0 && op.Index <= 2)
			}
		}
	})

	t.Run("zero ops writes an empty file", func(t *testing.T) {
		c, err := NewChooser(map[string]float64{"string": 1}, rand.New(rand.NewSource(1)))
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "empty.txt")
		require.NoError(t, GenerateFile(path, 0, c))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Empty(t, data)
	})

	t.Run("unwritable path", func(t *testing.T) {
		c, err := NewChooser(map[string]float64{"string": 1}, rand.New(rand.NewSource(1)))
		require.NoError(t, err)

		blocker := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(blocker, nil, 0644))

		err = GenerateFile(filepath.Join(blocker, "a_1.txt"), 10, c)
		assert.Error(t, err)
	})
}
