package writer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileWriterAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	w := &FileWriter{Path: path}
	require.NoError(t, w.WriteDump([]byte("var jiffies u64\n")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "var jiffies u64\n", string(got))

	// Overwrite leaves no temp files behind.
	require.NoError(t, w.WriteDump([]byte("second\n")))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestFileWriterBadDir(t *testing.T) {
	w := &FileWriter{Path: filepath.Join("does", "not", "exist", "out.txt")}
	require.Error(t, w.WriteDump([]byte("x")))
}

func TestMemWriterCopies(t *testing.T) {
	src := []byte("abc")
	w := &MemWriter{}
	require.NoError(t, w.WriteDump(src))
	src[0] = 'z'
	require.Equal(t, "abc", string(w.Buf))
}
