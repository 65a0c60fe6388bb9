package source

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSONL(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestJSONL_ReadsRecordsInOrder(t *testing.T) {
	path := writeJSONL(t, `{"id":"a","followers":100,"following":50}
{"id":"b","followers":9,"following":4000,"default_profile":true}
`)
	src, err := OpenJSONL(path)
	require.NoError(t, err)
	defer src.Close()

	first, err := src.Next()
	require.NoError(t, err)
	assert.Equal(t, "a", first.ID)
	assert.Equal(t, int64(100), first.Followers)

	second, err := src.Next()
	require.NoError(t, err)
	assert.Equal(t, "b", second.ID)
	assert.True(t, second.DefaultProfile)

	_, err = src.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestJSONL_SkipsBlankLines(t *testing.T) {
	path := writeJSONL(t, "\n{\"id\":\"a\"}\n\n   \n{\"id\":\"b\"}\n")
	src, err := OpenJSONL(path)
	require.NoError(t, err)
	defer src.Close()

	var ids []string
	for {
		rec, err := src.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		ids = append(ids, rec.ID)
	}
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestJSONL_MalformedLineReportsLineNumber(t *testing.T) {
	path := writeJSONL(t, "{\"id\":\"a\"}\nnot json\n")
	src, err := OpenJSONL(path)
	require.NoError(t, err)
	defer src.Close()

	_, err = src.Next()
	require.NoError(t, err)

	_, err = src.Next()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestJSONL_MissingFile(t *testing.T) {
	_, err := OpenJSONL(filepath.Join(t.TempDir(), "nope.jsonl"))
	require.Error(t, err)
}
