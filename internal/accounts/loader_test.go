package accounts

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_SkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "query.txt")
	content := "query_id=AAA&user=1\n\n   \r\n  query_id=BBB&user=2  \nquery_id=CCC&user=3"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	queries, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"query_id=AAA&user=1",
		"query_id=BBB&user=2",
		"query_id=CCC&user=3",
	}, queries)
}

func TestLoad_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "query.txt")
	require.NoError(t, os.WriteFile(path, []byte("\n\n"), 0644))

	_, err := Load(path)
	assert.True(t, errors.Is(err, ErrNoAccounts))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
