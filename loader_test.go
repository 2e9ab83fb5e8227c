package kstem

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testLexiconDir = "testdata/lexicon"

func TestNewLoadsFixtureLexicon(t *testing.T) {
	st, err := New(testLexiconDir)
	require.NoError(t, err)
	require.NotNil(t, st)
	require.Greater(t, st.Len(), 0)
}

func TestNewRejectsMissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)

	var lexErr *LexiconError
	require.ErrorAs(t, err, &lexErr)
	require.True(t, errors.Is(err, ErrLexiconOpen))
}

func TestNewRejectsEmptyDirectory(t *testing.T) {
	_, err := New("")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrConfigMissing))
}

func TestNewRejectsDuplicateHeadword(t *testing.T) {
	dir := writeLexiconFixture(t, map[string]string{
		headwordFile:           "alpha beta alpha",
		supplementFile:         "",
		eExceptionFile:         "",
		directConflationFile:   "",
		countryNationalityFile: "",
		properNounFile:         "",
	})

	_, err := New(dir)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrLexiconDuplicate))
}

func TestNewRejectsUnknownEException(t *testing.T) {
	dir := writeLexiconFixture(t, map[string]string{
		headwordFile:           "alpha",
		supplementFile:         "",
		eExceptionFile:         "beta",
		directConflationFile:   "",
		countryNationalityFile: "",
		properNounFile:         "",
	})

	_, err := New(dir)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrLexiconCrossRef))
}

func TestNewRejectsOddPairFile(t *testing.T) {
	dir := writeLexiconFixture(t, map[string]string{
		headwordFile:           "alpha",
		supplementFile:         "",
		eExceptionFile:         "",
		directConflationFile:   "onlyvariant",
		countryNationalityFile: "",
		properNounFile:         "",
	})

	_, err := New(dir)
	require.Error(t, err)
}

// writeLexiconFixture writes the six named lexicon files (content
// indexed by file name) into a fresh temp directory and returns its
// path.
func writeLexiconFixture(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		writeFile(t, filepath.Join(dir, name), content)
	}
	return dir
}
