package kstem

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestEntryIsSelfRoot(t *testing.T) {
	require.True(t, Entry{}.isSelfRoot())
	require.True(t, Entry{EException: true}.isSelfRoot())
	require.False(t, Entry{Root: "italy"}.isSelfRoot())
}

func TestLexiconLookupAndContains(t *testing.T) {
	lex := &Lexicon{entries: map[string]Entry{
		"aide":    {},
		"italian": {Root: "Italy"},
	}}

	e, ok := lex.lookup("aide")
	require.True(t, ok)
	require.True(t, e.isSelfRoot())

	e, ok = lex.lookup("italian")
	require.True(t, ok)
	require.Equal(t, "Italy", e.Root)

	require.True(t, lex.contains("aide"))
	require.False(t, lex.contains("missing"))
	require.Equal(t, 2, lex.Len())
}
