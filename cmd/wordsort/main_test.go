package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_SortsDistinctWords(t *testing.T) {
	var out, errOut strings.Builder
	code := run([]string{"banana apple cherry apple"}, &out, &errOut)
	require.Equal(t, 0, code)
	require.Equal(t, "apple\nbanana\ncherry\n", out.String())
	require.Empty(t, errOut.String())
}

func TestRun_Desc(t *testing.T) {
	var out, errOut strings.Builder
	code := run([]string{"--desc", "banana apple cherry"}, &out, &errOut)
	require.Equal(t, 0, code)
	require.Equal(t, "cherry\nbanana\napple\n", out.String())
}

func TestRun_NoLettersPrintsNothing(t *testing.T) {
	var out, errOut strings.Builder
	code := run([]string{"123 --- 456"}, &out, &errOut)
	require.Equal(t, 0, code)
	require.Empty(t, out.String())
}

func TestRun_UsageErrors(t *testing.T) {
	var out, errOut strings.Builder
	code := run(nil, &out, &errOut)
	require.Equal(t, 1, code)
	require.Contains(t, errOut.String(), "usage: wordsort")

	out.Reset()
	errOut.Reset()
	code = run([]string{"one", "two"}, &out, &errOut)
	require.Equal(t, 1, code)
	require.Contains(t, errOut.String(), "usage: wordsort")
}

func TestRun_TokenizesPunctuation(t *testing.T) {
	var out, errOut strings.Builder
	code := run([]string{"foo1bar,baz;;foo"}, &out, &errOut)
	require.Equal(t, 0, code)
	require.Equal(t, "bar\nbaz\nfoo\n", out.String())
}
