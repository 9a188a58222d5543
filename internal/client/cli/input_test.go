package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("  hello world \n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	assert.Error(t, err)
}

func TestGetOptionalText(t *testing.T) {
	var out bytes.Buffer

	got, err := GetOptionalText(rdr("\n"), "Email", "old@example.com", &out)
	require.NoError(t, err)
	assert.Nil(t, got, "Enter keeps the value")
	assert.Contains(t, out.String(), "Email [old@example.com]")

	got, err = GetOptionalText(rdr("-\n"), "Email", "old@example.com", &out)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, *got)

	got, err = GetOptionalText(rdr("new@example.com\n"), "Email", "old@example.com", &out)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "new@example.com", *got)
}

func TestConfirm(t *testing.T) {
	for in, want := range map[string]bool{"y\n": true, "YES\n": true, "n\n": false, "\n": false, "maybe\n": false} {
		got, err := Confirm(rdr(in), "Sure?", &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, want, got, "input %q", in)
	}
}
