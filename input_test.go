package main

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsQuit(t *testing.T) {
	for _, s := range []string{"q", "Q", "quit", "QUIT", "Quit", "exit", "eXiT", "  q  "} {
		assert.True(t, isQuit(s), "%q", s)
	}
	for _, s := range []string{"", "1", "qq", "quitter", "x", "no"} {
		assert.False(t, isQuit(s), "%q", s)
	}
}

func TestReadLines(t *testing.T) {
	lr := readLines(strings.NewReader("1\n  two \r\nthree"))
	var got []string
	for line := range lr.lines {
		got = append(got, line)
	}
	assert.Equal(t, []string{"1", "  two ", "three"}, got)
	assert.NoError(t, lr.err)
}

func TestReadLinesError(t *testing.T) {
	boom := errors.New("boom")
	lr := readLines(iotest.ErrReader(boom))
	for range lr.lines {
		t.Fatal("unexpected line")
	}
	require.Error(t, lr.err)
	assert.ErrorIs(t, lr.err, boom)
}
