package fileinput

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedReader struct {
	io.Reader
	name   string
	closed bool
}

func (nr *namedReader) Name() string { return nr.name }
func (nr *namedReader) Close() error { nr.closed = true; return nil }

func TestInputReadLine(t *testing.T) {
	a := &namedReader{Reader: strings.NewReader("one\r\ntwo\n\nthree"), name: "a"}
	b := &namedReader{Reader: strings.NewReader("four\n"), name: "b"}
	in := Input{Queue: []io.Reader{a, b}}

	type line struct {
		text string
		loc  string
	}
	var lines []line
	for {
		text, loc, err := in.ReadLine()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		lines = append(lines, line{text, loc.String()})
	}
	assert.Equal(t, []line{
		{"one", "a:1"},
		{"two", "a:2"},
		{"", "a:3"},
		{"three", "a:4"},
		{"four", "b:1"},
	}, lines)
	assert.True(t, a.closed)
	assert.True(t, b.closed)

	_, _, err := in.ReadLine()
	assert.Equal(t, io.EOF, err, "stays at EOF")
}

func TestInputUnnamed(t *testing.T) {
	in := Input{Queue: []io.Reader{strings.NewReader("x")}}
	text, loc, err := in.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "x", text)
	assert.Equal(t, "<unnamed *strings.Reader>:1", loc.String())
}

func TestInputClose(t *testing.T) {
	a := &namedReader{Reader: strings.NewReader("1\n2\n"), name: "a"}
	b := &namedReader{Reader: strings.NewReader("3\n"), name: "b"}
	in := Input{Queue: []io.Reader{a, b}}
	_, _, err := in.ReadLine()
	require.NoError(t, err)
	require.NoError(t, in.Close())
	assert.True(t, a.closed)
	assert.True(t, b.closed)
}
