package logio

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, errors.New("closed pipe") }

type closeTracker struct {
	bytes.Buffer
	closed bool
}

func (ct *closeTracker) Close() error {
	ct.closed = true
	return nil
}

func TestLogger(t *testing.T) {
	var out bytes.Buffer
	var log Logger
	log.SetOutput(&out)

	trace := log.Leveledf("TRACE")
	trace("> push #%v", 1)
	trace("plain")
	log.Printf("", "bare\n")
	assert.Equal(t, 0, log.ExitCode())

	log.ErrorIf(nil)
	assert.Equal(t, 0, log.ExitCode())
	log.ErrorIf(errors.New("script.rho:3: division by zero"))
	assert.Equal(t, 1, log.ExitCode())

	assert.Equal(t, ""+
		"TRACE: > push #1\n"+
		"TRACE: plain\n"+
		"bare\n"+
		"ERROR: script.rho:3: division by zero\n",
		out.String())
}

func TestLoggerWriteFailure(t *testing.T) {
	var log Logger
	log.SetOutput(failWriter{})
	log.Printf("INFO", "lost")
	assert.Equal(t, 2, log.ExitCode())
	log.Errorf("also lost")
	assert.Equal(t, 2, log.ExitCode())
}

func TestLoggerSetOutputCloses(t *testing.T) {
	var log Logger
	first := &closeTracker{}
	log.SetOutput(first)
	log.Printf("INFO", "one")
	log.SetOutput(&bytes.Buffer{})
	assert.True(t, first.closed)
	assert.Equal(t, "INFO: one\n", first.String())
}

func TestLoggerNoOutput(t *testing.T) {
	var log Logger
	log.Errorf("nowhere")
	assert.Equal(t, 1, log.ExitCode())
}

func TestMarked(t *testing.T) {
	var lines []string
	log := Marked{Logfn: func(mess string, args ...interface{}) {
		lines = append(lines, fmt.Sprintf(mess, args...))
	}}

	log.Logf(">", "push #%v", 1)
	log.Logf("<<", "resume")
	undo := log.WithPrefix("  ")
	log.Logf(">", "push #%v", 2)
	undo()
	log.Logf("!", "done")

	assert.Equal(t, []string{
		"> push #1",
		"<< resume",
		"  >> push #2",
		"!! done",
	}, lines)

	var off Marked
	off.Logf(">", "ignored %v", 1)
	off.WithPrefix("  ")()
	assert.Nil(t, off.Logfn)
}
