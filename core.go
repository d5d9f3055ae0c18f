package main

import (
	"fmt"
	"io"

	"github.com/jcorbin/gotrio/internal/fileinput"
	"github.com/jcorbin/gotrio/internal/flushio"
	"github.com/jcorbin/gotrio/internal/logio"
)

type core struct {
	log logio.Marked
	fileinput.Input
	out    flushio.WriteFlusher
	errorf func(mess string, args ...interface{})
}

// Close flushes output and closes any unread input.
func (core *core) Close() error {
	err := core.out.Flush()
	if cerr := core.Input.Close(); err == nil {
		err = cerr
	}
	return err
}

func (core *core) printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(core.out, format, args...)
	return err
}

func (core *core) println(line string) error {
	_, err := io.WriteString(core.out, line+"\n")
	return err
}
