package fileinput

import (
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/gotrio/internal/runeio"
)

// Location names a line in an Input file.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Input implements sequential line reading through a Queue of one or more
// input streams, tracking the location of the last line read.
type Input struct {
	cur   io.Reader
	rr    io.RuneReader
	Queue []io.Reader
	Last  Location

	scan Location
	buf  strings.Builder
}

// ReadLine returns the next line, without its line feed, and its location.
// A final line without a line feed is still returned; io.EOF is only returned
// once every queued stream has been exhausted.
func (in *Input) ReadLine() (string, Location, error) {
	for {
		if in.rr == nil && !in.nextIn() {
			return "", in.Last, io.EOF
		}

		r, _, err := in.rr.ReadRune()
		if err == nil {
			if r == '\n' {
				return in.nextLine(), in.Last, nil
			}
			in.buf.WriteRune(r)
			continue
		}

		partial := in.buf.Len() > 0
		line := in.nextLine()
		in.closeIn()
		if err != io.EOF {
			return line, in.Last, err
		}
		if partial {
			return line, in.Last, nil
		}
	}
}

func (in *Input) nextLine() string {
	line := strings.TrimSuffix(in.buf.String(), "\r")
	in.buf.Reset()
	in.Last = in.scan
	in.scan.Line++
	return line
}

func (in *Input) closeIn() {
	if cl, ok := in.cur.(io.Closer); ok {
		cl.Close()
	}
	in.cur, in.rr = nil, nil
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	r := in.Queue[0]
	in.Queue = in.Queue[1:]
	rr := runeio.NewReader(r)
	in.cur, in.rr = r, rr
	in.scan.Name = nameOf(rr)
	in.scan.Line = 1
	return true
}

// Close closes the current stream and any still queued.
func (in *Input) Close() (err error) {
	in.closeIn()
	for _, r := range in.Queue {
		if cl, ok := r.(io.Closer); ok {
			if cerr := cl.Close(); err == nil {
				err = cerr
			}
		}
	}
	in.Queue = nil
	return err
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
