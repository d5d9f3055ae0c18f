package main

import (
	"io"
	"io/ioutil"

	"github.com/jcorbin/gotrio/internal/flushio"
)

// SessionOption configures a Session.
type SessionOption interface{ apply(s *Session) }

var defaults = []SessionOption{
	withOutput(ioutil.Discard),
	Pi,
}

func (s *Session) apply(opts ...SessionOption) {
	for _, opt := range defaults {
		opt.apply(s)
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(s)
		}
	}
}

type withLogfn func(mess string, args ...interface{})
type withErrorfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(s *Session) { s.log.Logfn = logfn }

func (errorfn withErrorfn) apply(s *Session) { s.errorf = errorfn }

type inputOption struct{ io.Reader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }

func withInput(r io.Reader) inputOption   { return inputOption{r} }
func withOutput(w io.Writer) outputOption { return outputOption{w} }
func withTee(w io.Writer) teeOption       { return teeOption{w} }

func (i inputOption) apply(s *Session) {
	s.Input.Queue = append(s.Input.Queue, i.Reader)
}

func (o outputOption) apply(s *Session) {
	if s.out != nil {
		s.out.Flush()
	}
	s.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(s *Session) {
	s.out = flushio.WriteFlushers(s.out, flushio.NewWriteFlusher(o.Writer))
}

func (n Notation) apply(s *Session) { s.notation = n }
