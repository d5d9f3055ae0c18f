package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/gotrio/internal/eval"
	"github.com/jcorbin/gotrio/internal/fileinput"
	"github.com/jcorbin/gotrio/internal/panicerr"
	"github.com/jcorbin/gotrio/internal/pi"
	"github.com/jcorbin/gotrio/internal/rho"
	"github.com/jcorbin/gotrio/internal/tau"
	"github.com/jcorbin/gotrio/internal/value"
)

// Notation selects how a Session reads its lines.
type Notation int

// Notations.
const (
	Pi Notation = iota
	Rho
	Tau
)

func (n Notation) String() string {
	switch n {
	case Pi:
		return "pi"
	case Rho:
		return "rho"
	case Tau:
		return "tau"
	}
	return fmt.Sprintf("Notation(%d)", int(n))
}

// ParseNotation parses a notation name, as accepted by the -lang flag.
func ParseNotation(name string) (Notation, error) {
	switch strings.ToLower(name) {
	case "pi":
		return Pi, nil
	case "rho":
		return Rho, nil
	case "tau":
		return Tau, nil
	}
	return 0, fmt.Errorf("unknown notation %q, want pi, rho, or tau", name)
}

type reader interface {
	Eval(ctx context.Context, rt *eval.Runtime, env eval.Env, src string) (value.Value, error)
}

// Session evaluates lines against one runtime and variable environment.
type Session struct {
	core
	rt       *eval.Runtime
	vars     eval.Vars
	notation Notation

	// incomplete rho statement, waiting for its indented lines
	pending   []string
	pendingAt fileinput.Location
}

// New creates a Session; with no options it reads Pi and discards output.
func New(opts ...SessionOption) *Session {
	var s Session
	s.apply(opts...)
	s.rt = eval.New(eval.WithLogf(s.log.Logfn))
	s.vars = eval.Vars{}
	return &s
}

// WithInput queues r to be read by Run after any previously queued input.
func WithInput(r io.Reader) SessionOption { return withInput(r) }

// WithOutput sets where results and printed arrays are written.
func WithOutput(w io.Writer) SessionOption { return withOutput(w) }

// WithTee copies all output to w as well.
func WithTee(w io.Writer) SessionOption { return withTee(w) }

// WithLogf installs a trace log, shared with the evaluator.
func WithLogf(logfn func(mess string, args ...interface{})) SessionOption { return withLogfn(logfn) }

// WithErrorf installs a function told about every failed line, along with
// its input location.
func WithErrorf(errorf func(mess string, args ...interface{})) SessionOption {
	return withErrorfn(errorf)
}

// WithNotation sets the starting notation.
func WithNotation(n Notation) SessionOption { return n }

// Notation returns the notation that the next line will be read in.
func (s *Session) Notation() Notation { return s.notation }

// Incomplete reports whether a Rho statement is waiting for more lines.
func (s *Session) Incomplete() bool { return len(s.pending) > 0 }

// Run reads and handles every queued input line until input runs out or a
// quit command, then flushes any incomplete statement and all output.
func (s *Session) Run(ctx context.Context) error {
	err := s.run(ctx)
	if errors.Is(err, io.EOF) {
		err = s.Flush(ctx)
	}
	if ferr := s.out.Flush(); err == nil {
		err = ferr
	}
	return err
}

func (s *Session) run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, loc, err := s.ReadLine()
		if err != nil {
			return err
		}
		s.log.Logf("#", "%v", loc)
		if err := s.Line(ctx, line); err != nil {
			return err
		}
	}
}

// Line handles one line of input. It returns io.EOF after a quit command;
// any other error is an output failure. Evaluation errors are written to
// output as "Error: ..." and do not end the session.
func (s *Session) Line(ctx context.Context, line string) error {
	if s.notation != Pi {
		if len(s.pending) > 0 {
			// blank and comment lines stay in the block; the reader skips them
			if rho.Continues(line) || isBlank(line) {
				s.pending = append(s.pending, line)
				return nil
			}
			if err := s.Flush(ctx); err != nil {
				return err
			}
		}
		if rho.Opens(line) {
			s.pending = append(s.pending, line)
			s.pendingAt = s.Last
			return nil
		}
	}

	if isBlank(line) {
		return nil
	}
	text := strings.TrimSpace(line)
	if strings.HasPrefix(text, ":") {
		return s.command(text)
	}
	return s.eval(ctx, text, s.Last)
}

func isBlank(line string) bool {
	text := strings.TrimSpace(line)
	return text == "" || strings.HasPrefix(text, "#")
}

// Flush evaluates any incomplete Rho statement.
func (s *Session) Flush(ctx context.Context) error {
	if len(s.pending) == 0 {
		return nil
	}
	src := strings.Join(s.pending, "\n")
	s.pending = s.pending[:0]
	return s.eval(ctx, src, s.pendingAt)
}

// Discard drops any incomplete Rho statement unevaluated.
func (s *Session) Discard() { s.pending = s.pending[:0] }

func (s *Session) reader() reader {
	switch s.notation {
	case Rho:
		return rho.Reader{}
	case Tau:
		return tau.Reader{}
	}
	return pi.Reader{Out: s.out}
}

func (s *Session) eval(ctx context.Context, src string, loc fileinput.Location) error {
	var v value.Value
	err := panicerr.Recover(s.notation.String(), func() (err error) {
		v, err = s.reader().Eval(ctx, s.rt, s.vars, src)
		return err
	})
	if err != nil {
		s.log.Logf("!", "%+v", err)
		if s.errorf != nil {
			s.errorf("%v: %v", loc, err)
		}
		return s.println("Error: " + err.Error())
	}
	return s.println(value.Format(v))
}

const help = `Notations:
  :pi   postfix        3 4 +
  :rho  infix          3 + 4, tab indented blocks
  :tau  rho + futures  async op, await name
Commands:
  :vars  list variables
  :help  this help
  :quit  end the session`

func (s *Session) command(cmd string) error {
	switch cmd {
	case ":quit", ":q":
		return io.EOF
	case ":help", ":h":
		return s.println(help)
	case ":pi":
		s.notation = Pi
	case ":rho":
		s.notation = Rho
	case ":tau":
		s.notation = Tau
	case ":vars":
		for _, name := range s.vars.Names() {
			v, _ := s.vars.Lookup(name)
			if err := s.printf("%v = %v\n", name, value.Format(v)); err != nil {
				return err
			}
		}
		return nil
	default:
		return s.printf("unknown command %v\n", cmd)
	}
	return s.printf("notation: %v\n", s.notation)
}
