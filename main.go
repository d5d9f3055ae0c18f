package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/peterh/liner"

	"github.com/jcorbin/gotrio/internal/logio"
)

const historyFile = ".gotrio_history"

func main() {
	ctx := context.Background()

	var log logio.Logger
	log.SetOutput(os.Stderr)
	defer func() { os.Exit(log.ExitCode()) }()

	var (
		lang       string
		expr       string
		trace      bool
		timeout    time.Duration
		transcript string
	)
	flag.StringVar(&lang, "lang", "pi", "starting notation: pi, rho, or tau")
	flag.StringVar(&expr, "e", "", "evaluate the given source, then exit")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.StringVar(&transcript, "transcript", "", "also write all output to the given file")
	flag.Parse()

	notation, err := ParseNotation(lang)
	if err != nil {
		log.ErrorIf(err)
		return
	}

	opts := []SessionOption{
		WithNotation(notation),
		WithOutput(os.Stdout),
	}
	if trace {
		opts = append(opts, WithLogf(log.Leveledf("TRACE")))
	}
	if transcript != "" {
		f, err := os.Create(transcript)
		if err != nil {
			log.ErrorIf(err)
			return
		}
		defer func() { log.ErrorIf(f.Close()) }()
		opts = append(opts, WithTee(f))
	}

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	interactive := expr == "" && flag.NArg() == 0 && isTerminal(os.Stdin)
	if !interactive {
		opts = append(opts, WithErrorf(log.Errorf))
		if expr != "" {
			opts = append(opts, WithInput(namedReader{strings.NewReader(expr), "-e"}))
		}
		for _, name := range flag.Args() {
			f, err := os.Open(name)
			if err != nil {
				log.ErrorIf(err)
				return
			}
			opts = append(opts, WithInput(f))
		}
		if expr == "" && flag.NArg() == 0 {
			opts = append(opts, WithInput(os.Stdin))
		}
	}

	s := New(opts...)
	defer func() { log.ErrorIf(s.Close()) }()
	if interactive {
		err = repl(ctx, s)
	} else {
		err = s.Run(ctx)
	}
	log.ErrorIf(err)
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }

func repl(ctx context.Context, s *Session) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	// a lone completion replaces the line, so Tab indents rho blocks
	ln.SetCompleter(func(line string) []string { return []string{line + "\t"} })

	if home, err := os.UserHomeDir(); err == nil {
		histPath := filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				ln.WriteHistory(f)
				f.Close()
			}
		}()
	}

	fmt.Printf("gotrio: %v notation, :help for commands\n", s.Notation())
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		prompt := s.Notation().String() + "> "
		if s.Incomplete() {
			prompt = "... "
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			s.Discard()
			continue
		} else if errors.Is(err, io.EOF) {
			fmt.Println()
			if err := s.Flush(ctx); err != nil {
				return err
			}
			return s.out.Flush()
		} else if err != nil {
			return err
		}

		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		if s.Incomplete() && strings.TrimSpace(line) == "" {
			// an empty line ends the block being typed
			err = s.Flush(ctx)
		} else {
			err = s.Line(ctx, line)
		}
		if ferr := s.out.Flush(); err == nil {
			err = ferr
		}
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
	}
}
