package logio

import (
	"fmt"
	"strings"
)

// Marked is an optional trace log, e.g. fed by Logger.Leveledf. Each line
// starts with a short mark, left padded by repeating its first rune to the
// widest mark seen so far. A nil Logfn disables it.
type Marked struct {
	Logfn func(mess string, args ...interface{})

	markWidth int
}

// Logf logs a line under the given mark.
func (log *Marked) Logf(mark, mess string, args ...interface{}) {
	if log.Logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 && mark != "" {
		mark = strings.Repeat(mark[:1], n) + mark
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.Logfn("%v %v", mark, mess)
}

// WithPrefix prefixes every line until the returned function is called.
func (log *Marked) WithPrefix(prefix string) func() {
	logfn := log.Logfn
	if logfn == nil {
		return func() {}
	}
	log.Logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		log.Logfn = logfn
	}
}
