package eval

// Option configures a Runtime.
type Option interface{ apply(rt *Runtime) }

type withLogfn func(mess string, args ...interface{})

// WithLogf installs a trace logging function; nil disables tracing.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

func (logfn withLogfn) apply(rt *Runtime) { rt.log.Logfn = logfn }
