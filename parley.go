package parley

import (
	"io"
	"log/slog"

	"github.com/parley-sh/parley/internal/metrics"
	"github.com/parley-sh/parley/internal/runtime"
	"github.com/parley-sh/parley/pkg/adapters/process"
	"github.com/parley-sh/parley/pkg/adapters/terminal"
	"github.com/parley-sh/parley/pkg/domain"
	"github.com/parley-sh/parley/pkg/ports"
)

// Version of the parley module.
var Version = "0.3.0"

// Runner executes a sequence of actions against a prompt surface and a script
// runner, threading one variable bag through the whole run so values captured
// by earlier actions are visible to later ones.
type Runner struct {
	surface ports.Surface
	scripts ports.ScriptRunner
	player  *runtime.Player
	bag     domain.VarBag
	logger  *slog.Logger
	metrics *metrics.Recorder
	stdout  io.Writer
	stderr  io.Writer
}

// Option configures a Runner.
type Option func(*Runner)

// WithSurface selects the prompt surface. Defaults to the interactive
// terminal surface on stdin/stdout.
func WithSurface(s ports.Surface) Option {
	return func(r *Runner) {
		r.surface = s
	}
}

// WithScriptRunner selects the script runner. Defaults to the local shell
// runner.
func WithScriptRunner(sr ports.ScriptRunner) Option {
	return func(r *Runner) {
		r.scripts = sr
	}
}

// WithVars seeds the variable bag. The bag remains owned by the Runner for
// the duration of the run; pass a clone if the caller keeps the original.
func WithVars(bag domain.VarBag) Option {
	return func(r *Runner) {
		for k, v := range bag {
			r.bag[k] = v
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithMetrics attaches a metrics recorder.
func WithMetrics(rec *metrics.Recorder) Option {
	return func(r *Runner) {
		r.metrics = rec
	}
}

// WithStreams sets the writers scripts stream to when not capturing.
// Ignored when a custom script runner is supplied.
func WithStreams(stdout, stderr io.Writer) Option {
	return func(r *Runner) {
		r.stdout = stdout
		r.stderr = stderr
	}
}

// NewRunner creates a Runner. With no options it prompts on the live
// terminal and runs scripts through the local shell.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		bag:    domain.VarBag{},
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.surface == nil {
		r.surface = terminal.New(nil, nil)
	}
	if r.scripts == nil {
		var procOpts []process.Option
		if r.stdout != nil || r.stderr != nil {
			procOpts = append(procOpts, process.WithStreams(r.stdout, r.stderr))
		}
		r.scripts = process.NewRunner(procOpts...)
	}
	r.player = runtime.NewPlayer(r.surface, runtime.WithLogger(r.logger))
	return r
}

// Vars exposes the live variable bag: seeds plus everything captured so far.
func (r *Runner) Vars() domain.VarBag {
	return r.bag
}
