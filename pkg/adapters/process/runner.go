// Package process executes action run scripts through the system shell.
package process

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"regexp"

	"github.com/parley-sh/parley/pkg/domain"
)

// varPattern matches {{name}} placeholders substituted from the variable bag.
var varPattern = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)

// Runner implements ports.ScriptRunner on top of exec.CommandContext.
type Runner struct {
	shell  string
	dir    string
	env    []string
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

// Option configures the runner.
type Option func(*Runner)

// WithShell overrides the shell binary (default "sh").
func WithShell(shell string) Option {
	return func(r *Runner) {
		r.shell = shell
	}
}

// WithDir sets the working directory for executed scripts.
func WithDir(dir string) Option {
	return func(r *Runner) {
		r.dir = dir
	}
}

// WithEnv appends extra environment entries ("KEY=value").
func WithEnv(env ...string) Option {
	return func(r *Runner) {
		r.env = append(r.env, env...)
	}
}

// WithStreams sets the writers used when output is streamed instead of
// captured. Defaults to os.Stdout/os.Stderr.
func WithStreams(stdout, stderr io.Writer) Option {
	return func(r *Runner) {
		r.stdout = stdout
		r.stderr = stderr
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner creates a shell script runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		shell:  "sh",
		stdout: os.Stdout,
		stderr: os.Stderr,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Expand replaces {{name}} placeholders in the script with values from the
// bag. Unknown placeholders are left untouched so the shell error points at
// the real problem.
func Expand(script string, vars domain.VarBag) string {
	if len(vars) == 0 {
		return script
	}
	return varPattern.ReplaceAllStringFunc(script, func(match string) string {
		name := varPattern.FindStringSubmatch(match)[1]
		if v, ok := vars[name]; ok {
			return v
		}
		return match
	})
}

// Run executes the script via `shell -c`. The returned RunResult carries the
// expanded script text, the exit code, and (when capture is set) the buffered
// stdout/stderr. A non-zero exit is reported in the result, not as an error;
// errors mean the process could not run at all.
func (r *Runner) Run(ctx context.Context, script string, vars domain.VarBag, capture bool) (domain.RunResult, error) {
	expanded := Expand(script, vars)

	cmd := exec.CommandContext(ctx, r.shell, "-c", expanded)
	cmd.Dir = r.dir
	if len(r.env) > 0 {
		cmd.Env = append(os.Environ(), r.env...)
	}

	var outBuf, errBuf bytes.Buffer
	if capture {
		cmd.Stdout = &outBuf
		cmd.Stderr = &errBuf
	} else {
		cmd.Stdout = r.stdout
		cmd.Stderr = r.stderr
	}

	r.logger.Debug("running script", "shell", r.shell, "capture", capture)

	result := domain.RunResult{Script: expanded}
	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return result, err
		}
		result.Code = exitErr.ExitCode()
	}
	result.Out = outBuf.String()
	result.Err = errBuf.String()

	if result.Code != 0 {
		r.logger.Debug("script exited non-zero", "code", result.Code)
	}
	return result, nil
}
