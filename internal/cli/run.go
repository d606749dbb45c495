package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/parley-sh/parley"
	"github.com/parley-sh/parley/internal/compiler"
	"github.com/parley-sh/parley/internal/metrics"
	"github.com/parley-sh/parley/internal/presentation/tui"
	"github.com/parley-sh/parley/pkg/domain"
	"github.com/parley-sh/parley/pkg/ports"
)

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	WorkflowPath string
	Phase        string   // "before", "after", or ""/"all" for both phases
	Vars         []string // raw key=value pairs from --var
	Session      string
	RedisAddr    string
	MaskVars     []string // variable-name patterns masked before persisting
	MetricsAddr  string
	Plain        bool
	Verbose      bool

	// Surface overrides the prompt surface; tests and embedders use it to
	// avoid the live terminal.
	Surface ports.Surface
}

// Execute handles the run command: load the workflow, restore the session
// bag, run the requested phase(s) and persist the bag back.
func (opts RunOptions) Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := createLogger(opts.Verbose)

	seeds, err := ParseVars(opts.Vars)
	if err != nil {
		return err
	}

	wf, err := compiler.NewParser().ParseFile(opts.WorkflowPath)
	if err != nil {
		return err
	}

	store := createStore(opts)
	session := opts.Session
	if session == "" {
		session = wf.Name
	}

	bag := domain.VarBag{}
	if store != nil {
		saved, err := store.Load(ctx, session)
		switch {
		case err == nil:
			bag = saved
			logger.Info("session restored", "session", session, "vars", len(saved))
		case errors.Is(err, domain.ErrBagNotFound):
			logger.Debug("no saved session", "session", session)
		default:
			return fmt.Errorf("loading session %q: %w", session, err)
		}
	}
	// Explicit --var seeds win over restored values; workflow defaults fill
	// what neither provided.
	for k, v := range seeds {
		bag[k] = v
	}
	for k, v := range wf.Defaults {
		if _, ok := bag[k]; !ok {
			bag[k] = v
		}
	}

	var recorder *metrics.Recorder
	if opts.MetricsAddr != "" {
		recorder = metrics.NewRecorder()
		go serveMetrics(opts.MetricsAddr, recorder, logger)
	}

	if !opts.Plain {
		tui.PrintBanner(os.Stdout, wf.Name)
	}

	runner := createRunner(opts, logger, recorder, bag)

	results, runErr := runWorkflow(ctx, runner, wf, opts.Phase)

	if store != nil {
		if err := store.Save(context.WithoutCancel(ctx), session, runner.Vars()); err != nil {
			logger.Warn("saving session failed", "session", session, "err", err)
		}
	}

	if runErr != nil {
		return runErr
	}
	printSummary(os.Stdout, results, opts.Plain)
	return nil
}

func runWorkflow(ctx context.Context, runner *parley.Runner, wf *domain.Workflow, phase string) ([]domain.ActionResult, error) {
	switch phase {
	case "", "all":
		return runner.RunWorkflow(ctx, wf)
	case string(domain.HookBefore), string(domain.HookAfter):
		return runner.Run(ctx, wf.Actions, domain.ActionHook(phase))
	default:
		return nil, fmt.Errorf("%w: unknown phase %q", domain.ErrInvalidConfig, phase)
	}
}

func serveMetrics(addr string, recorder *metrics.Recorder, logger *slog.Logger) {
	if err := http.ListenAndServe(addr, recorder.Handler()); err != nil {
		logger.Warn("metrics server stopped", "err", err)
	}
}

// Validate checks a workflow file without running it.
func Validate(path string) error {
	_, err := compiler.NewParser().ParseFile(path)
	return err
}
