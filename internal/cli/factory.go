package cli

import (
	"log/slog"

	"github.com/parley-sh/parley"
	"github.com/parley-sh/parley/internal/metrics"
	"github.com/parley-sh/parley/internal/presentation/tui"
	"github.com/parley-sh/parley/pkg/adapters/redis"
	"github.com/parley-sh/parley/pkg/adapters/terminal"
	"github.com/parley-sh/parley/pkg/domain"
	"github.com/parley-sh/parley/pkg/persistence/middleware"
	"github.com/parley-sh/parley/pkg/ports"
)

// createRunner assembles a runner with standard CLI conventions.
func createRunner(opts RunOptions, logger *slog.Logger, recorder *metrics.Recorder, bag domain.VarBag) *parley.Runner {
	runnerOpts := []parley.Option{
		parley.WithLogger(logger),
		parley.WithVars(bag),
	}

	if opts.Surface != nil {
		runnerOpts = append(runnerOpts, parley.WithSurface(opts.Surface))
	} else if !opts.Plain {
		surface := terminal.New(nil, nil, terminal.WithRenderer(tui.NewRenderer()))
		runnerOpts = append(runnerOpts, parley.WithSurface(surface))
	}

	if recorder != nil {
		runnerOpts = append(runnerOpts, parley.WithMetrics(recorder))
	}

	return parley.NewRunner(runnerOpts...)
}

// createStore picks the session store. Without a redis address there is no
// persistence and the run is ephemeral.
func createStore(opts RunOptions) ports.VarStore {
	if opts.RedisAddr == "" {
		return nil
	}
	store := ports.VarStore(redis.New(opts.RedisAddr, "", 0))
	if len(opts.MaskVars) > 0 {
		store = middleware.Chain(store, middleware.NewMaskMiddleware(opts.MaskVars))
	}
	return store
}
