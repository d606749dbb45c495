package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/parley-sh/parley/internal/logging"
	"github.com/parley-sh/parley/pkg/domain"
)

// createLogger configures the application logger. In verbose mode it writes
// debug output to stderr, separated from the prompt flow on stdout.
func createLogger(verbose bool) *slog.Logger {
	if verbose {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// ParseVars turns raw key=value pairs from the command line into a bag.
func ParseVars(pairs []string) (domain.VarBag, error) {
	bag := domain.VarBag{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: --var needs key=value, got %q", domain.ErrInvalidConfig, pair)
		}
		bag[key] = value
	}
	return bag, nil
}

// printSummary writes one status line per executed action.
func printSummary(w io.Writer, results []domain.ActionResult, plain bool) {
	for _, res := range results {
		status := "ok"
		switch {
		case res.Response.IsCancel():
			status = "canceled"
		case res.Run != nil && res.Run.Code != 0:
			status = fmt.Sprintf("exit %d", res.Run.Code)
		}
		if plain {
			fmt.Fprintf(w, "%s\t%s\n", res.Name, status)
			continue
		}
		fmt.Fprintf(w, ">>> %s: %s\n", res.Name, status)
	}
}
