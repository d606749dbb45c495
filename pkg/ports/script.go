package ports

import (
	"context"

	"github.com/parley-sh/parley/pkg/domain"
)

// ScriptRunner executes an action's run script and reports what happened.
// The vars bag is read for placeholder substitution before execution; capture
// selects buffered output (into the RunResult) over live streaming.
//
// A non-zero exit status is not a Go error: it comes back in RunResult.Code
// and the runner's policy flags decide what it means. Errors are reserved for
// scripts that could not be started at all.
type ScriptRunner interface {
	Run(ctx context.Context, script string, vars domain.VarBag, capture bool) (domain.RunResult, error)
}
