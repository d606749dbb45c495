package parley

import (
	"context"
	"fmt"

	"github.com/parley-sh/parley/internal/metrics"
	"github.com/parley-sh/parley/pkg/domain"
)

// Run executes, in order, every action whose hook matches phase. For each
// action the script runs first (when set), then the interaction is played
// (when set), each exactly once.
//
// A non-zero script exit stops the run with domain.ErrActionFailed unless the
// action sets ignore_exit. A canceled interaction stops the run without an
// error when the action sets break_if_cancel; otherwise the cancel simply
// leaves its variable uncaptured and the run continues. The results returned
// always include the action that stopped the run.
func (r *Runner) Run(ctx context.Context, actions []domain.Action, phase domain.ActionHook) ([]domain.ActionResult, error) {
	if err := domain.ValidateActions(actions); err != nil {
		return nil, err
	}
	phase = phase.OrDefault()

	var results []domain.ActionResult
	for i := range actions {
		action := &actions[i]
		if action.Hook.OrDefault() != phase {
			continue
		}

		result, stop, err := r.runAction(ctx, action)
		results = append(results, result)
		if err != nil {
			return results, err
		}
		if stop {
			r.logger.Info("workflow stopped by cancel", "action", action.Name)
			return results, nil
		}
	}
	return results, nil
}

// RunWorkflow seeds the bag from workflow defaults and runs the before phase
// followed by the after phase.
func (r *Runner) RunWorkflow(ctx context.Context, wf *domain.Workflow) ([]domain.ActionResult, error) {
	for k, v := range wf.Defaults {
		if _, seeded := r.bag[k]; !seeded {
			r.bag[k] = v
		}
	}

	results, err := r.Run(ctx, wf.Actions, domain.HookBefore)
	if err != nil {
		return results, err
	}
	if stopped(wf.Actions, results) {
		return results, nil
	}

	after, err := r.Run(ctx, wf.Actions, domain.HookAfter)
	return append(results, after...), err
}

// runAction executes one action. stop reports a cancel-break.
func (r *Runner) runAction(ctx context.Context, action *domain.Action) (domain.ActionResult, bool, error) {
	result := domain.ActionResult{
		Name:     action.Name,
		Response: domain.NoneResponse(),
	}
	log := r.logger.With("action", action.Name)

	if action.Run != "" {
		log.Debug("running script", "capture", action.Capture)
		run, err := r.scripts.Run(ctx, action.Run, r.bag, action.Capture)
		if err != nil {
			r.record(metrics.OutcomeFailed)
			return result, false, fmt.Errorf("action %q: %w", action.Name, err)
		}
		result.Run = &run

		if run.Code != 0 && !action.IgnoreExit {
			log.Warn("script failed", "code", run.Code)
			r.record(metrics.OutcomeFailed)
			return result, false, fmt.Errorf("action %q exited with code %d: %w",
				action.Name, run.Code, domain.ErrActionFailed)
		}
	}

	if action.Interaction != nil {
		resp, err := r.player.Play(ctx, action.Interaction, r.bag)
		if err != nil {
			r.record(metrics.OutcomeFailed)
			return result, false, fmt.Errorf("action %q: %w", action.Name, err)
		}
		result.Response = resp
		if r.metrics != nil {
			r.metrics.Response(action.Interaction.Kind, resp.Kind)
		}

		if resp.IsCancel() && action.BreakIfCancel {
			r.record(metrics.OutcomeCanceled)
			return result, true, nil
		}
	}

	r.record(metrics.OutcomeOK)
	return result, false, nil
}

func (r *Runner) record(outcome string) {
	if r.metrics != nil {
		r.metrics.ActionRun(outcome)
	}
}

// stopped reports whether the before phase ended early on a cancel-break, in
// which case the after phase must not run.
func stopped(actions []domain.Action, results []domain.ActionResult) bool {
	if len(results) == 0 {
		return false
	}
	last := results[len(results)-1]
	for i := range actions {
		if actions[i].Name == last.Name {
			return actions[i].BreakIfCancel && last.Response.IsCancel()
		}
	}
	return false
}
