package domain

// VarBag holds the variables captured during one workflow run, keyed by
// variable name. It is owned by the caller that drives the run and passed by
// reference into every interaction; entries are added or overwritten, never
// removed.
type VarBag map[string]string

// Clone returns an independent copy of the bag. A nil bag clones to nil.
func (b VarBag) Clone() VarBag {
	if b == nil {
		return nil
	}
	out := make(VarBag, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// ActionHook declares when an action runs relative to the checkpoint the
// caller's schedule defines. It is pure metadata; the runner only filters on it.
type ActionHook string

const (
	// HookAfter runs the action after the checkpoint. This is the default.
	HookAfter ActionHook = "after"
	// HookBefore runs the action before the checkpoint.
	HookBefore ActionHook = "before"
)

// OrDefault resolves the zero value to HookAfter.
func (h ActionHook) OrDefault() ActionHook {
	if h == "" {
		return HookAfter
	}
	return h
}

// Valid reports whether the hook names a known phase. The zero value is valid
// and means HookAfter.
func (h ActionHook) Valid() bool {
	switch h {
	case "", HookAfter, HookBefore:
		return true
	}
	return false
}

// Action is one named unit of a workflow: an optional script, an optional
// interaction, and the policy flags that govern how its outcome affects the
// rest of the sequence.
//
// Name must be non-empty and unique within the owning action list; that is
// enforced by ValidateActions on the collection, not by Action itself. An
// action with neither Run nor Interaction set is a no-op.
type Action struct {
	// Name uniquely identifies the action within its workflow.
	Name string `yaml:"name" json:"name"`

	// Interaction, if set, poses a prompt to the user when the action runs.
	Interaction *Interaction `yaml:"interaction,omitempty" json:"interaction,omitempty"`

	// Run, if non-empty, is the shell script to execute.
	Run string `yaml:"run,omitempty" json:"run,omitempty"`

	// IgnoreExit continues the workflow even when the script exits non-zero.
	IgnoreExit bool `yaml:"ignore_exit,omitempty" json:"ignore_exit,omitempty"`

	// BreakIfCancel stops the workflow when the interaction is canceled.
	BreakIfCancel bool `yaml:"break_if_cancel,omitempty" json:"break_if_cancel,omitempty"`

	// Capture buffers the script's stdout/stderr into the RunResult instead of
	// streaming it live. It only affects the script runner.
	Capture bool `yaml:"capture,omitempty" json:"capture,omitempty"`

	// Hook places the action before or after the run checkpoint.
	Hook ActionHook `yaml:"hook,omitempty" json:"hook,omitempty"`
}

// RunResult is the immutable record of one script execution, produced by the
// script runner and carried on the ActionResult.
type RunResult struct {
	Script string `yaml:"script" json:"script"`
	Code   int    `yaml:"code" json:"code"`
	Out    string `yaml:"out" json:"out"`
	Err    string `yaml:"err" json:"err"`
}

// ActionResult records what happened when one action executed: the script
// outcome (if a script ran) and the interaction response (if one was played).
type ActionResult struct {
	Name     string     `yaml:"name" json:"name"`
	Run      *RunResult `yaml:"run,omitempty" json:"run,omitempty"`
	Response Response   `yaml:"response" json:"response"`
}
