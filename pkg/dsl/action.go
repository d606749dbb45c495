package dsl

import "github.com/parley-sh/parley/pkg/domain"

// ActionBuilder provides a fluent API for configuring one action.
type ActionBuilder struct {
	action  domain.Action
	builder *Builder
}

// Before moves the action into the before hook phase.
func (a *ActionBuilder) Before() *ActionBuilder {
	a.action.Hook = domain.HookBefore
	return a
}

// Run sets the shell script the action executes. Variables appear in the
// script as {{name}} placeholders.
func (a *ActionBuilder) Run(script string) *ActionBuilder {
	a.action.Run = script
	return a
}

// Capture buffers the script's output into the action result instead of
// streaming it.
func (a *ActionBuilder) Capture() *ActionBuilder {
	a.action.Capture = true
	return a
}

// IgnoreExit lets the run continue past a non-zero script exit.
func (a *ActionBuilder) IgnoreExit() *ActionBuilder {
	a.action.IgnoreExit = true
	return a
}

// BreakIfCancel stops the run when this action's prompt is canceled.
func (a *ActionBuilder) BreakIfCancel() *ActionBuilder {
	a.action.BreakIfCancel = true
	return a
}

// Input attaches a free-text question to the action.
func (a *ActionBuilder) Input(prompt string) *ActionBuilder {
	a.action.Interaction = &domain.Interaction{
		Kind:   domain.KindInput,
		Prompt: prompt,
	}
	return a
}

// Confirm attaches a yes/no question to the action.
func (a *ActionBuilder) Confirm(prompt string) *ActionBuilder {
	a.action.Interaction = &domain.Interaction{
		Kind:   domain.KindConfirm,
		Prompt: prompt,
	}
	return a
}

// Select attaches a pick-one question to the action.
func (a *ActionBuilder) Select(prompt string, options ...string) *ActionBuilder {
	a.action.Interaction = &domain.Interaction{
		Kind:    domain.KindSelect,
		Prompt:  prompt,
		Options: options,
	}
	return a
}

// Default sets the question's default value. Must follow Input, Confirm or
// Select; the shape is checked at Build time.
func (a *ActionBuilder) Default(dv domain.DefaultValue) *ActionBuilder {
	if a.action.Interaction != nil {
		a.action.Interaction.DefaultValue = &dv
	}
	return a
}

// AlwaysAsk prompts even when a default would otherwise pre-answer the
// question.
func (a *ActionBuilder) AlwaysAsk() *ActionBuilder {
	if a.action.Interaction != nil {
		ask := true
		a.action.Interaction.AskIfHasDefault = &ask
	}
	return a
}

// SaveTo captures the answer into the named variable.
func (a *ActionBuilder) SaveTo(variable string) *ActionBuilder {
	if a.action.Interaction != nil {
		a.action.Interaction.Out = variable
	}
	return a
}

// Action starts the next action, allowing chained construction.
func (a *ActionBuilder) Action(name string) *ActionBuilder {
	return a.builder.Action(name)
}

// Build finishes the chain and compiles the whole workflow.
func (a *ActionBuilder) Build() (*domain.Workflow, error) {
	return a.builder.Build()
}
