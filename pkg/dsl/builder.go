package dsl

import "github.com/parley-sh/parley/pkg/domain"

// Builder manages workflow construction.
type Builder struct {
	workflow domain.Workflow
	actions  []*ActionBuilder
}

// New creates a new workflow builder.
func New(name string) *Builder {
	return &Builder{
		workflow: domain.Workflow{
			Name:     name,
			Defaults: domain.VarBag{},
		},
	}
}

// Default seeds a variable every run of the workflow starts with.
func (b *Builder) Default(key, value string) *Builder {
	b.workflow.Defaults[key] = value
	return b
}

// Action appends a new action to the workflow and returns its builder.
func (b *Builder) Action(name string) *ActionBuilder {
	ab := &ActionBuilder{
		action:  domain.Action{Name: name},
		builder: b,
	}
	b.actions = append(b.actions, ab)
	return ab
}

// Build compiles and validates the workflow.
func (b *Builder) Build() (*domain.Workflow, error) {
	wf := b.workflow
	wf.Actions = make([]domain.Action, 0, len(b.actions))
	for _, ab := range b.actions {
		wf.Actions = append(wf.Actions, ab.action)
	}
	if err := wf.Validate(); err != nil {
		return nil, err
	}
	return &wf, nil
}
