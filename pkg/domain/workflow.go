package domain

import "fmt"

// Workflow is an ordered list of actions with an optional seed for the
// variable bag.
type Workflow struct {
	// Name labels the workflow. Informational only.
	Name string `yaml:"name,omitempty" json:"name,omitempty"`

	// Defaults seeds the variable bag before any action runs. Captured values
	// overwrite seeds with the same name.
	Defaults VarBag `yaml:"defaults,omitempty" json:"defaults,omitempty"`

	// Actions is the sequence to execute.
	Actions []Action `yaml:"actions" json:"actions"`
}

// Validate checks the collection-level invariants: every action named, names
// unique, hooks recognized, and every interaction internally consistent.
func (w *Workflow) Validate() error {
	return ValidateActions(w.Actions)
}

// ValidateActions enforces the invariants an action list must satisfy before
// execution. It is the owning-collection check; individual actions do not
// validate their own names.
func ValidateActions(actions []Action) error {
	seen := make(map[string]struct{}, len(actions))
	for i, a := range actions {
		if a.Name == "" {
			return fmt.Errorf("%w: action %d has no name", ErrInvalidConfig, i)
		}
		if _, dup := seen[a.Name]; dup {
			return fmt.Errorf("%w: duplicate action name %q", ErrInvalidConfig, a.Name)
		}
		seen[a.Name] = struct{}{}
		if !a.Hook.Valid() {
			return fmt.Errorf("%w: action %q has unknown hook %q", ErrInvalidConfig, a.Name, a.Hook)
		}
		if a.Interaction != nil {
			if err := a.Interaction.Validate(); err != nil {
				return fmt.Errorf("action %q: %w", a.Name, err)
			}
		}
	}
	return nil
}
