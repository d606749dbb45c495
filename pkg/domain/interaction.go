package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// InteractionKind enumerates the supported prompt types. The set is closed;
// adding a kind means extending both the default-value union and the question
// construction in the player.
type InteractionKind string

const (
	// KindConfirm asks a yes/no question.
	KindConfirm InteractionKind = "confirm"
	// KindInput asks for free text.
	KindInput InteractionKind = "input"
	// KindSelect asks the user to pick one of Options.
	KindSelect InteractionKind = "select"
)

// Valid reports whether the kind is one of the closed set.
func (k InteractionKind) Valid() bool {
	switch k {
	case KindConfirm, KindInput, KindSelect:
		return true
	}
	return false
}

// Interaction declares a single prompt: what to ask, how to ask it, what the
// default answer is, and where to capture the reply.
type Interaction struct {
	// Kind selects confirm, input or select behavior.
	Kind InteractionKind `yaml:"kind" json:"kind"`

	// Prompt is the text shown to the user.
	Prompt string `yaml:"prompt" json:"prompt"`

	// Out, if non-empty, names the variable the answer is captured into.
	Out string `yaml:"out,omitempty" json:"out,omitempty"`

	// Options are the choices for a select prompt. Required when Kind is select.
	Options []string `yaml:"options,omitempty" json:"options,omitempty"`

	// DefaultValue pre-answers the prompt. Its shape must match Kind.
	DefaultValue *DefaultValue `yaml:"default_value,omitempty" json:"default_value,omitempty"`

	// AskIfHasDefault forces the prompt to be shown even when a default is
	// supplied. The normal policy is to skip a pre-answered prompt.
	AskIfHasDefault *bool `yaml:"ask_if_has_default,omitempty" json:"ask_if_has_default,omitempty"`
}

// Validate checks the configuration invariants that would otherwise surface
// mid-prompt: a known kind, options present for select, and a default value
// whose shape matches the kind and, for select, indexes into Options.
func (in *Interaction) Validate() error {
	if !in.Kind.Valid() {
		return fmt.Errorf("%w: unknown interaction kind %q", ErrInvalidConfig, in.Kind)
	}
	if in.Kind == KindSelect && len(in.Options) == 0 {
		return fmt.Errorf("%w: select interaction requires options", ErrInvalidConfig)
	}
	if d := in.DefaultValue; d != nil {
		if d.Kind() != in.Kind {
			return fmt.Errorf("%w: default value is for kind %q, interaction is %q",
				ErrInvalidConfig, d.Kind(), in.Kind)
		}
		if in.Kind == KindSelect {
			if i := d.Index(); i < 0 || i >= len(in.Options) {
				return fmt.Errorf("%w: select default index %d out of range (have %d options)",
					ErrInvalidConfig, i, len(in.Options))
			}
		}
	}
	return nil
}

// DefaultValue is the pre-supplied answer for an interaction. It is a union
// discriminated by the interaction kind it pairs with: text for input, an
// option index for select, a boolean for confirm. On the wire it is a bare
// scalar whose shape carries the discriminant.
type DefaultValue struct {
	kind  InteractionKind
	text  string
	index int
	yes   bool
}

// InputDefault returns a default for an input interaction.
func InputDefault(text string) DefaultValue {
	return DefaultValue{kind: KindInput, text: text}
}

// SelectDefault returns a default for a select interaction, as an index into
// the interaction's options.
func SelectDefault(index int) DefaultValue {
	return DefaultValue{kind: KindSelect, index: index}
}

// ConfirmDefault returns a default for a confirm interaction.
func ConfirmDefault(confirmed bool) DefaultValue {
	return DefaultValue{kind: KindConfirm, yes: confirmed}
}

// Kind reports which interaction kind this default pairs with.
func (d DefaultValue) Kind() InteractionKind { return d.kind }

// Text is the default input text. Meaningful only when Kind is input.
func (d DefaultValue) Text() string { return d.text }

// Index is the default option index. Meaningful only when Kind is select.
func (d DefaultValue) Index() int { return d.index }

// Confirmed is the default confirmation. Meaningful only when Kind is confirm.
func (d DefaultValue) Confirmed() bool { return d.yes }

// UnmarshalYAML decodes the shape-discriminated scalar: !!str is an input
// default, !!int a select index, !!bool a confirm default.
func (d *DefaultValue) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: default_value must be a scalar", ErrInvalidConfig)
	}
	switch value.Tag {
	case "!!str":
		*d = InputDefault(value.Value)
	case "!!int":
		var i int
		if err := value.Decode(&i); err != nil {
			return fmt.Errorf("%w: bad select default: %v", ErrInvalidConfig, err)
		}
		*d = SelectDefault(i)
	case "!!bool":
		var b bool
		if err := value.Decode(&b); err != nil {
			return fmt.Errorf("%w: bad confirm default: %v", ErrInvalidConfig, err)
		}
		*d = ConfirmDefault(b)
	default:
		return fmt.Errorf("%w: default_value must be a string, integer or boolean, got %s",
			ErrInvalidConfig, value.Tag)
	}
	return nil
}

// MarshalYAML emits the bare scalar form.
func (d DefaultValue) MarshalYAML() (any, error) {
	switch d.kind {
	case KindInput:
		return d.text, nil
	case KindSelect:
		return d.index, nil
	case KindConfirm:
		return d.yes, nil
	}
	return nil, fmt.Errorf("%w: default value has no kind", ErrInvalidConfig)
}

// UnmarshalJSON mirrors the YAML codec for JSON workflow documents.
func (d *DefaultValue) UnmarshalJSON(data []byte) error {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case string:
		*d = InputDefault(v)
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return fmt.Errorf("%w: select default must be an integer index", ErrInvalidConfig)
		}
		*d = SelectDefault(int(i))
	case bool:
		*d = ConfirmDefault(v)
	default:
		return fmt.Errorf("%w: default_value must be a string, number or boolean, got %T",
			ErrInvalidConfig, raw)
	}
	return nil
}

// MarshalJSON emits the bare scalar form.
func (d DefaultValue) MarshalJSON() ([]byte, error) {
	v, err := d.MarshalYAML()
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}
