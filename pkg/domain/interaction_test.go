package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultValue_ShapeDiscrimination(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want DefaultValue
	}{
		{"string becomes input default", `default_value: staging`, InputDefault("staging")},
		{"integer becomes select index", `default_value: 2`, SelectDefault(2)},
		{"boolean becomes confirm default", `default_value: true`, ConfirmDefault(true)},
		{"quoted number stays input", `default_value: "2"`, InputDefault("2")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in Interaction
			require.NoError(t, yaml.Unmarshal([]byte(tt.doc), &in))
			require.NotNil(t, in.DefaultValue)
			assert.Equal(t, tt.want, *in.DefaultValue)
		})
	}
}

func TestDefaultValue_RejectsNonScalar(t *testing.T) {
	var in Interaction
	err := yaml.Unmarshal([]byte("default_value: [a, b]"), &in)
	require.Error(t, err)
}

func TestDefaultValue_JSONRoundTrip(t *testing.T) {
	in := Interaction{
		Kind:         KindSelect,
		Prompt:       "Pick one",
		Options:      []string{"x", "y"},
		DefaultValue: ptr(SelectDefault(1)),
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	// The default serializes as a bare integer, not an object.
	assert.Contains(t, string(data), `"default_value":1`)

	var back Interaction
	require.NoError(t, json.Unmarshal(data, &back))
	require.NotNil(t, back.DefaultValue)
	assert.Equal(t, KindSelect, back.DefaultValue.Kind())
	assert.Equal(t, 1, back.DefaultValue.Index())
}

func TestInteraction_Validate(t *testing.T) {
	tests := []struct {
		name    string
		in      Interaction
		wantErr bool
	}{
		{
			name: "valid input",
			in:   Interaction{Kind: KindInput, Prompt: "Name?"},
		},
		{
			name:    "unknown kind",
			in:      Interaction{Kind: "multiselect", Prompt: "?"},
			wantErr: true,
		},
		{
			name:    "select without options",
			in:      Interaction{Kind: KindSelect, Prompt: "Pick"},
			wantErr: true,
		},
		{
			name: "select default out of range",
			in: Interaction{
				Kind: KindSelect, Prompt: "Pick",
				Options:      []string{"a"},
				DefaultValue: ptr(SelectDefault(3)),
			},
			wantErr: true,
		},
		{
			name: "default kind mismatch",
			in: Interaction{
				Kind: KindConfirm, Prompt: "Sure?",
				DefaultValue: ptr(InputDefault("yes")),
			},
			wantErr: true,
		},
		{
			name: "matching confirm default",
			in: Interaction{
				Kind: KindConfirm, Prompt: "Sure?",
				DefaultValue: ptr(ConfirmDefault(false)),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func ptr[T any](v T) *T { return &v }
