package compiler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/parley-sh/parley/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	doc := `
name: deploy
defaults:
  env: staging
  retries: 3
  dry_run: true
actions:
  - name: pick-target
    interaction:
      kind: select
      prompt: Where to?
      out: target
      options: [eu, us]
      default_value: 0
  - name: ship
    run: ./deploy.sh {{target}}
    capture: true
`
	wf, err := NewParser().Parse([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, "deploy", wf.Name)
	// Loose scalar seeds coerce to strings.
	assert.Equal(t, domain.VarBag{"env": "staging", "retries": "3", "dry_run": "1"}, wf.Defaults)
	require.Len(t, wf.Actions, 2)
	require.NotNil(t, wf.Actions[0].Interaction)
	assert.Equal(t, domain.KindSelect, wf.Actions[0].Interaction.Kind)
}

func TestParse_RejectsInvalidWorkflows(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "duplicate action names",
			doc: `
actions:
  - name: a
  - name: a
`,
		},
		{
			name: "select default out of range",
			doc: `
actions:
  - name: pick
    interaction:
      kind: select
      prompt: Pick
      options: [only]
      default_value: 4
`,
		},
		{
			name: "default shape mismatch",
			doc: `
actions:
  - name: sure
    interaction:
      kind: confirm
      prompt: Sure?
      default_value: maybe
`,
		},
		{
			name: "not yaml",
			doc:  "actions: [",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParser().Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wf.yaml")
	require.NoError(t, os.WriteFile(path, []byte("actions:\n  - name: hi\n    run: echo hi\n"), 0o644))

	wf, err := NewParser().ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, wf.Actions, 1)

	_, err = NewParser().ParseFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
