package dsl_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parley-sh/parley"
	"github.com/parley-sh/parley/pkg/adapters/scripted"
	"github.com/parley-sh/parley/pkg/domain"
	"github.com/parley-sh/parley/pkg/dsl"
)

func TestBuilder_CompilesWorkflow(t *testing.T) {
	wf, err := dsl.New("release").
		Default("registry", "ghcr.io").
		Action("pick-version").
		Input("Which version?").
		SaveTo("version").
		Action("pick-channel").
		Select("Channel", "stable", "beta").
		Default(domain.SelectDefault(0)).
		AlwaysAsk().
		SaveTo("channel").
		Action("confirm").
		Confirm("Go ahead?").
		Default(domain.ConfirmDefault(false)).
		BreakIfCancel().
		Action("tag").
		Run(`git tag "v{{version}}"`).
		IgnoreExit().
		Build()

	require.NoError(t, err)
	assert.Equal(t, "release", wf.Name)
	assert.Equal(t, domain.VarBag{"registry": "ghcr.io"}, wf.Defaults)
	require.Len(t, wf.Actions, 4)

	pick := wf.Actions[0]
	assert.Equal(t, domain.KindInput, pick.Interaction.Kind)
	assert.Equal(t, "version", pick.Interaction.Out)

	channel := wf.Actions[1]
	require.NotNil(t, channel.Interaction.DefaultValue)
	assert.Equal(t, 0, channel.Interaction.DefaultValue.Index())
	require.NotNil(t, channel.Interaction.AskIfHasDefault)
	assert.True(t, *channel.Interaction.AskIfHasDefault)

	confirm := wf.Actions[2]
	assert.True(t, confirm.BreakIfCancel)
	assert.False(t, confirm.Interaction.DefaultValue.Confirmed())

	tag := wf.Actions[3]
	assert.True(t, tag.IgnoreExit)
	assert.Nil(t, tag.Interaction)
}

func TestBuilder_ValidatesAtBuildTime(t *testing.T) {
	_, err := dsl.New("broken").
		Action("dup").
		Action("dup").
		Build()
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)

	_, err = dsl.New("no-options").
		Action("choose").
		Select("Pick one").
		Build()
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestBuilder_WorkflowRuns(t *testing.T) {
	wf, err := dsl.New("greet").
		Action("ask-name").
		Input("Name?").
		SaveTo("name").
		Build()
	require.NoError(t, err)

	surface := scripted.New(scripted.Line("Ada")...)
	runner := parley.NewRunner(parley.WithSurface(surface))

	_, err = runner.RunWorkflow(context.Background(), wf)
	require.NoError(t, err)
	assert.Equal(t, "Ada", runner.Vars()["name"])
}
