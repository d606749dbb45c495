package runtime

import (
	"context"
	"testing"

	"github.com/parley-sh/parley/pkg/adapters/scripted"
	"github.com/parley-sh/parley/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func play(t *testing.T, in *domain.Interaction, bag domain.VarBag, events ...scripted.Event) (domain.Response, error) {
	t.Helper()
	return NewPlayer(scripted.New(events...)).Play(context.Background(), in, bag)
}

func TestPlay_InputCapturesAnswer(t *testing.T) {
	bag := domain.VarBag{}
	in := &domain.Interaction{Kind: domain.KindInput, Prompt: "Name?", Out: "name"}

	resp, err := play(t, in, bag, scripted.Line("Ada")...)
	require.NoError(t, err)
	assert.Equal(t, domain.TextResponse("Ada"), resp)
	assert.Equal(t, domain.VarBag{"name": "Ada"}, bag)
}

func TestPlay_SelectReturnsChosenLabel(t *testing.T) {
	in := &domain.Interaction{
		Kind: domain.KindSelect, Prompt: "Pick",
		Options: []string{"a", "b", "c"},
	}

	resp, err := play(t, in, nil, scripted.Join(scripted.Down(1), scripted.Enter())...)
	require.NoError(t, err)
	assert.Equal(t, domain.TextResponse("b"), resp)
}

func TestPlay_ConfirmTrue(t *testing.T) {
	bag := domain.VarBag{}
	in := &domain.Interaction{Kind: domain.KindConfirm, Prompt: "Go?", Out: "ok"}

	resp, err := play(t, in, bag, scripted.Line("y")...)
	require.NoError(t, err)
	assert.Equal(t, domain.TextResponse("true"), resp)
	assert.Equal(t, "true", bag["ok"])
}

// A declined confirm normalizes to cancel, same as an abort. Pinned on
// purpose: break_if_cancel treats both as "stop".
func TestPlay_ConfirmFalseIsCancel(t *testing.T) {
	bag := domain.VarBag{}
	in := &domain.Interaction{Kind: domain.KindConfirm, Prompt: "Go?", Out: "ok"}

	resp, err := play(t, in, bag, scripted.Line("n")...)
	require.NoError(t, err)
	assert.True(t, resp.IsCancel())
	assert.Empty(t, bag, "a declined confirm must not capture")
}

func TestPlay_AbortIsCancel(t *testing.T) {
	in := &domain.Interaction{Kind: domain.KindInput, Prompt: "Name?"}

	resp, err := play(t, in, nil, scripted.Esc()...)
	require.NoError(t, err)
	assert.True(t, resp.IsCancel())
}

func TestPlay_ExhaustedEventsFail(t *testing.T) {
	in := &domain.Interaction{Kind: domain.KindInput, Prompt: "Name?"}

	_, err := play(t, in, nil) // empty event queue
	assert.ErrorIs(t, err, domain.ErrEventsExhausted)
}

func TestPlay_DefaultSkipsPrompt(t *testing.T) {
	tests := []struct {
		name string
		in   domain.Interaction
		want domain.Response
		bag  domain.VarBag
	}{
		{
			name: "select default resolves to option label",
			in: domain.Interaction{
				Kind: domain.KindSelect, Prompt: "Pick",
				Options:         []string{"x", "y"},
				DefaultValue:    ptr(domain.SelectDefault(0)),
				AskIfHasDefault: ptr(false),
			},
			want: domain.TextResponse("x"),
		},
		{
			name: "input default resolves to its text",
			in: domain.Interaction{
				Kind: domain.KindInput, Prompt: "Env?",
				Out:          "env",
				DefaultValue: ptr(domain.InputDefault("staging")),
			},
			want: domain.TextResponse("staging"),
			bag:  domain.VarBag{},
		},
		{
			name: "false confirm default is still a cancel",
			in: domain.Interaction{
				Kind: domain.KindConfirm, Prompt: "Go?",
				DefaultValue: ptr(domain.ConfirmDefault(false)),
			},
			want: domain.CancelResponse(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No events supplied: if the player consulted the surface, Play
			// would fail with an exhaustion error.
			resp, err := play(t, &tt.in, tt.bag)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp)
		})
	}

	t.Run("captured from skipped prompt", func(t *testing.T) {
		bag := domain.VarBag{}
		in := domain.Interaction{
			Kind: domain.KindInput, Prompt: "Env?", Out: "env",
			DefaultValue: ptr(domain.InputDefault("staging")),
		}
		_, err := play(t, &in, bag)
		require.NoError(t, err)
		assert.Equal(t, "staging", bag["env"])
	})
}

func TestPlay_AskIfHasDefaultStillPrompts(t *testing.T) {
	in := &domain.Interaction{
		Kind: domain.KindInput, Prompt: "Env?",
		DefaultValue:    ptr(domain.InputDefault("staging")),
		AskIfHasDefault: ptr(true),
	}

	t.Run("typed answer wins", func(t *testing.T) {
		resp, err := play(t, in, nil, scripted.Line("prod")...)
		require.NoError(t, err)
		assert.Equal(t, domain.TextResponse("prod"), resp)
	})

	t.Run("bare enter accepts the default", func(t *testing.T) {
		resp, err := play(t, in, nil, scripted.Enter()...)
		require.NoError(t, err)
		assert.Equal(t, domain.TextResponse("staging"), resp)
	})

	t.Run("no events means the prompt really ran", func(t *testing.T) {
		_, err := play(t, in, nil)
		assert.ErrorIs(t, err, domain.ErrEventsExhausted)
	})
}

func TestPlay_SelectDefaultConfigErrors(t *testing.T) {
	t.Run("index out of range", func(t *testing.T) {
		in := &domain.Interaction{
			Kind: domain.KindSelect, Prompt: "Pick",
			Options:      []string{"only"},
			DefaultValue: ptr(domain.SelectDefault(5)),
		}
		_, err := play(t, in, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	})

	t.Run("options missing entirely", func(t *testing.T) {
		in := &domain.Interaction{
			Kind: domain.KindSelect, Prompt: "Pick",
			DefaultValue: ptr(domain.SelectDefault(0)),
		}
		_, err := play(t, in, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	})

	t.Run("default kind mismatch", func(t *testing.T) {
		in := &domain.Interaction{
			Kind:         domain.KindInput,
			Prompt:       "Name?",
			DefaultValue: ptr(domain.ConfirmDefault(true)),
		}
		_, err := play(t, in, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	})
}

func TestPlay_NoCaptureWithoutOut(t *testing.T) {
	bag := domain.VarBag{"keep": "me"}
	in := &domain.Interaction{Kind: domain.KindInput, Prompt: "Name?"}

	_, err := play(t, in, bag, scripted.Line("Ada")...)
	require.NoError(t, err)
	assert.Equal(t, domain.VarBag{"keep": "me"}, bag)
}

func TestPlay_NilBagIsSafe(t *testing.T) {
	in := &domain.Interaction{Kind: domain.KindInput, Prompt: "Name?", Out: "name"}

	resp, err := play(t, in, nil, scripted.Line("Ada")...)
	require.NoError(t, err)
	assert.Equal(t, domain.TextResponse("Ada"), resp)
}

func TestPlay_Idempotence(t *testing.T) {
	in := &domain.Interaction{Kind: domain.KindInput, Prompt: "Name?", Out: "name"}

	bagA, bagB := domain.VarBag{}, domain.VarBag{}
	respA, errA := play(t, in, bagA, scripted.Line("Ada")...)
	respB, errB := play(t, in, bagB, scripted.Line("Ada")...)

	require.NoError(t, errA)
	require.NoError(t, errB)
	assert.Equal(t, respA, respB)
	assert.Equal(t, bagA, bagB)
}

func ptr[T any](v T) *T { return &v }
