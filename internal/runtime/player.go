package runtime

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/parley-sh/parley/pkg/domain"
	"github.com/parley-sh/parley/pkg/ports"
)

// questionKey is the session-internal key under which the single question of
// each play is asked.
const questionKey = "question"

// Player executes one interaction at a time against a prompt surface,
// honoring defaults and ask-if-has-default suppression, and normalizes the
// raw answer into a domain.Response.
//
// A Player holds no per-call state; every Play invocation is self-contained
// except for the caller-supplied variable bag.
type Player struct {
	surface ports.Surface
	logger  *slog.Logger
}

// PlayerOption configures a Player.
type PlayerOption func(*Player)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) PlayerOption {
	return func(p *Player) {
		p.logger = logger
	}
}

// NewPlayer creates a Player that drives prompts through the given surface.
// The caller picks the surface: interactive for a live terminal, scripted for
// deterministic runs.
func NewPlayer(surface ports.Surface, opts ...PlayerOption) *Player {
	p := &Player{
		surface: surface,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Play poses the interaction and returns the normalized response.
//
// When the interaction has a default and ask_if_has_default is unset or
// false, the question is considered pre-answered and the surface is never
// consulted. Otherwise the surface drives the prompt, with the default
// available as the accept-without-editing value.
//
// If the answer is textual and the interaction names a capture target, the
// value is written into bag (when one is supplied). Cancellation and
// unsupported answer shapes normalize to a cancel response; only session
// failures return an error.
func (p *Player) Play(ctx context.Context, in *domain.Interaction, bag domain.VarBag) (domain.Response, error) {
	q := buildQuestion(in)

	def, err := defaultAnswer(in)
	if err != nil {
		return domain.Response{}, err
	}

	var answer domain.Answer
	if def != nil && !q.AskIfAnswered {
		// Pre-answered question: skip the prompt entirely.
		answer = *def
		p.logger.Debug("question pre-answered by default", "kind", in.Kind)
	} else {
		q.Default = def
		answer, err = p.surface.Ask(ctx, q)
		if err != nil {
			return domain.Response{}, fmt.Errorf("prompt session failed: %w", err)
		}
	}

	return p.normalize(in, answer, bag), nil
}

// buildQuestion translates the declarative interaction into the renderable
// question handed to the surface.
func buildQuestion(in *domain.Interaction) domain.Question {
	q := domain.Question{
		Key:    questionKey,
		Kind:   in.Kind,
		Prompt: in.Prompt,
	}
	if in.Kind == domain.KindSelect {
		// Missing options degrade to a selection with no valid choices.
		q.Options = in.Options
	}
	if ask := in.AskIfHasDefault; ask != nil && *ask {
		q.AskIfAnswered = true
	}
	return q
}

// defaultAnswer resolves the interaction's declared default into the raw
// answer shape the surface works with. A select default is looked up in the
// options list; a missing or out-of-range list is a configuration error, as
// is a default whose shape does not match the interaction kind.
func defaultAnswer(in *domain.Interaction) (*domain.Answer, error) {
	d := in.DefaultValue
	if d == nil {
		return nil, nil
	}
	if d.Kind() != in.Kind {
		return nil, fmt.Errorf("%w: default value is for kind %q, interaction is %q",
			domain.ErrInvalidConfig, d.Kind(), in.Kind)
	}

	var a domain.Answer
	switch in.Kind {
	case domain.KindInput:
		a = domain.StringAnswer(d.Text())
	case domain.KindSelect:
		i := d.Index()
		if i < 0 || i >= len(in.Options) {
			return nil, fmt.Errorf("%w: select default index %d out of range (have %d options)",
				domain.ErrInvalidConfig, i, len(in.Options))
		}
		a = domain.ItemAnswer(i, in.Options[i])
	case domain.KindConfirm:
		a = domain.BoolAnswer(d.Confirmed())
	default:
		return nil, fmt.Errorf("%w: unknown interaction kind %q", domain.ErrInvalidConfig, in.Kind)
	}
	return &a, nil
}

// normalize maps the raw answer onto the response surface and performs the
// capture side effect.
func (p *Player) normalize(in *domain.Interaction, answer domain.Answer, bag domain.VarBag) domain.Response {
	switch answer.Kind {
	case domain.AnswerString:
		p.capture(in, answer.Text, bag)
		return domain.TextResponse(answer.Text)
	case domain.AnswerItem:
		p.capture(in, answer.Text, bag)
		return domain.TextResponse(answer.Text)
	case domain.AnswerBool:
		if answer.Confirmed {
			p.capture(in, "true", bag)
			return domain.TextResponse("true")
		}
		// A declined confirm is indistinguishable from a cancel. Deliberate:
		// break_if_cancel treats "no" as "stop asking me things".
		return domain.CancelResponse()
	default:
		// Aborted prompt, or an answer shape the player does not support.
		return domain.CancelResponse()
	}
}

// capture writes the obtained value into the bag when the interaction names a
// target and a bag was supplied.
func (p *Player) capture(in *domain.Interaction, value string, bag domain.VarBag) {
	if in.Out == "" || bag == nil {
		return
	}
	bag[in.Out] = value
	p.logger.Debug("captured variable", "name", in.Out)
}
