package ports

import (
	"context"

	"github.com/parley-sh/parley/pkg/domain"
)

// Surface poses exactly one question to the user and returns the raw answer.
// Implementations decide how the question is rendered: the terminal adapter
// attaches to a live TTY, the scripted adapter replays a fixed event queue
// against a virtual screen.
//
// Ask returns the zero Answer (AnswerNone) when the user aborts the prompt;
// that is an outcome, not an error. Errors are reserved for sessions that
// cannot be driven to completion: IO failure, or a scripted event queue that
// runs out mid-question.
type Surface interface {
	Ask(ctx context.Context, q domain.Question) (domain.Answer, error)
}
