// Package scripted implements a deterministic prompt surface driven by a
// finite queue of key events against a fixed-size virtual screen. It is the
// seam that makes interaction flows testable without a terminal.
package scripted

import (
	"context"
	"fmt"

	"github.com/parley-sh/parley/pkg/domain"
)

// Surface replays a scripted event sequence to answer questions. Each Ask
// consumes events from the shared queue, so one surface can drive a whole
// workflow of prompts in order.
type Surface struct {
	screen *Screen
	events []Event
	pos    int
}

// New creates a scripted surface over the given event sequence.
func New(events ...Event) *Surface {
	return &Surface{
		screen: NewScreen(),
		events: events,
	}
}

// Screen exposes the virtual screen for assertions.
func (s *Surface) Screen() *Screen {
	return s.screen
}

// Remaining reports how many events are left unconsumed.
func (s *Surface) Remaining() int {
	return len(s.events) - s.pos
}

// Ask renders the question onto the virtual screen and consumes events until
// the answer is committed or the prompt aborted. Running out of events before
// either is a session error, never a silent non-answer.
func (s *Surface) Ask(ctx context.Context, q domain.Question) (domain.Answer, error) {
	s.render(q)

	switch q.Kind {
	case domain.KindInput:
		return s.askInput(ctx, q)
	case domain.KindSelect:
		return s.askSelect(ctx, q)
	case domain.KindConfirm:
		return s.askConfirm(ctx, q)
	}
	return domain.Answer{}, fmt.Errorf("%w: unsupported question kind %q", domain.ErrInvalidConfig, q.Kind)
}

func (s *Surface) render(q domain.Question) {
	s.screen.Clear()
	s.screen.WriteLine("? " + q.Prompt)
	if q.Kind == domain.KindSelect {
		for i, opt := range q.Options {
			s.screen.WriteLine(fmt.Sprintf("  %d) %s", i+1, opt))
		}
	}
}

func (s *Surface) next(ctx context.Context, q domain.Question) (Event, error) {
	if err := ctx.Err(); err != nil {
		return Event{}, err
	}
	if s.pos >= len(s.events) {
		return Event{}, fmt.Errorf("%w: question %q still unanswered", domain.ErrEventsExhausted, q.Key)
	}
	ev := s.events[s.pos]
	s.pos++
	return ev, nil
}

func (s *Surface) askInput(ctx context.Context, q domain.Question) (domain.Answer, error) {
	var buf []rune
	for {
		ev, err := s.next(ctx, q)
		if err != nil {
			return domain.Answer{}, err
		}
		switch ev.Key {
		case KeyRune:
			buf = append(buf, ev.Rune)
		case KeyBackspace:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
		case KeyEnter:
			if len(buf) == 0 && q.Default != nil {
				return *q.Default, nil
			}
			return domain.StringAnswer(string(buf)), nil
		case KeyEsc:
			return domain.Answer{}, nil
		default:
			return domain.Answer{}, fmt.Errorf("scripted event mismatch: key %d not valid for input prompt", ev.Key)
		}
	}
}

func (s *Surface) askSelect(ctx context.Context, q domain.Question) (domain.Answer, error) {
	cursor := 0
	if q.Default != nil && q.Default.Kind == domain.AnswerItem {
		cursor = q.Default.Index
	}
	for {
		ev, err := s.next(ctx, q)
		if err != nil {
			return domain.Answer{}, err
		}
		switch ev.Key {
		case KeyDown:
			if cursor < len(q.Options)-1 {
				cursor++
			}
		case KeyUp:
			if cursor > 0 {
				cursor--
			}
		case KeyEnter:
			if len(q.Options) == 0 {
				// Nothing valid to pick: the session ends without an answer.
				return domain.Answer{}, nil
			}
			return domain.ItemAnswer(cursor, q.Options[cursor]), nil
		case KeyEsc:
			return domain.Answer{}, nil
		default:
			return domain.Answer{}, fmt.Errorf("scripted event mismatch: key %d not valid for select prompt", ev.Key)
		}
	}
}

func (s *Surface) askConfirm(ctx context.Context, q domain.Question) (domain.Answer, error) {
	var pending *bool
	for {
		ev, err := s.next(ctx, q)
		if err != nil {
			return domain.Answer{}, err
		}
		switch ev.Key {
		case KeyRune:
			switch ev.Rune {
			case 'y', 'Y':
				v := true
				pending = &v
			case 'n', 'N':
				v := false
				pending = &v
			default:
				return domain.Answer{}, fmt.Errorf("scripted event mismatch: rune %q not valid for confirm prompt", ev.Rune)
			}
		case KeyEnter:
			if pending != nil {
				return domain.BoolAnswer(*pending), nil
			}
			if q.Default != nil {
				return *q.Default, nil
			}
			return domain.Answer{}, fmt.Errorf("scripted event mismatch: confirm prompt needs y or n")
		case KeyEsc:
			return domain.Answer{}, nil
		default:
			return domain.Answer{}, fmt.Errorf("scripted event mismatch: key %d not valid for confirm prompt", ev.Key)
		}
	}
}
