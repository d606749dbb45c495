package middleware

import (
	"context"
	"regexp"

	"github.com/parley-sh/parley/pkg/domain"
	"github.com/parley-sh/parley/pkg/ports"
)

// Masked is the value stored in place of a masked variable.
const Masked = "***"

type maskMiddleware struct {
	next     ports.VarStore
	patterns []*regexp.Regexp
}

// NewMaskMiddleware creates a middleware that masks values of variables
// whose names match any of the patterns before they are persisted. The
// in-memory bag used by the run is untouched.
func NewMaskMiddleware(patternStrings []string) Middleware {
	patterns := make([]*regexp.Regexp, len(patternStrings))
	for i, p := range patternStrings {
		patterns[i] = regexp.MustCompile(p)
	}
	return func(next ports.VarStore) ports.VarStore {
		return &maskMiddleware{next: next, patterns: patterns}
	}
}

func (m *maskMiddleware) Save(ctx context.Context, name string, bag domain.VarBag) error {
	// Clone to avoid side effects on the bag the runner keeps using.
	masked := bag.Clone()
	for key := range masked {
		for _, p := range m.patterns {
			if p.MatchString(key) {
				masked[key] = Masked
				break
			}
		}
	}
	return m.next.Save(ctx, name, masked)
}

func (m *maskMiddleware) Load(ctx context.Context, name string) (domain.VarBag, error) {
	return m.next.Load(ctx, name)
}

func (m *maskMiddleware) Delete(ctx context.Context, name string) error {
	return m.next.Delete(ctx, name)
}
