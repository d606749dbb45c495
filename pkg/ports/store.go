package ports

import (
	"context"

	"github.com/parley-sh/parley/pkg/domain"
)

// VarStore persists captured variable bags between runs, enabling workflows
// that execute in phases (before-hook run, external checkpoint, after-hook
// run) to share state across invocations.
type VarStore interface {
	// Save persists the bag under the given name, overwriting any previous
	// snapshot.
	Save(ctx context.Context, name string, bag domain.VarBag) error

	// Load retrieves the bag saved under name.
	// Returns domain.ErrBagNotFound if nothing was saved.
	Load(ctx context.Context, name string) (domain.VarBag, error)

	// Delete removes the saved bag.
	Delete(ctx context.Context, name string) error
}
