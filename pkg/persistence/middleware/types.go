package middleware

import "github.com/parley-sh/parley/pkg/ports"

// Middleware allows wrapping a VarStore to add behavior.
type Middleware func(ports.VarStore) ports.VarStore

// Chain applies middlewares outermost-first: Chain(store, a, b) saves
// through a, then b, then the store.
func Chain(store ports.VarStore, middlewares ...Middleware) ports.VarStore {
	for i := len(middlewares) - 1; i >= 0; i-- {
		store = middlewares[i](store)
	}
	return store
}
