// Package redis persists variable bags in Redis so multi-phase workflows can
// share captured values across invocations.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/parley-sh/parley/pkg/domain"
)

// Store implements ports.VarStore on Redis hashes.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

// Option configures the store.
type Option func(*Store)

// WithPrefix sets the key prefix (default "parley:vars:").
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// WithTTL sets an expiration on saved bags. Zero means no expiration.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// New creates a store with its own client.
func New(address, password string, db int, opts ...Option) *Store {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, opts...)
}

// NewFromClient creates a store over an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	s := &Store{
		client: client,
		prefix: "parley:vars:",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) key(name string) string {
	return s.prefix + name
}

// Save replaces the saved bag under name. The whole bag is written in one
// transaction so a concurrent Load never observes a half-written snapshot.
func (s *Store) Save(ctx context.Context, name string, bag domain.VarBag) error {
	key := s.key(name)

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)
	if len(bag) > 0 {
		fields := make(map[string]string, len(bag))
		for k, v := range bag {
			fields[k] = v
		}
		pipe.HSet(ctx, key, fields)
	}
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save bag %q: %w", name, err)
	}
	return nil
}

// Load retrieves the bag saved under name.
func (s *Store) Load(ctx context.Context, name string) (domain.VarBag, error) {
	fields, err := s.client.HGetAll(ctx, s.key(name)).Result()
	if err != nil && !errors.Is(err, backend.Nil) {
		return nil, fmt.Errorf("failed to load bag %q: %w", name, err)
	}
	if len(fields) == 0 {
		return nil, domain.ErrBagNotFound
	}
	return domain.VarBag(fields), nil
}

// Delete removes the saved bag.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := s.client.Del(ctx, s.key(name)).Err(); err != nil {
		return fmt.Errorf("failed to delete bag %q: %w", name, err)
	}
	return nil
}
