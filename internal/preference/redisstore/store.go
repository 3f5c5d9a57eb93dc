// Package redisstore keeps the theme preference in Redis so several
// terminals on a shared machine see the same choice.
package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/abhisek/quizbox/internal/preference"
)

// DefaultPrefix namespaces quizbox keys.
const DefaultPrefix = "quizbox:"

// Store implements preference.Store on a single Redis string key.
type Store struct {
	client *redis.Client
	prefix string
}

var (
	_ preference.Store   = (*Store)(nil)
	_ preference.Clearer = (*Store)(nil)
)

// New wraps client. An empty prefix uses DefaultPrefix.
func New(client *redis.Client, prefix string) *Store {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Store{client: client, prefix: prefix}
}

func (s *Store) Get(ctx context.Context) (preference.Theme, bool, error) {
	v, err := s.client.Get(ctx, s.key()).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", s.key(), err)
	}
	t, err := preference.ParseTheme(v)
	if err != nil {
		return "", false, err
	}
	return t, true, nil
}

func (s *Store) Set(ctx context.Context, t preference.Theme) error {
	if _, err := preference.ParseTheme(string(t)); err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key(), string(t), 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", s.key(), err)
	}
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key()).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", s.key(), err)
	}
	return nil
}

func (s *Store) key() string {
	return s.prefix + preference.Key
}
