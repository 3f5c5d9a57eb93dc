package redisstore

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizbox/internal/preference"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return New(client, ""), mr
}

func TestStore_AbsentOnFirstRun(t *testing.T) {
	s, _ := newTestStore(t)

	_, ok, err := s.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_SetGet(t *testing.T) {
	s, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, preference.Dark))

	got, ok, err := s.Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, preference.Dark, got)

	raw, err := mr.Get("quizbox:preferred-theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", raw)
}

func TestStore_RejectsUnknownTheme(t *testing.T) {
	s, _ := newTestStore(t)

	err := s.Set(context.Background(), preference.Theme("neon"))
	require.ErrorIs(t, err, preference.ErrUnknownTheme)
}

func TestStore_CorruptValue(t *testing.T) {
	s, mr := newTestStore(t)
	require.NoError(t, mr.Set("quizbox:preferred-theme", "purple"))

	_, _, err := s.Get(context.Background())
	require.ErrorIs(t, err, preference.ErrUnknownTheme)
}

func TestStore_Clear(t *testing.T) {
	s, mr := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Set(ctx, preference.Light))

	require.NoError(t, s.Clear(ctx))

	assert.False(t, mr.Exists("quizbox:preferred-theme"))
	_, ok, err := s.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_Unreachable(t *testing.T) {
	s, mr := newTestStore(t)
	mr.Close()

	_, _, err := s.Get(context.Background())
	require.Error(t, err)

	// Resolve absorbs the failure.
	got := preference.Resolve(context.Background(), s, true, nil)
	assert.Equal(t, preference.Dark, got)
}
