package preference

import (
	"context"
	"sync"

	"github.com/abhisek/quizbox/internal/logging"
)

// Store persists the theme preference. Get reports ok=false when nothing has
// been stored yet; that is the normal first-run state, not an error.
type Store interface {
	Get(ctx context.Context) (Theme, bool, error)
	Set(ctx context.Context, t Theme) error
}

// Clearer is implemented by stores that can forget the stored preference.
type Clearer interface {
	Clear(ctx context.Context) error
}

// Resolve returns the persisted theme. When nothing is stored, or the store
// cannot be read, it falls back to the ambient dark-mode signal.
func Resolve(ctx context.Context, s Store, ambientDark bool, log *logging.Logger) Theme {
	if log == nil {
		log = logging.Nop()
	}
	fallback := FromDark(ambientDark)
	if s == nil {
		return fallback
	}
	t, ok, err := s.Get(ctx)
	if err != nil {
		log.Warn("theme preference unavailable, using ambient", "error", err, "ambient", fallback)
		return fallback
	}
	if !ok {
		return fallback
	}
	return t
}

// Toggle flips current, persists the result and returns it. A failed write
// is logged and the new theme is still returned.
func Toggle(ctx context.Context, s Store, current Theme, log *logging.Logger) Theme {
	next := current.Toggled()
	if log == nil {
		log = logging.Nop()
	}
	if s == nil {
		return next
	}
	if err := s.Set(ctx, next); err != nil {
		log.Warn("persist theme preference", "error", err, "theme", next)
	}
	return next
}

// MemoryStore keeps the preference in process memory.
type MemoryStore struct {
	mu    sync.Mutex
	theme Theme
	set   bool
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Get(context.Context) (Theme, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.theme, m.set, nil
}

func (m *MemoryStore) Set(_ context.Context, t Theme) error {
	if _, err := ParseTheme(string(t)); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.theme, m.set = t, true
	return nil
}

// Clear forgets the stored preference.
func (m *MemoryStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.theme, m.set = "", false
	return nil
}
