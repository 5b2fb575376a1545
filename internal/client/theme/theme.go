// Package theme keeps the user's colour scheme preference. The preference is
// loaded once at start and written back on every change.
package theme

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gophdrive/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophdrive/internal/common"
)

type Theme string

const (
	Light   Theme = "light"
	Evening Theme = "evening"
	Dark    Theme = "dark"
)

const Default = Light

var ErrUnknownTheme = errors.New("unknown theme")

func Parse(s string) (Theme, error) {
	switch t := Theme(s); t {
	case Light, Evening, Dark:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
	}
}

// Store holds the current theme. The zero value is not usable; use NewStore.
type Store struct {
	repo metadata.Repository

	mu      sync.RWMutex
	current Theme
}

func NewStore(repo metadata.Repository) *Store {
	return &Store{repo: repo, current: Default}
}

// Load reads the persisted preference. A missing or unrecognised value
// leaves the default in place.
func (s *Store) Load(ctx context.Context) error {
	v, err := s.repo.Get(ctx, metadata.KeyTheme)
	if errors.Is(err, common.ErrorNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	t, err := Parse(v)
	if err != nil {
		return nil
	}

	s.mu.Lock()
	s.current = t
	s.mu.Unlock()
	return nil
}

// Set switches the theme and persists it. The in-memory value is only
// changed when the write succeeds.
func (s *Store) Set(ctx context.Context, t Theme) error {
	if _, err := Parse(string(t)); err != nil {
		return err
	}
	if err := s.repo.Set(ctx, metadata.KeyTheme, string(t)); err != nil {
		return err
	}

	s.mu.Lock()
	s.current = t
	s.mu.Unlock()
	return nil
}

func (s *Store) Current() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}
