package catalog

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// ErrCatalogNotLoaded is returned when the cache is read before Load succeeded.
var ErrCatalogNotLoaded = errors.New("catalog is not loaded")

// Source provides catalog entries from persistence. Implemented by the
// postgres catalog repository.
type Source interface {
	GetAllDinners(ctx context.Context) ([]*Dinner, error)
	GetAllStyles(ctx context.Context) ([]*Style, error)
	GetAllMenuItems(ctx context.Context) ([]*MenuItem, error)
}

// Snapshot is an immutable view of the catalog taken at load time.
// Conversation turns read one snapshot for their whole duration, so a
// concurrent reload never changes prices mid-turn.
type Snapshot struct {
	dinners   []*Dinner
	styles    []*Style
	menuItems []*MenuItem
}

// Dinners returns all dinners in the snapshot.
func (s *Snapshot) Dinners() []*Dinner {
	return s.dinners
}

// Styles returns all serving styles in the snapshot.
func (s *Snapshot) Styles() []*Style {
	return s.styles
}

// MenuItems returns all standalone menu items in the snapshot.
func (s *Snapshot) MenuItems() []*MenuItem {
	return s.menuItems
}

// Cache is the process-wide catalog cache. It is loaded once at startup
// and afterwards refreshed only by explicit Reload calls; reads are
// lock-free against the current snapshot.
type Cache struct {
	mu       sync.Mutex
	snapshot atomic.Pointer[Snapshot]
}

// NewCache creates an empty, unloaded Cache.
func NewCache() *Cache {
	return &Cache{}
}

// Load populates the cache from src. If a snapshot is already present the
// call is a no-op, so concurrent first-turn races load at most once.
func (c *Cache) Load(ctx context.Context, src Source) error {
	if c.snapshot.Load() != nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snapshot.Load() != nil {
		return nil
	}
	return c.refresh(ctx, src)
}

// Reload replaces the current snapshot unconditionally. Readers holding
// the previous snapshot keep it until their turn completes.
func (c *Cache) Reload(ctx context.Context, src Source) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refresh(ctx, src)
}

// Snapshot returns the current catalog view, or ErrCatalogNotLoaded when
// Load has not succeeded yet.
func (c *Cache) Snapshot() (*Snapshot, error) {
	snap := c.snapshot.Load()
	if snap == nil {
		return nil, ErrCatalogNotLoaded
	}
	return snap, nil
}

func (c *Cache) refresh(ctx context.Context, src Source) error {
	dinners, err := src.GetAllDinners(ctx)
	if err != nil {
		return err
	}
	styles, err := src.GetAllStyles(ctx)
	if err != nil {
		return err
	}
	menuItems, err := src.GetAllMenuItems(ctx)
	if err != nil {
		return err
	}

	c.snapshot.Store(&Snapshot{
		dinners:   dinners,
		styles:    styles,
		menuItems: menuItems,
	})
	return nil
}
