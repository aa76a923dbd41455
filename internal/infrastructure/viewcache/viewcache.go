package viewcache

import (
	"fmt"
	"sync"

	"giro_backoffice/internal/usecase/interfaces"
)

// ViewCache keeps a monotonically increasing version per view path.
// Versions back the ETag served with dashboard and list responses;
// invalidating a view bumps its version so conditional requests stop
// matching and clients refetch.

type ViewCache struct {
	mu       sync.RWMutex
	versions map[string]uint64
}

var _ interfaces.IViewInvalidator = (*ViewCache)(nil)

func New() *ViewCache {
	return &ViewCache{versions: map[string]uint64{}}
}

// Invalidate bumps the version of each given view.
func (c *ViewCache) Invalidate(views ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, v := range views {
		c.versions[v]++
	}
}

// ETag returns the current validator for a view.
func (c *ViewCache) ETag(view string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return fmt.Sprintf("%q", fmt.Sprintf("%s-v%d", view, c.versions[view]))
}
