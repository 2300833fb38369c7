package rendering

import (
	"sync"

	"github.com/aymerick/raymond"
)

// TemplateCache holds compiled templates keyed by template name. It is safe
// for concurrent use. Only built-in templates are stored; see Renderer.
type TemplateCache struct {
	mu      sync.RWMutex
	entries map[string]*raymond.Template
}

// NewTemplateCache creates an empty cache.
func NewTemplateCache() *TemplateCache {
	return &TemplateCache{entries: make(map[string]*raymond.Template)}
}

// Get returns the compiled template stored under name.
func (c *TemplateCache) Get(name string) (*raymond.Template, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	tpl, ok := c.entries[name]
	return tpl, ok
}

// Put stores a compiled template under name, replacing any previous entry.
func (c *TemplateCache) Put(name string, tpl *raymond.Template) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[name] = tpl
}

// Invalidate drops the entry for name, if any.
func (c *TemplateCache) Invalidate(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, name)
}

// Purge drops every entry.
func (c *TemplateCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*raymond.Template)
}

// Len returns the number of cached templates.
func (c *TemplateCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
