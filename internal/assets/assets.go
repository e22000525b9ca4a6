// Package assets resolves and caches asset files and decodes them off the
// main thread.
package assets

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// Source is one place assets can be read from.
type Source interface {
	Read(name string) ([]byte, error)
}

// DirSource reads files below a directory.
type DirSource struct {
	Root string
}

func (d DirSource) Read(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(d.Root, filepath.FromSlash(name)))
}

// FSSource reads from an fs.FS such as an embed.FS or fstest.MapFS.
type FSSource struct {
	FS fs.FS
}

func (s FSSource) Read(name string) ([]byte, error) {
	return fs.ReadFile(s.FS, filepath.ToSlash(name))
}

// Manager reads assets from its sources. Sources are searched in reverse
// order, so the last one added wins.
type Manager struct {
	sources []Source
	cache   *Cache
	mu      sync.RWMutex
}

// NewManager creates a manager with no sources.
func NewManager() *Manager {
	return &Manager{cache: NewCache()}
}

// NewDirManager creates a manager reading from dir.
func NewDirManager(dir string) *Manager {
	m := NewManager()
	m.AddSource(DirSource{Root: dir})
	return m
}

// AddSource adds src with the highest priority.
func (m *Manager) AddSource(src Source) {
	m.mu.Lock()
	m.sources = append(m.sources, src)
	m.mu.Unlock()
}

// Load returns the bytes of name, from cache when possible.
func (m *Manager) Load(name string) ([]byte, error) {
	if data, ok := m.cache.Get(name); ok {
		return data, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var last error
	for i := len(m.sources) - 1; i >= 0; i-- {
		data, err := m.sources[i].Read(name)
		if err == nil {
			m.cache.Set(name, data)
			return data, nil
		}
		last = err
	}
	if last == nil {
		last = fs.ErrNotExist
	}
	return nil, errors.Wrapf(last, "asset %s", name)
}

// Cache returns the byte cache.
func (m *Manager) Cache() *Cache { return m.cache }

// Close drops all sources and cached data.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sources = nil
	m.cache.Clear()
}

// Cache is an in-memory byte cache keyed by asset name.
type Cache struct {
	data map[string][]byte
	mu   sync.Mutex

	hits   int
	misses int
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{data: make(map[string][]byte)}
}

// Get retrieves an item and counts the hit or miss.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Clear empties the cache and resets its statistics.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns hit and miss counts.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
