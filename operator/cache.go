package operator

import (
	"strconv"
	"strings"
	"sync"

	"github.com/katalvlaran/posverify/cdense"
)

// Cache memoizes built matrices keyed by the resolved spec, so two
// specs that normalize to the same exponent vector share one matrix.
// Entries are returned by reference and must be treated as immutable;
// Clone before mutating.
//
// Safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*cdense.CDense
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*cdense.CDense)}
}

// Build returns the matrix for spec, building and storing it on first
// use. Invalid specs fail with the same errors as the package-level
// Build and are not cached.
//
// Determinism: the cache key is the resolved exponent vector plus the
// base identity, so assignment order and block-vs-assignment form do
// not fragment the cache.
func (c *Cache) Build(spec SubsystemSpec) (*cdense.CDense, error) {
	exps, err := resolveExponents(spec)
	if err != nil {
		return nil, err
	}
	key := cacheKey(spec.Base, exps)

	c.mu.RLock()
	m, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return m, nil
	}

	built, err := Build(spec)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// Another goroutine may have raced the build; keep the first entry
	// so all callers share one matrix.
	if m, ok = c.entries[key]; ok {
		return m, nil
	}
	c.entries[key] = built

	return built, nil
}

// Len reports the number of cached matrices.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// cacheKey renders the base identity and resolved exponent vector as a
// canonical string.
func cacheKey(b Base, exps []int) string {
	var sb strings.Builder
	sb.WriteString(b.Name)
	sb.WriteByte('#')
	sb.WriteString(strconv.Itoa(b.Order))
	for _, e := range exps {
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(e))
	}

	return sb.String()
}
