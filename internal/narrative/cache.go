package narrative

import (
	"fmt"
	"reflect"

	lru "github.com/hashicorp/golang-lru"
	"github.com/mitchellh/hashstructure/v2"
	"github.com/mrsinham/physioreport/internal/findings"
	"github.com/mrsinham/physioreport/internal/textgen"
)

// DefaultCacheSize is enough for the three assessments of a handful of reports.
const DefaultCacheSize = 64

// Cache memoises Generate. Entries are keyed by a hash of the full input
// value and verified against the stored input on lookup, so a mutated
// findings value never returns stale text.
type Cache struct {
	entries *lru.Cache
}

type cacheInput struct {
	Findings findings.ClinicalFindings
	Pronouns textgen.Pronouns
}

type cacheEntry struct {
	in  cacheInput
	out Narrative
}

// NewCache returns a cache holding up to size narratives.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	entries, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("narrative cache: %w", err)
	}
	return &Cache{entries: entries}, nil
}

// Generate returns the narrative for f, reusing a previous result for an
// equal input. Returned sections are shared with the cache and must not be
// modified.
func (c *Cache) Generate(f findings.ClinicalFindings, p textgen.Pronouns) Narrative {
	in := cacheInput{Findings: f, Pronouns: p}
	key, err := hashstructure.Hash(in, hashstructure.FormatV2, nil)
	if err != nil {
		return Generate(f, p)
	}
	if v, ok := c.entries.Get(key); ok {
		if e := v.(cacheEntry); reflect.DeepEqual(e.in, in) {
			return e.out
		}
	}
	out := Generate(f, p)
	c.entries.Add(key, cacheEntry{in: cacheInput{Findings: f.Clone(), Pronouns: p}, out: out})
	return out
}

// Len returns the number of cached narratives.
func (c *Cache) Len() int {
	return c.entries.Len()
}
