package wordbank

import (
	"sort"
	"strconv"
	"strings"

	"github.com/dmitrymomot/namekit/pkg/cache"
)

// Resolver memoizes Resolve results. Resolution is a pure function of its
// inputs, so repeated requests for the same preset and bank set (the common
// shape of a batch run) hit the cache instead of re-walking every bank.
//
// Cached *Pools instances are shared between callers and must not be mutated.
type Resolver struct {
	cache *cache.LRU[string, *Pools]
}

// NewResolver creates a Resolver with room for size distinct resolutions.
func NewResolver(size int) *Resolver {
	return &Resolver{cache: cache.NewLRU[string, *Pools](size)}
}

// Resolve returns the eligible pools for the given inputs, consulting the
// cache first.
func (r *Resolver) Resolve(banks []Bank, allowedAdjectives, allowedNouns []string, filterNSFW bool, mode ResolutionMode) (*Pools, error) {
	key := resolveKey(banks, allowedAdjectives, allowedNouns, filterNSFW, mode)

	if pools, ok := r.cache.Get(key); ok {
		return pools, nil
	}

	pools, err := Resolve(banks, allowedAdjectives, allowedNouns, filterNSFW, mode)
	if err != nil {
		return nil, err
	}

	r.cache.Put(key, pools)
	return pools, nil
}

// resolveKey builds a stable cache key covering everything Resolve's output
// depends on. Bank word contents are assumed immutable for a given bank id.
func resolveKey(banks []Bank, allowedAdjectives, allowedNouns []string, filterNSFW bool, mode ResolutionMode) string {
	ids := make([]string, 0, len(banks))
	for _, b := range banks {
		ids = append(ids, b.ID)
	}
	sort.Strings(ids)

	adj := append([]string(nil), allowedAdjectives...)
	sort.Strings(adj)
	nouns := append([]string(nil), allowedNouns...)
	sort.Strings(nouns)

	var b strings.Builder
	b.WriteString(strings.Join(ids, ","))
	b.WriteString("|")
	b.WriteString(strings.Join(adj, ","))
	b.WriteString("|")
	b.WriteString(strings.Join(nouns, ","))
	b.WriteString("|")
	b.WriteString(strconv.FormatBool(filterNSFW))
	b.WriteString("|")
	b.WriteString(strconv.Itoa(int(mode)))
	return b.String()
}
