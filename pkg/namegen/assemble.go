package namegen

import (
	"strings"
	"time"

	"github.com/dmitrymomot/namekit/pkg/prng"
)

// assemble joins the preset's template slots into a raw base name. Word
// choices are made by the caller; assembly itself is deterministic.
func assemble(p Preset, adjectives []string, noun string, now time.Time) string {
	parts := make([]string, 0, len(p.template()))
	adjIdx := 0

	for _, slot := range p.template() {
		switch slot {
		case SlotPrefix:
			if p.Prefix != "" {
				parts = append(parts, p.Prefix)
			}
		case SlotAdjective:
			if adjIdx < len(adjectives) {
				parts = append(parts, adjectives[adjIdx])
				adjIdx++
			}
		case SlotNoun:
			parts = append(parts, noun)
		case SlotSuffix:
			if p.Suffix != "" {
				parts = append(parts, p.Suffix)
			}
		case SlotDate:
			parts = append(parts, now.Format("20060102"))
		}
	}

	return strings.Join(parts, p.delimiter())
}

// pickWords draws n words from pool, preferring ones absent from used. When
// fewer unused words remain than needed, the full pool becomes eligible
// again. Draws are without replacement while the eligible set lasts, with
// replacement from the full pool after that, so a one-word pool still yields
// a pick for every slot.
func pickWords(seq *prng.Sequence, pool []string, used map[string]struct{}, n int) []string {
	if len(pool) == 0 || n <= 0 {
		return nil
	}

	eligible := make([]string, 0, len(pool))
	for _, w := range pool {
		if _, ok := used[w]; !ok {
			eligible = append(eligible, w)
		}
	}
	if len(eligible) < n {
		eligible = append([]string(nil), pool...)
	}

	picks := make([]string, 0, n)
	for range n {
		if len(eligible) == 0 {
			picks = append(picks, pool[seq.NextInt(len(pool))])
			continue
		}
		i := seq.NextInt(len(eligible))
		picks = append(picks, eligible[i])
		eligible[i] = eligible[len(eligible)-1]
		eligible = eligible[:len(eligible)-1]
	}
	return picks
}
