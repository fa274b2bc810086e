package cache

import "sort"

// BoardKey generates a cache key for a rendered board artifact.
// Swaps are serialized in sorted order so logically equal ledgers
// produce the same key.
func BoardKey(preset, tier string, swaps map[string]string, format string) string {
	pairs := make([][2]string, 0, len(swaps))
	for k, v := range swaps {
		pairs = append(pairs, [2]string{k, v})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i][0] < pairs[j][0] })
	return hashKey("board", preset, tier, pairs, format)
}
