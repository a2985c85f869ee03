package report

import (
	"fmt"
	"sort"
	"strings"
)

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// fmtCounts renders label/count pairs as "A: 1, B: 2".
func fmtCounts(pairs ...any) string {
	parts := make([]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, fmt.Sprintf("%v: %v", pairs[i], pairs[i+1]))
	}
	return strings.Join(parts, ", ")
}
